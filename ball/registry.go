package ball

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// Registry is the set of live balls keyed by index, iterated in insertion
// order. Removed entries leave a hole that is compacted once holes outnumber
// live entries.
type Registry struct {
	slots *intmap.Map[int, int]
	order []*Ball
	holes int
}

func NewRegistry() *Registry {
	return &Registry{
		slots: intmap.New[int, int](64),
	}
}

// Add inserts b unless its index is already present. It reports whether b was added.
func (r *Registry) Add(b *Ball) bool {
	if _, ok := r.slots.Get(b.Index); ok {
		return false
	}
	r.slots.Put(b.Index, len(r.order))
	r.order = append(r.order, b)
	return true
}

// Remove deletes b by index. It reports whether anything was removed.
func (r *Registry) Remove(b *Ball) bool {
	slot, ok := r.slots.Get(b.Index)
	if !ok {
		return false
	}
	r.slots.Del(b.Index)
	r.order[slot] = nil
	r.holes++
	if r.holes > len(r.order)/2 {
		r.compact()
	}
	return true
}

func (r *Registry) compact() {
	live := r.order[:0]
	for _, b := range r.order {
		if b == nil {
			continue
		}
		r.slots.Put(b.Index, len(live))
		live = append(live, b)
	}
	clear(r.order[len(live):])
	r.order = live
	r.holes = 0
}

func (r *Registry) Len() int {
	return len(r.order) - r.holes
}

func (r *Registry) Contains(index int) bool {
	_, ok := r.slots.Get(index)
	return ok
}

func (r *Registry) Get(index int) (*Ball, bool) {
	slot, ok := r.slots.Get(index)
	if !ok {
		return nil, false
	}
	return r.order[slot], true
}

// All yields live balls in insertion order. The registry must not be
// mutated during iteration; use Snapshot for that.
func (r *Registry) All() iter.Seq[*Ball] {
	return func(yield func(*Ball) bool) {
		for _, b := range r.order {
			if b == nil {
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}

// Snapshot copies the live balls in insertion order.
func (r *Registry) Snapshot() []*Ball {
	out := make([]*Ball, 0, r.Len())
	for b := range r.All() {
		out = append(out, b)
	}
	return out
}
