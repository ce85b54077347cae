// Package loop runs the single-threaded frame loop: systems execute in
// registration order once per tick, then deferred commands are flushed.
package loop

// System is a behavior run once per tick. Systems may keep state between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a function to System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) { f(frame) }
