package game_test

import (
	"fmt"

	"github.com/plus3/mergeball/ball"
	"github.com/plus3/mergeball/config"
	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
)

// ExampleMergeArbiter_Resolve merges two level 2 balls. The contact is
// delivered from both sides but only the first delivery commits the merge;
// the child appears once the parents reach their midpoint.
func ExampleMergeArbiter_Resolve() {
	g := game.New(config.Default(), game.Options{})
	a := g.Factory().Create(geom.V(-0.2, 0), 2, ball.Dropped, 1)
	b := g.Factory().Create(geom.V(0.2, 0), 2, ball.Dropped, 1)

	fmt.Println(g.Arbiter().Resolve(a, b))
	fmt.Println(g.Arbiter().Resolve(b, a))

	g.Animator().Step(0.1)
	for child := range g.Registry().All() {
		fmt.Printf("%s at (%.1f, %.1f)\n", child, child.Position().X, child.Position().Y)
	}

	// Output:
	// merged
	// ignored
	// ballM_2(level=3) at (0.0, 0.0)
}
