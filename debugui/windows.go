package debugui

import "github.com/plus3/mergeball/game"

// Attach registers an ImguiSystem with the game's scheduler, populated with
// the ball browser, slot inspector and performance windows.
func Attach(g *game.Game) *ImguiSystem {
	system := &ImguiSystem{}
	system.Add(NewBallBrowser(g.Registry(), 100).Render)
	system.Add(NewSlotInspector(g).Render)
	system.Add(NewPerformanceStats(g, 120).Render)
	g.Scheduler().Register(system)
	return system
}
