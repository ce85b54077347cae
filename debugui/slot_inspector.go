package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/level"
)

var timeScales = []float64{0.25, 0.5, 1, 2}

// SlotInspector shows the spawn slot and lets the held ball be dropped or a
// specific level requested.
type SlotInspector struct {
	game  *game.Game
	lvl int32
}

func NewSlotInspector(g *game.Game) *SlotInspector {
	return &SlotInspector{game: g, lvl: 1}
}

// Request asks the slot for a ball of the chosen level at its last position.
func (si *SlotInspector) Request() bool {
	slot := si.game.Slot()
	return slot.RequestSpawn(slot.LastPosition(), int(si.lvl))
}

func (si *SlotInspector) SetLevel(lvl int) {
	si.lvl = int32(max(level.Min, min(lvl, level.Max)))
}

func (si *SlotInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 240), imgui.CondOnce)
	if !imgui.BeginV("Spawn Slot", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	slot := si.game.Slot()
	pos := slot.LastPosition()
	imgui.Text(fmt.Sprintf("State: %s", slot.State()))
	imgui.Text(fmt.Sprintf("Requests: %d", slot.Requests()))
	imgui.Text(fmt.Sprintf("Last position: %.2f, %.2f", pos.X, pos.Y))
	if held := slot.Held(); held != nil {
		imgui.Text(fmt.Sprintf("Held: %s", held))
	} else {
		imgui.TextColored(imgui.NewVec4(0.7, 0.7, 0.7, 1), "Held: none")
	}

	imgui.Separator()
	if imgui.Button("Drop") {
		si.game.Drop(si.game.Pointer())
	}

	imgui.Text("Level:")
	imgui.SameLine()
	imgui.SetNextItemWidth(100)
	if imgui.InputInt("##level", &si.lvl) {
		si.SetLevel(int(si.lvl))
	}
	imgui.SameLine()
	if imgui.Button("Request") {
		si.Request()
	}

	imgui.Separator()
	scheduler := si.game.Scheduler()
	imgui.Text(fmt.Sprintf("Time scale: %.2fx", scheduler.TimeScale()))
	for i, scale := range timeScales {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.Button(fmt.Sprintf("%gx", scale)) {
			scheduler.SetTimeScale(scale)
		}
	}

	imgui.End()
}
