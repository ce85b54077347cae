// Package debugui provides Dear ImGui windows for inspecting a running game.
// Windows are plain render funcs run at the end of each scheduler frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/mergeball/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Front-ends check it before treating a click as a drop.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the frame
// and refreshes InputState.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState

	// Hidden skips rendering but keeps input state current.
	Hidden bool
}

func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if i.Hidden {
		return
	}
	for _, item := range i.Items {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
