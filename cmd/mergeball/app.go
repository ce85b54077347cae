package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/mergeball/debugui"
	debugui_ebiten "github.com/plus3/mergeball/debugui/ebiten"
	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
)

// guideLength is how far below the held ball the aiming line reaches.
const guideLength = 2.9

var (
	backgroundColor = color.RGBA{250, 240, 222, 255}
	wallColor       = color.RGBA{120, 90, 60, 255}
	guideColor      = color.RGBA{255, 255, 255, 160}
)

// timeScaleKeys maps number keys to time scales.
var timeScaleKeys = map[ebiten.Key]float64{
	ebiten.Key1: 1,
	ebiten.Key2: 0.1,
	ebiten.Key3: 0.01,
}

// App implements ebiten.Game.
type App struct {
	game     *game.Game
	viewport Viewport
	dt       float64

	imgui *debugui_ebiten.ImguiBackend
	ui    *debugui.ImguiSystem
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if a.imgui != nil {
		a.imgui.BeginFrame()
		defer a.imgui.EndFrame()
	}

	a.handleInput()
	a.game.Tick(a.dt)
	return nil
}

func (a *App) handleInput() {
	if a.ui != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			a.ui.Hidden = !a.ui.Hidden
		}
		if a.ui.InputState.WantCaptureKeyboard {
			return
		}
	}

	for key, scale := range timeScaleKeys {
		if inpututil.IsKeyJustPressed(key) {
			a.game.Scheduler().SetTimeScale(scale)
		}
	}

	if a.ui != nil && a.ui.InputState.WantCaptureMouse {
		return
	}

	x, y := ebiten.CursorPosition()
	a.game.SetPointer(a.viewport.ToWorld(x, y))
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.game.ReleasePointer(a.viewport.ToWorld(x, y))
	}

	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		a.game.ReleasePointer(a.viewport.ToWorld(tx, ty))
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.drawBox(screen)
	a.drawGuide(screen)
	a.drawBalls(screen)
	a.drawStatus(screen)

	if a.imgui != nil {
		a.imgui.Draw(screen)
	}
}

func (a *App) drawBox(screen *ebiten.Image) {
	b := a.game.Bounds()
	x0, y0 := a.viewport.ToScreen(geom.V(b.Left, b.Top))
	x1, y1 := a.viewport.ToScreen(geom.V(b.Right, b.Bottom))
	vector.StrokeLine(screen, x0, y0, x0, y1, 4, wallColor, true)
	vector.StrokeLine(screen, x1, y0, x1, y1, 4, wallColor, true)
	vector.StrokeLine(screen, x0, y1, x1, y1, 4, wallColor, true)
}

func (a *App) drawBalls(screen *ebiten.Image) {
	for b := range a.game.Registry().All() {
		x, y := a.viewport.ToScreen(b.Position())
		r := a.viewport.Length(b.Size / 2)
		vector.DrawFilledCircle(screen, x, y, r, b.Asset.Color, true)
		if b.Suppressed() {
			vector.StrokeCircle(screen, x, y, r, 2, color.White, true)
		}
	}
}

func (a *App) drawGuide(screen *ebiten.Image) {
	held := a.game.Slot().Held()
	if held == nil {
		return
	}
	p := held.Position()
	x0, y0 := a.viewport.ToScreen(p)
	x1, y1 := a.viewport.ToScreen(geom.V(p.X, p.Y-guideLength))
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, guideColor, true)
}

func (a *App) drawStatus(screen *ebiten.Image) {
	s := a.game.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Merges: %d  Best: %d  Balls: %d", s.Merges, s.MaxLevel, s.Live), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Speed: %gx (1/2/3)  Esc: quit", a.game.Scheduler().TimeScale()), 10, 26)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imgui != nil {
		a.imgui.Layout(outsideWidth, outsideHeight)
	}
	return a.viewport.Width, a.viewport.Height
}
