package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/mergeball/ball"
	"github.com/plus3/mergeball/geom"
)

// BallRow is one line of the ball table.
type BallRow struct {
	Index int
	Name  string
	Level int
	X, Y  float64
	Speed float64
	Flags string
}

func rowOf(b *ball.Ball) BallRow {
	p := b.Position()
	return BallRow{
		Index: b.Index,
		Name:  b.Name,
		Level: b.Level,
		X:     p.X,
		Y:     p.Y,
		Speed: b.Speed(),
		Flags: flagsOf(b),
	}
}

func flagsOf(b *ball.Ball) string {
	var flags []string
	if b.MergeReserved() {
		flags = append(flags, "reserved")
	}
	if b.Growing {
		flags = append(flags, "growing")
	}
	if b.SpawnPhase {
		flags = append(flags, "spawn")
	}
	if b.Body != nil && b.Body.Kinematic() {
		flags = append(flags, "kinematic")
	}
	return strings.Join(flags, " ")
}

const (
	columnIndex = iota
	columnName
	columnLevel
	columnPosition
	columnSpeed
	columnFlags
)

// BallBrowser lists live balls in a sortable, filterable table.
type BallBrowser struct {
	registry *ball.Registry

	rows          []BallRow
	sortColumn    int
	sortAscending bool
	filterText    string
	currentPage   int
	perPage       int
	selected      int
}

func NewBallBrowser(registry *ball.Registry, perPage int) *BallBrowser {
	if perPage <= 0 {
		perPage = 50
	}
	return &BallBrowser{
		registry:      registry,
		sortAscending: true,
		perPage:       perPage,
		selected:      -1,
	}
}

// Rows refreshes the table from the registry and returns the sorted,
// filtered rows.
func (bb *BallBrowser) Rows() []BallRow {
	bb.rows = bb.rows[:0]
	for b := range bb.registry.All() {
		bb.rows = append(bb.rows, rowOf(b))
	}
	bb.sortRows()
	return bb.filtered()
}

// SortBy sets the sort column and direction.
func (bb *BallBrowser) SortBy(column int, ascending bool) {
	bb.sortColumn = column
	bb.sortAscending = ascending
}

func (bb *BallBrowser) SetFilter(text string) { bb.filterText = text }

func (bb *BallBrowser) sortRows() {
	sort.SliceStable(bb.rows, func(i, j int) bool {
		a, b := bb.rows[i], bb.rows[j]
		var less bool

		switch bb.sortColumn {
		case columnName:
			less = a.Name < b.Name
		case columnLevel:
			less = a.Level < b.Level
		case columnPosition:
			less = a.Y < b.Y
		case columnSpeed:
			less = a.Speed < b.Speed
		case columnFlags:
			less = a.Flags < b.Flags
		default:
			less = a.Index < b.Index
		}

		if !bb.sortAscending {
			return !less
		}
		return less
	})
}

func (bb *BallBrowser) filtered() []BallRow {
	if bb.filterText == "" {
		return bb.rows
	}

	filter := strings.ToLower(bb.filterText)
	out := make([]BallRow, 0, len(bb.rows))
	for _, r := range bb.rows {
		if strings.Contains(strings.ToLower(r.Name), filter) ||
			strings.Contains(r.Flags, filter) ||
			fmt.Sprintf("level=%d", r.Level) == filter {
			out = append(out, r)
		}
	}
	return out
}

// Selected returns the ball picked in the table, if it is still live.
func (bb *BallBrowser) Selected() (*ball.Ball, bool) {
	if bb.selected < 0 {
		return nil, false
	}
	return bb.registry.Get(bb.selected)
}

func (bb *BallBrowser) Select(index int) { bb.selected = index }

func (bb *BallBrowser) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 320), imgui.CondOnce)
	if !imgui.BeginV("Balls", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "name, flag or level=N", &bb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		bb.filterText = ""
	}

	rows := bb.Rows()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("BallTable", 6, tableFlags, imgui.NewVec2(0, 200), 0) {
		imgui.TableSetupColumn("Index")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Level")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Speed")
		imgui.TableSetupColumn("Flags")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			bb.SortBy(int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionAscending)
			bb.sortRows()
			rows = bb.filtered()
			sortSpecs.SetSpecsDirty(false)
		}

		start := bb.currentPage * bb.perPage
		if start >= len(rows) {
			bb.currentPage, start = 0, 0
		}
		end := min(start+bb.perPage, len(rows))

		for _, r := range rows[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", r.Index), bb.selected == r.Index, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				bb.selected = r.Index
			}
			imgui.TableNextColumn()
			imgui.Text(r.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", r.Level))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f, %.2f", r.X, r.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", r.Speed))
			imgui.TableNextColumn()
			imgui.Text(r.Flags)
		}

		imgui.EndTable()
	}

	if len(rows) > bb.perPage {
		totalPages := (len(rows) + bb.perPage - 1) / bb.perPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d balls)", bb.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && bb.currentPage > 0 {
			bb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && bb.currentPage < totalPages-1 {
			bb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d balls", len(rows)))
	}

	if b, ok := bb.Selected(); ok {
		imgui.Separator()
		renderBall(b)
	}

	imgui.End()
}

func renderBall(b *ball.Ball) {
	imgui.Text(b.String())
	imgui.Text(fmt.Sprintf("Origin: %s", b.Origin))
	imgui.Text(fmt.Sprintf("Asset: %s", b.Asset.Key))
	imgui.Text(fmt.Sprintf("Size: %.3f", b.Size))
	if b.Body == nil {
		return
	}
	v := b.Body.Velocity()
	imgui.Text(fmt.Sprintf("Body %d: v=(%.2f, %.2f) w=%.2f", b.Body.ID(), v.X, v.Y, b.Body.AngularVelocity()))

	kinematic := b.Body.Kinematic()
	if imgui.Checkbox("Kinematic", &kinematic) {
		b.Body.SetKinematic(kinematic)
	}
	imgui.SameLine()
	if imgui.Button("Kick") {
		b.Body.AddImpulse(geom.V(0, 2))
	}
}
