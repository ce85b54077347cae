// Package level maps a ball level to its size and visual asset.
package level

import (
	"fmt"
	"image/color"
)

const (
	Min = 1
	Max = 11

	// BaseUnit is the level 1 size before the box-size factor is applied.
	BaseUnit = 0.2
)

// multipliers of BaseUnit for levels 1..11.
var multipliers = [Max]float64{1, 1.5, 2.1, 2.3, 2.9, 3.5, 3.7, 5.0, 5.9, 6.0, 7.8}

var palette = [Max]color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},     // red
	{R: 255, G: 128, B: 0, A: 255},   // orange
	{R: 255, G: 235, B: 4, A: 255},   // yellow
	{R: 0, G: 255, B: 255, A: 255},   // cyan
	{R: 0, G: 0, B: 255, A: 255},     // blue
	{R: 255, G: 0, B: 255, A: 255},   // magenta
	{R: 128, G: 0, B: 128, A: 255},   // purple
	{R: 128, G: 255, B: 0, A: 255},   // chartreuse
	{R: 0, G: 0, B: 0, A: 255},       // black
	{R: 128, G: 128, B: 128, A: 255}, // gray
	{R: 255, G: 255, B: 255, A: 255}, // white
}

// VisualKey names the sprite for a level.
type VisualKey string

// Asset is the opaque visual handle a ball refreshes from on creation.
type Asset struct {
	Key   VisualKey
	Color color.RGBA
}

// AssetLookup resolves a level to its visual asset.
type AssetLookup interface {
	Get(level int) Asset
}

// Table is the immutable level table scaled by the box-size factor.
type Table struct {
	boxSize float64
}

func NewTable(boxSize float64) Table {
	return Table{boxSize: boxSize}
}

func (t Table) BoxSize() float64 {
	return t.boxSize
}

// InTable reports whether the level has its own table entry.
func InTable(level int) bool {
	return level >= Min && level <= Max
}

// SizeOf returns the linear size (diameter) of a fully grown ball.
// Levels outside the table fall back to the box-size factor.
func (t Table) SizeOf(level int) float64 {
	if !InTable(level) {
		return t.boxSize
	}
	return BaseUnit * t.boxSize * multipliers[level-1]
}

// VisualKeyOf returns fruit_01..fruit_11; levels outside the table use fruit_01.
func (t Table) VisualKeyOf(level int) VisualKey {
	if !InTable(level) {
		level = Min
	}
	return VisualKey(fmt.Sprintf("fruit_%02d", level))
}

// Color returns the level color, level 1 for levels outside the table.
func Color(level int) color.RGBA {
	if !InTable(level) {
		level = Min
	}
	return palette[level-1]
}

// Get implements AssetLookup.
func (t Table) Get(level int) Asset {
	return Asset{Key: t.VisualKeyOf(level), Color: Color(level)}
}
