package sprite

import (
	"errors"
	"fmt"
	"github.com/allape/spritecut/helper"
	"image"
)

// Columns x Rows is the fixed layout of the sheet, one animation per row.
const (
	Columns = 5
	Rows    = 2
)

type Label string

const (
	Idle Label = "idle"
	Walk Label = "walk"
)

// Labels maps a grid row to its animation name
var Labels = [Rows]Label{Idle, Walk}

type FrameSpec struct {
	Row    int
	Column int
	Label  Label
}

// Specs returns every cell of the grid, row by row, columns ascending.
func Specs() []FrameSpec {
	specs := make([]FrameSpec, 0, Rows*Columns)
	for row, label := range Labels {
		for column := 0; column < Columns; column++ {
			specs = append(specs, FrameSpec{Row: row, Column: column, Label: label})
		}
	}
	return specs
}

// FrameSize truncates, remainder pixels on the right and bottom edge of the
// sheet belong to no frame.
func FrameSize(bounds image.Rectangle) image.Point {
	size := bounds.Size()
	return image.Point{X: size.X / Columns, Y: size.Y / Rows}
}

// Box is the cell of s inside a sheet with the given bounds
func (s FrameSpec) Box(bounds image.Rectangle) image.Rectangle {
	size := FrameSize(bounds)
	origin := bounds.Min.Add(image.Point{X: s.Column * size.X, Y: s.Row * size.Y})
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

// FileName
// Example:
//
//	FrameSpec{Row: 1, Column: 0, Label: Walk}.FileName("fox", ".png") == "fox-walk-1.png"
func (s FrameSpec) FileName(prefix, ext string) string {
	return fmt.Sprintf("%s-%s-%d%s", prefix, s.Label, s.Column+1, ext)
}

type Frame struct {
	FrameSpec
	Box   image.Rectangle
	Image image.Image
}

// Slice cuts sheet into Rows*Columns independent frames in Specs order.
func Slice(sheet image.Image) ([]Frame, error) {
	if sheet == nil {
		return nil, errors.New("sheet is nil")
	}

	bounds := sheet.Bounds()

	frames := make([]Frame, 0, Rows*Columns)
	for _, spec := range Specs() {
		box := spec.Box(bounds)
		frames = append(frames, Frame{
			FrameSpec: spec,
			Box:       box,
			Image:     helper.Clone(sheet, box),
		})
	}

	return frames, nil
}
