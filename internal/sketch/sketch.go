// Package sketch holds the scene state of the two distance-field sketches and
// the per-frame contract a driver uses to run them: Setup once, then Update
// and Draw every frame.
package sketch

import (
	"image/color"

	"github.com/iburimskiy/distance-field-sketches/internal/field"
)

// Canvas is the drawing collaborator. Transform calls follow canvas
// semantics: the most recent Translate/Rotate applies to points first.
type Canvas interface {
	// Fill paints the whole canvas.
	Fill(c color.Color)
	// FillCircle draws a filled circle of diameter d centered at (x, y).
	FillCircle(x, y, d float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
}

// Input is what the driver samples once per frame.
type Input struct {
	Pointer field.Point
	// Engaged reports whether the pointer is pressed or touching.
	Engaged bool
	// Width and Height are the live canvas size.
	Width, Height float64
}

// Sketch is one generative scene.
type Sketch interface {
	Name() string
	// Setup builds the sample points for a w x h canvas. The point set is
	// not rebuilt when the canvas is later resized.
	Setup(w, h float64)
	Update(in Input)
	Draw(c Canvas)
}
