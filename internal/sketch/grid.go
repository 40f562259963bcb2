package sketch

import (
	"github.com/iburimskiy/distance-field-sketches/internal/field"

	"github.com/lucasb-eyer/go-colorful"
)

type CircleGridOptions struct {
	Resolution float64
	Offset     float64
	Background colorful.Color
	Gradient   field.Gradient
	Inner      colorful.Color
}

// CircleGrid draws a lattice of circle pairs. The outer circle is tinted by
// distance to the pointer and the inner one grows with it.
type CircleGrid struct {
	opts    CircleGridOptions
	points  []field.Point
	pointer field.Point
	w, h    float64
}

func NewCircleGrid(opts CircleGridOptions) *CircleGrid {
	return &CircleGrid{opts: opts}
}

func (g *CircleGrid) Name() string { return "grid" }

func (g *CircleGrid) Setup(w, h float64) {
	g.points = field.BuildGrid(w, h, g.opts.Resolution, field.NoJitter)
	g.w, g.h = w, h
}

func (g *CircleGrid) Update(in Input) {
	g.pointer = in.Pointer
	g.w, g.h = in.Width, in.Height
}

func (g *CircleGrid) Draw(c Canvas) {
	c.Fill(g.opts.Background)
	res := g.opts.Resolution
	for _, p := range g.points {
		ratio := field.Ratio(p, g.pointer, g.w, g.h, g.opts.Offset)
		c.FillCircle(p.X, p.Y, res, g.opts.Gradient.At(ratio))
		c.FillCircle(p.X, p.Y, field.Size(res, ratio), g.opts.Inner)
	}
}

// Points returns the sample points built by Setup.
func (g *CircleGrid) Points() []field.Point { return g.points }
