package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas draws sketch primitives onto an ebiten image. Only
// translation and rotation are tracked, so sizes are never scaled.
type screenCanvas struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
}

func (c *screenCanvas) reset(dst *ebiten.Image) {
	c.dst = dst
	c.geo.Reset()
	c.stack = c.stack[:0]
}

func (c *screenCanvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *screenCanvas) FillCircle(x, y, d float64, clr color.Color) {
	if d <= 0 {
		return
	}
	x, y = c.geo.Apply(x, y)
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(d/2), clr, true)
}

func (c *screenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	x0, y0 = c.geo.Apply(x0, y0)
	x1, y1 = c.geo.Apply(x1, y1)
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (c *screenCanvas) Push() {
	c.stack = append(c.stack, c.geo)
}

func (c *screenCanvas) Pop() {
	if len(c.stack) == 0 {
		c.geo.Reset()
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate and Rotate prepend to the current matrix so that the latest
// call is applied to points first.
func (c *screenCanvas) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(c.geo)
	c.geo = m
}

func (c *screenCanvas) Rotate(angle float64) {
	var m ebiten.GeoM
	m.Rotate(angle)
	m.Concat(c.geo)
	c.geo = m
}
