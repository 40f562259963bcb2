// Package render draws sketches without a window, onto an in-memory image.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Canvas implements sketch.Canvas on a gg drawing context.
type Canvas struct {
	dc *gg.Context
}

func NewCanvas(w, h int) *Canvas {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("render: canvas size %dx%d must be positive", w, h))
	}
	return &Canvas{dc: gg.NewContext(w, h)}
}

func (c *Canvas) Size() (float64, float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

func (c *Canvas) Fill(clr color.Color) {
	c.dc.Push()
	c.dc.Identity()
	c.dc.SetColor(clr)
	c.dc.Clear()
	c.dc.Pop()
}

func (c *Canvas) FillCircle(x, y, d float64, clr color.Color) {
	if d <= 0 {
		return
	}
	c.dc.DrawCircle(x, y, d/2)
	c.dc.SetColor(clr)
	c.dc.Fill()
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.dc.DrawLine(x0, y0, x1, y1)
	c.dc.SetLineWidth(width)
	c.dc.SetColor(clr)
	c.dc.Stroke()
}

func (c *Canvas) Push() { c.dc.Push() }

func (c *Canvas) Pop() { c.dc.Pop() }

func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }

func (c *Canvas) Rotate(angle float64) { c.dc.Rotate(angle) }

func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error {
	return SavePNG(path, c.dc.Image())
}

// SavePNG encodes img as PNG into path.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
