package field

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient interpolates between two endpoint colors in RGB space.
type Gradient struct {
	From, To colorful.Color
}

// NewGradient parses two hex colors such as "#c83e77".
func NewGradient(from, to string) (Gradient, error) {
	f, err := ParseColor(from)
	if err != nil {
		return Gradient{}, err
	}
	t, err := ParseColor(to)
	if err != nil {
		return Gradient{}, err
	}
	return Gradient{From: f, To: t}, nil
}

// At returns the color at t. Values outside [0, 1] stick to the nearest endpoint.
func (g Gradient) At(t float64) color.Color {
	return g.From.BlendRgb(g.To, clamp01(t)).Clamped()
}

// ParseColor parses a "#rrggbb" hex string.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}
