package render

import (
	"github.com/iburimskiy/distance-field-sketches/internal/field"
	"github.com/iburimskiy/distance-field-sketches/internal/sketch"

	"github.com/rs/zerolog/log"
)

// Options describe a headless run.
type Options struct {
	Width, Height int
	// Frames is the number of Update calls before the frame is drawn.
	Frames  int
	Pointer field.Point
	Engaged bool
}

// Run sets the sketch up on a fresh canvas, steps it and draws the last frame.
func Run(s sketch.Sketch, opts Options) *Canvas {
	c := NewCanvas(opts.Width, opts.Height)
	w, h := c.Size()
	s.Setup(w, h)

	in := sketch.Input{Pointer: opts.Pointer, Engaged: opts.Engaged, Width: w, Height: h}
	frames := opts.Frames
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		s.Update(in)
	}
	s.Draw(c)
	log.Debug().Str("sketch", s.Name()).Int("frames", frames).Msg("frame rendered")
	return c
}
