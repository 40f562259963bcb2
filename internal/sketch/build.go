package sketch

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/distance-field-sketches/internal/config"
	"github.com/iburimskiy/distance-field-sketches/internal/field"
)

// Names lists the sketches New knows about.
var Names = []string{"grid", "field"}

// New builds the named sketch from cfg. Setup is left to the driver.
func New(name string, cfg config.Config) (Sketch, error) {
	switch name {
	case "grid":
		return newCircleGrid(cfg.Grid)
	case "field":
		return newVectorField(cfg.Field, cfg.Tracker)
	}
	return nil, fmt.Errorf("unknown sketch %q, expected one of %v", name, Names)
}

func newCircleGrid(c config.Grid) (*CircleGrid, error) {
	grad, err := field.NewGradient(c.From, c.To)
	if err != nil {
		return nil, err
	}
	bg, err := field.ParseColor(c.Background)
	if err != nil {
		return nil, err
	}
	inner, err := field.ParseColor(c.Inner)
	if err != nil {
		return nil, err
	}
	return NewCircleGrid(CircleGridOptions{
		Resolution: c.Resolution,
		Offset:     c.Offset,
		Background: bg,
		Gradient:   grad,
		Inner:      inner,
	}), nil
}

func newVectorField(c config.Field, t config.Tracker) (*VectorField, error) {
	grad, err := field.NewGradient(c.From, c.To)
	if err != nil {
		return nil, err
	}
	bg, err := field.ParseColor(c.Background)
	if err != nil {
		return nil, err
	}
	tc, err := field.ParseColor(t.Color)
	if err != nil {
		return nil, err
	}
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewVectorField(VectorFieldOptions{
		Resolution: c.Resolution,
		Offset:     c.Offset,
		Jitter:     c.Jitter,
		LineLength: c.LineLength,
		MaxWeight:  c.MaxWeight,
		Curl:       c.Curl,
		Background: bg,
		Gradient:   grad,
		Tracker: TrackerOptions{
			Start:    field.Point{X: t.StartX, Y: t.StartY},
			Gain:     t.Gain,
			DeadZone: t.DeadZone,
		},
		TrackerDiameter: t.Diameter,
		TrackerColor:    tc,
		Rand:            rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}), nil
}
