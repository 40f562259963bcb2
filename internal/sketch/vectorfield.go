package sketch

import (
	"math/rand/v2"

	"github.com/iburimskiy/distance-field-sketches/internal/field"

	"github.com/lucasb-eyer/go-colorful"
)

type VectorFieldOptions struct {
	Resolution float64
	Offset     float64
	// Jitter scales the random offset added to each lattice coordinate at
	// setup: offsets fall in [0, Jitter*Resolution).
	Jitter     float64
	LineLength float64
	MaxWeight  float64
	// Curl is added to every heading. Zero points lines straight at the tracker.
	Curl       float64
	Background colorful.Color
	Gradient   field.Gradient

	Tracker         TrackerOptions
	TrackerDiameter float64
	TrackerColor    colorful.Color

	// Rand drives the setup jitter. A nil Rand uses the global source.
	Rand *rand.Rand
}

// VectorField draws short line segments that turn to face a moving tracker,
// fading and thinning with distance from it.
type VectorField struct {
	opts    VectorFieldOptions
	points  []field.Point
	tracker *Tracker
	w, h    float64
}

func NewVectorField(opts VectorFieldOptions) *VectorField {
	return &VectorField{
		opts:    opts,
		tracker: NewTracker(opts.Tracker),
	}
}

func (v *VectorField) Name() string { return "field" }

func (v *VectorField) Setup(w, h float64) {
	v.points = field.BuildGrid(w, h, v.opts.Resolution, v.jitter())
	v.w, v.h = w, h
}

func (v *VectorField) jitter() field.Jitter {
	if v.opts.Jitter <= 0 {
		return field.NoJitter
	}
	r := v.opts.Rand
	bound := v.opts.Jitter * v.opts.Resolution
	return func() float64 {
		if r == nil {
			return rand.Float64() * bound
		}
		return r.Float64() * bound
	}
}

func (v *VectorField) Update(in Input) {
	v.w, v.h = in.Width, in.Height
	v.tracker.Step(in)
}

func (v *VectorField) Draw(c Canvas) {
	c.Fill(v.opts.Background)

	pos := v.tracker.Pos
	c.FillCircle(pos.X, pos.Y, v.opts.TrackerDiameter, v.opts.TrackerColor)

	for _, p := range v.points {
		ratio := field.Ratio(p, pos, v.w, v.h, v.opts.Offset)
		weight := field.Weight(v.opts.MaxWeight, ratio)
		if weight <= 0 {
			continue
		}
		c.Push()
		c.Translate(p.X, p.Y)
		c.Rotate(field.Heading(p, pos) + v.opts.Curl)
		c.StrokeLine(0, 0, v.opts.LineLength, 0, weight, v.opts.Gradient.At(ratio))
		c.Pop()
	}
}

func (v *VectorField) Points() []field.Point { return v.points }

func (v *VectorField) Tracker() *Tracker { return v.tracker }
