package sketch

import (
	"math"

	"github.com/iburimskiy/distance-field-sketches/internal/field"
)

type TrackerOptions struct {
	Start field.Point
	// Gain scales pursuit speed: speed = Gain * separation / diagonal.
	Gain     float64
	DeadZone float64
}

// Tracker is the object the vector field points at. While the pointer is
// engaged it chases it, otherwise it keeps drifting at its last speed.
type Tracker struct {
	Pos            field.Point
	SpeedX, SpeedY float64

	gain, deadZone float64
}

func NewTracker(opts TrackerOptions) *Tracker {
	return &Tracker{
		Pos:      opts.Start,
		gain:     opts.Gain,
		deadZone: opts.DeadZone,
	}
}

// Step advances the tracker by one frame.
func (t *Tracker) Step(in Input) {
	if in.Engaged {
		maxD := field.MaxDist(in.Width, in.Height)
		t.SpeedX = t.gain * math.Abs(t.Pos.X-in.Pointer.X) / maxD
		t.SpeedY = t.gain * math.Abs(t.Pos.Y-in.Pointer.Y) / maxD
		t.Pos.X = pursue(t.Pos.X, in.Pointer.X, t.SpeedX, t.deadZone)
		t.Pos.Y = pursue(t.Pos.Y, in.Pointer.Y, t.SpeedY, t.deadZone)
		return
	}
	t.Pos.X = drift(t.Pos.X, t.SpeedX, in.Width)
	t.Pos.Y = drift(t.Pos.Y, t.SpeedY, in.Height)
}

// pursue only steps back when pos is more than deadZone past target. Any
// smaller separation, including a positive one, steps forward, and exactly
// deadZone holds still.
func pursue(pos, target, speed, deadZone float64) float64 {
	d := pos - target
	switch {
	case d > deadZone:
		return pos - speed
	case d < deadZone:
		return pos + speed
	}
	return pos
}

// drift moves forward while below bound and back once at or past it. The
// position is not clamped, so it can overshoot by up to one step.
func drift(pos, speed, bound float64) float64 {
	if pos < bound {
		return pos + speed
	}
	return pos - speed
}
