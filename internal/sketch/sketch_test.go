package sketch

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/iburimskiy/distance-field-sketches/internal/config"
	"github.com/iburimskiy/distance-field-sketches/internal/field"

	"github.com/stretchr/testify/require"
)

func sameColor(t *testing.T, want, got interface{ RGBA() (r, g, b, a uint32) }) {
	t.Helper()
	wr, wg, wb, wa := want.RGBA()
	gr, gg, gb, ga := got.RGBA()
	require.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{gr, gg, gb, ga})
}

func TestNewUnknown(t *testing.T) {
	_, err := New("spiral", config.Default())
	require.Error(t, err)
}

func TestNewBadColor(t *testing.T) {
	cfg := config.Default()
	cfg.Tracker.Color = "grey"
	_, err := New("field", cfg)
	require.Error(t, err)
}

func TestCircleGrid(t *testing.T) {
	s, err := New("grid", config.Default())
	require.NoError(t, err)
	g := s.(*CircleGrid)
	require.Equal(t, "grid", g.Name())

	g.Setup(500, 500)
	require.Len(t, g.Points(), 121)

	g.Update(Input{Pointer: field.Point{}, Width: 500, Height: 500})
	rec := newRecorder()
	g.Draw(rec)

	require.Equal(t, 1, rec.count("fill"))
	require.Equal(t, 242, rec.count("circle"))
	sameColor(t, g.opts.Background, rec.ops[0].c)

	// circle pair under the pointer
	outer, inner := rec.ops[1], rec.ops[2]
	require.Equal(t, 50.0, outer.d)
	sameColor(t, g.opts.Gradient.At(0.2), outer.c)
	require.InDelta(t, 10.0, inner.d, 1e-9)
	sameColor(t, g.opts.Inner, inner.c)

	// far corner
	outer, inner = rec.ops[len(rec.ops)-2], rec.ops[len(rec.ops)-1]
	require.Equal(t, 500.0, outer.x0)
	require.Equal(t, 500.0, outer.y0)
	require.InDelta(t, 60.0, inner.d, 1e-9)
	sameColor(t, g.opts.Gradient.At(1), outer.c)
}

func TestCircleGridKeepsPointsOnResize(t *testing.T) {
	g := NewCircleGrid(CircleGridOptions{Resolution: 50})
	g.Setup(500, 500)
	g.Update(Input{Width: 1000, Height: 1000})
	rec := newRecorder()
	g.Draw(rec)
	require.Equal(t, 242, rec.count("circle"))
}

func TestTrackerPursuit(t *testing.T) {
	in := Input{Width: 500, Height: 500, Engaged: true}
	maxD := field.MaxDist(500, 500)

	tr := NewTracker(TrackerOptions{Start: field.Point{X: 400, Y: 400}, Gain: 25, DeadZone: 20})
	in.Pointer = field.Point{X: 100, Y: 400}
	tr.Step(in)
	require.InDelta(t, 25*300/maxD, tr.SpeedX, 1e-12)
	require.Equal(t, 0.0, tr.SpeedY)
	require.InDelta(t, 400-25*300/maxD, tr.Pos.X, 1e-12)
	require.Equal(t, 400.0, tr.Pos.Y)

	tr = NewTracker(TrackerOptions{Start: field.Point{X: 100, Y: 100}, Gain: 25, DeadZone: 20})
	in.Pointer = field.Point{X: 400, Y: 400}
	tr.Step(in)
	require.Greater(t, tr.Pos.X, 100.0)
	require.Greater(t, tr.Pos.Y, 100.0)
}

func TestTrackerDeadZone(t *testing.T) {
	in := Input{Width: 500, Height: 500, Engaged: true, Pointer: field.Point{X: 100, Y: 100}}

	// exactly at the tolerance it holds still
	tr := NewTracker(TrackerOptions{Start: field.Point{X: 120, Y: 120}, Gain: 25, DeadZone: 20})
	tr.Step(in)
	require.Greater(t, tr.SpeedX, 0.0)
	require.Equal(t, field.Point{X: 120, Y: 120}, tr.Pos)

	// inside the tolerance it never steps back toward smaller coordinates
	tr = NewTracker(TrackerOptions{Start: field.Point{X: 110, Y: 90}, Gain: 25, DeadZone: 20})
	tr.Step(in)
	require.Greater(t, tr.Pos.X, 110.0)
	require.Greater(t, tr.Pos.Y, 90.0)
}

func TestTrackerDrift(t *testing.T) {
	tr := NewTracker(TrackerOptions{Start: field.Point{X: 497, Y: 10}, Gain: 25, DeadZone: 20})
	tr.SpeedX, tr.SpeedY = 5, 2

	in := Input{Width: 500, Height: 500}
	tr.Step(in)
	require.Equal(t, field.Point{X: 502, Y: 12}, tr.Pos)

	// past the edge it reverses without clamping
	tr.Step(in)
	require.Equal(t, field.Point{X: 497, Y: 14}, tr.Pos)
	require.Equal(t, 5.0, tr.SpeedX)
}

func TestTrackerKeepsSpeedAfterRelease(t *testing.T) {
	tr := NewTracker(TrackerOptions{Start: field.Point{X: 100, Y: 100}, Gain: 25, DeadZone: 20})
	tr.Step(Input{Width: 500, Height: 500, Engaged: true, Pointer: field.Point{X: 300, Y: 100}})
	sx := tr.SpeedX
	x := tr.Pos.X
	tr.Step(Input{Width: 500, Height: 500})
	require.Equal(t, sx, tr.SpeedX)
	require.InDelta(t, x+sx, tr.Pos.X, 1e-12)
}

func testField(t *testing.T, curl float64, start field.Point) *VectorField {
	t.Helper()
	cfg := config.Default()
	cfg.Field.Jitter = 0
	cfg.Field.Curl = curl
	cfg.Tracker.StartX, cfg.Tracker.StartY = start.X, start.Y
	s, err := New("field", cfg)
	require.NoError(t, err)
	v := s.(*VectorField)
	v.Setup(500, 500)
	v.Update(Input{Width: 500, Height: 500})
	return v
}

func TestVectorFieldDraw(t *testing.T) {
	v := testField(t, 0, field.Point{X: 250, Y: 250})
	require.Equal(t, "field", v.Name())
	require.Len(t, v.Points(), 121)

	rec := newRecorder()
	v.Draw(rec)
	require.Equal(t, "fill", rec.ops[0].kind)
	tracker := rec.ops[1]
	require.Equal(t, "circle", tracker.kind)
	require.Equal(t, 250.0, tracker.x0)
	require.Equal(t, 20.0, tracker.d)
	require.Equal(t, 121, rec.count("line"))
	require.Empty(t, rec.stack)

	// first point (0,0) points down-right toward the tracker
	l := rec.ops[2]
	require.InDelta(t, 0, l.x0, 1e-9)
	require.InDelta(t, 0, l.y0, 1e-9)
	require.InDelta(t, 15*math.Cos(math.Pi/4), l.x1, 1e-9)
	require.InDelta(t, 15*math.Sin(math.Pi/4), l.y1, 1e-9)

	// the point under the tracker has the heaviest stroke
	var under op
	for _, o := range rec.ops {
		if o.kind == "line" && o.x0 == 250 && o.y0 == 250 {
			under = o
		}
	}
	require.InDelta(t, 5.4, under.d, 1e-9)
	sameColor(t, v.opts.Gradient.At(0.1), under.c)
	require.InDelta(t, 265, under.x1, 1e-9)
	require.InDelta(t, 250, under.y1, 1e-9)
}

func TestVectorFieldSkipsVanishingStrokes(t *testing.T) {
	v := testField(t, 0, field.Point{})
	rec := newRecorder()
	v.Draw(rec)
	require.Less(t, rec.count("line"), 121)
	for _, o := range rec.ops {
		if o.kind == "line" {
			require.Greater(t, o.d, 0.0)
		}
	}
}

func TestVectorFieldCurl(t *testing.T) {
	v := testField(t, math.Pi/2, field.Point{X: 250, Y: 250})
	rec := newRecorder()
	v.Draw(rec)
	for _, o := range rec.ops {
		if o.kind == "line" && o.x0 == 250 && o.y0 == 250 {
			require.InDelta(t, 250, o.x1, 1e-9)
			require.InDelta(t, 265, o.y1, 1e-9)
			return
		}
	}
	t.Fatal("no line at the tracker position")
}

func TestVectorFieldJitter(t *testing.T) {
	mk := func() *VectorField {
		v := NewVectorField(VectorFieldOptions{
			Resolution: 50,
			Jitter:     1,
			Rand:       rand.New(rand.NewPCG(1, 2)),
		})
		v.Setup(500, 500)
		return v
	}
	a, b := mk(), mk()
	require.Equal(t, a.Points(), b.Points())

	cols, rows := field.Counts(500, 500, 50)
	for i, p := range a.Points() {
		gx := float64(i%(cols+1)) * 50
		gy := float64(i/(cols+1)) * 50
		require.GreaterOrEqual(t, p.X, gx)
		require.Less(t, p.X, gx+50)
		require.GreaterOrEqual(t, p.Y, gy)
		require.Less(t, p.Y, gy+50)
	}
	require.Len(t, a.Points(), (cols+1)*(rows+1))
}

func TestVectorFieldTracksUpdates(t *testing.T) {
	v := testField(t, 0, field.Point{X: 400, Y: 400})
	v.Update(Input{Width: 500, Height: 500, Engaged: true, Pointer: field.Point{X: 100, Y: 100}})
	require.Less(t, v.Tracker().Pos.X, 400.0)
	require.Less(t, v.Tracker().Pos.Y, 400.0)
}

func TestVectorFieldJitterFollowsResolution(t *testing.T) {
	for _, res := range []float64{20, 50, 80} {
		cfg := config.Default()
		cfg.Field.Resolution = res
		cfg.Field.Seed = 11
		s, err := New("field", cfg)
		require.NoError(t, err)
		v := s.(*VectorField)
		v.Setup(200, 200)

		cols, rows := field.Counts(200, 200, res)
		require.Len(t, v.Points(), (cols+1)*(rows+1))
		for i, p := range v.Points() {
			gx := float64(i%(cols+1)) * res
			gy := float64(i/(cols+1)) * res
			require.GreaterOrEqual(t, p.X, gx, "res %v point %d", res, i)
			require.Less(t, p.X, gx+res, "res %v point %d", res, i)
			require.GreaterOrEqual(t, p.Y, gy, "res %v point %d", res, i)
			require.Less(t, p.Y, gy+res, "res %v point %d", res, i)
		}
	}
}

func TestVectorFieldHalfJitter(t *testing.T) {
	v := NewVectorField(VectorFieldOptions{
		Resolution: 40,
		Jitter:     0.5,
		Rand:       rand.New(rand.NewPCG(5, 6)),
	})
	v.Setup(200, 200)
	for _, p := range v.Points() {
		require.Less(t, p.X-40*math.Floor(p.X/40), 20.0)
		require.Less(t, p.Y-40*math.Floor(p.Y/40), 20.0)
	}
}
