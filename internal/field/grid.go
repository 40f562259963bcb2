package field

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate in canvas space (origin top-left, y down).
type Point struct {
	X, Y float64
}

// Jitter returns the offset added to a lattice coordinate. It is called once
// for x and once for y of every point, in row-major order.
type Jitter func() float64

// NoJitter keeps every point on the lattice.
func NoJitter() float64 { return 0 }

// Counts returns the number of lattice steps along each axis.
func Counts(w, h, res float64) (cols, rows int) {
	mustPositive(w, h, res)
	return int(math.Ceil(w / res)), int(math.Ceil(h / res))
}

// BuildGrid lays out (rows+1)*(cols+1) sample points covering a w x h canvas,
// one every res units, scanning rows top to bottom.
func BuildGrid(w, h, res float64, jitter Jitter) []Point {
	cols, rows := Counts(w, h, res)
	if jitter == nil {
		jitter = NoJitter
	}
	pts := make([]Point, 0, (rows+1)*(cols+1))
	for i := 0; i <= rows; i++ {
		for j := 0; j <= cols; j++ {
			x := res*float64(j) + jitter()
			y := res*float64(i) + jitter()
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts
}

func mustPositive(w, h, res float64) {
	if !(w > 0) || !(h > 0) || !(res > 0) {
		panic(fmt.Sprintf("field: canvas %vx%v with resolution %v must be positive", w, h, res))
	}
}
