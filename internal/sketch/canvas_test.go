package sketch

import (
	"image/color"
	"math"
)

type op struct {
	kind           string
	x0, y0, x1, y1 float64
	d              float64
	c              color.Color
}

// recorder is a Canvas that keeps every primitive in world coordinates.
type recorder struct {
	ops   []op
	stack []affine
	cur   affine
}

// affine maps (x, y) to (a*x + c*y + e, b*x + d*y + f).
type affine struct{ a, b, c, d, e, f float64 }

var identity = affine{a: 1, d: 1}

func newRecorder() *recorder { return &recorder{cur: identity} }

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// after returns m applied after n.
func (m affine) after(n affine) affine {
	return affine{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

func (r *recorder) Fill(c color.Color) {
	r.ops = append(r.ops, op{kind: "fill", c: c})
}

func (r *recorder) FillCircle(x, y, d float64, c color.Color) {
	x, y = r.cur.apply(x, y)
	r.ops = append(r.ops, op{kind: "circle", x0: x, y0: y, d: d, c: c})
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, w float64, c color.Color) {
	x0, y0 = r.cur.apply(x0, y0)
	x1, y1 = r.cur.apply(x1, y1)
	r.ops = append(r.ops, op{kind: "line", x0: x0, y0: y0, x1: x1, y1: y1, d: w, c: c})
}

func (r *recorder) Push() { r.stack = append(r.stack, r.cur) }

func (r *recorder) Pop() {
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *recorder) Translate(x, y float64) {
	r.cur = r.cur.after(affine{a: 1, d: 1, e: x, f: y})
}

func (r *recorder) Rotate(angle float64) {
	s, c := math.Sincos(angle)
	r.cur = r.cur.after(affine{a: c, b: s, c: -s, d: c})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}
