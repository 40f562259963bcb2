package field

import "math"

// MaxDist is the canvas diagonal. It is recomputed from the live size on
// every call since the window can be resized between frames.
func MaxDist(w, h float64) float64 {
	return math.Sqrt(w*w + h*h)
}

// Dist is the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Ratio normalizes the distance from p to ref against the canvas diagonal and
// biases it by offset. No clamping is applied here.
func Ratio(p, ref Point, w, h, offset float64) float64 {
	return offset + Dist(p, ref)/MaxDist(w, h)
}

// Heading is the angle of the vector pointing from p toward ref.
func Heading(p, ref Point) float64 {
	return math.Atan2(ref.Y-p.Y, ref.X-p.X)
}

// Size scales the resolution by ratio.
func Size(res, ratio float64) float64 {
	return res * ratio
}

// Weight thins a stroke as ratio grows. It goes negative once ratio passes 1.
func Weight(max, ratio float64) float64 {
	return max - max*ratio
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
