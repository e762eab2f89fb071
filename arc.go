package mask

import (
	"iter"
)

// Arc is a circular arc.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	// SweepAngle is positive for anti-clockwise arcs.
	SweepAngle float64
}

// Eval returns the point at angle StartAngle + t·SweepAngle.
func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(VecFromAngle(a.StartAngle + t*a.SweepAngle).Mul(a.Radius))
}

// Points discretizes the arc into n equal straight segments and yields their
// n+1 end points, from Eval(0) to Eval(1). n less than 1 is treated as 1.
func (a Arc) Points(n int) iter.Seq[Point] {
	n = max(n, 1)
	return func(yield func(Point) bool) {
		for k := range n + 1 {
			if !yield(a.Eval(float64(k) / float64(n))) {
				return
			}
		}
	}
}
