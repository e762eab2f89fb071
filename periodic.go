package mask

import (
	"iter"
	"math"
)

// Arange yields start + k·step for k = 0, 1, … for as long as the value is
// less than end. The sequence is empty if start ≥ end or step ≤ 0.
//
// Values are computed from k rather than accumulated, so every value is
// exact to one rounding step and the sequence can be iterated any number of
// times with identical results.
func Arange(start, end, step float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !(step > 0) || !(start < end) || math.IsInf(step, 0) {
			return
		}
		for k := 0; ; k++ {
			v := start + float64(k)*step
			if v >= end {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Grid yields the points start + (i·step.X, j·step.Y) that lie within
// [start.X, end.X) × [start.Y, end.Y), row by row from the bottom.
func Grid(start, end Point, step Vec2) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range Arange(start.Y, end.Y, step.Y) {
			for x := range Arange(start.X, end.X, step.X) {
				if !yield(Pt(x, y)) {
					return
				}
			}
		}
	}
}
