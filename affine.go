package mask

import (
	"fmt"
	"iter"
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The convention is that (A * B) * v == A * (B * v), so in A.Mul(B), B is
// applied first.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Axis selects one of the two coordinate axes.
type Axis int

const (
	// AxisX is the horizontal axis. Reflecting about it negates y.
	AxisX Axis = iota
	// AxisY is the vertical axis. Reflecting about it negates x.
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Scale creates an affine transform representing uniform scaling by f.
func Scale(f float64) Affine {
	return Affine{f, 0, 0, f, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// A positive angle rotates the positive x direction into positive y, which is
// anti-clockwise in the y-up coordinate system of mask layouts.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// ReflectAxis creates an affine transform that reflects about one of the
// coordinate axes. Reflection about [AxisX] maps (x, y) to (x, −y).
// It panics if axis is neither AxisX nor AxisY.
func ReflectAxis(axis Axis) Affine {
	switch axis {
	case AxisX:
		return Affine{1, 0, 0, -1, 0, 0}
	case AxisY:
		return Affine{-1, 0, 0, 1, 0, 0}
	default:
		panic(fmt.Sprintf("invalid axis %d", int(axis)))
	}
}

// Compose returns the single transform equivalent to applying ts in order,
// first to last. Compose() is the identity.
func Compose(ts ...Affine) Affine {
	out := Identity
	for _, t := range ts {
		out = t.Mul(out)
	}
	return out
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant. It is negative for transforms that
// mirror, which invert the winding of polygons.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.N0) ||
		math.IsNaN(aff.N1) ||
		math.IsNaN(aff.N2) ||
		math.IsNaN(aff.N3) ||
		math.IsNaN(aff.N4) ||
		math.IsNaN(aff.N5)
}

// Transform maps every value of seq through aff.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
