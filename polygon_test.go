package mask

import (
	"errors"
	"math"
	"testing"
)

func TestPolygonValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    Polygon
		ok   bool
	}{
		{"square", square(1, 1), true},
		{"two points", NewPolygon(1, Pt(0, 0), Pt(1, 0)), false},
		{"repeated", NewPolygon(1, Pt(0, 0), Pt(1, 0), Pt(1, 0), Pt(0, 1)), false},
		{"closing edge", NewPolygon(1, Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(0, 0)), false},
		{"NaN", NewPolygon(1, Pt(0, 0), Pt(math.NaN(), 0), Pt(0, 1)), false},
		{"Inf", NewPolygon(1, Pt(0, 0), Pt(math.Inf(1), 0), Pt(0, 1)), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("got %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestPolygonArea(t *testing.T) {
	p := NewPolygon(1, Pt(0, 0), Pt(4, 0), Pt(4, 3))
	if a := p.SignedArea(); a != 6 {
		t.Errorf("got signed area %v, want 6", a)
	}
	if a := p.Reverse().SignedArea(); a != -6 {
		t.Errorf("got signed area %v, want -6", a)
	}
	if a := p.Reverse().Area(); a != 6 {
		t.Errorf("got area %v, want 6", a)
	}
	if l := p.Perimeter(); l != 12 {
		t.Errorf("got perimeter %v, want 12", l)
	}
}

func TestPolygonTransform(t *testing.T) {
	p := NewPolygon(3, Pt(0, 0), Pt(2, 0), Pt(2, 1))

	m := p.Reflect(AxisX)
	diff(t, NewPolygon(3, Pt(0, 0), Pt(2, 0), Pt(2, -1)), m)
	if math.Signbit(p.SignedArea()) == math.Signbit(m.SignedArea()) {
		t.Error("reflection did not invert the winding")
	}

	diff(t, NewPolygon(3, Pt(1, 1), Pt(3, 1), Pt(3, 2)), p.Translate(Vec(1, 1)))
	diff(t, NewPolygon(3, Pt(0, 0), Pt(0, 2), Pt(-1, 2)), p.Rotate(math.Pi/2), approx)

	// The receiver is never modified.
	diff(t, NewPolygon(3, Pt(0, 0), Pt(2, 0), Pt(2, 1)), p)
}

func TestPolygonReverse(t *testing.T) {
	p := NewPolygon(1, Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	diff(t, NewPolygon(1, Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)), p.Reverse())
	diff(t, p, p.Reverse().Reverse())
}

func TestPolygonVertex(t *testing.T) {
	p := square(1, 1)
	diff(t, p.Points[3], p.Vertex(-1))
	diff(t, p.Points[0], p.Vertex(4))
	diff(t, p.Points[1], p.Vertex(9))
}

func TestPolygonIsSimple(t *testing.T) {
	if !square(1, 1).IsSimple() {
		t.Error("square is not simple")
	}
	bowtie := NewPolygon(1, Pt(0, 0), Pt(1, 1), Pt(1, 0), Pt(0, 1))
	if bowtie.IsSimple() {
		t.Error("bowtie is simple")
	}
	// Touching at a vertex is not simple either.
	pinched := NewPolygon(1, Pt(0, 0), Pt(2, 0), Pt(1, 1), Pt(2, 2), Pt(0, 2), Pt(1, 1))
	if pinched.IsSimple() {
		t.Error("pinched polygon is simple")
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	p := NewPolygon(1, Pt(-1, 2), Pt(3, -4), Pt(0, 5))
	diff(t, Rect{-1, -4, 3, 5}, p.BoundingBox())
	diff(t, Rect{}, Polygon{}.BoundingBox())
}
