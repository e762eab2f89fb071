package mask

import (
	"errors"
	"math"
	"testing"
)

func TestRoundZeroRadius(t *testing.T) {
	p := NewPolygon(1, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(5, 4), Pt(0, 10))
	got := mustRound(t, p, []CornerTag{
		{Index: 0, Radius: 0, Kind: Convex},
		{Index: 3, Radius: 0, Kind: Reflex},
	}, 16)
	diff(t, p, got)

	diff(t, p, mustRound(t, p, nil, 1))
}

func TestRoundAreaLaw(t *testing.T) {
	const (
		r        = 2.0
		segments = 2048
	)
	want := r * r * (1 - math.Pi/4)
	// The discretized arc cuts a little more than the true arc; the error
	// shrinks quadratically with the number of segments.
	tolerance := 1e-5 * r * r

	t.Run("convex", func(t *testing.T) {
		p := square(1, 10)
		got := mustRound(t, p, ConvexCorners(r, 2), segments)
		if d := p.Area() - got.Area(); math.Abs(d-want) > tolerance {
			t.Errorf("area decreased by %v, want %v", d, want)
		}
	})

	t.Run("reflex", func(t *testing.T) {
		// An L shape; vertex 3 is the inner corner.
		p := NewPolygon(1, Pt(0, 0), Pt(20, 0), Pt(20, 10), Pt(10, 10), Pt(10, 20), Pt(0, 20))
		got := mustRound(t, p, ReflexCorners(r, 3), segments)
		if d := got.Area() - p.Area(); math.Abs(d-want) > tolerance {
			t.Errorf("area increased by %v, want %v", d, want)
		}
	})

	t.Run("clockwise", func(t *testing.T) {
		p := square(1, 10).Reverse()
		got := mustRound(t, p, ConvexCorners(r, 0), segments)
		if d := p.Area() - got.Area(); math.Abs(d-want) > tolerance {
			t.Errorf("area decreased by %v, want %v", d, want)
		}
	})
}

func TestRoundTangency(t *testing.T) {
	const r = 1.0
	got := mustRound(t, square(1, 10), ConvexCorners(r, 2), 4)
	// Vertex 2 becomes five points, from (10, 9) to (9, 10) around (9, 9).
	if n := got.Len(); n != 8 {
		t.Fatalf("got %d vertices, want 8", n)
	}
	assertNear(t, got.Points[2], Pt(10, 9), 1e-12)
	assertNear(t, got.Points[6], Pt(9, 10), 1e-12)
	for _, pt := range got.Points[2:7] {
		if d := pt.Distance(Pt(9, 9)); math.Abs(d-r) > 1e-12 {
			t.Errorf("%s is %v from the centre, want %v", pt, d, r)
		}
	}
	if !got.IsSimple() {
		t.Error("rounded polygon is not simple")
	}
	if got.SignedArea() <= 0 {
		t.Error("rounding changed the winding")
	}
}

func TestRoundNonRightAngle(t *testing.T) {
	// An equilateral triangle: θ = 60°, so t = r / tan(30°) = r·√3.
	h := math.Sqrt(3) / 2 * 10
	p := NewPolygon(1, Pt(0, 0), Pt(10, 0), Pt(5, h))
	const r = 1.0
	got := mustRound(t, p, ConvexCorners(r, 0), 8)
	trim := r * math.Sqrt(3)
	assertNear(t, got.Points[0], Pt(0, 0).Translate(Pt(5, h).Sub(Pt(0, 0)).Normalize().Mul(trim)), 1e-12)
	assertNear(t, got.Points[8], Pt(trim, 0), 1e-12)
}

func TestRoundAllCorners(t *testing.T) {
	const r = 4.0
	p := square(1, 10)
	got := mustRound(t, p, ConvexCorners(r, 0, 1, 2, 3), 64)
	if n := got.Len(); n != 4*65 {
		t.Errorf("got %d vertices, want %d", n, 4*65)
	}
	if err := got.Validate(); err != nil {
		t.Error(err)
	}
	if !got.IsSimple() {
		t.Error("rounded polygon is not simple")
	}
	want := 100 - 4*r*r*(1-math.Pi/4)
	if a := got.Area(); math.Abs(a-want) > 0.01 {
		t.Errorf("got area %v, want about %v", a, want)
	}
}

func TestRoundInfeasible(t *testing.T) {
	// Both edges are 10 long, the corner is a right angle, so t = 6 > 10/2.
	p := square(1, 10)
	_, err := Round(p, ConvexCorners(6, 1), 8)
	if !errors.Is(err, ErrRoundingInfeasible) {
		t.Fatalf("got %v, want ErrRoundingInfeasible", err)
	}
	var cerr *CornerError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %T, want *CornerError", err)
	}
	if cerr.Err != ErrRoundingInfeasible {
		t.Errorf("got cause %v, want ErrRoundingInfeasible", cerr.Err)
	}
	type fields struct {
		Index              int
		Radius, Trim, Edge float64
	}
	diff(t, fields{Index: 1, Radius: 6, Trim: 6, Edge: 10},
		fields{cerr.Index, cerr.Radius, cerr.Trim, cerr.Edge}, approx)

	if _, err := Round(p, ConvexCorners(5, 1), 8); err != nil {
		t.Errorf("radius of half the edge: %v", err)
	}
}

func TestRoundErrors(t *testing.T) {
	p := square(1, 10)
	collinear := NewPolygon(1, Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	for _, tc := range []struct {
		name string
		p    Polygon
		tags []CornerTag
		segs int
		want error
	}{
		{"index", p, ConvexCorners(1, 4), 8, ErrInvalidParameter},
		{"negative index", p, ConvexCorners(1, -1), 8, ErrInvalidParameter},
		{"negative radius", p, ConvexCorners(-1, 0), 8, ErrInvalidParameter},
		{"NaN radius", p, ConvexCorners(math.NaN(), 0), 8, ErrInvalidParameter},
		{"repeated", p, ConvexCorners(1, 0, 0), 8, ErrInvalidParameter},
		{"kind", p, ReflexCorners(1, 0), 8, ErrInvalidParameter},
		{"segments", p, ConvexCorners(1, 0), 0, ErrInvalidParameter},
		{"collinear", collinear, ConvexCorners(1, 1), 8, ErrRoundingInfeasible},
		{"degenerate", NewPolygon(1, Pt(0, 0), Pt(1, 1)), nil, 8, ErrInvalidParameter},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Round(tc.p, tc.tags, tc.segs); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRoundAfterReflection(t *testing.T) {
	// Reflection inverts the winding but not the convexity of a corner.
	p := NewPolygon(1, Pt(0, 0), Pt(20, 0), Pt(20, 10), Pt(10, 10), Pt(10, 20), Pt(0, 20))
	m := p.Reflect(AxisX)
	if m.SignedArea() >= 0 {
		t.Fatal("reflection did not invert the winding")
	}
	tags := append(ConvexCorners(1, 0, 1, 2, 4, 5), ReflexCorners(1, 3)...)
	a := mustRound(t, p, tags, 8)
	b := mustRound(t, m, tags, 8)
	if d := math.Abs(a.Area() - b.Area()); d > 1e-9 {
		t.Errorf("areas differ by %v", d)
	}
	for i := range a.Points {
		assertNear(t, b.Points[i], a.Points[i].Transform(ReflectAxis(AxisX)), 1e-9)
	}
}

func TestRoundDoesNotModifyInput(t *testing.T) {
	p := square(1, 10)
	before := NewPolygon(p.Layer, p.Points...)
	mustRound(t, p, ConvexCorners(1, 0, 1, 2, 3), 8)
	diff(t, before, p)
}
