package mask

import (
	"errors"
	"math"
	"testing"
)

func TestRectExtent(t *testing.T) {
	e := RectExtent{Width: 9000, Height: 9000}
	for _, tc := range []struct {
		pt   Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(4500, 0), true},
		{Pt(4500, -4500), true},
		{Pt(4501, 0), false},
		{Pt(0, -4500.5), false},
	} {
		if got := e.Contains(tc.pt); got != tc.want {
			t.Errorf("Contains(%s) = %t, want %t", tc.pt, got, tc.want)
		}
	}
	diff(t, Rect{-4500, -4500, 4500, 4500}, e.BoundingBox())
}

func TestWaferExtent(t *testing.T) {
	d, ok := WaferDiameter(4)
	if !ok || d != 100e3 {
		t.Fatalf("got %v, %t", d, ok)
	}
	e := WaferExtent{Radius: d / 2, FlatAngle: DefaultFlatAngle}
	flat := e.FlatX()
	if want := -50e3 * math.Cos(18*math.Pi/180); math.Abs(flat-want) > 1e-9 {
		t.Errorf("got flat at %v, want %v", flat, want)
	}
	for _, tc := range []struct {
		pt   Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(50e3, 0), true},
		{Pt(0, -50e3), true},
		{Pt(50e3, 1), false},
		{Pt(flat-1, 0), false},
		{Pt(flat, 0), true},
		{Pt(35e3, 36e3), false},
	} {
		if got := e.Contains(tc.pt); got != tc.want {
			t.Errorf("Contains(%s) = %t, want %t", tc.pt, got, tc.want)
		}
	}
	diff(t, Rect{flat, -50e3, 50e3, 50e3}, e.BoundingBox())

	for _, inches := range []int{0, 7, -1} {
		if _, ok := WaferDiameter(inches); ok {
			t.Errorf("WaferDiameter(%d) is ok", inches)
		}
	}
}

func TestFrame(t *testing.T) {
	r := Rect{-500, -500, 500, 500}
	polys := Frame(r, 10, 21)
	if len(polys) != 4 {
		t.Fatalf("got %d polygons, want 4", len(polys))
	}
	var area float64
	outline := Rect{}
	for i, p := range polys {
		area += p.Area()
		if i == 0 {
			outline = p.BoundingBox()
		} else {
			outline = outline.Union(p.BoundingBox())
		}
	}
	// The strips do not overlap, so their areas add up to the ring.
	if want := 1010.0*1010 - 990*990; area != want {
		t.Errorf("got area %v, want %v", area, want)
	}
	diff(t, r.Inflate(5, 5), outline)
}

func TestWaferFrame(t *testing.T) {
	e := WaferExtent{Radius: 1000, FlatAngle: DefaultFlatAngle}
	polys, err := WaferFrame(e, 20, 720, 21)
	if err != nil {
		t.Fatal(err)
	}
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	ring := polys[0]
	if n := ring.Len(); n != 2*721 {
		t.Errorf("got %d vertices, want %d", n, 2*721)
	}
	if !ring.IsSimple() {
		t.Error("ring is not simple")
	}
	sweep := 2*math.Pi - 2*e.FlatAngle
	want := 0.5 * sweep * (1010*1010 - 990*990)
	if a := ring.Area(); math.Abs(a-want)/want > 1e-4 {
		t.Errorf("got ring area %v, want about %v", a, want)
	}
	for _, pt := range ring.Points {
		if pt.X < e.FlatX()-10-1e-9 {
			t.Fatalf("ring point %s beyond the flat", pt)
		}
	}

	if _, err := WaferFrame(e, 0, 720, 21); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero width: got %v, want ErrInvalidParameter", err)
	}
	if _, err := WaferFrame(e, 20, 0, 21); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero segments: got %v, want ErrInvalidParameter", err)
	}
}

func TestArc(t *testing.T) {
	a := Arc{Center: Pt(1, 1), Radius: 2, StartAngle: 0, SweepAngle: math.Pi / 2}
	assertNear(t, a.Eval(0), Pt(3, 1), 1e-12)
	assertNear(t, a.Eval(1), Pt(1, 3), 1e-12)
	var n int
	for pt := range a.Points(4) {
		if d := pt.Distance(a.Center); math.Abs(d-2) > 1e-12 {
			t.Errorf("%s is %v from the centre", pt, d)
		}
		n++
	}
	if n != 5 {
		t.Errorf("got %d points, want 5", n)
	}
}
