package mask

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func centers(polys []Polygon) []Point {
	out := make([]Point, len(polys))
	for i, p := range polys {
		out[i] = p.BoundingBox().Center()
	}
	slices.SortFunc(out, func(a, b Point) int {
		if a.X != b.X {
			return cmpFloat(a.X, b.X)
		}
		return cmpFloat(a.Y, b.Y)
	})
	return out
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestEBPGMarker(t *testing.T) {
	o := DefaultEBPGMarkerOptions()
	ms, err := EBPGMarker("m", o, 22)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, [NumMarkerSlots]bool{true, true, true, true}, ms.Used)
	diff(t, [NumMarkerSlots]Vec2{{}, Vec(6420, 2920), Vec(0, 2920), Vec(6420, 0)}, ms.Offsets)

	origin := ms.Group.Polygons()
	if len(origin) != 4 {
		t.Fatalf("got %d squares, want 4", len(origin))
	}
	for _, p := range origin {
		bb := p.BoundingBox()
		if bb.Width() != 20 || bb.Height() != 20 {
			t.Errorf("got square %v, want 20 × 20", bb)
		}
	}

	// Each slot mirrors the group through the chip's centre or one of its
	// axes.
	mirrors := [NumMarkerSlots]Affine{
		SlotOrigin:     Identity,
		SlotDiagonal:   Scale(-1),
		SlotVertical:   ReflectAxis(AxisX),
		SlotHorizontal: ReflectAxis(AxisY),
	}
	for slot, off := range ms.Offsets {
		var moved, mirrored []Polygon
		for _, p := range origin {
			moved = append(moved, p.Translate(off))
			mirrored = append(mirrored, p.Transform(mirrors[slot]))
		}
		diff(t, centers(mirrored), centers(moved))
	}

	top := NewCell("top")
	if err := ms.Place(top); err != nil {
		t.Fatal(err)
	}
	if n := len(top.Placements()); n != 4 {
		t.Errorf("got %d placements, want 4", n)
	}

	o.Duplicate = false
	o.Number = 2
	ms, err = EBPGMarker("m", o, 22)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, [NumMarkerSlots]bool{true, false, false, false}, ms.Used)
	diff(t, []Point{Pt(-3310, -1560), Pt(-3110, -1560)}, centers(ms.Group.Polygons()))

	o.Number = 5
	if _, err := EBPGMarker("m", o, 22); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func TestBondTestPads(t *testing.T) {
	c, err := BondTestPads("tp", DefaultTestPadOptions(), 23)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(-2000, -2000), Pt(-2000, 2000), Pt(2000, -2000), Pt(2000, 2000)}, centers(c.Polygons()))

	o := DefaultTestPadOptions()
	o.Number = 1
	c, err = BondTestPads("tp", o, 23)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Polygon{NewRectFromCenter(Pt(-2000, -2000), 300, 300).Polygon(23)}, c.Polygons())
}

func TestDicingMarks(t *testing.T) {
	extent := NewRectFromCenter(Point{}, 9000, 9000)
	c, err := DicingMarks("d", DefaultDicingOptions(), extent, 24)
	if err != nil {
		t.Fatal(err)
	}
	polys := c.Polygons()
	// Arange(−1125, 1126, 1000) yields three dash origins per axis.
	if len(polys) != 6 {
		t.Fatalf("got %d dashes, want 6", len(polys))
	}
	diff(t, Rect{-2250, -125, -1250, 125}, polys[0].BoundingBox())
	diff(t, Rect{-125, 1750, 125, 2750}, polys[5].BoundingBox())

	// Non-square chips get complete lines along both axes.
	o := DefaultDicingOptions()
	o.Length = 500
	c, err = DicingMarks("d", o, NewRectFromCenter(Point{}, 8000, 2000), 24)
	if err != nil {
		t.Fatal(err)
	}
	var h, v int
	for _, p := range c.Polygons() {
		if bb := p.BoundingBox(); bb.Width() > bb.Height() {
			h++
		} else {
			v++
		}
	}
	// Arange(−1000, 1001, 500) and Arange(−250, 251, 500).
	if h != 5 || v != 2 {
		t.Errorf("got %d horizontal and %d vertical dashes, want 5 and 2", h, v)
	}

	o.Vertical = false
	o.Span = Rect{0, 0, 2000, 2000}
	c, err = DicingMarks("d", o, extent, 24)
	if err != nil {
		t.Fatal(err)
	}
	// Arange(0, 500, 500)
	if n := len(c.Polygons()); n != 1 {
		t.Errorf("got %d dashes, want 1", n)
	}
}

func TestAlignmentMark(t *testing.T) {
	o := DefaultAlignmentMarkOptions()
	c, err := AlignmentMark("a", o)
	if err != nil {
		t.Fatal(err)
	}
	polys := c.Polygons()
	if len(polys) != 5 {
		t.Fatalf("got %d polygons, want 5", len(polys))
	}
	cross := polys[0]
	if want := 2*200*10 - 10*10.0; cross.Area() != want {
		t.Errorf("got cross area %v, want %v", cross.Area(), want)
	}
	for _, box := range polys[1:] {
		if box.Layer != o.Layers[1] {
			t.Errorf("box on %s, want %s", box.Layer, o.Layers[1])
		}
		if a := box.Area(); math.Abs(a-93*93) > 1e-9 {
			t.Errorf("got box area %v, want %v", a, 93*93)
		}
	}
	if !cross.IsSimple() {
		t.Error("cross is not simple")
	}

	o.Size = 10
	if _, err := AlignmentMark("a", o); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func TestVernier(t *testing.T) {
	o := DefaultVernierOptions()
	c, err := Vernier("v", o)
	if err != nil {
		t.Fatal(err)
	}
	polys := c.Polygons()
	lines := 2 * (2*o.Lines + 1)
	if len(polys) != 2*lines {
		t.Fatalf("got %d lines, want %d", len(polys), 2*lines)
	}
	// The combs' centre lines are aligned and longer than the others.
	diff(t, Rect{-2, 0, 2, 60}, polys[2*o.Lines].BoundingBox())
	diff(t, Rect{-2, -60, 2, 0}, polys[2*o.Lines+1].BoundingBox())
	// The outermost lines are Lines steps apart.
	first := polys[2*(2*o.Lines)].BoundingBox().Center()
	second := polys[2*(2*o.Lines)+1].BoundingBox().Center()
	if d := second.X - first.X; math.Abs(d-float64(o.Lines)*o.Step) > 1e-9 {
		t.Errorf("got offset %v, want %v", d, float64(o.Lines)*o.Step)
	}

	var xs, ys Rect
	for i, p := range polys {
		bb := p.BoundingBox()
		if i < lines {
			xs = unionOr(xs, bb, i == 0)
		} else {
			ys = unionOr(ys, bb, i == lines)
		}
	}
	if xs.X0 < ys.X1 && ys.X0 < xs.X1 && xs.Y0 < ys.Y1 && ys.Y0 < xs.Y1 {
		t.Errorf("scales overlap: %v and %v", xs, ys)
	}
}

func unionOr(r, bb Rect, first bool) Rect {
	if first {
		return bb
	}
	return r.Union(bb)
}
