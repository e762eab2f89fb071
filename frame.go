package mask

import (
	"fmt"
	"math"
)

// Frame returns the outline of r drawn with lines of the given width, as
// four non-overlapping strips centred on r's edges.
func Frame(r Rect, width float64, l Layer) []Polygon {
	r = r.Abs()
	hw := 0.5 * width
	return []Polygon{
		Rect{r.X0, r.Y0, r.X1, r.Y0}.Inflate(hw, hw).Polygon(l),
		Rect{r.X1, r.Y0, r.X1, r.Y1}.Inflate(hw, -hw).Polygon(l),
		Rect{r.X0, r.Y1, r.X1, r.Y1}.Inflate(hw, hw).Polygon(l),
		Rect{r.X0, r.Y0, r.X0, r.Y1}.Inflate(hw, -hw).Polygon(l),
	}
}

// WaferFrame returns the outline of e drawn with lines of the given width:
// an annular arc along the circumference, discretized into segments
// segments, and a strip along the primary flat.
func WaferFrame(e WaferExtent, width float64, segments int, l Layer) ([]Polygon, error) {
	if !(width > 0) || width >= e.Radius {
		return nil, fmt.Errorf("%w: frame width %g for wafer radius %g", ErrInvalidParameter, width, e.Radius)
	}
	if segments < 1 {
		return nil, fmt.Errorf("%w: %d arc segments, need at least 1", ErrInvalidParameter, segments)
	}
	hw := 0.5 * width
	start := math.Pi + e.FlatAngle
	sweep := 2*math.Pi - 2*e.FlatAngle
	outer := Arc{Radius: e.Radius + hw, StartAngle: start, SweepAngle: sweep}
	inner := Arc{Radius: e.Radius - hw, StartAngle: start + sweep, SweepAngle: -sweep}

	ring := Polygon{Layer: l, Points: make([]Point, 0, 2*segments+2)}
	for pt := range outer.Points(segments) {
		ring.Points = append(ring.Points, pt)
	}
	for pt := range inner.Points(segments) {
		ring.Points = append(ring.Points, pt)
	}

	x := e.FlatX()
	y := e.Radius * math.Sin(e.FlatAngle)
	flat := Rect{x, -y, x, y}.Inflate(hw, 0).Polygon(l)
	return []Polygon{ring, flat}, nil
}
