package mask

import "math"

// Extent is the drawable area of a chip.
type Extent interface {
	// Contains reports whether pt lies inside the extent or on its boundary.
	Contains(pt Point) bool
	// BoundingBox returns the smallest rectangle enclosing the extent.
	BoundingBox() Rect
}

// RectExtent is a rectangular extent centred on the origin.
type RectExtent struct {
	Width, Height float64
}

var _ Extent = RectExtent{}

func (e RectExtent) Contains(pt Point) bool {
	return e.BoundingBox().Contains(pt)
}

func (e RectExtent) BoundingBox() Rect {
	return NewRectFromCenter(Point{}, e.Width, e.Height)
}

// DefaultFlatAngle is the half angle subtended by a wafer's primary flat.
const DefaultFlatAngle = 18 * math.Pi / 180

// WaferExtent is a circular wafer centred on the origin, with its primary
// flat on the left. The flat cuts the circle at the angles π ± FlatAngle.
type WaferExtent struct {
	Radius    float64
	FlatAngle float64
}

var _ Extent = WaferExtent{}

// FlatX returns the x coordinate of the primary flat.
func (e WaferExtent) FlatX() float64 {
	return -e.Radius * math.Cos(e.FlatAngle)
}

func (e WaferExtent) Contains(pt Point) bool {
	return pt.X*pt.X+pt.Y*pt.Y <= e.Radius*e.Radius && pt.X >= e.FlatX()
}

func (e WaferExtent) BoundingBox() Rect {
	return Rect{X0: e.FlatX(), Y0: -e.Radius, X1: e.Radius, Y1: e.Radius}
}

// waferDiameters holds wafer diameters in micrometres, indexed by inches.
var waferDiameters = [...]float64{1: 25.4e3, 2: 50.8e3, 3: 76.2e3, 4: 100e3, 5: 125e3, 6: 150e3}

// WaferDiameter returns the diameter of a wafer of the given size in inches,
// from 1 to 6.
func WaferDiameter(inches int) (float64, bool) {
	if inches < 1 || inches >= len(waferDiameters) {
		return 0, false
	}
	return waferDiameters[inches], true
}
