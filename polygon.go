package mask

import (
	"fmt"
	"math"
	"slices"
)

// Polygon is a closed outline on a layer. Points is the open representation:
// the closing edge from the last point to the first is implicit.
//
// Polygons are values. Methods that change geometry return new polygons and
// never modify the receiver's points.
type Polygon struct {
	Layer  Layer
	Points []Point
}

// NewPolygon returns a polygon on layer l with a copy of pts.
func NewPolygon(l Layer, pts ...Point) Polygon {
	return Polygon{Layer: l, Points: slices.Clone(pts)}
}

func (p Polygon) Len() int { return len(p.Points) }

// Vertex returns the i'th vertex, with i taken modulo the number of vertices.
func (p Polygon) Vertex(i int) Point {
	n := len(p.Points)
	return p.Points[((i%n)+n)%n]
}

// Validate reports whether p has at least three finite vertices and no
// zero-length edges.
func (p Polygon) Validate() error {
	if len(p.Points) < 3 {
		return fmt.Errorf("%w: polygon has %d vertices, need at least 3", ErrInvalidParameter, len(p.Points))
	}
	for i, pt := range p.Points {
		if pt.IsNaN() || pt.IsInf() {
			return fmt.Errorf("%w: vertex %d is %s", ErrInvalidParameter, i, pt)
		}
		if next := p.Vertex(i + 1); next == pt {
			return fmt.Errorf("%w: zero-length edge at vertex %d", ErrInvalidParameter, i)
		}
	}
	return nil
}

// SignedArea returns the area enclosed by p. It is positive for
// anti-clockwise polygons and negative for clockwise ones.
func (p Polygon) SignedArea() float64 {
	var a float64
	for i, p0 := range p.Points {
		p1 := p.Vertex(i + 1)
		a += p0.X*p1.Y - p1.X*p0.Y
	}
	return 0.5 * a
}

// Area returns the absolute enclosed area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Perimeter returns the total length of all edges, including the closing edge.
func (p Polygon) Perimeter() float64 {
	var l float64
	for i, p0 := range p.Points {
		l += p0.Distance(p.Vertex(i + 1))
	}
	return l
}

// BoundingBox returns the smallest rectangle enclosing all vertices. The
// bounding box of a polygon without vertices is the zero rectangle.
func (p Polygon) BoundingBox() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(p.Points[0], p.Points[0])
	for _, pt := range p.Points[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Transform returns p with every vertex mapped through aff. Vertex order is
// preserved, so transforms with a negative determinant invert the winding.
func (p Polygon) Transform(aff Affine) Polygon {
	out := Polygon{Layer: p.Layer, Points: make([]Point, len(p.Points))}
	for i, pt := range p.Points {
		out.Points[i] = pt.Transform(aff)
	}
	return out
}

func (p Polygon) Translate(v Vec2) Polygon { return p.Transform(Translate(v)) }

// Reflect reflects p about the given axis. Like [ReflectAxis], it panics on
// an invalid axis.
func (p Polygon) Reflect(axis Axis) Polygon { return p.Transform(ReflectAxis(axis)) }

// Rotate rotates p by th radians about the origin.
func (p Polygon) Rotate(th float64) Polygon { return p.Transform(Rotate(th)) }

// Reverse returns p with its vertex order reversed, starting at the same
// vertex.
func (p Polygon) Reverse() Polygon {
	out := Polygon{Layer: p.Layer, Points: make([]Point, 0, len(p.Points))}
	if len(p.Points) == 0 {
		return out
	}
	out.Points = append(out.Points, p.Points[0])
	for i := len(p.Points) - 1; i > 0; i-- {
		out.Points = append(out.Points, p.Points[i])
	}
	return out
}

// IsSimple reports whether no two non-adjacent edges of p touch or cross.
// It runs in quadratic time.
func (p Polygon) IsSimple() bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	for i := range n {
		a0, a1 := p.Points[i], p.Vertex(i+1)
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if segmentsTouch(a0, a1, p.Points[j], p.Vertex(j+1)) {
				return false
			}
		}
	}
	return true
}

func orient(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func onSegment(a, b, c Point) bool {
	return min(a.X, b.X) <= c.X && c.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= c.Y && c.Y <= max(a.Y, b.Y)
}

func segmentsTouch(p0, p1, q0, q1 Point) bool {
	d1 := orient(q0, q1, p0)
	d2 := orient(q0, q1, p1)
	d3 := orient(p0, p1, q0)
	d4 := orient(p0, p1, q1)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(q0, q1, p0):
		return true
	case d2 == 0 && onSegment(q0, q1, p1):
		return true
	case d3 == 0 && onSegment(p0, p1, q0):
		return true
	case d4 == 0 && onSegment(p0, p1, q1):
		return true
	}
	return false
}
