package mask

import (
	"fmt"
	"math"
)

// CornerKind states which way a rounded corner bends.
type CornerKind int

const (
	// Convex corners point away from the polygon's interior. Rounding one
	// removes area.
	Convex CornerKind = iota
	// Reflex corners point into the polygon's interior, as in notches.
	// Rounding one adds area.
	Reflex
)

func (k CornerKind) String() string {
	switch k {
	case Convex:
		return "convex"
	case Reflex:
		return "reflex"
	default:
		return fmt.Sprintf("CornerKind(%d)", int(k))
	}
}

// CornerTag requests that vertex Index be rounded with the given radius.
// Kind must match the geometry of the vertex.
type CornerTag struct {
	Index  int
	Radius float64
	Kind   CornerKind
}

// ConvexCorners returns convex tags of radius r for each of the indices.
func ConvexCorners(r float64, indices ...int) []CornerTag {
	return cornerTags(Convex, r, indices)
}

// ReflexCorners returns reflex tags of radius r for each of the indices.
func ReflexCorners(r float64, indices ...int) []CornerTag {
	return cornerTags(Reflex, r, indices)
}

func cornerTags(k CornerKind, r float64, indices []int) []CornerTag {
	out := make([]CornerTag, len(indices))
	for i, idx := range indices {
		out[i] = CornerTag{Index: idx, Radius: r, Kind: k}
	}
	return out
}

const (
	// collinearEpsilon bounds |sin θ| below which two edges are treated as
	// parallel.
	collinearEpsilon = 1e-12
	// trimEpsilon is the relative slack allowed when comparing a trim
	// distance against half an edge, so that r = len/2 on a right angle is
	// accepted despite rounding in tan.
	trimEpsilon = 1e-9
)

// Round replaces every tagged vertex of p with a circular arc of the tag's
// radius that is tangent to both adjacent edges, and returns the result as a
// new polygon. Each arc is discretized into segments straight segments.
//
// The arc of a tagged vertex V touches its edges at the trim points, which lie
// at distance t = r / tan(θ/2) from V, where θ is the angle between the two
// edges. Rounding fails with [ErrRoundingInfeasible] if t exceeds half of
// either adjacent edge, so that arcs of neighbouring vertices never overlap.
//
// Tags are resolved against the indices of p. Untagged vertices and tags with
// a radius of zero leave their vertex unchanged. The traversal direction of p
// is preserved.
func Round(p Polygon, tags []CornerTag, segments int) (Polygon, error) {
	if err := p.Validate(); err != nil {
		return Polygon{}, err
	}
	if segments < 1 {
		return Polygon{}, fmt.Errorf("%w: %d arc segments, need at least 1", ErrInvalidParameter, segments)
	}
	n := len(p.Points)
	byIndex := make(map[int]CornerTag, len(tags))
	for _, tag := range tags {
		switch {
		case tag.Index < 0 || tag.Index >= n:
			return Polygon{}, cornerError(tag, ErrInvalidParameter, "index out of range [0, %d)", n)
		case tag.Radius < 0 || math.IsNaN(tag.Radius) || math.IsInf(tag.Radius, 0):
			return Polygon{}, cornerError(tag, ErrInvalidParameter, "radius must be finite and non-negative")
		case tag.Kind != Convex && tag.Kind != Reflex:
			return Polygon{}, cornerError(tag, ErrInvalidParameter, "unknown corner kind %d", int(tag.Kind))
		}
		if _, ok := byIndex[tag.Index]; ok {
			return Polygon{}, cornerError(tag, ErrInvalidParameter, "vertex tagged more than once")
		}
		byIndex[tag.Index] = tag
	}

	winding := math.Copysign(1, p.SignedArea())
	out := make([]Point, 0, n+len(byIndex)*segments)
	for i, v := range p.Points {
		tag, ok := byIndex[i]
		if !ok || tag.Radius == 0 {
			out = append(out, v)
			continue
		}
		var err error
		out, err = appendFillet(out, p.Vertex(i-1), v, p.Vertex(i+1), tag, winding, segments)
		if err != nil {
			return Polygon{}, err
		}
	}
	return Polygon{Layer: p.Layer, Points: dedupe(out)}, nil
}

// appendFillet appends the discretized arc replacing v to out.
func appendFillet(out []Point, prev, v, next Point, tag CornerTag, winding float64, segments int) ([]Point, error) {
	a := prev.Sub(v)
	b := next.Sub(v)
	la, lb := a.Hypot(), b.Hypot()
	ua, ub := a.Mul(1/la), b.Mul(1/lb)
	edge := min(la, lb)

	// ua points backwards along the incoming edge, so the turn at v is
	// −ua × ub. Its sign relative to the winding tells convex from reflex.
	turn := -ua.Cross(ub)
	if math.Abs(turn) < collinearEpsilon {
		return nil, &CornerError{
			Index:  tag.Index,
			Radius: tag.Radius,
			Edge:   edge,
			Reason: "adjacent edges are collinear",
			Err:    ErrRoundingInfeasible,
		}
	}
	kind := Reflex
	if turn*winding > 0 {
		kind = Convex
	}
	if kind != tag.Kind {
		return nil, &CornerError{
			Index:  tag.Index,
			Radius: tag.Radius,
			Edge:   edge,
			Reason: fmt.Sprintf("vertex is %s but tagged %s", kind, tag.Kind),
			Err:    ErrInvalidParameter,
		}
	}

	th := math.Atan2(math.Abs(ua.Cross(ub)), ua.Dot(ub))
	half := 0.5 * th
	t := tag.Radius / math.Tan(half)
	if limit := 0.5 * edge * (1 + trimEpsilon); t > limit {
		return nil, &CornerError{
			Index:  tag.Index,
			Radius: tag.Radius,
			Trim:   t,
			Edge:   edge,
			Reason: "trim distance exceeds half of an adjacent edge",
			Err:    ErrRoundingInfeasible,
		}
	}

	start := v.Translate(ua.Mul(t))
	end := v.Translate(ub.Mul(t))
	center := v.Translate(ua.Add(ub).Normalize().Mul(tag.Radius / math.Sin(half)))
	ca := start.Sub(center)
	cb := end.Sub(center)
	arc := Arc{
		Center:     center,
		Radius:     tag.Radius,
		StartAngle: ca.Angle(),
		SweepAngle: math.Atan2(ca.Cross(cb), ca.Dot(cb)),
	}

	// The end points are taken from the edges rather than the arc so that
	// they lie exactly on them.
	out = append(out, start)
	for k := 1; k < segments; k++ {
		out = append(out, arc.Eval(float64(k)/float64(segments)))
	}
	return append(out, end), nil
}

// dedupe removes consecutive duplicate points, including a duplicate between
// the last and the first point.
func dedupe(pts []Point) []Point {
	out := pts[:0]
	for _, pt := range pts {
		if len(out) > 0 && out[len(out)-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

func cornerError(tag CornerTag, err error, format string, args ...any) error {
	return &CornerError{
		Index:  tag.Index,
		Radius: tag.Radius,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
