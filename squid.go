package mask

// SquidLoopOptions describes the loop at the end of a SQUID transmon's pad
// lead. Two arms of width Thickness enclose an opening of Width × Height.
type SquidLoopOptions struct {
	Thickness float64
	Width     float64
	Height    float64
}

// DefaultSquidLoopOptions returns a 10 µm × 10 µm loop with 3 µm arms.
func DefaultSquidLoopOptions() SquidLoopOptions {
	return SquidLoopOptions{
		Thickness: 3,
		Width:     10,
		Height:    10,
	}
}

// Validate checks the loop options against the pad they terminate.
func (o SquidLoopOptions) Validate(pads PadOptions) error {
	for _, p := range [...]struct {
		name string
		v    float64
	}{
		{"Thickness", o.Thickness},
		{"Width", o.Width},
		{"Height", o.Height},
	} {
		if !(p.v > 0) {
			return paramError("squid", p.name, p.v, "must be positive")
		}
	}
	if outer := o.OuterWidth(); pads.LeadWidth >= outer {
		return paramError("pads", "LeadWidth", pads.LeadWidth,
			"must be less than the loop's outer width %g", outer)
	}
	if pads.ForkDepth >= o.Height+o.Thickness {
		return paramError("pads", "ForkDepth", pads.ForkDepth,
			"must be less than the arm length %g", o.Height+o.Thickness)
	}
	return nil
}

// OuterWidth is the width of the loop including both arms.
func (o SquidLoopOptions) OuterWidth() float64 {
	return o.Width + 2*o.Thickness
}

// ArmCenter is the x coordinate of the centre of the right arm.
func (o SquidLoopOptions) ArmCenter() float64 {
	return 0.5*o.Width + 0.5*o.Thickness
}

type taggedVertex struct {
	pt   Point
	kind CornerKind
}

// SquidLoopOutline returns the lower pad of a SQUID transmon, with its body's
// bottom edge centred on the origin and the loop on top of its lead. If
// pads.ForkDepth is positive, a notch of that depth is cut into the middle
// third of the top of each arm.
//
// If pads.RoundedEdges is set, every corner is rounded: outer corners as
// [Convex] and the corners inside the loop, the notches and where the lead
// meets the body and the loop as [Reflex].
func SquidLoopOutline(pads PadOptions, loop SquidLoopOptions) (Polygon, error) {
	if err := loop.Validate(pads); err != nil {
		return Polygon{}, err
	}
	w, h := 0.5*pads.Width, pads.Height
	lw := 0.5 * pads.LeadWidth
	lead := pads.Height + pads.LeadHeight
	t := loop.Thickness
	ow := 0.5 * loop.OuterWidth()
	iw := 0.5 * loop.Width
	top := lead + t + loop.Height
	fd := pads.ForkDepth

	vs := []taggedVertex{
		{Pt(-w, 0), Convex},
		{Pt(w, 0), Convex},
		{Pt(w, h), Convex},
		{Pt(lw, h), Reflex},
		{Pt(lw, lead), Reflex},
		{Pt(ow, lead), Convex},
		{Pt(ow, top), Convex},
	}
	// notch cuts from x0 to x1, in traversal order.
	notch := func(x0, x1 float64) {
		if fd == 0 {
			return
		}
		vs = append(vs,
			taggedVertex{Pt(x0, top), Convex},
			taggedVertex{Pt(x0, top-fd), Reflex},
			taggedVertex{Pt(x1, top-fd), Reflex},
			taggedVertex{Pt(x1, top), Convex},
		)
	}
	notch(iw+2*t/3, iw+t/3)
	vs = append(vs,
		taggedVertex{Pt(iw, top), Convex},
		taggedVertex{Pt(iw, top-loop.Height), Reflex},
		taggedVertex{Pt(-iw, top-loop.Height), Reflex},
		taggedVertex{Pt(-iw, top), Convex},
	)
	notch(-iw-t/3, -iw-2*t/3)
	vs = append(vs,
		taggedVertex{Pt(-ow, top), Convex},
		taggedVertex{Pt(-ow, lead), Convex},
		taggedVertex{Pt(-lw, lead), Reflex},
		taggedVertex{Pt(-lw, h), Reflex},
		taggedVertex{Pt(-w, h), Convex},
	)

	p := Polygon{Layer: pads.Layer, Points: make([]Point, len(vs))}
	tags := make([]CornerTag, len(vs))
	for i, v := range vs {
		p.Points[i] = v.pt
		tags[i] = CornerTag{Index: i, Radius: pads.CornerRadius, Kind: v.kind}
	}
	if !pads.RoundedEdges {
		return p, nil
	}
	return Round(p, tags, pads.ArcSegments)
}
