package mask

// HoleMeshOptions describes a grid of square holes that pins vortices in a
// superconducting pad.
type HoleMeshOptions struct {
	// Size is the side length of each hole.
	Size float64
	// Wire is the width of the conductor left between neighbouring holes and
	// between the holes and the pad's edge.
	Wire float64
	// CornerRadius rounds each hole's corners. Zero leaves them sharp.
	CornerRadius float64
	ArcSegments  int
	Layer        Layer
}

// DefaultHoleMeshOptions returns 20 µm holes separated by 5 µm wires, with
// corners rounded to 0.2 µm, on layer 4.
func DefaultHoleMeshOptions() HoleMeshOptions {
	return HoleMeshOptions{
		Size:         20,
		Wire:         5,
		CornerRadius: 0.2,
		ArcSegments:  4,
		Layer:        4,
	}
}

// Validate checks the options against layers.
func (o HoleMeshOptions) Validate(layers Layers) error {
	if !(o.Size > 0) {
		return paramError("holes", "Size", o.Size, "must be positive")
	}
	if !(o.Wire > 0) {
		return paramError("holes", "Wire", o.Wire, "must be positive")
	}
	if !(o.CornerRadius >= 0) {
		return paramError("holes", "CornerRadius", o.CornerRadius, "cannot be negative")
	}
	if o.ArcSegments < 1 {
		return paramError("holes", "ArcSegments", float64(o.ArcSegments), "need at least one segment")
	}
	return layers.CheckConductor("holes", "Layer", o.Layer)
}

// Period is the distance between the lower left corners of neighbouring
// holes.
func (o HoleMeshOptions) Period() float64 { return o.Size + o.Wire }

// HoleMesh returns a cell of holes covering the body of a pad described by
// pads, in the pad's coordinates. The grid holds ⌊(extent − Wire) / Period⌋
// holes along each axis, starting one wire away from the body's lower left
// corner.
func HoleMesh(name string, pads PadOptions, o HoleMeshOptions, layers Layers) (*Cell, error) {
	if err := o.Validate(layers); err != nil {
		return nil, err
	}
	period := o.Period()
	nx := int((pads.Width - o.Wire) / period)
	ny := int((pads.Height - o.Wire) / period)
	start := Pt(-0.5*pads.Width+o.Wire, o.Wire)
	end := Pt(start.X+float64(nx)*period, start.Y+float64(ny)*period)

	c := NewCell(name)
	for pos := range Grid(start, end, Vec(period, period)) {
		hole := Rect{0, 0, o.Size, o.Size}.Translate(Vec2(pos)).Polygon(o.Layer)
		rounded, err := Round(hole, ConvexCorners(o.CornerRadius, 0, 1, 2, 3), o.ArcSegments)
		if err != nil {
			return nil, err
		}
		if err := c.Add(rounded); err != nil {
			return nil, err
		}
	}
	return c, nil
}
