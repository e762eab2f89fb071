package mask

// PadOptions describes one transmon pad. The pad is a rectangular body of
// Width × Height whose top edge narrows into a lead of LeadWidth, extending
// LeadHeight above the body.
type PadOptions struct {
	Width      float64
	Height     float64
	LeadWidth  float64
	LeadHeight float64
	// ForkDepth is the depth of the notch cut into each arm of a SQUID loop.
	// Zero disables the notch. Single-junction pads ignore it.
	ForkDepth float64
	// TipMargin is added to the junction's base width to obtain the width of
	// the tip of a single-junction pad's lead.
	TipMargin float64
	// RoundedEdges enables rounding of the pad's corners with CornerRadius,
	// each arc made of ArcSegments straight segments.
	RoundedEdges bool
	CornerRadius float64
	ArcSegments  int
	Layer        Layer
}

// DefaultPadOptions returns 250 µm × 600 µm pads with a 10 µm × 20 µm lead on
// layer 1, without rounding.
func DefaultPadOptions() PadOptions {
	return PadOptions{
		Width:        250,
		Height:       600,
		LeadWidth:    10,
		LeadHeight:   20,
		ForkDepth:    0,
		TipMargin:    6,
		RoundedEdges: false,
		CornerRadius: 0.3,
		ArcSegments:  8,
		Layer:        1,
	}
}

// Validate checks the options against each other and against layers.
func (o PadOptions) Validate(layers Layers) error {
	positive := [...]struct {
		name string
		v    float64
	}{
		{"Width", o.Width},
		{"Height", o.Height},
		{"LeadWidth", o.LeadWidth},
		{"LeadHeight", o.LeadHeight},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return paramError("pads", p.name, p.v, "must be positive")
		}
	}
	if o.LeadWidth >= o.Width {
		return paramError("pads", "LeadWidth", o.LeadWidth, "must be less than Width %g", o.Width)
	}
	if !(o.ForkDepth >= 0) {
		return paramError("pads", "ForkDepth", o.ForkDepth, "cannot be negative")
	}
	if !(o.TipMargin >= 0) {
		return paramError("pads", "TipMargin", o.TipMargin, "cannot be negative")
	}
	if o.RoundedEdges {
		if !(o.CornerRadius >= 0) {
			return paramError("pads", "CornerRadius", o.CornerRadius, "cannot be negative")
		}
		if o.ArcSegments < 1 {
			return paramError("pads", "ArcSegments", float64(o.ArcSegments), "need at least one segment")
		}
	}
	return layers.CheckConductor("pads", "Layer", o.Layer)
}

// TipWidth returns the width of a single-junction pad's lead tip for a
// junction whose base leads are baseWidth wide.
func (o PadOptions) TipWidth(baseWidth float64) float64 {
	return baseWidth + o.TipMargin
}

// PadOutline returns the lower pad of a single-junction transmon. The body's
// bottom edge is centred on the origin. The lead tapers from LeadWidth to
// tipWidth, which must be strictly less than LeadWidth.
//
// Vertex 0 is the bottom left corner and the outline runs anti-clockwise. If
// RoundedEdges is set, the four corners of the body are rounded.
func PadOutline(o PadOptions, tipWidth float64) (Polygon, error) {
	if !(tipWidth > 0) {
		return Polygon{}, paramError("pads", "tip width", tipWidth, "must be positive")
	}
	if tipWidth >= o.LeadWidth {
		return Polygon{}, paramError("pads", "tip width", tipWidth,
			"must be less than LeadWidth %g", o.LeadWidth)
	}
	w, h := 0.5*o.Width, o.Height
	lw, tw := 0.5*o.LeadWidth, 0.5*tipWidth
	top := o.Height + o.LeadHeight
	p := NewPolygon(o.Layer,
		Pt(-w, 0),
		Pt(w, 0),
		Pt(w, h),
		Pt(lw, h),
		Pt(tw, top),
		Pt(-tw, top),
		Pt(-lw, h),
		Pt(-w, h),
	)
	if !o.RoundedEdges {
		return p, nil
	}
	return Round(p, ConvexCorners(o.CornerRadius, 0, 1, 2, 7), o.ArcSegments)
}

// Mirror returns the pad opposite to lower in a pair: lower reflected about
// the x axis and moved up by spacing.
func Mirror(lower Polygon, spacing float64) Polygon {
	return lower.Reflect(AxisX).Translate(Vec(0, spacing))
}
