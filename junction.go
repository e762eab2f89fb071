package mask

import "math"

// Junction produces the geometry of a Josephson junction that bridges the
// leads of two opposing pads. Pad generators only need to know its extents;
// the geometry itself is opaque to them.
type Junction interface {
	// Draw returns a new cell named name containing the junction. The
	// junction extends upwards from the origin and is centred on x = 0.
	Draw(name string) (*Cell, error)
	// Length is the junction's vertical extent.
	Length() float64
	// BaseWidth is the width of the junction's base leads, where they meet
	// the pads.
	BaseWidth() float64
	// LeadOverlap is how far each base lead overlaps the pad lead it sits
	// on.
	LeadOverlap() float64
}

// JunctionOptions describes a Dolan-bridge junction. All lengths are in
// micrometres.
type JunctionOptions struct {
	// BaseWidth and BaseHeight describe the wide base lead at either end.
	BaseWidth  float64
	BaseHeight float64
	// Width and Height describe the narrow finger on top of each base lead.
	Width  float64
	Height float64
	// BridgeWidth is the width of the suspended resist bridge between the
	// two fingers.
	BridgeWidth float64
	// ApproachOverlap is added to the gap between the fingers so that the
	// two angled evaporations overlap under the bridge. See
	// [ApproachOverlap].
	ApproachOverlap float64
	// LeadOverlap is how far each base lead extends onto its pad.
	LeadOverlap float64
	Layer       Layer
}

// ApproachOverlap returns the overlap of two shadow evaporations through a
// bridge of width bridge, for a resist of the given height evaporated from ±
// angle radians, plus a safety margin.
func ApproachOverlap(height, angle, bridge, margin float64) float64 {
	return 2*height*math.Tan(angle) - bridge + margin
}

// DefaultJunctionOptions returns the options of a 2 µm wide, 20 µm tall base
// lead with a 0.1 µm finger under a 0.2 µm bridge, evaporated at ±35° through
// 0.28 µm of resist.
func DefaultJunctionOptions() JunctionOptions {
	const bridge = 0.2
	return JunctionOptions{
		BaseWidth:       2,
		BaseHeight:      20,
		Width:           0.1,
		Height:          1,
		BridgeWidth:     bridge,
		ApproachOverlap: ApproachOverlap(0.28, 35*math.Pi/180, bridge, 0.1),
		LeadOverlap:     2.1,
		Layer:           3,
	}
}

// Validate checks the options against each other and against layers.
func (o JunctionOptions) Validate(layers Layers) error {
	positive := [...]struct {
		name string
		v    float64
	}{
		{"BaseWidth", o.BaseWidth},
		{"BaseHeight", o.BaseHeight},
		{"Width", o.Width},
		{"Height", o.Height},
		{"BridgeWidth", o.BridgeWidth},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return paramError("junction", p.name, p.v, "must be positive")
		}
	}
	if !(o.ApproachOverlap >= 0) {
		return paramError("junction", "ApproachOverlap", o.ApproachOverlap, "overlap cannot be negative")
	}
	if !(o.LeadOverlap >= 0) {
		return paramError("junction", "LeadOverlap", o.LeadOverlap, "overlap cannot be negative")
	}
	if o.Width >= o.BaseWidth {
		return paramError("junction", "Width", o.Width, "must be less than BaseWidth %g", o.BaseWidth)
	}
	return layers.CheckConductor("junction", "Layer", o.Layer)
}

// DolanJunction is the default [Junction]: two T-shaped leads facing each
// other across the bridge gap.
type DolanJunction struct {
	opts JunctionOptions
}

var _ Junction = DolanJunction{}

// NewDolanJunction validates opts and returns the junction they describe.
func NewDolanJunction(opts JunctionOptions, layers Layers) (DolanJunction, error) {
	if err := opts.Validate(layers); err != nil {
		return DolanJunction{}, err
	}
	return DolanJunction{opts: opts}, nil
}

func (j DolanJunction) Options() JunctionOptions { return j.opts }

// Length returns 2·(BaseHeight + Height) + BridgeWidth + ApproachOverlap.
func (j DolanJunction) Length() float64 {
	o := j.opts
	return 2*(o.BaseHeight+o.Height) + o.BridgeWidth + o.ApproachOverlap
}

func (j DolanJunction) BaseWidth() float64   { return j.opts.BaseWidth }
func (j DolanJunction) LeadOverlap() float64 { return j.opts.LeadOverlap }

// Lead returns the lower T-shaped lead: the base from y = 0 to BaseHeight
// with the finger on top of it.
func (j DolanJunction) Lead() Polygon {
	o := j.opts
	bw, bh := 0.5*o.BaseWidth, o.BaseHeight
	fw, fh := 0.5*o.Width, o.BaseHeight+o.Height
	return NewPolygon(o.Layer,
		Pt(-bw, 0),
		Pt(bw, 0),
		Pt(bw, bh),
		Pt(fw, bh),
		Pt(fw, fh),
		Pt(-fw, fh),
		Pt(-fw, bh),
		Pt(-bw, bh),
	)
}

// Draw implements Junction. The upper lead is the lower lead reflected about
// the x axis and moved up by Length.
func (j DolanJunction) Draw(name string) (*Cell, error) {
	lower := j.Lead()
	upper := lower.Transform(Compose(ReflectAxis(AxisX), Translate(Vec(0, j.Length()))))
	c := NewCell(name)
	if err := c.Add(lower, upper); err != nil {
		return nil, err
	}
	return c, nil
}
