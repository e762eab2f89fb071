package mask

// TransmonOptions holds options shared by the transmon generators.
type TransmonOptions struct {
	// Short replaces the junction of a single-junction transmon with a
	// direct connection: the pads' leads meet, no junction is drawn and
	// rounding is disabled.
	Short bool
	// Holes adds a vortex-pinning hole mesh to both pads.
	Holes    bool
	HoleMesh HoleMeshOptions
	Layers   Layers
}

// DefaultTransmonOptions returns options without a short and without holes,
// using the default layer table.
func DefaultTransmonOptions() TransmonOptions {
	return TransmonOptions{
		HoleMesh: DefaultHoleMeshOptions(),
		Layers:   DefaultLayers(),
	}
}

// Transmon is a generated pair of pads with their junctions.
type Transmon struct {
	// Cell holds the pads cell and the junction placements. Its origin is
	// the centre of the lower pad's bottom edge.
	Cell *Cell
	// Lower and Upper are the two pads. Upper is Lower reflected about the
	// x axis and moved up by PadSpacing.
	Lower, Upper Polygon
	// PadSpacing is the distance between the bottom edges of the two pads.
	PadSpacing float64
	// JunctionOffsets are the origins of the placed junctions.
	JunctionOffsets []Vec2
}

// SingleJunctionTransmon returns a transmon whose two pads are connected by
// one junction.
//
// The junction is placed at offset = Height + LeadHeight − jj.LeadOverlap()
// above the origin, so that it overlaps the lower lead by exactly
// LeadOverlap. The pads are spaced 2·offset + jj.Length() apart, so that the
// junction overlaps the upper lead by the same amount.
func SingleJunctionTransmon(name string, pads PadOptions, jj Junction, opts TransmonOptions) (*Transmon, error) {
	if jj == nil {
		return nil, paramError("transmon", "junction", 0, "no junction")
	}
	if err := pads.Validate(opts.Layers); err != nil {
		return nil, err
	}
	tip := pads.TipWidth(jj.BaseWidth())
	offset := pads.Height + pads.LeadHeight - jj.LeadOverlap()
	spacing := 2*offset + jj.Length()
	if opts.Short {
		spacing = 2 * (pads.Height + pads.LeadHeight)
		pads.RoundedEdges = false
	}

	lower, err := PadOutline(pads, tip)
	if err != nil {
		return nil, err
	}
	tm := &Transmon{
		Cell:       NewCell(name),
		Lower:      lower,
		Upper:      Mirror(lower, spacing),
		PadSpacing: spacing,
	}
	if !opts.Short {
		tm.JunctionOffsets = []Vec2{Vec(0, offset)}
	}
	if err := tm.assemble(name, pads, jj, opts); err != nil {
		return nil, err
	}
	return tm, nil
}

// SquidTransmon returns a transmon whose lower pad ends in a SQUID loop with
// a junction on each arm.
//
// The junctions are placed at (±loop.ArmCenter(), offset) with offset =
// Height + LeadHeight + loop.Height + loop.Thickness − jj.LeadOverlap(), the
// top of the loop minus the lead overlap. The pads are spaced 2·offset +
// jj.Length() apart.
func SquidTransmon(name string, pads PadOptions, loop SquidLoopOptions, jj Junction, opts TransmonOptions) (*Transmon, error) {
	if jj == nil {
		return nil, paramError("transmon", "junction", 0, "no junction")
	}
	if err := pads.Validate(opts.Layers); err != nil {
		return nil, err
	}
	lower, err := SquidLoopOutline(pads, loop)
	if err != nil {
		return nil, err
	}
	offset := pads.Height + pads.LeadHeight + loop.Height + loop.Thickness - jj.LeadOverlap()
	spacing := 2*offset + jj.Length()
	x := loop.ArmCenter()
	tm := &Transmon{
		Cell:            NewCell(name),
		Lower:           lower,
		Upper:           Mirror(lower, spacing),
		PadSpacing:      spacing,
		JunctionOffsets: []Vec2{Vec(x, offset), Vec(-x, offset)},
	}
	opts.Short = false
	if err := tm.assemble(name, pads, jj, opts); err != nil {
		return nil, err
	}
	return tm, nil
}

// assemble fills tm.Cell with the pads, the optional hole meshes and the
// junctions.
func (tm *Transmon) assemble(name string, pads PadOptions, jj Junction, opts TransmonOptions) error {
	padCell := NewCell(name + "_PADS")
	if err := padCell.Add(tm.Lower, tm.Upper); err != nil {
		return err
	}
	if err := tm.Cell.Place(padCell, Identity); err != nil {
		return err
	}

	if opts.Holes {
		holes, err := HoleMesh(name+"_HOLES", pads, opts.HoleMesh, opts.Layers)
		if err != nil {
			return err
		}
		if err := tm.Cell.Place(holes, Identity); err != nil {
			return err
		}
		mirror := ReflectAxis(AxisX).ThenTranslate(Vec(0, tm.PadSpacing))
		if err := tm.Cell.Place(holes, mirror); err != nil {
			return err
		}
	}

	if len(tm.JunctionOffsets) == 0 {
		return nil
	}
	jjCell, err := jj.Draw(name + "_JJ")
	if err != nil {
		return err
	}
	for _, off := range tm.JunctionOffsets {
		if err := tm.Cell.Place(jjCell, Translate(off)); err != nil {
			return err
		}
	}
	return nil
}
