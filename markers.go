package mask

import (
	"fmt"
	"math"
)

// MarkerSlot names one of the four positions of an e-beam marker group.
type MarkerSlot int

const (
	// SlotOrigin is the group as drawn.
	SlotOrigin MarkerSlot = iota
	// SlotDiagonal mirrors the group through the chip's centre.
	SlotDiagonal
	// SlotVertical mirrors the group across the x axis.
	SlotVertical
	// SlotHorizontal mirrors the group across the y axis.
	SlotHorizontal

	NumMarkerSlots = 4
)

func (s MarkerSlot) String() string {
	switch s {
	case SlotOrigin:
		return "origin"
	case SlotDiagonal:
		return "diagonal"
	case SlotVertical:
		return "vertical"
	case SlotHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("MarkerSlot(%d)", int(s))
	}
}

// EBPGMarkerOptions describes a group of e-beam alignment squares.
type EBPGMarkerOptions struct {
	// Pos is the centre of the group's lower left square.
	Pos Point
	// Size is the side length of each square.
	Size float64
	// Spacing is the distance between neighbouring squares' centres.
	Spacing float64
	// Number is the number of squares in the group, from 1 to 4. They are
	// drawn anti-clockwise from the lower left.
	Number int
	// Duplicate fills all four slots of the marker set instead of just
	// SlotOrigin.
	Duplicate bool
}

// DefaultEBPGMarkerOptions returns four 20 µm squares 200 µm apart at
// (−3310, −1560), duplicated into all four slots.
func DefaultEBPGMarkerOptions() EBPGMarkerOptions {
	return EBPGMarkerOptions{
		Pos:       Pt(-3310, -1560),
		Size:      20,
		Spacing:   200,
		Number:    4,
		Duplicate: true,
	}
}

func (o EBPGMarkerOptions) Validate() error {
	if !(o.Size > 0) {
		return paramError("ebpg", "Size", o.Size, "must be positive")
	}
	if !(o.Spacing > 0) {
		return paramError("ebpg", "Spacing", o.Spacing, "must be positive")
	}
	if o.Number < 1 || o.Number > 4 {
		return paramError("ebpg", "Number", float64(o.Number), "must be between 1 and 4")
	}
	return nil
}

// MarkerSet is one marker group together with the slots it is placed in.
type MarkerSet struct {
	Group *Cell
	// Used reports which slots hold a copy of the group.
	Used [NumMarkerSlots]bool
	// Offsets are the translations of the group for each slot.
	Offsets [NumMarkerSlots]Vec2
}

// EBPGMarker returns the marker group described by o and its slots. The
// group's squares are drawn in chip coordinates.
func EBPGMarker(name string, o EBPGMarkerOptions, l Layer) (MarkerSet, error) {
	if err := o.Validate(); err != nil {
		return MarkerSet{}, err
	}
	x, y, s := o.Pos.X, o.Pos.Y, o.Spacing
	centers := [4]Point{Pt(x, y), Pt(x+s, y), Pt(x+s, y+s), Pt(x, y+s)}
	group := NewCell(name)
	for _, c := range centers[:o.Number] {
		if err := group.Add(NewRectFromCenter(c, o.Size, o.Size).Polygon(l)); err != nil {
			return MarkerSet{}, err
		}
	}

	ms := MarkerSet{Group: group}
	ms.Used[SlotOrigin] = true
	if o.Duplicate {
		dx, dy := -2*x-s, -2*y-s
		ms.Offsets[SlotDiagonal] = Vec(dx, dy)
		ms.Offsets[SlotVertical] = Vec(0, dy)
		ms.Offsets[SlotHorizontal] = Vec(dx, 0)
		ms.Used[SlotDiagonal] = true
		ms.Used[SlotVertical] = true
		ms.Used[SlotHorizontal] = true
	}
	return ms, nil
}

// Place places the group into parent once for every used slot, in slot
// order.
func (ms MarkerSet) Place(parent *Cell) error {
	for slot, used := range ms.Used {
		if !used {
			continue
		}
		if err := parent.Place(ms.Group, Translate(ms.Offsets[slot])); err != nil {
			return fmt.Errorf("placing marker slot %s: %w", MarkerSlot(slot), err)
		}
	}
	return nil
}

// TestPadOptions describes bond test pads placed symmetrically about the
// origin.
type TestPadOptions struct {
	// Pos is the centre of the first pad. The others are at (−x, y),
	// (−x, −y) and (x, −y).
	Pos    Point
	Width  float64
	Height float64
	// Number is the number of pads, from 1 to 4.
	Number int
}

// DefaultTestPadOptions returns four 300 µm pads at (±2000, ±2000).
func DefaultTestPadOptions() TestPadOptions {
	return TestPadOptions{
		Pos:    Pt(-2000, -2000),
		Width:  300,
		Height: 300,
		Number: 4,
	}
}

func (o TestPadOptions) Validate() error {
	if !(o.Width > 0) {
		return paramError("testpads", "Width", o.Width, "must be positive")
	}
	if !(o.Height > 0) {
		return paramError("testpads", "Height", o.Height, "must be positive")
	}
	if o.Number < 1 || o.Number > 4 {
		return paramError("testpads", "Number", float64(o.Number), "must be between 1 and 4")
	}
	return nil
}

// BondTestPads returns a cell of test pads.
func BondTestPads(name string, o TestPadOptions, l Layer) (*Cell, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	x, y := o.Pos.X, o.Pos.Y
	centers := [4]Point{Pt(x, y), Pt(-x, y), Pt(-x, -y), Pt(x, -y)}
	c := NewCell(name)
	for _, ctr := range centers[:o.Number] {
		if err := c.Add(NewRectFromCenter(ctr, o.Width, o.Height).Polygon(l)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// DicingOptions describes dashed dicing lines through a point.
type DicingOptions struct {
	// Pos is the point the lines pass through.
	Pos        Point
	Horizontal bool
	Vertical   bool
	// Length is the length of each dash. Dashes are separated by gaps of
	// the same length.
	Length float64
	// Width is the width of each dash.
	Width float64
	// Span limits the dashes to [X0, X1] horizontally and [Y0, Y1]
	// vertically, before the halving described at [DicingMarks]. The zero
	// Rect selects the chip's extent.
	Span Rect
}

// DefaultDicingOptions returns horizontal and vertical lines of 1000 µm ×
// 250 µm dashes through the origin.
func DefaultDicingOptions() DicingOptions {
	return DicingOptions{
		Horizontal: true,
		Vertical:   true,
		Length:     1000,
		Width:      250,
	}
}

func (o DicingOptions) Validate() error {
	if !(o.Length > 0) {
		return paramError("dicing", "Length", o.Length, "must be positive")
	}
	if !(o.Width > 0) {
		return paramError("dicing", "Width", o.Width, "must be positive")
	}
	return nil
}

// DicingMarks returns a cell of dicing dashes for a chip of the given
// extent.
//
// Dash origins are 2·s for s in Arange(X0/4, X1/4, Length), and likewise for
// y, where the span defaults to the extent with its upper bounds widened by
// 4 µm. Horizontal and vertical dashes are independent sequences, so chips
// that are not square still get complete lines along both axes.
func DicingMarks(name string, o DicingOptions, extent Rect, l Layer) (*Cell, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	x0, x1 := o.Span.X0/4, o.Span.X1/4
	y0, y1 := o.Span.Y0/4, o.Span.Y1/4
	if o.Span == (Rect{}) {
		e := extent.Abs()
		x0, x1 = e.X0/4, e.X1/4+1
		y0, y1 = e.Y0/4, e.Y1/4+1
	}
	hw := 0.5 * o.Width
	c := NewCell(name)
	if o.Horizontal {
		for s := range Arange(x0, x1, o.Length) {
			x := 2*s + o.Pos.X
			if err := c.Add(Rect{x, o.Pos.Y - hw, x + o.Length, o.Pos.Y + hw}.Polygon(l)); err != nil {
				return nil, err
			}
		}
	}
	if o.Vertical {
		for s := range Arange(y0, y1, o.Length) {
			y := 2*s + o.Pos.Y
			if err := c.Add(Rect{o.Pos.X - hw, y, o.Pos.X + hw, y + o.Length}.Polygon(l)); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// AlignmentMarkOptions describes a photolithography alignment mark: a cross
// on the first layer and four boxes framing it on the second.
type AlignmentMarkOptions struct {
	Pos Point
	// Size is the length of each arm of the cross, tip to tip.
	Size float64
	// Width is the width of the cross's arms.
	Width float64
	// Gap is the clearance between the cross and the boxes.
	Gap    float64
	Layers [2]Layer
}

// DefaultAlignmentMarkOptions returns a 200 µm cross with 10 µm arms on
// layers 1 and 2.
func DefaultAlignmentMarkOptions() AlignmentMarkOptions {
	return AlignmentMarkOptions{
		Size:   200,
		Width:  10,
		Gap:    2,
		Layers: [2]Layer{1, 2},
	}
}

func (o AlignmentMarkOptions) Validate() error {
	if !(o.Width > 0) {
		return paramError("alignment", "Width", o.Width, "must be positive")
	}
	if !(o.Gap >= 0) {
		return paramError("alignment", "Gap", o.Gap, "cannot be negative")
	}
	if !(o.Size > o.Width+2*o.Gap) {
		return paramError("alignment", "Size", o.Size, "must exceed Width + 2·Gap")
	}
	for i, l := range o.Layers {
		if l <= 0 {
			return paramError("alignment", fmt.Sprintf("Layers[%d]", i), float64(l), "layer must be positive")
		}
	}
	return nil
}

// AlignmentMark returns a cell holding the mark, centred on the origin of
// the cell. Place it at o.Pos.
func AlignmentMark(name string, o AlignmentMarkOptions) (*Cell, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	a, w := 0.5*o.Size, 0.5*o.Width
	cross := NewPolygon(o.Layers[0],
		Pt(-w, -a), Pt(w, -a), Pt(w, -w), Pt(a, -w),
		Pt(a, w), Pt(w, w), Pt(w, a), Pt(-w, a),
		Pt(-w, w), Pt(-a, w), Pt(-a, -w), Pt(-w, -w),
	)
	c := NewCell(name)
	if err := c.Add(cross); err != nil {
		return nil, err
	}
	in := w + o.Gap
	box := Rect{in, in, a, a}.Polygon(o.Layers[1])
	for k := range 4 {
		if err := c.Add(box.Rotate(float64(k) * math.Pi / 2)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// VernierOptions describes a pair of vernier scales measuring the overlay
// error between two layers along x and y.
type VernierOptions struct {
	Pos Point
	// Pitch is the distance between lines of the first layer's comb. The
	// second layer's comb has a pitch of Pitch + Step.
	Pitch float64
	Step  float64
	// Lines is the number of lines on each side of the centre line.
	Lines      int
	LineWidth  float64
	LineLength float64
	Layers     [2]Layer
}

// DefaultVernierOptions returns scales with a 0.2 µm resolution on layers 1
// and 2.
func DefaultVernierOptions() VernierOptions {
	return VernierOptions{
		Pos:        Pt(-500, -500),
		Pitch:      10,
		Step:       0.2,
		Lines:      5,
		LineWidth:  4,
		LineLength: 40,
		Layers:     [2]Layer{1, 2},
	}
}

func (o VernierOptions) Validate() error {
	if !(o.Pitch > 0) {
		return paramError("vernier", "Pitch", o.Pitch, "must be positive")
	}
	if !(o.Step > 0) {
		return paramError("vernier", "Step", o.Step, "must be positive")
	}
	if o.Lines < 1 {
		return paramError("vernier", "Lines", float64(o.Lines), "need at least one line")
	}
	if !(o.LineWidth > 0) || o.LineWidth >= o.Pitch {
		return paramError("vernier", "LineWidth", o.LineWidth, "must be positive and less than Pitch")
	}
	if !(o.LineLength > 0) {
		return paramError("vernier", "LineLength", o.LineLength, "must be positive")
	}
	for i, l := range o.Layers {
		if l <= 0 {
			return paramError("vernier", fmt.Sprintf("Layers[%d]", i), float64(l), "layer must be positive")
		}
	}
	return nil
}

// Vernier returns a cell holding both scales, centred on the origin of the
// cell. Place it at o.Pos.
//
// The x scale has the first layer's comb above the x axis and the second's
// below it. The y scale is the x scale rotated by 90°.
func Vernier(name string, o VernierOptions) (*Cell, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	hw := 0.5 * o.LineWidth
	var scale []Polygon
	for k := -o.Lines; k <= o.Lines; k++ {
		length := o.LineLength
		if k == 0 {
			length *= 1.5
		}
		xa := float64(k) * o.Pitch
		xb := float64(k) * (o.Pitch + o.Step)
		scale = append(scale,
			Rect{xa - hw, 0, xa + hw, length}.Polygon(o.Layers[0]),
			Rect{xb - hw, -length, xb + hw, 0}.Polygon(o.Layers[1]),
		)
	}
	// Offset the y scale so that it does not overlap the x scale.
	reach := float64(o.Lines)*(o.Pitch+o.Step) + 2*o.LineLength
	toY := Rotate(math.Pi / 2).ThenTranslate(Vec(-reach, reach))

	c := NewCell(name)
	if err := c.Add(scale...); err != nil {
		return nil, err
	}
	for _, p := range scale {
		if err := c.Add(p.Transform(toY)); err != nil {
			return nil, err
		}
	}
	return c, nil
}
