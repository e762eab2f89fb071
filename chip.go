package mask

import (
	"fmt"
)

// ChipOptions describes a chip or wafer canvas.
type ChipOptions struct {
	// Width and Height are the chip's dimensions. Wafer canvases use them
	// only to pick the frame width.
	Width  float64
	Height float64
	// Frame draws the chip's outline on the frame layer.
	Frame bool
	// Label writes the chip's name and Date on the label layer.
	Label bool
	// Wafer selects a circular canvas of a wafer of that many inches,
	// from 1 to 6. Zero selects a rectangular chip.
	Wafer int
	// LabelPos is the label's lower left corner. The zero Point selects a
	// position near the top edge of the canvas.
	LabelPos Point
	// LabelHeight is the height of the label's text. Zero selects the frame
	// width for chips and 500 µm for wafers.
	LabelHeight float64
	// Date is appended to the label, separated by two spaces.
	Date string
	// ArcSegments is the number of segments of a wafer's circumference.
	ArcSegments int
	Layers      Layers
}

// DefaultChipOptions returns a framed, labelled 1000 µm × 1000 µm chip.
func DefaultChipOptions() ChipOptions {
	return ChipOptions{
		Width:       1000,
		Height:      1000,
		Frame:       true,
		Label:       true,
		ArcSegments: 720,
		Layers:      DefaultLayers(),
	}
}

func (o ChipOptions) Validate() error {
	if !(o.Width > 0) {
		return paramError("chip", "Width", o.Width, "must be positive")
	}
	if !(o.Height > 0) {
		return paramError("chip", "Height", o.Height, "must be positive")
	}
	if o.Wafer != 0 {
		if _, ok := WaferDiameter(o.Wafer); !ok {
			return paramError("chip", "Wafer", float64(o.Wafer), "unknown wafer size")
		}
		if o.ArcSegments < 1 {
			return paramError("chip", "ArcSegments", float64(o.ArcSegments), "need at least one segment")
		}
	}
	if !(o.LabelHeight >= 0) {
		return paramError("chip", "LabelHeight", o.LabelHeight, "cannot be negative")
	}
	return o.Layers.Validate()
}

// FrameWidth returns the line width of the chip's frame: 10 µm for chips no
// larger than 1000 µm in either direction, 100 µm otherwise.
func (o ChipOptions) FrameWidth() float64 {
	if o.Width < 1001 && o.Height < 1001 {
		return 10
	}
	return 100
}

// Chip is the top-level canvas of a layout. The origin is the centre of the
// chip.
type Chip struct {
	Cell     *Cell
	Extent   Extent
	Layers   Layers
	BoxWidth float64
}

// NewChip returns a chip named name, with its frame and label drawn
// according to o.
func NewChip(name string, o ChipOptions) (*Chip, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ch := &Chip{
		Cell:     NewCell(name),
		Extent:   RectExtent{Width: o.Width, Height: o.Height},
		Layers:   o.Layers,
		BoxWidth: o.FrameWidth(),
	}
	labelPos := Pt(-200, 0.5*o.Height-2*ch.BoxWidth-700)
	labelHeight := ch.BoxWidth
	var frame []Polygon
	if o.Wafer == 0 {
		frame = Frame(ch.Extent.BoundingBox(), ch.BoxWidth, o.Layers.Frame)
	} else {
		d, _ := WaferDiameter(o.Wafer)
		wafer := WaferExtent{Radius: d / 2, FlatAngle: DefaultFlatAngle}
		ch.Extent = wafer
		var err error
		frame, err = WaferFrame(wafer, ch.BoxWidth, o.ArcSegments, o.Layers.Frame)
		if err != nil {
			return nil, err
		}
		labelPos = Pt(-2e3, wafer.Radius-1e3)
		labelHeight = 500
	}
	if o.LabelPos != (Point{}) {
		labelPos = o.LabelPos
	}
	if o.LabelHeight != 0 {
		labelHeight = o.LabelHeight
	}

	if o.Frame {
		if err := ch.Cell.Add(frame...); err != nil {
			return nil, err
		}
	}
	if o.Label {
		text := name
		if o.Date != "" {
			text += "  " + o.Date
		}
		label, err := Label(text, LabelOptions{Pos: labelPos, Height: labelHeight, Layer: o.Layers.Label})
		if err != nil {
			return nil, err
		}
		if err := ch.Cell.Add(label...); err != nil {
			return nil, err
		}
	}
	return ch, nil
}

func (ch *Chip) Name() string { return ch.Cell.Name() }

// Attach places cell with its origin at pos. It fails with ErrOutOfBounds if
// pos lies outside the chip's extent; positions on the boundary are allowed.
func (ch *Chip) Attach(cell *Cell, pos Point) error {
	if cell == nil {
		return fmt.Errorf("attaching to %q: %w: nil cell", ch.Name(), ErrInvalidParameter)
	}
	if !ch.Extent.Contains(pos) {
		return &BoundsError{Cell: cell.Name(), Pos: pos, Extent: ch.Extent.BoundingBox()}
	}
	return ch.Cell.Place(cell, Translate(Vec2(pos)))
}

// AddEBPGMarker adds an e-beam marker group, duplicated into its slots.
func (ch *Chip) AddEBPGMarker(o EBPGMarkerOptions) error {
	ms, err := EBPGMarker(ch.Name()+"_EBEAM", o, ch.Layers.Alignment)
	if err != nil {
		return err
	}
	return ms.Place(ch.Cell)
}

// AddBondTestPads adds bond test pads on the test pad layer.
func (ch *Chip) AddBondTestPads(o TestPadOptions) error {
	c, err := BondTestPads(ch.Name()+"_TESTPADS", o, ch.Layers.TestPads)
	if err != nil {
		return err
	}
	return ch.Cell.Place(c, Identity)
}

// AddDicingMarks adds dicing lines on the dicing layer.
func (ch *Chip) AddDicingMarks(o DicingOptions) error {
	c, err := DicingMarks(ch.Name()+"_DICING", o, ch.Extent.BoundingBox(), ch.Layers.Dicing)
	if err != nil {
		return err
	}
	return ch.Cell.Place(c, Identity)
}

// AddAlignmentMark attaches a photolithography alignment mark at o.Pos.
func (ch *Chip) AddAlignmentMark(o AlignmentMarkOptions) error {
	c, err := AlignmentMark(ch.Name()+"_PHOTO", o)
	if err != nil {
		return err
	}
	return ch.Attach(c, o.Pos)
}

// AddVernier attaches vernier scales at o.Pos.
func (ch *Chip) AddVernier(o VernierOptions) error {
	c, err := Vernier(ch.Name()+"_VERNIER", o)
	if err != nil {
		return err
	}
	return ch.Attach(c, o.Pos)
}
