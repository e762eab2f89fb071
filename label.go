package mask

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelOptions describes a text label.
type LabelOptions struct {
	// Pos is the lower left corner of the label's first line.
	Pos Point
	// Height is the height of one line of text, including descenders.
	Height float64
	// Face is a bitmap font face. Nil selects basicfont.Face7x13.
	Face  font.Face
	Layer Layer
}

// Label renders text with a bitmap font. Every lit pixel of a glyph becomes
// part of a polygon; horizontally adjacent pixels are merged into one
// rectangle, so the result consists of simple, hole-free polygons.
//
// Runes missing from the face are skipped but still advance the pen.
func Label(text string, o LabelOptions) ([]Polygon, error) {
	face := o.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()
	rows := m.Height.Ceil()
	if rows <= 0 {
		return nil, fmt.Errorf("%w: font face has height %d", ErrInvalidParameter, rows)
	}
	if !(o.Height > 0) {
		return nil, paramError("label", "Height", o.Height, "must be positive")
	}
	px := o.Height / float64(rows)

	var out []Polygon
	dot := fixed.P(0, m.Ascent.Ceil())
	for _, r := range text {
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if !ok {
			advance, _ = face.GlyphAdvance(r)
			dot.X += advance
			continue
		}
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			// The pen works in a y-down pixel space with the top of the line
			// at row 0. Chip coordinates are y-up.
			y0 := o.Pos.Y + float64(rows-1-y)*px
			run := -1
			for x := dr.Min.X; x <= dr.Max.X; x++ {
				lit := x < dr.Max.X && pixelLit(mask, maskp.Add(image.Pt(x-dr.Min.X, y-dr.Min.Y)))
				switch {
				case lit && run < 0:
					run = x
				case !lit && run >= 0:
					out = append(out, Rect{
						X0: o.Pos.X + float64(run)*px,
						Y0: y0,
						X1: o.Pos.X + float64(x)*px,
						Y1: y0 + px,
					}.Polygon(o.Layer))
					run = -1
				}
			}
		}
		dot.X += advance
	}
	return out, nil
}

func pixelLit(img image.Image, pt image.Point) bool {
	_, _, _, a := img.At(pt.X, pt.Y).RGBA()
	return a > 0
}
