package mask

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Cell is a named, reusable collection of polygons and placements of other
// cells.
//
// A cell is mutable until it is placed into another cell, at which point it
// is frozen. Concurrent mutation of the same unfrozen cell is not supported.
type Cell struct {
	name       string
	polygons   []Polygon
	placements []Placement
	frozen     bool
}

// Placement instantiates a cell inside its parent.
type Placement struct {
	Cell      *Cell
	Transform Affine
}

// NewCell returns an empty cell.
func NewCell(name string) *Cell {
	return &Cell{name: name}
}

func (c *Cell) Name() string { return c.name }

// Frozen reports whether c has been placed into another cell.
func (c *Cell) Frozen() bool { return c.frozen }

// Polygons returns copies of the cell's own polygons in insertion order.
func (c *Cell) Polygons() []Polygon {
	out := make([]Polygon, len(c.polygons))
	for i, p := range c.polygons {
		out[i] = NewPolygon(p.Layer, p.Points...)
	}
	return out
}

// Placements returns the cell's placements in insertion order.
func (c *Cell) Placements() []Placement { return slices.Clone(c.placements) }

// Add appends polygons to c. Each polygon is validated and its points are
// copied.
func (c *Cell) Add(polys ...Polygon) error {
	if c.frozen {
		return fmt.Errorf("adding polygons to %q: %w", c.name, ErrFrozen)
	}
	for i, p := range polys {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("adding polygon %d to %q: %w", i, c.name, err)
		}
	}
	for _, p := range polys {
		c.polygons = append(c.polygons, NewPolygon(p.Layer, p.Points...))
	}
	return nil
}

// Place appends a placement of child, transformed by aff, and freezes child.
//
// Place fails with [ErrDuplicateName] if the combined hierarchy would contain
// two distinct cells of the same name, and with [ErrInvalidParameter] if the
// placement would create a cycle or aff is singular. The same cell may be
// placed any number of times.
func (c *Cell) Place(child *Cell, aff Affine) error {
	if c.frozen {
		return fmt.Errorf("placing into %q: %w", c.name, ErrFrozen)
	}
	if child == nil {
		return fmt.Errorf("placing into %q: %w: nil cell", c.name, ErrInvalidParameter)
	}
	if aff.IsNaN() {
		return fmt.Errorf("placing %q into %q: %w: transform is NaN", child.name, c.name, ErrInvalidParameter)
	}
	if aff.Determinant() == 0 {
		return fmt.Errorf("placing %q into %q: %w: transform is singular", child.name, c.name, ErrInvalidParameter)
	}

	mine := c.cellsByName()
	for other := range child.Cells() {
		if other == c {
			return fmt.Errorf("placing %q into %q: %w: cycle", child.name, c.name, ErrInvalidParameter)
		}
		if existing, ok := mine[other.name]; ok && existing != other {
			return &NameError{Name: other.name, Parent: c.name}
		}
	}

	child.frozen = true
	c.placements = append(c.placements, Placement{Cell: child, Transform: aff})
	return nil
}

func (c *Cell) cellsByName() map[string]*Cell {
	out := make(map[string]*Cell)
	for cell := range c.Cells() {
		out[cell.name] = cell
	}
	return out
}

// Cells yields c and every distinct cell reachable from it, each exactly
// once, in depth-first order.
func (c *Cell) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		seen := make(map[*Cell]struct{})
		var walk func(*Cell) bool
		walk = func(cell *Cell) bool {
			if _, ok := seen[cell]; ok {
				return true
			}
			seen[cell] = struct{}{}
			if !yield(cell) {
				return false
			}
			for _, pl := range cell.placements {
				if !walk(pl.Cell) {
					return false
				}
			}
			return true
		}
		walk(c)
	}
}

// Names returns the sorted names of all cells in c's hierarchy.
func (c *Cell) Names() []string {
	return slices.Sorted(maps.Keys(c.cellsByName()))
}

// Flatten yields every polygon of c's hierarchy in absolute coordinates.
//
// The walk is depth-first. A cell's own polygons come first, followed by its
// placements in insertion order, so that the order is deterministic.
func (c *Cell) Flatten() iter.Seq[Polygon] {
	return func(yield func(Polygon) bool) {
		c.flatten(Identity, yield)
	}
}

func (c *Cell) flatten(aff Affine, yield func(Polygon) bool) bool {
	for p := range Transform(slices.Values(c.polygons), aff) {
		if !yield(p) {
			return false
		}
	}
	for _, pl := range c.placements {
		if !pl.Cell.flatten(aff.Mul(pl.Transform), yield) {
			return false
		}
	}
	return true
}

// BoundingBox returns the bounding box of all polygons in c's hierarchy, in
// c's coordinates. ok is false if the hierarchy contains no polygons.
func (c *Cell) BoundingBox() (r Rect, ok bool) {
	for p := range c.Flatten() {
		bb := p.BoundingBox()
		if !ok {
			r, ok = bb, true
			continue
		}
		r = r.Union(bb)
	}
	return r, ok
}

// LayerStats summarizes the flattened geometry on one layer.
type LayerStats struct {
	Polygons int
	Vertices int
	Area     float64
}

// Stats returns per-layer statistics of the flattened hierarchy.
func (c *Cell) Stats() map[Layer]LayerStats {
	out := make(map[Layer]LayerStats)
	for p := range c.Flatten() {
		s := out[p.Layer]
		s.Polygons++
		s.Vertices += len(p.Points)
		s.Area += p.Area()
		out[p.Layer] = s
	}
	return out
}
