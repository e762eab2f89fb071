// Package mask generates photomask layout geometry for microfabricated chips:
// a canvas frame, alignment and dicing markers, bond pads, and parametrically
// shaped conductor patterns such as transmon pads and Josephson-junction
// leads. The output is a hierarchy of [Cell] values holding [Polygon] values
// on numbered [Layer]s, which an external exporter turns into a mask file.
//
// All coordinates are in micrometres. No unit conversion happens anywhere in
// this package.
//
// # Polygons and transforms
//
// A [Polygon] is an open, ordered sequence of at least three points; the edge
// from the last point back to the first is implicit. Polygons are moved with
// [Affine] transforms. [Translate], [Rotate], [Scale] and [ReflectAxis] build
// individual transforms, and [Compose] folds a list of them into a single map
// so that each vertex is only transformed once.
//
// Reflections invert the winding of a polygon. Nothing in this package
// depends on a particular winding: corners are classified relative to the
// polygon's own [Polygon.SignedArea].
//
// # Corner rounding
//
// [Round] replaces tagged vertices of a simple polygon with tangent circular
// arcs. A [CornerTag] names the vertex by its index in the input polygon,
// the radius of the arc and whether the corner is [Convex] (the arc removes
// area) or [Reflex] (the arc adds area). All tags are resolved against the
// input polygon in one pass, so indices never shift. Arcs are discretized
// into a caller-chosen number of straight segments.
//
// # Generators
//
// Shape generators are pure functions of immutable option structs. Every
// option struct has a Default constructor, such as [DefaultPadOptions], and
// a Validate method. The generators are:
//
//   - [PadOutline] and [SingleJunctionTransmon]
//   - [SquidLoopOutline] and [SquidTransmon]
//   - [DolanJunction], the default [Junction]
//   - [HoleMesh]
//   - [EBPGMarker], [BondTestPads], [DicingMarks], [AlignmentMark] and [Vernier]
//   - [Frame], [WaferFrame] and [Label]
//
// # Cells and chips
//
// A [Cell] is a named container of polygons and placements of other cells.
// Placing a cell freezes it; later mutation fails with [ErrFrozen]. Names are
// unique across a hierarchy, which [Cell.Place] enforces.
//
// A [Chip] is the top-level canvas: a root cell together with an [Extent].
// [Chip.Attach] places components at positions inside the extent and fails
// with [ErrOutOfBounds] otherwise.
//
// [Cell.Flatten] walks a hierarchy depth-first and yields every polygon in
// absolute coordinates, which is all an exporter needs.
//
// # Determinism
//
// Identical options and placement calls produce bit-identical coordinates.
// Nothing in this package reads the clock or global mutable state; even the
// chip label's date is an explicit option.
//
// # Concurrency
//
// None of the types in this package are safe for concurrent mutation.
// Frozen cells are never mutated and may be read from multiple goroutines.
package mask
