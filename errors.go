package mask

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a placement position lies outside a
	// chip's extent.
	ErrOutOfBounds = errors.New("position outside of layout")
	// ErrInvalidParameter is returned when an option or a derived geometric
	// constraint is violated.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrRoundingInfeasible is returned when a corner cannot be rounded with
	// the requested radius.
	ErrRoundingInfeasible = errors.New("corner rounding infeasible")
	// ErrDuplicateName is returned when two distinct cells in one hierarchy
	// share a name.
	ErrDuplicateName = errors.New("duplicate cell name")
	// ErrFrozen is returned when a cell is mutated after it has been placed.
	ErrFrozen = errors.New("cell is frozen")
)

// BoundsError describes a placement that lies outside of a chip.
type BoundsError struct {
	Cell   string
	Pos    Point
	Extent Rect
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("placing %q at %s: %s [%g, %g]×[%g, %g]",
		e.Cell, e.Pos, ErrOutOfBounds, e.Extent.X0, e.Extent.X1, e.Extent.Y0, e.Extent.Y1)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// ParameterError describes an option that failed validation.
type ParameterError struct {
	// Options names the option struct, such as "pads" or "junction".
	Options string
	// Param is the offending field.
	Param  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s.%s = %g: %s", ErrInvalidParameter, e.Options, e.Param, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

func paramError(options, param string, value float64, format string, args ...any) error {
	return &ParameterError{
		Options: options,
		Param:   param,
		Value:   value,
		Reason:  fmt.Sprintf(format, args...),
	}
}

// CornerError describes a corner tag that could not be applied.
type CornerError struct {
	Index  int
	Radius float64
	// Trim is the distance from the vertex to the arc's tangent points. It is
	// zero if it could not be computed.
	Trim float64
	// Edge is the length of the shorter adjacent edge.
	Edge   float64
	Reason string
	// Err is ErrRoundingInfeasible or ErrInvalidParameter.
	Err error
}

func (e *CornerError) Error() string {
	return fmt.Sprintf("%s: vertex %d, radius %g (trim %g, edge %g): %s",
		e.Err, e.Index, e.Radius, e.Trim, e.Edge, e.Reason)
}

func (e *CornerError) Unwrap() error { return e.Err }

// NameError describes a name collision between two distinct cells.
type NameError struct {
	Name string
	// Parent is the cell the colliding cell was being placed into.
	Parent string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("placing into %q: %s %q", e.Parent, ErrDuplicateName, e.Name)
}

func (e *NameError) Unwrap() error { return ErrDuplicateName }
