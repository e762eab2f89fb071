package mask

import "fmt"

// Layer identifies the fabrication purpose of a polygon.
type Layer int

// Layers is the table of layers that chip-level features are drawn on.
// Conductor patterns must not use any of them.
type Layers struct {
	Label     Layer
	Frame     Layer
	Alignment Layer
	TestPads  Layer
	Dicing    Layer
}

// DefaultLayers returns the reserved layer convention: 20 for labels, 21 for
// the frame, 22 for alignment marks, 23 for test pads and 24 for dicing marks.
func DefaultLayers() Layers {
	return Layers{
		Label:     20,
		Frame:     21,
		Alignment: 22,
		TestPads:  23,
		Dicing:    24,
	}
}

// Reserved reports whether l is one of the table's layers.
func (ls Layers) Reserved(l Layer) bool {
	switch l {
	case ls.Label, ls.Frame, ls.Alignment, ls.TestPads, ls.Dicing:
		return true
	default:
		return false
	}
}

// Validate checks that the table's layers are positive and distinct.
func (ls Layers) Validate() error {
	all := [...]struct {
		name string
		l    Layer
	}{
		{"Label", ls.Label},
		{"Frame", ls.Frame},
		{"Alignment", ls.Alignment},
		{"TestPads", ls.TestPads},
		{"Dicing", ls.Dicing},
	}
	seen := make(map[Layer]string, len(all))
	for _, e := range all {
		if e.l <= 0 {
			return paramError("layers", e.name, float64(e.l), "layer must be positive")
		}
		if other, ok := seen[e.l]; ok {
			return paramError("layers", e.name, float64(e.l), "layer already used by %s", other)
		}
		seen[e.l] = e.name
	}
	return nil
}

// CheckConductor returns an error if l cannot be used for conductor
// geometry under this table.
func (ls Layers) CheckConductor(options, param string, l Layer) error {
	if l <= 0 {
		return paramError(options, param, float64(l), "layer must be positive")
	}
	if ls.Reserved(l) {
		return paramError(options, param, float64(l), "layer is reserved")
	}
	return nil
}

func (l Layer) String() string {
	return fmt.Sprintf("L%d", int(l))
}
