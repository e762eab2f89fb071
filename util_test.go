package mask

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats up to an absolute error of 1e-9.
var approx = cmpopts.EquateApprox(0, 1e-9)

func square(l Layer, size float64) Polygon {
	return Rect{0, 0, size, size}.Polygon(l)
}

func mustRound(t *testing.T, p Polygon, tags []CornerTag, segments int) Polygon {
	t.Helper()
	out, err := Round(p, tags, segments)
	if err != nil {
		t.Fatalf("Round: %v", err)
	}
	return out
}
