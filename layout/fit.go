package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/veckit/spectral/geom"
)

// AxisMap is the scale+offset fit of one axis: Apply(v) = Base + Step·v.
type AxisMap struct {
	Base float64
	Step float64
}

// Apply maps a raw coordinate value into page space.
// Complexity: O(1).
func (a AxisMap) Apply(v float64) float64 {
	return a.Base + a.Step*v
}

// ParseCoords parses one coordinate per field, strictly: every field must
// be a finite float64. The first failure aborts with ErrBadCoordinate
// wrapped with the 1-based vertex ordinal — malformed input fails the
// operation instead of propagating NaN into the fit.
// Complexity: O(len(fields)).
func ParseCoords(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("vertex %d: %q: %w", i+1, f, ErrBadCoordinate)
		}
		out[i] = v
	}

	return out, nil
}

// span returns the min and max of vs. Caller guarantees len(vs) > 0.
func span(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// FitX fits the x axis: the largest raw value maps to the box's right
// edge, the smallest to its left edge.
//
//	step = width / (max − min)
//	base = box.MaxX − max·step
//
// A zero span (max == min) yields ErrDegenerateSpan — the explicit
// replacement for an inherited division by zero.
func FitX(ex []float64, box geom.Rect) (AxisMap, error) {
	lo, hi := span(ex)
	if hi == lo {
		return AxisMap{}, fmt.Errorf("x axis: %w", ErrDegenerateSpan)
	}
	step := box.Width() / (hi - lo)

	return AxisMap{Base: box.MaxX - hi*step, Step: step}, nil
}

// FitY fits the y axis with the inverted sign convention: the largest raw
// value maps to the top of the box (MinY in page coordinates), the
// smallest to the bottom.
//
//	step = −height / (max − min)
//	base = box.MinY − max·step
func FitY(ey []float64, box geom.Rect) (AxisMap, error) {
	lo, hi := span(ey)
	if hi == lo {
		return AxisMap{}, fmt.Errorf("y axis: %w", ErrDegenerateSpan)
	}
	step := -box.Height() / (hi - lo)

	return AxisMap{Base: box.MinY - hi*step, Step: step}, nil
}
