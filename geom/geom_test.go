package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veckit/spectral/geom"
)

// TestRectAround verifies the bounding box of a point set.
func TestRectAround(t *testing.T) {
	r := geom.RectAround(
		geom.Point{X: 3, Y: 1},
		geom.Point{X: -2, Y: 7},
		geom.Point{X: 0, Y: 0},
	)
	assert.Equal(t, geom.Rect{MinX: -2, MinY: 0, MaxX: 3, MaxY: 7}, r)

	assert.Equal(t, geom.Rect{}, geom.RectAround(), "empty point set yields zero Rect")
}

// TestRectContains checks interior, edge, and exterior points.
func TestRectContains(t *testing.T) {
	r := geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	assert.True(t, r.Contains(geom.Point{X: 5, Y: 5}), "interior point")
	assert.True(t, r.Contains(geom.Point{X: 0, Y: 10}), "corner is inclusive")
	assert.True(t, r.Contains(geom.Point{X: 10, Y: 3}), "edge is inclusive")
	assert.False(t, r.Contains(geom.Point{X: 10.001, Y: 3}), "just outside")
}

// TestRectExpand verifies margin growth on every side.
func TestRectExpand(t *testing.T) {
	r := geom.Rect{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}.Expand(5)
	assert.Equal(t, geom.Rect{MinX: -4, MinY: -3, MaxX: 8, MaxY: 9}, r)
}

// TestRectUnion verifies the union covers both operands.
func TestRectUnion(t *testing.T) {
	a := geom.Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	b := geom.Rect{MinX: 1, MinY: -1, MaxX: 5, MaxY: 1}
	assert.Equal(t, geom.Rect{MinX: 0, MinY: -1, MaxX: 5, MaxY: 2}, a.Union(b))
}

// TestRectAccessors covers Width, Height, Center, and Origin.
func TestRectAccessors(t *testing.T) {
	r := geom.Rect{MinX: 2, MinY: 4, MaxX: 8, MaxY: 10}
	assert.Equal(t, 6.0, r.Width())
	assert.Equal(t, 6.0, r.Height())
	assert.Equal(t, geom.Point{X: 5, Y: 7}, r.Center())
	assert.Equal(t, geom.Point{X: 2, Y: 4}, r.Origin())
}

// TestAffineIdentity checks that Identity maps points to themselves.
func TestAffineIdentity(t *testing.T) {
	p := geom.Point{X: 3.5, Y: -1.25}
	assert.Equal(t, p, geom.Identity().Apply(p))
	assert.True(t, geom.Identity().IsIdentity())
	assert.False(t, geom.Translation(1, 0).IsIdentity())
}

// TestAffineTranslation checks a pure translation.
func TestAffineTranslation(t *testing.T) {
	got := geom.Translation(2, -3).Apply(geom.Point{X: 1, Y: 1})
	assert.Equal(t, geom.Point{X: 3, Y: -2}, got)
}

// TestAffineApply checks a full 2×3 transform.
func TestAffineApply(t *testing.T) {
	// Scale x by 2, y by 3, then translate by (1, 1).
	tr := geom.Affine{A: 2, D: 3, E: 1, F: 1}
	assert.Equal(t, geom.Point{X: 9, Y: 7}, tr.Apply(geom.Point{X: 4, Y: 2}))
}

// TestAffineThen verifies composition order: t first, then u.
func TestAffineThen(t *testing.T) {
	scale := geom.Affine{A: 2, D: 2}
	shift := geom.Translation(1, 1)

	p := geom.Point{X: 1, Y: 1}
	assert.Equal(t, geom.Point{X: 3, Y: 3}, scale.Then(shift).Apply(p), "scale then shift")
	assert.Equal(t, geom.Point{X: 4, Y: 4}, shift.Then(scale).Apply(p), "shift then scale")
}
