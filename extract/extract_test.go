package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veckit/spectral/extract"
	"github.com/veckit/spectral/geom"
	"github.com/veckit/spectral/page"
)

// vertexObj builds a selected group shape: a closed 10×10 box whose
// top-left corner sits at (x, y).
func vertexObj(id string, x, y float64) *page.Object {
	return &page.Object{
		ID:       id,
		Kind:     page.KindGroup,
		Selected: true,
		Shape: page.Path{
			Closed: true,
			Segments: []page.Segment{
				{Start: geom.Point{X: x, Y: y}, End: geom.Point{X: x + 10, Y: y}},
				{Start: geom.Point{X: x + 10, Y: y}, End: geom.Point{X: x + 10, Y: y + 10}},
				{Start: geom.Point{X: x + 10, Y: y + 10}, End: geom.Point{X: x, Y: y + 10}},
				{Start: geom.Point{X: x, Y: y + 10}, End: geom.Point{X: x, Y: y}},
			},
		},
		Transform: geom.Identity(),
	}
}

// edgeObj builds a selected open path from a to b.
func edgeObj(id string, a, b geom.Point) *page.Object {
	return &page.Object{
		ID:        id,
		Kind:      page.KindPath,
		Selected:  true,
		Shape:     page.Line(a, b),
		Transform: geom.Identity(),
	}
}

// TestFromSelection_NilPage rejects a nil page.
func TestFromSelection_NilPage(t *testing.T) {
	_, err := extract.FromSelection(nil)
	assert.ErrorIs(t, err, extract.ErrNilPage)
}

// TestFromSelection_Empty yields an empty graph, not an error.
func TestFromSelection_Empty(t *testing.T) {
	g, err := extract.FromSelection(page.New())
	require.NoError(t, err)
	assert.Zero(t, g.Order())
	assert.Zero(t, g.Size())
}

// TestFromSelection_VertexIndices verifies contiguous 1..N ordinals in
// document order and the default margin expansion.
func TestFromSelection_VertexIndices(t *testing.T) {
	p := page.New(
		vertexObj("a", 0, 0),
		vertexObj("b", 100, 0),
		vertexObj("c", 200, 0),
	)
	g, err := extract.FromSelection(p)
	require.NoError(t, err)
	require.Equal(t, 3, g.Order())

	for i, v := range g.Vertices {
		assert.Equal(t, i+1, v.Index, "indices are a contiguous 1..N permutation")
	}
	assert.Equal(t, "a", g.Vertices[0].ID)
	assert.Equal(t, "c", g.Vertices[2].ID)

	// 10×10 box at origin expanded by 5 on each side.
	assert.Equal(t, geom.Rect{MinX: -5, MinY: -5, MaxX: 15, MaxY: 15}, g.Vertices[0].Box)
	assert.Equal(t, geom.Point{X: 5, Y: 5}, g.Vertices[0].Center)
}

// TestFromSelection_Bounds verifies the framing box is the union of
// unexpanded vertex boxes.
func TestFromSelection_Bounds(t *testing.T) {
	p := page.New(vertexObj("a", 0, 0), vertexObj("b", 100, 40))
	g, err := extract.FromSelection(p)
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{MinX: 0, MinY: 0, MaxX: 110, MaxY: 50}, g.Bounds,
		"bounds ignore the capture margin")
}

// TestFromSelection_EdgeResolution connects two vertices with one stroke.
func TestFromSelection_EdgeResolution(t *testing.T) {
	p := page.New(
		vertexObj("a", 0, 0),
		vertexObj("b", 100, 0),
		// tail starts at a's right edge, head ends just outside b's left
		// edge but inside its margin.
		edgeObj("e", geom.Point{X: 10, Y: 5}, geom.Point{X: 97, Y: 5}),
	)
	g, err := extract.FromSelection(p)
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())

	e := g.Edges[0]
	assert.Equal(t, "a", e.Tail.ID, "tail is the first point of the first segment")
	assert.Equal(t, "b", e.Head.ID, "head is the last point of the last segment")
	assert.Equal(t, "e", e.Object.ID)
}

// TestFromSelection_EdgeTransformApplied maps endpoints through the edge
// shape's own transform before containment lookup.
func TestFromSelection_EdgeTransformApplied(t *testing.T) {
	e := edgeObj("e", geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 0})
	e.Shape = page.Line(geom.Point{X: -95, Y: 5}, geom.Point{X: 5, Y: 5})
	e.Transform = geom.Translation(100, 0) // shifts both endpoints into place

	p := page.New(vertexObj("a", 0, 0), vertexObj("b", 100, 0), e)
	g, err := extract.FromSelection(p)
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())
	assert.Equal(t, "a", g.Edges[0].Tail.ID)
	assert.Equal(t, "b", g.Edges[0].Head.ID)
}

// TestFromSelection_DanglingEdgeDropped drops edges with any unresolved
// endpoint, silently.
func TestFromSelection_DanglingEdgeDropped(t *testing.T) {
	p := page.New(
		vertexObj("a", 0, 0),
		edgeObj("dangling", geom.Point{X: 5, Y: 5}, geom.Point{X: 500, Y: 500}),
		edgeObj("orphan", geom.Point{X: 300, Y: 300}, geom.Point{X: 500, Y: 500}),
	)
	g, err := extract.FromSelection(p)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Order())
	assert.Zero(t, g.Size(), "unresolved endpoints drop the whole edge")
}

// TestFromSelection_MultiSegmentEdge uses the first point of the first
// segment and the last point of the last segment of a polyline.
func TestFromSelection_MultiSegmentEdge(t *testing.T) {
	e := &page.Object{
		ID:       "poly",
		Kind:     page.KindPath,
		Selected: true,
		Shape: page.Path{Segments: []page.Segment{
			{Start: geom.Point{X: 5, Y: 5}, End: geom.Point{X: 50, Y: 40}},
			{Start: geom.Point{X: 50, Y: 40}, End: geom.Point{X: 105, Y: 5}},
		}},
		Transform: geom.Identity(),
	}
	p := page.New(vertexObj("a", 0, 0), vertexObj("b", 100, 0), e)

	g, err := extract.FromSelection(p)
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())
	assert.Equal(t, "a", g.Edges[0].Tail.ID)
	assert.Equal(t, "b", g.Edges[0].Head.ID)
}

// TestFromSelection_SkipsNonQualifying ignores closed paths, unselected
// shapes, and other kinds.
func TestFromSelection_SkipsNonQualifying(t *testing.T) {
	closed := edgeObj("closed", geom.Point{X: 5, Y: 5}, geom.Point{X: 105, Y: 5})
	closed.Shape.Closed = true

	unselected := vertexObj("hidden", 200, 200)
	unselected.Selected = false

	other := vertexObj("blob", 300, 300)
	other.Kind = page.KindOther

	p := page.New(vertexObj("a", 0, 0), vertexObj("b", 100, 0), closed, unselected, other)
	g, err := extract.FromSelection(p)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Order(), "only group/symbol/text selected shapes qualify")
	assert.Zero(t, g.Size(), "closed paths are not edge candidates")
}

// TestFromSelection_OverlapFirstMatch documents the tie-break: an endpoint
// inside two overlapping expanded boxes resolves to the earlier vertex.
func TestFromSelection_OverlapFirstMatch(t *testing.T) {
	p := page.New(
		vertexObj("first", 0, 0),
		vertexObj("second", 12, 0), // expanded boxes overlap around x ∈ [7,15]
		vertexObj("far", 200, 0),
		edgeObj("e", geom.Point{X: 14, Y: 5}, geom.Point{X: 205, Y: 5}),
	)
	g, err := extract.FromSelection(p)
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())
	assert.Equal(t, "first", g.Edges[0].Tail.ID, "first match in extraction order wins")
}

// TestFromSelection_WithMargin verifies the margin option changes capture.
func TestFromSelection_WithMargin(t *testing.T) {
	p := page.New(
		vertexObj("a", 0, 0),
		vertexObj("b", 100, 0),
		edgeObj("e", geom.Point{X: 5, Y: 5}, geom.Point{X: 98, Y: 5}),
	)

	g, err := extract.FromSelection(p, extract.WithMargin(0))
	require.NoError(t, err)
	assert.Zero(t, g.Size(), "zero margin rejects an endpoint 2 units out")

	g, err = extract.FromSelection(p, extract.WithMargin(3))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Size(), "3-unit margin captures it")
}

// TestWithMargin_PanicsOnNegative treats a negative margin as programmer
// error.
func TestWithMargin_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { extract.WithMargin(-1) })
}

// TestFromSelection_SelfLoop resolves both endpoints to the same vertex.
func TestFromSelection_SelfLoop(t *testing.T) {
	p := page.New(
		vertexObj("a", 0, 0),
		edgeObj("loop", geom.Point{X: 2, Y: 2}, geom.Point{X: 8, Y: 8}),
	)
	g, err := extract.FromSelection(p)
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())
	assert.Same(t, g.Edges[0].Head, g.Edges[0].Tail, "both endpoints in one box form a loop")
}
