package extract

import (
	"errors"

	"github.com/veckit/spectral/geom"
	"github.com/veckit/spectral/page"
)

// Sentinel errors for extraction consumers.
var (
	// ErrNoSelection indicates the selection holds no qualifying vertex
	// shapes; matrix display and layout both require at least one.
	ErrNoSelection = errors.New("extract: no qualifying shapes selected")

	// ErrNilPage indicates a nil *page.Page was passed to FromSelection.
	ErrNilPage = errors.New("extract: page is nil")
)

// Vertex is a selected shape treated as a graph node. Immutable for the
// duration of one operation.
type Vertex struct {
	// Index is the 1-based ordinal in extraction order. Indices form a
	// contiguous 1..N sequence and match matrix row/column order exactly.
	Index int

	// ID is the underlying object's identifier.
	ID string

	// Box is the page-space bounding box expanded by the capture margin.
	Box geom.Rect

	// Center is the shape's center position before expansion.
	Center geom.Point

	// Object is the underlying page object.
	Object *page.Object
}

// Edge is a selected open path resolved to two vertices. Head and Tail may
// reference the same vertex when both endpoints land in one box.
type Edge struct {
	// Head is the vertex containing the last point of the last segment.
	Head *Vertex

	// Tail is the vertex containing the first point of the first segment.
	Tail *Vertex

	// Object is the original edge shape, kept so layout can rewrite it.
	Object *page.Object
}

// Graph is the result of one extraction pass: vertices in extraction order,
// the surviving edges, and the original selection's framing box.
type Graph struct {
	Vertices []*Vertex
	Edges    []*Edge

	// Bounds is the union of the vertex shapes' unexpanded bounding boxes;
	// layout stretches supplied coordinates to exactly fill it.
	Bounds geom.Rect
}

// Order returns the vertex count.
func (g *Graph) Order() int { return len(g.Vertices) }

// Size returns the edge count.
func (g *Graph) Size() int { return len(g.Edges) }
