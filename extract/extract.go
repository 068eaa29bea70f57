package extract

import (
	"github.com/veckit/spectral/geom"
	"github.com/veckit/spectral/page"
)

// FromSelection scans p's current selection and returns the extracted
// graph. An empty or non-qualifying selection yields an empty Graph, not
// an error; callers that need vertices check Order themselves or use
// ErrNoSelection.
//
// Stage 1 (Collect): selected group/symbol/text shapes become vertices in
// document order; boxes are expanded by the capture margin.
// Stage 2 (Resolve): selected single-component open paths become edges when
// both transformed endpoints land inside some vertex box; others are
// dropped silently.
//
// Complexity: O(V) collection + O(E·V) resolution; inputs are
// interactively-selected graphs of tens of vertices, so the linear scan is
// deliberate (no spatial index).
func FromSelection(p *page.Page, opts ...Option) (*Graph, error) {
	if p == nil {
		return nil, ErrNilPage
	}
	o := gatherOptions(opts...)

	g := &Graph{}
	sel := p.Selection()

	// Stage 1: vertices.
	for _, obj := range sel {
		if !isVertexKind(obj.Kind) {
			continue
		}
		box := obj.BoundingBox()
		v := &Vertex{
			Index:  len(g.Vertices) + 1,
			ID:     obj.ID,
			Box:    box.Expand(o.margin),
			Center: box.Center(),
			Object: obj,
		}
		if len(g.Vertices) == 0 {
			g.Bounds = box
		} else {
			g.Bounds = g.Bounds.Union(box)
		}
		g.Vertices = append(g.Vertices, v)
	}

	// Stage 2: edges.
	for _, obj := range sel {
		if !isEdgeCandidate(obj) {
			continue
		}
		segs := obj.Shape.Segments
		tailPt := obj.Transform.Apply(segs[0].Start)
		headPt := obj.Transform.Apply(segs[len(segs)-1].End)

		tail := g.resolve(tailPt)
		head := g.resolve(headPt)
		if tail == nil || head == nil {
			continue // both endpoints must resolve
		}
		g.Edges = append(g.Edges, &Edge{Head: head, Tail: tail, Object: obj})
	}

	return g, nil
}

// isVertexKind reports whether a shape kind qualifies as a vertex.
func isVertexKind(k page.ObjectKind) bool {
	return k == page.KindGroup || k == page.KindSymbol || k == page.KindText
}

// isEdgeCandidate reports whether obj is a path with exactly one open
// component carrying at least one segment.
func isEdgeCandidate(obj *page.Object) bool {
	return obj.Kind == page.KindPath &&
		!obj.Shape.Closed &&
		len(obj.Shape.Segments) > 0
}

// resolve maps a page-space point to the first vertex (in extraction
// order) whose expanded box contains it, or nil when none does. First
// match is the documented tie-break for overlapping boxes.
// Complexity: O(V).
func (g *Graph) resolve(pt geom.Point) *Vertex {
	for _, v := range g.Vertices {
		if v.Box.Contains(pt) {
			return v
		}
	}

	return nil
}
