package layout

import (
	"fmt"

	"github.com/veckit/spectral/extract"
	"github.com/veckit/spectral/geom"
	"github.com/veckit/spectral/page"
)

// vertexMove is one planned rigid translation: obj ends up with its
// bounding-box top-left at target.
type vertexMove struct {
	obj    *page.Object
	target geom.Point
}

// edgeRewrite is one planned edge replacement: a straight open segment
// from head to tail in final page coordinates, transform reset.
type edgeRewrite struct {
	obj  *page.Object
	head geom.Point
	tail geom.Point
}

// Transaction is an immutable layout operation: target positions for every
// vertex, straight-segment rewrites for every edge, and a pre-mutation
// snapshot of the page. It implements page.Command; the host History
// treats Apply as a single atomic step however many objects it touches.
type Transaction struct {
	page     *page.Page
	snapshot *page.Page
	moves    []vertexMove
	rewrites []edgeRewrite
}

// Plan validates the supplied coordinate arrays against g, fits both axes
// onto g.Bounds, and builds the transaction. Nothing is mutated; the
// pre-mutation snapshot is captured here.
//
// Stage 1 (Validate): nil checks, one coordinate per vertex per axis.
// Stage 2 (Fit): affine fit per axis; degenerate spans abort.
// Stage 3 (Assemble): mapped position per vertex (indexed by ordinal),
// rewrite per edge, snapshot clone.
//
// Complexity: O(V + E) plus O(page) for the snapshot.
func Plan(p *page.Page, g *extract.Graph, ex, ey []float64) (*Transaction, error) {
	if p == nil {
		return nil, ErrPageNil
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Order() == 0 {
		return nil, extract.ErrNoSelection
	}
	if len(ex) != g.Order() || len(ey) != g.Order() {
		return nil, fmt.Errorf("got %d/%d values for %d vertices: %w",
			len(ex), len(ey), g.Order(), ErrLengthMismatch)
	}

	xmap, err := FitX(ex, g.Bounds)
	if err != nil {
		return nil, err
	}
	ymap, err := FitY(ey, g.Bounds)
	if err != nil {
		return nil, err
	}

	// Mapped position per vertex, addressed by ordinal−1. The same point
	// anchors the vertex and terminates its incident edges.
	mapped := make([]geom.Point, g.Order())
	tx := &Transaction{page: p, snapshot: p.Clone()}
	for i, v := range g.Vertices {
		mapped[i] = geom.Point{X: xmap.Apply(ex[i]), Y: ymap.Apply(ey[i])}
		tx.moves = append(tx.moves, vertexMove{obj: v.Object, target: mapped[i]})
	}
	for _, e := range g.Edges {
		tx.rewrites = append(tx.rewrites, edgeRewrite{
			obj:  e.Object,
			head: mapped[e.Head.Index-1],
			tail: mapped[e.Tail.Index-1],
		})
	}

	return tx, nil
}

// Apply performs the layout: every vertex is translated rigidly so its
// bounding-box origin lands on its mapped position, and every edge's shape
// is replaced by one straight open segment from the mapped head to the
// mapped tail with its transform reset to identity (the new endpoints are
// already final page coordinates).
func (tx *Transaction) Apply() error {
	for _, mv := range tx.moves {
		delta := mv.target.Sub(mv.obj.BoundingBox().Origin())
		if err := tx.page.Translate(mv.obj, delta); err != nil {
			return err
		}
	}
	for _, rw := range tx.rewrites {
		if err := tx.page.ReplaceShape(rw.obj, page.Line(rw.head, rw.tail)); err != nil {
			return err
		}
		if err := tx.page.ResetTransform(rw.obj); err != nil {
			return err
		}
	}

	return nil
}

// Revert restores the pre-mutation snapshot exactly: every vertex's
// position and every edge's shape and transform.
func (tx *Transaction) Revert() error {
	return tx.page.Restore(tx.snapshot)
}

// VertexCount returns the number of planned vertex moves.
func (tx *Transaction) VertexCount() int { return len(tx.moves) }

// EdgeCount returns the number of planned edge rewrites.
func (tx *Transaction) EdgeCount() int { return len(tx.rewrites) }
