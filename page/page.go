package page

import "github.com/veckit/spectral/geom"

// Page is an ordered collection of objects. Order is document stacking
// order and is preserved by Clone and by every mutation primitive.
//
// A Page is exclusively owned by its caller for the duration of one
// operation; there is no internal locking.
type Page struct {
	Objects []*Object
}

// New creates a page holding objs in the given order.
// Complexity: O(1).
func New(objs ...*Object) *Page {
	return &Page{Objects: objs}
}

// Selection returns the selected objects in document order.
// Complexity: O(len(Objects)).
func (p *Page) Selection() []*Object {
	var sel []*Object
	for _, o := range p.Objects {
		if o.Selected {
			sel = append(sel, o)
		}
	}

	return sel
}

// Find returns the object with the given ID, or ErrObjectNotFound.
// Complexity: O(len(Objects)).
func (p *Page) Find(id string) (*Object, error) {
	for _, o := range p.Objects {
		if o.ID == id {
			return o, nil
		}
	}

	return nil, ErrObjectNotFound
}

// contains reports whether o is a member of this page (pointer identity).
func (p *Page) contains(o *Object) bool {
	for _, member := range p.Objects {
		if member == o {
			return true
		}
	}

	return false
}

// Translate moves o rigidly by delta, composing a page-space translation
// onto its transform. Internal shape geometry is untouched.
// Complexity: O(1).
func (p *Page) Translate(o *Object, delta geom.Point) error {
	if o == nil {
		return ErrNilObject
	}
	if !p.contains(o) {
		return ErrObjectNotFound
	}
	o.Transform = o.Transform.Then(geom.Translation(delta.X, delta.Y))

	return nil
}

// ReplaceShape swaps o's shape definition for path.
// The caller owns the coordinate convention of the new shape.
// Complexity: O(1).
func (p *Page) ReplaceShape(o *Object, path Path) error {
	if o == nil {
		return ErrNilObject
	}
	if !p.contains(o) {
		return ErrObjectNotFound
	}
	o.Shape = path

	return nil
}

// ResetTransform sets o's local-to-page transform to the identity.
// Used after a shape has been rewritten in final page coordinates.
// Complexity: O(1).
func (p *Page) ResetTransform(o *Object) error {
	if o == nil {
		return ErrNilObject
	}
	if !p.contains(o) {
		return ErrObjectNotFound
	}
	o.Transform = geom.Identity()

	return nil
}

// Clone returns a deep snapshot of the page: every object copied, order
// preserved. Snapshots back undo transactions.
// Complexity: O(total shape points).
func (p *Page) Clone() *Page {
	objs := make([]*Object, len(p.Objects))
	for i, o := range p.Objects {
		objs[i] = o.Clone()
	}

	return &Page{Objects: objs}
}

// Restore copies shape, transform, and selection state back from a snapshot
// taken by Clone, matching objects by ID. Objects present on the live page
// but absent from the snapshot are left untouched.
// Complexity: O(n²) over object count; pages are interactively sized.
func (p *Page) Restore(snapshot *Page) error {
	for _, o := range p.Objects {
		prev, err := snapshot.Find(o.ID)
		if err != nil {
			continue
		}
		o.Shape = prev.Shape.Clone()
		o.Transform = prev.Transform
		o.Selected = prev.Selected
	}

	return nil
}
