package page

import "github.com/veckit/spectral/geom"

// ObjectKind tags an object with the host's shape classification.
type ObjectKind uint8

// Object kinds recognized by the graph operations. KindGroup, KindSymbol
// and KindText qualify as graph vertices; KindPath objects with a single
// open component qualify as edges; everything else is ignored.
const (
	KindOther ObjectKind = iota
	KindGroup
	KindSymbol
	KindText
	KindPath
)

// kindNames maps ObjectKind to its document/TOML spelling.
var kindNames = map[ObjectKind]string{
	KindOther:  "other",
	KindGroup:  "group",
	KindSymbol: "symbol",
	KindText:   "text",
	KindPath:   "path",
}

// String returns the document spelling of the kind ("group", "path", …).
func (k ObjectKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "other"
}

// KindFromString parses a document kind spelling; unknown spellings map to
// KindOther, mirroring how the host treats shapes it cannot classify.
func KindFromString(s string) ObjectKind {
	for k, name := range kindNames {
		if name == s {
			return k
		}
	}

	return KindOther
}

// Segment is one curve component of a shape, in the object's local
// coordinates. Straight segments carry only their two endpoints.
type Segment struct {
	Start geom.Point
	End   geom.Point
}

// Path is an ordered sequence of segments plus a closed flag. An open path's
// endpoints are Segments[0].Start and Segments[len-1].End.
type Path struct {
	Segments []Segment
	Closed   bool
}

// Line builds a single-segment open path from a to b, in final coordinates.
// Complexity: O(1).
func Line(a, b geom.Point) Path {
	return Path{Segments: []Segment{{Start: a, End: b}}}
}

// Clone returns a deep copy of the path.
// Complexity: O(len(Segments)).
func (p Path) Clone() Path {
	segs := make([]Segment, len(p.Segments))
	copy(segs, p.Segments)

	return Path{Segments: segs, Closed: p.Closed}
}

// Object is one shape on a page.
//
// Shape geometry lives in local coordinates; Transform maps it to page
// coordinates. Selected mirrors the host's selection flag.
type Object struct {
	// ID uniquely identifies the object within its page.
	ID string

	// Kind is the host's shape classification.
	Kind ObjectKind

	// Selected reports membership in the current selection.
	Selected bool

	// Shape is the object's geometry in local coordinates.
	Shape Path

	// Transform maps Shape from local to page coordinates.
	Transform geom.Affine
}

// BoundingBox returns the object's axis-aligned bounding box in page
// coordinates, i.e. the box around every shape point mapped through the
// object's transform.
// Complexity: O(len(Shape.Segments)).
func (o *Object) BoundingBox() geom.Rect {
	pts := make([]geom.Point, 0, 2*len(o.Shape.Segments))
	for _, s := range o.Shape.Segments {
		pts = append(pts, o.Transform.Apply(s.Start), o.Transform.Apply(s.End))
	}

	return geom.RectAround(pts...)
}

// Clone returns a deep copy of the object.
// Complexity: O(len(Shape.Segments)).
func (o *Object) Clone() *Object {
	return &Object{
		ID:        o.ID,
		Kind:      o.Kind,
		Selected:  o.Selected,
		Shape:     o.Shape.Clone(),
		Transform: o.Transform,
	}
}
