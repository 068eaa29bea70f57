package page

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/veckit/spectral/geom"
)

// TOML document format. One [[object]] table per shape:
//
//	[[object]]
//	id        = "v1"
//	kind      = "group"            # group | symbol | text | path | other
//	selected  = true
//	transform = [1, 0, 0, 1, 0, 0] # A B C D E F; omitted = identity
//	closed    = true
//	segments  = [[0, 0, 10, 0], [10, 0, 10, 10]] # x1 y1 x2 y2 per segment

// objectDoc is the TOML shape of one object.
type objectDoc struct {
	ID        string      `toml:"id"`
	Kind      string      `toml:"kind"`
	Selected  bool        `toml:"selected"`
	Transform []float64   `toml:"transform,omitempty"`
	Closed    bool        `toml:"closed"`
	Segments  [][]float64 `toml:"segments"`
}

// documentDoc is the TOML shape of a whole page.
type documentDoc struct {
	Object []objectDoc `toml:"object"`
}

// Load reads a page document from path.
// Malformed tables are rejected with ErrBadDocument wrapped with the
// offending object's ID.
func Load(path string) (*Page, error) {
	var doc documentDoc
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("page: decode %s: %w", path, err)
	}

	objs := make([]*Object, 0, len(doc.Object))
	for _, od := range doc.Object {
		o, err := od.toObject()
		if err != nil {
			return nil, err
		}
		objs = append(objs, o)
	}

	return New(objs...), nil
}

// Save writes the page document to path, overwriting any existing file.
func Save(path string, p *Page) error {
	doc := documentDoc{Object: make([]objectDoc, 0, len(p.Objects))}
	for _, o := range p.Objects {
		doc.Object = append(doc.Object, fromObject(o))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("page: create %s: %w", path, err)
	}
	defer f.Close()

	if err = toml.NewEncoder(f).Encode(doc); err != nil {
		return fmt.Errorf("page: encode %s: %w", path, err)
	}

	return nil
}

// toObject converts one TOML table into an Object.
func (od objectDoc) toObject() (*Object, error) {
	tr := geom.Identity()
	switch len(od.Transform) {
	case 0:
		// identity
	case 6:
		tr = geom.Affine{
			A: od.Transform[0], B: od.Transform[1],
			C: od.Transform[2], D: od.Transform[3],
			E: od.Transform[4], F: od.Transform[5],
		}
	default:
		return nil, fmt.Errorf("page: object %q: transform needs 6 values, got %d: %w",
			od.ID, len(od.Transform), ErrBadDocument)
	}

	segs := make([]Segment, 0, len(od.Segments))
	for i, sv := range od.Segments {
		if len(sv) != 4 {
			return nil, fmt.Errorf("page: object %q: segment %d needs 4 values, got %d: %w",
				od.ID, i, len(sv), ErrBadDocument)
		}
		segs = append(segs, Segment{
			Start: geom.Point{X: sv[0], Y: sv[1]},
			End:   geom.Point{X: sv[2], Y: sv[3]},
		})
	}

	return &Object{
		ID:        od.ID,
		Kind:      KindFromString(od.Kind),
		Selected:  od.Selected,
		Shape:     Path{Segments: segs, Closed: od.Closed},
		Transform: tr,
	}, nil
}

// fromObject converts an Object into its TOML table.
func fromObject(o *Object) objectDoc {
	od := objectDoc{
		ID:       o.ID,
		Kind:     o.Kind.String(),
		Selected: o.Selected,
		Closed:   o.Shape.Closed,
		Segments: make([][]float64, 0, len(o.Shape.Segments)),
	}
	if !o.Transform.IsIdentity() {
		t := o.Transform
		od.Transform = []float64{t.A, t.B, t.C, t.D, t.E, t.F}
	}
	for _, s := range o.Shape.Segments {
		od.Segments = append(od.Segments, []float64{s.Start.X, s.Start.Y, s.End.X, s.End.Y})
	}

	return od
}
