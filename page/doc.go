// Package page models the host drawing application's document surface: a
// flat list of objects carrying a kind tag, a selection flag, a shape made
// of ordered curve segments, and a local-to-page affine transform.
//
// It exposes exactly the collaborator contract the graph operations need:
//
//   - iterate objects with selection flag and kind tag,
//   - query bounding boxes, shape geometry, and transforms,
//   - mutate: translate an object, replace its shape, reset its transform,
//   - Clone a page as an undo snapshot,
//   - register atomic, undoable commands with a History.
//
// Documents round-trip through a TOML format (Load / Save) so the CLI and
// tests have a concrete host to operate on.
//
// Errors:
//
//	ErrObjectNotFound - referenced object is not on the page.
//	ErrNilObject      - nil *Object passed to a mutation primitive.
//	ErrEmptyHistory   - Undo/Redo with nothing to pop.
//	ErrBadDocument    - malformed TOML document table.
package page
