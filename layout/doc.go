// Package layout re-positions an extracted graph from two externally
// supplied per-vertex coordinate arrays (typically eigenvector components
// computed outside this module) and re-draws every edge as a straight
// segment.
//
// The mapping is an affine fit per axis: the min/max range of the supplied
// values is stretched to exactly fill the original selection's bounding
// box, regardless of the raw values' scale or sign. The y axis is visually
// inverted — the largest raw y maps to the top of the box.
//
// Coordinate input is parsed eagerly and strictly: a non-numeric or
// non-finite field fails the whole operation with ErrBadCoordinate before
// any fitting, and a zero value span on either axis fails with
// ErrDegenerateSpan before any mutation. Malformed input never degrades a
// layout silently.
//
// The mutation itself is a Transaction — an immutable record carrying the
// target positions and a pre-mutation page snapshot — which implements
// page.Command: Apply performs every vertex translation and edge rewrite
// as one atomic step, Revert restores the snapshot exactly.
package layout
