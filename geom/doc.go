// Package geom provides the small set of planar primitives the rest of the
// module is built on: points, axis-aligned rectangles, and 2×3 affine
// transforms.
//
// Coordinates are page coordinates: y grows downward, so a rectangle's
// "top" edge is MinY and its "bottom" edge is MaxY. All values are float64
// and all operations are pure value arithmetic with no allocation.
package geom
