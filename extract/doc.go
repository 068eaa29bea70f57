// Package extract turns a page selection into a graph.
//
// Selected shapes of kind group, symbol, or text become vertices; selected
// path shapes with exactly one open component become edge candidates. Each
// candidate's two endpoints (first point of the first segment, last point
// of the last segment, mapped through the shape's own transform) are
// resolved to vertices by point-in-box containment against vertex bounding
// boxes expanded by a fixed margin. The margin (default 5 page units per
// side) lets an endpoint that lands exactly on, or just outside, a vertex's
// visual boundary still resolve — it compensates for stroke-width slop.
//
// An edge whose endpoints do not both resolve is silently dropped.
// Resolution scans vertices in extraction order and keeps the first
// containing box; when expanded boxes overlap, this first-match rule is
// the documented, deterministic tie-break.
//
// Vertex indices are 1-based and contiguous in extraction order; they are
// the sole stable handle used by matrix rows/columns and coordinate arrays
// downstream.
package extract
