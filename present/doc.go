// Package present renders matrices for human and external consumption.
//
// Two read-only views are produced:
//
//   - Grid: a labeled, column-aligned table for interactive display, with
//     vertex ordinals as row/column headers;
//   - Bracket: a single-line `[ a b c; d e f; …]` string (rows separated
//     by ';', values space-separated) suitable for pasting into an
//     external linear-algebra tool.
//
// The package never mutates the document. An empty graph is reported as
// ErrNoSelection and nothing is rendered.
package present
