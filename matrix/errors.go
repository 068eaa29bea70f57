// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All entry points return these
// sentinels (optionally wrapped with fmt.Errorf("ctx: %w", …)); tests and
// callers match them via errors.Is. No panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates a requested shape with a negative
	// row or column count. Zero is legal: an empty selection produces a
	// 0×0 matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrGraphNil indicates a nil graph was passed to Build.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownKind indicates a Kind outside {Adjacency, Degree, Laplacian}.
	ErrUnknownKind = errors.New("matrix: unknown matrix kind")
)
