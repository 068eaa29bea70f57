// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix primitive and the
// graph→matrix builder for the three spectral-layout matrices:
//
//   - Adjacency: symmetric 0/1, zero diagonal.
//   - Degree: diagonal-only incident-edge counts; parallel edges count
//     with multiplicity.
//   - Laplacian: degree diagonal minus adjacency off-diagonal; every row
//     sums to zero.
//
// Matrices are recomputed from scratch on every request and indexed by
// vertex ordinal (row i, column j ⇔ vertices with Index i+1, j+1). An
// empty graph yields a legal 0×0 matrix.
//
// Parallel-edge policy, preserved faithfully from the source behavior:
// each parallel edge adds 1 to both endpoint degrees, while adjacency and
// Laplacian off-diagonal cells are idempotently overwritten to ±1
// regardless of multiplicity.
//
// The package never solves an eigenproblem; it only produces matrices for
// external computation.
package matrix
