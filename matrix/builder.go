// SPDX-License-Identifier: MIT

package matrix

import "github.com/veckit/spectral/extract"

// Kind selects which of the three graph matrices Build produces.
type Kind uint8

const (
	// Adjacency is the symmetric 0/1 connection matrix with zero diagonal.
	Adjacency Kind = iota

	// Degree is the diagonal matrix of incident-edge counts.
	Degree

	// Laplacian is Degree − Adjacency: degree diagonal, −1 off-diagonal
	// where an edge exists, zero row sums.
	Laplacian
)

// kindNames maps Kind to its display name.
var kindNames = [...]string{"adjacency", "degree", "laplacian"}

// String returns the lower-case display name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// KindFromString parses a display name into a Kind.
// Returns ErrUnknownKind for anything else.
func KindFromString(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}

	return 0, ErrUnknownKind
}

// Build produces the N×N matrix of the given kind for g, N = vertex count,
// row/column i addressing the vertex with Index i+1. The matrix is built
// from scratch on every call; g is never mutated.
//
// Per edge (head, tail):
//   - degree | laplacian: m[h][h] += 1 and m[t][t] += 1 — parallel edges
//     accumulate, and a self-loop (head == tail) counts twice;
//   - adjacency:          m[h][t] = m[t][h] = 1  (idempotent overwrite);
//   - laplacian:          m[h][t] = m[t][h] = −1 (idempotent overwrite,
//     accumulated degree kept on the diagonal).
//
// An empty graph yields the 0×0 matrix.
// Complexity: O(N² + E).
func Build(g *extract.Graph, kind Kind) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if kind != Adjacency && kind != Degree && kind != Laplacian {
		return nil, ErrUnknownKind
	}

	m, err := NewSquare(g.Order())
	if err != nil {
		return nil, err
	}

	for _, e := range g.Edges {
		h := e.Head.Index - 1 // ordinals are 1-based, rows are not
		t := e.Tail.Index - 1

		if kind == Degree || kind == Laplacian {
			if err = m.Add(h, h, 1); err != nil {
				return nil, err
			}
			if err = m.Add(t, t, 1); err != nil {
				return nil, err
			}
		}
		switch kind {
		case Adjacency:
			if err = m.Set(h, t, 1); err != nil {
				return nil, err
			}
			if err = m.Set(t, h, 1); err != nil {
				return nil, err
			}
		case Laplacian:
			if h == t {
				break // loop degree stays on the diagonal
			}
			if err = m.Set(h, t, -1); err != nil {
				return nil, err
			}
			if err = m.Set(t, h, -1); err != nil {
				return nil, err
			}
		case Degree:
			// diagonal already accumulated
		}
	}

	return m, nil
}
