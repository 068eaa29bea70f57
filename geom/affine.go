package geom

// Affine is a 2×3 affine transform in column-vector convention:
//
//	x' = A·x + C·y + E
//	y' = B·x + D·y + F
//
// The zero value is NOT the identity; use Identity().
type Affine struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

// Identity returns the identity transform.
// Complexity: O(1).
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translation returns a pure translation by (dx, dy).
// Complexity: O(1).
func Translation(dx, dy float64) Affine {
	return Affine{A: 1, D: 1, E: dx, F: dy}
}

// Apply maps p through the transform.
// Complexity: O(1).
func (t Affine) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// IsIdentity reports whether t is exactly the identity transform.
// Exact comparison is intentional: identity here means "was reset",
// not "numerically close to identity".
func (t Affine) IsIdentity() bool {
	return t == Identity()
}

// Then returns the composition "t, then u" (u ∘ t).
// Complexity: O(1).
func (t Affine) Then(u Affine) Affine {
	return Affine{
		A: u.A*t.A + u.C*t.B,
		B: u.B*t.A + u.D*t.B,
		C: u.A*t.C + u.C*t.D,
		D: u.B*t.C + u.D*t.D,
		E: u.A*t.E + u.C*t.F + u.E,
		F: u.B*t.E + u.D*t.F + u.F,
	}
}
