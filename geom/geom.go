package geom

// Point is a location in page coordinates (y grows downward).
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by d.
// Complexity: O(1).
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p (p − q).
// Complexity: O(1).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in page coordinates.
// MinY is the top edge and MaxY the bottom edge (y grows downward).
// A Rect with Min > Max on either axis is empty.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// RectAround builds the smallest Rect containing all pts.
// Returns the zero Rect for an empty slice.
// Complexity: O(len(pts)).
func RectAround(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}

	return r
}

// Width returns MaxX − MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY − MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the midpoint of the rectangle.
// Complexity: O(1).
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Origin returns the top-left corner (MinX, MinY).
func (r Rect) Origin() Point { return Point{X: r.MinX, Y: r.MinY} }

// Contains reports whether p lies inside r, edges inclusive.
// Complexity: O(1).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Expand grows the rectangle by margin on every side.
// A negative margin shrinks it; callers own the non-empty invariant.
// Complexity: O(1).
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		MinX: r.MinX - margin,
		MinY: r.MinY - margin,
		MaxX: r.MaxX + margin,
		MaxY: r.MaxY + margin,
	}
}

// Union returns the smallest Rect containing both r and s.
// Complexity: O(1).
func (r Rect) Union(s Rect) Rect {
	if s.MinX < r.MinX {
		r.MinX = s.MinX
	}
	if s.MinY < r.MinY {
		r.MinY = s.MinY
	}
	if s.MaxX > r.MaxX {
		r.MaxX = s.MaxX
	}
	if s.MaxY > r.MaxY {
		r.MaxY = s.MaxY
	}

	return r
}
