package layout

import "errors"

// Sentinel errors for layout planning. Matched with errors.Is; wrapped
// with positional context at the boundary where they arise.
var (
	// ErrBadCoordinate indicates a coordinate field that is not a finite
	// number. The wrap names the 1-based vertex ordinal.
	ErrBadCoordinate = errors.New("layout: coordinate is not a finite number")

	// ErrDegenerateSpan indicates all supplied values on one axis are
	// equal, so no scale can stretch them across the box.
	ErrDegenerateSpan = errors.New("layout: zero coordinate span")

	// ErrLengthMismatch indicates the coordinate arrays do not match the
	// vertex count one-to-one.
	ErrLengthMismatch = errors.New("layout: coordinate count does not match vertex count")

	// ErrGraphNil indicates a nil graph was passed to Plan.
	ErrGraphNil = errors.New("layout: graph is nil")

	// ErrPageNil indicates a nil page was passed to Plan.
	ErrPageNil = errors.New("layout: page is nil")
)
