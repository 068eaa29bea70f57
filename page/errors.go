package page

import "errors"

// Sentinel errors for page operations. Callers match with errors.Is.
var (
	// ErrObjectNotFound indicates an operation referenced an object that is
	// not a member of this page.
	ErrObjectNotFound = errors.New("page: object not found")

	// ErrNilObject indicates a nil *Object was passed to a mutation primitive.
	ErrNilObject = errors.New("page: nil object")

	// ErrEmptyHistory indicates Undo or Redo was called with an empty stack.
	ErrEmptyHistory = errors.New("page: history is empty")

	// ErrBadDocument indicates a malformed TOML document table
	// (wrong transform or segment arity).
	ErrBadDocument = errors.New("page: malformed document")
)
