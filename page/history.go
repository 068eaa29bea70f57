package page

// Command is one atomic, reversible document mutation. Apply and Revert
// must be exact inverses; the History treats each command as a single step
// regardless of how many objects it touches internally.
type Command interface {
	// Apply performs the mutation.
	Apply() error

	// Revert undoes the mutation exactly.
	Revert() error
}

// History is the host's undo manager: a linear undo/redo stack of applied
// commands. A newly registered command supersedes — but does not destroy —
// anything on the redo stack.
type History struct {
	undo []Command
	redo []Command
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Do applies cmd and, on success, pushes it onto the undo stack and clears
// the redo stack. On failure nothing is recorded.
// Complexity: O(1) beyond the command itself.
func (h *History) Do(cmd Command) error {
	if err := cmd.Apply(); err != nil {
		return err
	}
	h.undo = append(h.undo, cmd)
	h.redo = h.redo[:0]

	return nil
}

// Undo reverts the most recent command and moves it to the redo stack.
// Returns ErrEmptyHistory when there is nothing to undo.
func (h *History) Undo() error {
	if len(h.undo) == 0 {
		return ErrEmptyHistory
	}
	cmd := h.undo[len(h.undo)-1]
	if err := cmd.Revert(); err != nil {
		return err
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cmd)

	return nil
}

// Redo re-applies the most recently undone command.
// Returns ErrEmptyHistory when there is nothing to redo.
func (h *History) Redo() error {
	if len(h.redo) == 0 {
		return ErrEmptyHistory
	}
	cmd := h.redo[len(h.redo)-1]
	if err := cmd.Apply(); err != nil {
		return err
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cmd)

	return nil
}

// Len returns the number of undoable commands.
func (h *History) Len() int { return len(h.undo) }
