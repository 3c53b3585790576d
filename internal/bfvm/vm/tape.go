package vm

import (
	"fmt"

	"github.com/vybium/vybium-bf-vm/internal/bfvm/core"
)

// ErrTapeOutOfBounds is a RuntimeError: the memory pointer moved below
// zero or at/past the tape's fixed capacity.
type ErrTapeOutOfBounds struct {
	Pointer  int
	Capacity int
}

func (e *ErrTapeOutOfBounds) Error() string {
	return fmt.Sprintf("vm: tape pointer %d out of bounds (capacity %d)", e.Pointer, e.Capacity)
}

// Tape is the machine's working memory: a fixed-capacity, zero-
// initialized sequence of field elements. Capacity is a construction
// parameter -- the spec leaves it unpinned because the downstream
// prover bounds it (commonly to a small power of two), and concrete
// callers are expected to choose a value appropriate to their
// programs.
type Tape struct {
	cells []core.FieldElement
}

// NewTape allocates a tape of the given capacity, all cells zero.
func NewTape(capacity int) *Tape {
	return &Tape{cells: make([]core.FieldElement, capacity)}
}

// Capacity returns the tape's fixed size.
func (t *Tape) Capacity() int {
	return len(t.cells)
}

// Get reads the cell at pointer mp.
func (t *Tape) Get(mp int) (core.FieldElement, error) {
	if mp < 0 || mp >= len(t.cells) {
		return core.Zero, &ErrTapeOutOfBounds{Pointer: mp, Capacity: len(t.cells)}
	}
	return t.cells[mp], nil
}

// Set writes v into the cell at pointer mp.
func (t *Tape) Set(mp int, v core.FieldElement) error {
	if mp < 0 || mp >= len(t.cells) {
		return &ErrTapeOutOfBounds{Pointer: mp, Capacity: len(t.cells)}
	}
	t.cells[mp] = v
	return nil
}

// Snapshot returns a copy of the tape's current contents, useful for
// test assertions and debugging -- never consulted by the executor
// itself.
func (t *Tape) Snapshot() []core.FieldElement {
	cp := make([]core.FieldElement, len(t.cells))
	copy(cp, t.cells)
	return cp
}
