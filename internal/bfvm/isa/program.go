package isa

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/vybium/vybium-bf-vm/internal/bfvm/core"
)

// Program is the compiled, field-encoded instruction memory: a dense
// sequence where each non-jump instruction occupies one cell and each
// bracket instruction occupies two (opcode, target).
type Program struct {
	Cells []core.FieldElement
}

// Len returns the number of cells in program memory.
func (p Program) Len() int {
	return len(p.Cells)
}

// At returns the cell at index i, or zero if i is past the end -- the
// Machine relies on this to read "one past end" as zero without a bounds
// check on every dispatch.
func (p Program) At(i int) core.FieldElement {
	if i < 0 || i >= len(p.Cells) {
		return core.Zero
	}
	return p.Cells[i]
}

// MarshalBinary encodes program memory as the canonical interchange
// form: a sequence of 64-bit little-endian field elements.
func (p Program) MarshalBinary() ([]byte, error) {
	out := make([]byte, 8*len(p.Cells))
	for i, c := range p.Cells {
		binary.LittleEndian.PutUint64(out[i*8:i*8+8], c.Uint64())
	}
	return out, nil
}

// UnmarshalBinary decodes program memory from the canonical interchange
// form produced by MarshalBinary.
func (p *Program) UnmarshalBinary(data []byte) error {
	if len(data)%8 != 0 {
		return fmt.Errorf("isa: program memory length %d is not a multiple of 8", len(data))
	}
	cells := make([]core.FieldElement, len(data)/8)
	for i := range cells {
		cells[i] = core.New(binary.LittleEndian.Uint64(data[i*8 : i*8+8]))
	}
	p.Cells = cells
	return nil
}

// String renders a human-readable, index-annotated dump of program
// memory, decoding opcodes back to their symbol where possible and
// leaving target/argument cells as bare numbers.
func (p Program) String() string {
	var b strings.Builder
	for i := 0; i < len(p.Cells); i++ {
		fmt.Fprintf(&b, "%4d: ", i)
		if k, err := KindFromFieldElement(p.Cells[i]); err == nil {
			fmt.Fprintf(&b, "%s", k)
			if k.IsJump() && i+1 < len(p.Cells) {
				fmt.Fprintf(&b, " -> %s\n", p.Cells[i+1])
				i++
				continue
			}
			b.WriteByte('\n')
			continue
		}
		fmt.Fprintf(&b, "%s\n", p.Cells[i])
	}
	return b.String()
}
