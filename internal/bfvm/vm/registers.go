// Package vm implements the tape machine: registers, tape memory, and
// the cycle-accurate executor that consumes compiled program memory and
// an I/O pair to produce a per-cycle trace.
package vm

import "github.com/vybium/vybium-bf-vm/internal/bfvm/core"

// Registers is the 7-tuple of per-cycle machine state. Every field is a
// FieldElement, including ip and mp, so the whole row is directly
// consumable by a downstream arithmetization -- clk is the cycle
// counter, ip indexes program memory, ci/ni are the field-encoded
// current/next instruction, mp indexes the tape, mv is the tape value
// at mp, and mvi is the multiplicative inverse of mv or zero when
// mv is zero.
type Registers struct {
	Clk core.FieldElement
	Ip  core.FieldElement
	Ci  core.FieldElement
	Ni  core.FieldElement
	Mp  core.FieldElement
	Mv  core.FieldElement
	Mvi core.FieldElement
}

// NewRegisters returns the zero-initialized register tuple.
func NewRegisters() Registers {
	return Registers{}
}
