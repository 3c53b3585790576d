// Package isa defines the eight-symbol instruction alphabet, the
// field-encoded program memory it compiles to, and the compiler that
// produces that memory from source text.
package isa

import (
	"fmt"

	"github.com/vybium/vybium-bf-vm/internal/bfvm/core"
)

// Kind is one of the eight closed instruction symbols. Its underlying
// value is always the symbol's ASCII byte, which is also the value used
// to encode it into program memory -- the byte value is the bridge
// between the tagged-variant dispatch form and the field-encoded form,
// and must be preserved exactly (the downstream prover's constraints
// reference these numeric opcodes).
type Kind byte

const (
	Right         Kind = '>'
	Left          Kind = '<'
	Plus          Kind = '+'
	Minus         Kind = '-'
	Output        Kind = '.'
	Input         Kind = ','
	JumpIfZero    Kind = '['
	JumpIfNotZero Kind = ']'
)

// IsInstruction reports whether b is one of the eight alphabet symbols.
func IsInstruction(b byte) bool {
	switch Kind(b) {
	case Right, Left, Plus, Minus, Output, Input, JumpIfZero, JumpIfNotZero:
		return true
	default:
		return false
	}
}

// String renders the symbol itself.
func (k Kind) String() string {
	return string(rune(k))
}

// FieldElement returns the field encoding of k: its ASCII byte value.
func (k Kind) FieldElement() core.FieldElement {
	return core.New(uint64(k))
}

// IsJump reports whether k is one of the two bracket instructions, which
// are followed in program memory by a target-address cell.
func (k Kind) IsJump() bool {
	return k == JumpIfZero || k == JumpIfNotZero
}

// KindFromFieldElement decodes a program-memory cell back into an
// instruction kind. It returns an error if the value does not correspond
// to any of the eight alphabet symbols -- used when disassembling
// program memory, and by the Machine to decode the current instruction
// on every cycle.
func KindFromFieldElement(v core.FieldElement) (Kind, error) {
	b := v.Uint64()
	if b > 255 || !IsInstruction(byte(b)) {
		return 0, fmt.Errorf("isa: %d is not a valid instruction opcode", b)
	}
	return Kind(b), nil
}
