package bfvm

import (
	"github.com/vybium/vybium-bf-vm/internal/bfvm/config"
	"github.com/vybium/vybium-bf-vm/internal/bfvm/core"
	"github.com/vybium/vybium-bf-vm/internal/bfvm/isa"
	"github.com/vybium/vybium-bf-vm/internal/bfvm/vm"
)

// FieldElement is an element of the Goldilocks prime field the whole
// core is arithmetized over.
type FieldElement = core.FieldElement

// Polynomial is a highest-degree-first dense coefficient vector over
// FieldElement.
type Polynomial = core.Polynomial

// InstructionKind is one of the eight closed instruction symbols.
type InstructionKind = isa.Kind

// Program is compiled, field-encoded instruction memory.
type Program = isa.Program

// FoldedInstruction is the auxiliary run-length-folded disassembly
// view of a compiled program.
type FoldedInstruction = isa.FoldedInstruction

// Registers is the 7-tuple of per-cycle machine state.
type Registers = vm.Registers

// Trace is the ordered sequence of Registers snapshots a run produces.
type Trace = vm.Trace

// TraceLogger is an opt-in per-cycle logging hook.
type TraceLogger = vm.TraceLogger

// MachineConfig configures tape capacity and an optional cycle cap.
type MachineConfig = config.MachineConfig

// DefaultMachineConfig returns a small, prover-friendly default
// configuration (256-cell tape, no cycle cap).
func DefaultMachineConfig() MachineConfig {
	return config.DefaultMachineConfig()
}
