// Package bfvm is the public, stable API over the brainfuck-zkvm core:
// compiling source text to field-encoded program memory, executing it
// to produce a per-cycle trace, and fingerprinting both for a
// downstream prover or CLI. internal/bfvm/{core,isa,vm,digest,config}
// hold the implementation; this package wraps their errors into a
// single taxonomy and is the only import path external callers need.
package bfvm

import (
	"io"

	"github.com/vybium/vybium-bf-vm/internal/bfvm/config"
	"github.com/vybium/vybium-bf-vm/internal/bfvm/digest"
	"github.com/vybium/vybium-bf-vm/internal/bfvm/isa"
	"github.com/vybium/vybium-bf-vm/internal/bfvm/vm"
)

// Compile turns source text into field-encoded program memory. Every
// byte outside the eight instruction symbols is silently discarded.
func Compile(source string) (Program, error) {
	prog, err := isa.Compile(source)
	if err != nil {
		if ce, ok := err.(*isa.CompileError); ok {
			return Program{}, &Error{
				Code:    ErrUnbalancedBrackets,
				Message: ce.Message,
				Cause:   err,
			}
		}
		return Program{}, &Error{Code: ErrUnknown, Message: "compile failed", Cause: err}
	}
	return prog, nil
}

// CompileFolded returns the auxiliary run-length-folded disassembly of
// source, alongside the same bracket-balance errors Compile reports.
func CompileFolded(source string) ([]FoldedInstruction, error) {
	folded, err := isa.CompileFolded(source)
	if err != nil {
		if ce, ok := err.(*isa.CompileError); ok {
			return nil, &Error{Code: ErrUnbalancedBrackets, Message: ce.Message, Cause: err}
		}
		return nil, &Error{Code: ErrUnknown, Message: "compile failed", Cause: err}
	}
	return folded, nil
}

// Machine wraps the internal executor behind the public API, adding
// error translation at the boundary.
type Machine struct {
	inner *vm.Machine
}

// NewMachine constructs a Machine over program with the given I/O pair
// and configuration. cfg is validated immediately.
func NewMachine(program Program, input io.Reader, output io.Writer, cfg MachineConfig) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Code: ErrInvalidConfig, Message: "invalid machine configuration", Cause: err}
	}
	return &Machine{inner: vm.NewMachine(program, input, output, cfg.TapeCapacity)}, nil
}

// SetTraceLogger attaches an optional per-cycle logging hook.
func (m *Machine) SetTraceLogger(logger TraceLogger) {
	m.inner.SetTraceLogger(logger)
}

// Run executes the machine to completion (or to the first RuntimeError).
// When cycleCap is positive, a non-terminating program fails with
// ErrCycleCapExceeded instead of running forever. The CycleCap of the
// MachineConfig passed to NewMachine is not consulted here; only the
// cycleCap argument bounds the run.
func (m *Machine) Run(cycleCap int) (Trace, error) {
	var tr Trace
	var err error
	if cycleCap > 0 {
		tr, err = m.inner.RunWithCycleCap(cycleCap)
	} else {
		tr, err = m.inner.Run()
	}
	if err != nil {
		return tr, translateRuntimeError(err)
	}
	return tr, nil
}

// GetTrace returns whatever trace has been accumulated so far, valid
// to call even after a failed Run.
func (m *Machine) GetTrace() Trace {
	return m.inner.GetTrace()
}

func translateRuntimeError(err error) error {
	switch e := err.(type) {
	case *vm.ErrTapeOutOfBounds:
		return &Error{Code: ErrTapeOutOfBounds, Message: e.Error(), Cause: err}
	case *vm.ErrInputExhausted:
		return &Error{Code: ErrInputExhausted, Message: e.Error(), Cause: err}
	case *vm.ErrIo:
		return &Error{Code: ErrIo, Message: e.Error(), Cause: err}
	case *vm.ErrCycleCapExceeded:
		return &Error{Code: ErrCycleCapExceeded, Message: e.Error(), Cause: err}
	default:
		return &Error{Code: ErrUnknown, Message: "machine run failed", Cause: err}
	}
}

// Run is a convenience that compiles source, runs it against input and
// output with the given configuration, and returns the finished trace.
func Run(source string, input io.Reader, output io.Writer, cfg MachineConfig) (Trace, error) {
	prog, err := Compile(source)
	if err != nil {
		return nil, err
	}
	m, err := NewMachine(prog, input, output, cfg)
	if err != nil {
		return nil, err
	}
	return m.Run(cfg.CycleCap)
}

// ProgramDigest fingerprints compiled program memory.
func ProgramDigest(p Program) (digest.Digest, error) {
	return digest.Program(p)
}

// TraceDigest fingerprints a finished trace.
func TraceDigest(tr Trace) digest.Digest {
	return digest.Trace(tr)
}

// OutputDigest fingerprints a raw output byte stream.
func OutputDigest(b []byte) digest.Digest {
	return digest.Output(b)
}
