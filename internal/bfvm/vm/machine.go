package vm

import (
	"fmt"
	"io"

	"github.com/vybium/vybium-bf-vm/internal/bfvm/core"
	"github.com/vybium/vybium-bf-vm/internal/bfvm/isa"
)

// ErrCycleCapExceeded is returned by RunWithCycleCap when a program has
// not halted within the given number of cycles. The spec defines no
// cycle bound of its own; callers that must terminate are expected to
// wrap execution with one, which this provides as a convenience.
type ErrCycleCapExceeded struct {
	Cap int
}

func (e *ErrCycleCapExceeded) Error() string {
	return fmt.Sprintf("vm: exceeded cycle cap of %d", e.Cap)
}

// Trace is the ordered sequence of Registers snapshots a run produces:
// one appended per cycle before that cycle's state-mutating instruction
// executes, plus a terminal all-zero-instruction snapshot.
type Trace []Registers

// Machine is the cycle-accurate executor: it consumes compiled program
// memory and an I/O pair and produces a Trace. It is single-use -- Run
// consumes it logically even though nothing prevents calling it twice.
type Machine struct {
	program isa.Program
	tape    *Tape
	input   io.Reader
	output  io.Writer
	logger  TraceLogger

	ip int
	mp int
	reg Registers

	trace Trace
}

// NewMachine constructs a Machine with a zero-initialized tape of the
// given capacity, zeroed registers, and an empty trace. tapeCapacity is
// a construction parameter: the spec leaves the concrete bound
// unpinned because the downstream prover constrains it, commonly to a
// small power of two.
func NewMachine(program isa.Program, input io.Reader, output io.Writer, tapeCapacity int) *Machine {
	return &Machine{
		program: program,
		tape:    NewTape(tapeCapacity),
		input:   input,
		output:  output,
	}
}

// SetTraceLogger attaches an optional per-cycle logging hook.
func (m *Machine) SetTraceLogger(logger TraceLogger) {
	m.logger = logger
}

// GetTrace returns the trace accumulated so far. Valid to call after Run
// returns, including after a RuntimeError -- the returned trace is then
// the prefix up to and including the snapshot of the failing cycle.
func (m *Machine) GetTrace() Trace {
	return m.trace
}

// Run executes the loaded program to completion (or to the first
// RuntimeError) and returns the resulting trace. The three phases
// below exist so the trace has a uniform algebraic shape at its
// boundaries: a first cycle that fixes ip at the program's entry
// point, a run of middle cycles each reading the live program, and a
// terminal snapshot of an all-zero synthetic instruction that a prover
// can use as a trivial boundary constraint.
func (m *Machine) Run() (Trace, error) {
	return m.run(0)
}

// RunWithCycleCap behaves like Run but fails with ErrCycleCapExceeded
// when the program has not halted after maxCycles cycles have been
// appended to the trace (the returned trace then holds exactly
// maxCycles rows), without that cap itself appearing anywhere in the trace's algebraic
// shape -- it is purely a host-side bound on non-terminating programs.
func (m *Machine) RunWithCycleCap(maxCycles int) (Trace, error) {
	return m.run(maxCycles)
}

func (m *Machine) run(maxCycles int) (Trace, error) {
	n := m.program.Len()

	// Phase A: first cycle.
	m.ip = 0
	m.reg.Clk = core.Zero
	m.reg.Ip = core.Zero
	m.reg.Ci = m.program.At(m.ip)
	m.reg.Ni = m.program.At(m.ip + 1)
	m.snapshot()

	if err := m.dispatch(); err != nil {
		return m.trace, err
	}

	// Phase B: middle cycles.
	for m.ip < n-1 {
		if maxCycles > 0 && len(m.trace) >= maxCycles {
			return m.trace, &ErrCycleCapExceeded{Cap: maxCycles}
		}

		m.reg.Clk = m.reg.Clk.Add(core.One)
		m.ip++
		m.reg.Ip = core.New(uint64(m.ip))
		m.reg.Ci = m.program.At(m.ip)
		if m.ip+1 < n {
			m.reg.Ni = m.program.At(m.ip + 1)
		} else {
			m.reg.Ni = core.Zero
		}
		m.snapshot()

		if err := m.dispatch(); err != nil {
			return m.trace, err
		}
	}

	// Phase C: terminal snapshot.
	m.reg.Clk = m.reg.Clk.Add(core.One)
	m.ip++
	m.reg.Ip = core.New(uint64(m.ip))
	m.reg.Ci = core.Zero
	m.reg.Ni = core.Zero
	m.snapshot()

	return m.trace, nil
}

func (m *Machine) snapshot() {
	m.trace = append(m.trace, m.reg)
	if m.logger != nil {
		m.logger.LogCycle(m.reg)
	}
}

// refreshMv reloads mp/mv/mvi from the tape at the current mp, per the
// invariant that every non-jump instruction leaves mp/mv/mvi consistent
// with tape[mp] for the next snapshot.
func (m *Machine) refreshMv() error {
	v, err := m.tape.Get(m.mp)
	if err != nil {
		return err
	}
	m.reg.Mp = core.New(uint64(m.mp))
	m.reg.Mv = v
	if v.IsZero() {
		m.reg.Mvi = core.Zero
	} else {
		m.reg.Mvi = v.Inverse()
	}
	return nil
}

// dispatch executes the effect of the current instruction (m.reg.Ci)
// against tape and registers, per the dispatch table in the Machine's
// component design: arithmetic on tape values is field arithmetic, not
// byte arithmetic (mp itself moves as a bounds-checked int), and jump instructions manage ip themselves rather than
// going through refreshMv.
func (m *Machine) dispatch() error {
	kind, err := isa.KindFromFieldElement(m.reg.Ci)
	if err != nil {
		return err
	}

	switch kind {
	case isa.Right:
		m.mp++
		return m.refreshMv()

	case isa.Left:
		m.mp--
		return m.refreshMv()

	case isa.Plus:
		v, err := m.tape.Get(m.mp)
		if err != nil {
			return err
		}
		if err := m.tape.Set(m.mp, v.Add(core.One)); err != nil {
			return err
		}
		return m.refreshMv()

	case isa.Minus:
		v, err := m.tape.Get(m.mp)
		if err != nil {
			return err
		}
		if err := m.tape.Set(m.mp, v.Sub(core.One)); err != nil {
			return err
		}
		return m.refreshMv()

	case isa.Input:
		var b [1]byte
		if _, err := io.ReadFull(m.input, b[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return &ErrInputExhausted{}
			}
			return &ErrIo{Cause: err}
		}
		if err := m.tape.Set(m.mp, core.New(uint64(b[0]))); err != nil {
			return err
		}
		return m.refreshMv()

	case isa.Output:
		v, err := m.tape.Get(m.mp)
		if err != nil {
			return err
		}
		b := byte(v.Uint64() & 0xFF)
		if _, err := m.output.Write([]byte{b}); err != nil {
			return &ErrIo{Cause: err}
		}
		return m.refreshMv()

	case isa.JumpIfZero:
		target := int(m.program.At(m.ip + 1).Uint64())
		v, err := m.tape.Get(m.mp)
		if err != nil {
			return err
		}
		if v.IsZero() {
			m.ip = target
		} else {
			m.ip++
		}
		return nil

	case isa.JumpIfNotZero:
		target := int(m.program.At(m.ip + 1).Uint64())
		v, err := m.tape.Get(m.mp)
		if err != nil {
			return err
		}
		if !v.IsZero() {
			m.ip = target - 1
		} else {
			m.ip++
		}
		return nil
	}

	return nil
}
