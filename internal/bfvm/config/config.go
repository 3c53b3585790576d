// Package config adapts the teacher's zkSTARK proof-generation Config
// (internal/vybium-starks-vm/utils/config.go) into the much narrower
// configuration this machine actually needs: tape capacity and an
// optional cycle cap, plus the power-of-two helpers the teacher's
// utils/common.go exposes for sizing a prover's evaluation domain --
// kept here as hints for the (out-of-scope) downstream prover to size
// its trace padding against.
package config

import "fmt"

// MachineConfig configures a Machine construction and its bounded
// execution.
type MachineConfig struct {
	// TapeCapacity is the fixed size of the machine's tape. The spec
	// leaves this a construction parameter; common values in the
	// domain range from the tens to the low hundreds of cells.
	TapeCapacity int

	// CycleCap, if positive, bounds execution via RunWithCycleCap.
	// Zero means unbounded (plain Run semantics).
	CycleCap int
}

// DefaultMachineConfig returns a small, prover-friendly configuration:
// a 256-cell tape (a convenient power of two) and no cycle cap.
func DefaultMachineConfig() MachineConfig {
	return MachineConfig{
		TapeCapacity: 256,
		CycleCap:     0,
	}
}

// Validate reports a configuration error before it reaches Machine
// construction.
func (c MachineConfig) Validate() error {
	if c.TapeCapacity <= 0 {
		return fmt.Errorf("config: tape capacity must be positive, got %d", c.TapeCapacity)
	}
	if c.CycleCap < 0 {
		return fmt.Errorf("config: cycle cap must be non-negative, got %d", c.CycleCap)
	}
	return nil
}

// WithTapeCapacity returns a copy of c with TapeCapacity set.
func (c MachineConfig) WithTapeCapacity(n int) MachineConfig {
	c.TapeCapacity = n
	return c
}

// WithCycleCap returns a copy of c with CycleCap set.
func (c MachineConfig) WithCycleCap(n int) MachineConfig {
	c.CycleCap = n
	return c
}

// IsPowerOfTwo reports whether n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// Log2 computes the base-2 logarithm of a power of two, or -1 if n is
// not one.
func Log2(n int) int {
	if !IsPowerOfTwo(n) {
		return -1
	}
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// NextPowerOfTwo returns the smallest power of two >= n, a hint for
// sizing a prover's evaluation domain against a trace length that is
// rarely itself a power of two.
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	if IsPowerOfTwo(n) {
		return n
	}
	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
