package bfvm

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompileAndRunPlusPlusDot(t *testing.T) {
	var out bytes.Buffer
	tr, err := Run("++.", strings.NewReader(""), &out, DefaultMachineConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Bytes()[0] != 0x02 {
		t.Errorf("output = %v, want [0x02]", out.Bytes())
	}
	if len(tr) == 0 {
		t.Fatal("expected non-empty trace")
	}
}

func TestCompileUnbalancedBracketsReturnsPublicError(t *testing.T) {
	_, err := Compile("+]")
	if err == nil {
		t.Fatal("expected error")
	}
	be, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %T, want *Error", err)
	}
	if be.Code != ErrUnbalancedBrackets {
		t.Errorf("code = %v, want ErrUnbalancedBrackets", be.Code)
	}
}

func TestRunInputExhaustedReturnsPublicError(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(",", strings.NewReader(""), &out, DefaultMachineConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	be, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %T, want *Error", err)
	}
	if be.Code != ErrInputExhausted {
		t.Errorf("code = %v, want ErrInputExhausted", be.Code)
	}
}

func TestRunCycleCapExceeded(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultMachineConfig().WithCycleCap(50)
	_, err := Run("+[]", strings.NewReader(""), &out, cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	be, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %T, want *Error", err)
	}
	if be.Code != ErrCycleCapExceeded {
		t.Errorf("code = %v, want ErrCycleCapExceeded", be.Code)
	}
}

func TestProgramAndTraceDigestsAreStable(t *testing.T) {
	prog, err := Compile("++.")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	d1, err := ProgramDigest(prog)
	if err != nil {
		t.Fatalf("ProgramDigest: %v", err)
	}
	d2, err := ProgramDigest(prog)
	if err != nil {
		t.Fatalf("ProgramDigest: %v", err)
	}
	if d1 != d2 {
		t.Errorf("ProgramDigest not stable: %s != %s", d1, d2)
	}

	var out bytes.Buffer
	tr, err := Run("++.", strings.NewReader(""), &out, DefaultMachineConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if TraceDigest(tr) != TraceDigest(tr) {
		t.Errorf("TraceDigest not stable")
	}
}

func TestConcatenatedProgramsAreOutputEquivalent(t *testing.T) {
	var outA, outC bytes.Buffer
	if _, err := Run("++.", strings.NewReader(""), &outA, DefaultMachineConfig()); err != nil {
		t.Fatalf("Run a: %v", err)
	}
	if _, err := Run("+++.", strings.NewReader(""), &outA, DefaultMachineConfig()); err != nil {
		t.Fatalf("Run b: %v", err)
	}
	if _, err := Run("++.+++.", strings.NewReader(""), &outC, DefaultMachineConfig()); err != nil {
		t.Fatalf("Run concatenated: %v", err)
	}
	if OutputDigest(outA.Bytes()) != OutputDigest(outC.Bytes()) {
		t.Errorf("digests differ: %v vs %v", outA.Bytes(), outC.Bytes())
	}
}
