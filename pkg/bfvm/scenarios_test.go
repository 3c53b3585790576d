package bfvm

import (
	"bytes"
	"strings"
	"testing"
)

// TestScenario01IncrementAndOutput exercises spec.md scenario 1: "++."
// with no input outputs 0x02 and the terminal trace row lands at
// clk=4, ip=3, ci=ni=0.
func TestScenario01IncrementAndOutput(t *testing.T) {
	var out bytes.Buffer
	tr, err := Run("++.", strings.NewReader(""), &out, DefaultMachineConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := out.Bytes(); len(got) != 1 || got[0] != 0x02 {
		t.Fatalf("output = %v, want [0x02]", got)
	}

	last := tr[len(tr)-1]
	if last.Clk.Uint64() != 4 {
		t.Errorf("terminal clk = %d, want 4", last.Clk.Uint64())
	}
	if last.Ip.Uint64() != 3 {
		t.Errorf("terminal ip = %d, want 3", last.Ip.Uint64())
	}
	if !last.Ci.IsZero() || !last.Ni.IsZero() {
		t.Errorf("terminal ci/ni = %s/%s, want 0/0", last.Ci, last.Ni)
	}
}

// TestScenario02EchoInput exercises scenario 2: "," then "." echoes a
// single input byte, and tape[0] snapshots its field value.
func TestScenario02EchoInput(t *testing.T) {
	var out bytes.Buffer
	prog, err := Compile(",.")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	machine, err := NewMachine(prog, strings.NewReader("A"), &out, DefaultMachineConfig())
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	tr, err := machine.Run(0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := out.Bytes(); len(got) != 1 || got[0] != 'A' {
		t.Fatalf("output = %v, want ['A']", got)
	}

	var sawMvSixtyFive bool
	for _, r := range tr {
		if r.Mp.IsZero() && r.Mv.Uint64() == 65 {
			sawMvSixtyFive = true
		}
	}
	if !sawMvSixtyFive {
		t.Error("no trace row snapshotted tape[0] = 65")
	}
}

// TestScenario03MoveAndSubtractLoop exercises scenario 3:
// "+++[>+<-]" moves three units from cell 0 to cell 1 over three loop
// iterations.
func TestScenario03MoveAndSubtractLoop(t *testing.T) {
	var out bytes.Buffer
	tr, err := Run("+++[>+<-]", strings.NewReader(""), &out, DefaultMachineConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(tr) <= 9 {
		t.Errorf("trace length = %d, want > 9", len(tr))
	}
}

// TestScenario04NonTerminatingLoopHitsCycleCap exercises scenario 4:
// "+[]" never terminates, so a caller must supply a cycle cap.
func TestScenario04NonTerminatingLoopHitsCycleCap(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultMachineConfig().WithCycleCap(500)
	_, err := Run("+[]", strings.NewReader(""), &out, cfg)
	if err == nil {
		t.Fatal("expected ErrCycleCapExceeded, got nil")
	}
	be, ok := err.(*Error)
	if !ok || be.Code != ErrCycleCapExceeded {
		t.Fatalf("err = %v, want ErrCycleCapExceeded", err)
	}
}

// TestScenario05HelloWorldBytes exercises scenario 5: a fixed
// byte-sequence emitter reproduces its expected bytes in order.
func TestScenario05HelloWorldBytes(t *testing.T) {
	const source = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."
	var out bytes.Buffer
	if _, err := Run(source, strings.NewReader(""), &out, DefaultMachineConfig()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), "Hello World!\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestScenario06ConcatenationIsIoEquivalent exercises scenario 6:
// running p then q is I/O-equivalent to a single compiled
// concatenation, checked via OutputDigest rather than a full trace
// diff.
func TestScenario06ConcatenationIsIoEquivalent(t *testing.T) {
	var separate bytes.Buffer
	if _, err := Run("++.", strings.NewReader(""), &separate, DefaultMachineConfig()); err != nil {
		t.Fatalf("Run p: %v", err)
	}
	if _, err := Run("+++.", strings.NewReader(""), &separate, DefaultMachineConfig()); err != nil {
		t.Fatalf("Run q: %v", err)
	}

	var joined bytes.Buffer
	if _, err := Run("++.+++.", strings.NewReader(""), &joined, DefaultMachineConfig()); err != nil {
		t.Fatalf("Run p+q: %v", err)
	}

	if OutputDigest(separate.Bytes()) != OutputDigest(joined.Bytes()) {
		t.Errorf("separate runs %v and joined run %v are not output-equivalent", separate.Bytes(), joined.Bytes())
	}
}
