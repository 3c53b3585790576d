package config

import "testing"

func TestDefaultMachineConfigValid(t *testing.T) {
	c := DefaultMachineConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsNonPositiveTapeCapacity(t *testing.T) {
	c := DefaultMachineConfig().WithTapeCapacity(0)
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for zero tape capacity")
	}
}

func TestValidateRejectsNegativeCycleCap(t *testing.T) {
	c := DefaultMachineConfig().WithCycleCap(-1)
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for negative cycle cap")
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	cases := map[int]bool{0: false, 1: true, 2: true, 3: false, 256: true, 255: false}
	for n, want := range cases {
		if got := IsPowerOfTwo(n); got != want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestLog2(t *testing.T) {
	if got := Log2(256); got != 8 {
		t.Errorf("Log2(256) = %d, want 8", got)
	}
	if got := Log2(255); got != -1 {
		t.Errorf("Log2(255) = %d, want -1", got)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 100: 128, 256: 256}
	for n, want := range cases {
		if got := NextPowerOfTwo(n); got != want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", n, got, want)
		}
	}
}
