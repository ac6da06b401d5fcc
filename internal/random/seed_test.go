package random

import "testing"

func TestNewSeedVaries(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 8; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed: %v", err)
		}
		seen[seed] = true
	}
	if len(seen) < 2 {
		t.Error("Expected distinct seeds")
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve(42); got != 42 {
		t.Errorf("Resolve(42) = %d, want 42", got)
	}
	if Resolve(0) == 0 {
		t.Error("Resolve(0) should draw a non-zero seed")
	}
}
