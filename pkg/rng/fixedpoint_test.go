package rng

import "testing"

func TestFixedPointRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, -1, 42, -1000, 65535} {
		f := FPFromInt(n)
		if got := f.ToInt(); got != n {
			t.Errorf("FPFromInt(%d).ToInt() = %d, want %d", n, got, n)
		}
	}
}

func TestFPMulIdentity(t *testing.T) {
	one := FPFromInt(1)
	v := FPFromInt(7)
	if got := FPMul(v, one); got != v {
		t.Errorf("FPMul(v, 1) = %d, want %d", got, v)
	}
}

func TestFPDivPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on division by zero")
		}
	}()
	FPDiv(FPFromInt(1), 0)
}

func TestRandRangePanicsOnInvalidRange(t *testing.T) {
	r := NewRunRNG(1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when lo > hi")
		}
	}()
	r.RandRange(5, 1)
}

func TestRandPercentBounds(t *testing.T) {
	r := NewRunRNG(42)
	for i := 0; i < 1000; i++ {
		if r.RandPercent(0) {
			t.Fatal("RandPercent(0) must never return true")
		}
		if !r.RandPercent(100) {
			t.Fatal("RandPercent(100) must always return true")
		}
	}
}

func TestRandClumpWithinRange(t *testing.T) {
	r := NewRunRNG(7)
	for i := 0; i < 500; i++ {
		v := r.RandClump(2, 8, 3)
		if v < 2 || v > 8 {
			t.Fatalf("RandClump produced %d outside [2,8]", v)
		}
	}
}

func TestRunRNGDeterminism(t *testing.T) {
	a := NewRunRNG(9999)
	b := NewRunRNG(9999)
	for i := 0; i < 50; i++ {
		if a.RandRange(0, 1000000) != b.RandRange(0, 1000000) {
			t.Fatal("two RunRNGs with the same seed diverged")
		}
	}
}

func TestCosmeticRNGUncorrelated(t *testing.T) {
	run := NewRunRNG(9999)
	cosmetic := NewCosmeticRNG(9999)
	if run.Seed() == cosmetic.Seed() {
		t.Fatal("cosmetic RNG must not share the gameplay RNG's seed")
	}
}
