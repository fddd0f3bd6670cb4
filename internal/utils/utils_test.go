package utils

import "testing"

func TestPRNGSeeded(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if a.Sign() != b.Sign() || a.Chance(0.5) != b.Chance(0.5) {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestChanceBounds(t *testing.T) {
	r := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		if !r.Chance(1) {
			t.Fatal("Chance(1) = false")
		}
		if r.Chance(-0.5) {
			t.Fatal("Chance(-0.5) = true")
		}
	}
}

func TestSign(t *testing.T) {
	r := NewPRNGService(3)
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		s := r.Sign()
		if s != 1 && s != -1 {
			t.Fatalf("Sign() = %v", s)
		}
		seen[s] = true
	}
	if len(seen) != 2 {
		t.Errorf("Sign() produced only %v in 200 draws", seen)
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp out of bounds")
	}
	if Lerp(0, 10, 0.5) != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v", Lerp(0, 10, 0.5))
	}
}
