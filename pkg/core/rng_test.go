package core

import "testing"

func TestRNGIsDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 100; i++ {
		ax, ay := a.Point(13, 9)
		bx, by := b.Point(13, 9)
		if ax != bx || ay != by {
			t.Fatalf("draw %d diverged: (%d,%d) vs (%d,%d)", i, ax, ay, bx, by)
		}
		if ax < 0 || ax >= 13 || ay < 0 || ay >= 9 {
			t.Fatalf("draw %d out of range: (%d,%d)", i, ax, ay)
		}
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if v := r.IntN(0); v != 0 {
		t.Fatalf("IntN(0) = %d", v)
	}
}
