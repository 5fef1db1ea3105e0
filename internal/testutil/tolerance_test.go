package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxComplexAbsDiff(t *testing.T) {
	a := []complex128{1, 1i}
	b := []complex128{1, 0}

	d, err := MaxComplexAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxComplexAbsDiff error: %v", err)
	}

	if d != 1 {
		t.Fatalf("MaxComplexAbsDiff = %v, want 1", d)
	}
}

func TestRequireSliceNearlyEqualInfinities(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{math.Inf(-1), 1}, []float64{math.Inf(-1), 1 + 1e-12}, 1e-9)
}

func TestDeterministicResponseBounds(t *testing.T) {
	a := DeterministicResponse(7, 0.5, 64)
	b := DeterministicResponse(7, 0.5, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: not deterministic: %v vs %v", i, a[i], b[i])
		}
		if m := cmplx.Abs(a[i]); m <= 0 || m > 0.5+1e-15 {
			t.Fatalf("index %d: magnitude %v out of (0, 0.5]", i, m)
		}
	}
}

func TestLinspaceEndpoints(t *testing.T) {
	got := Linspace(1, 2, 5)
	RequireSliceNearlyEqual(t, got, []float64{1, 1.25, 1.5, 1.75, 2}, 1e-15)

	if one := Linspace(3, 9, 1); len(one) != 1 || one[0] != 3 {
		t.Fatalf("Linspace(3, 9, 1) = %v, want [3]", one)
	}
}

func TestDelayLineUnitMagnitude(t *testing.T) {
	s21 := DelayLine([]float64{0, 1e9, 2e9}, 1e-9)
	for i, v := range s21 {
		if math.Abs(cmplx.Abs(v)-1) > 1e-12 {
			t.Fatalf("index %d: |S21| = %v, want 1", i, cmplx.Abs(v))
		}
	}
	RequireComplexSliceNearlyEqual(t, s21[:1], []complex128{1}, 1e-15)
}
