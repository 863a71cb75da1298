package window

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func checkGolden(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i], tol) {
			t.Errorf("coefficient[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestGoldenVectors(t *testing.T) {
	hannExpected := []float64{
		0.0, 0.1882550990706332, 0.6112604669781572, 0.9504844339512095,
		0.9504844339512095, 0.6112604669781573, 0.1882550990706333, 0.0,
	}
	hammingExpected := []float64{
		0.08, 0.25319469114498255, 0.6423596296199047, 0.9544456792351128,
		0.9544456792351128, 0.6423596296199048, 0.25319469114498266, 0.08,
	}

	checkGolden(t, Generate(TypeHann, 8), hannExpected, 1e-10)
	checkGolden(t, Generate(TypeHamming, 8), hammingExpected, 1e-10)
	checkGolden(t, Generate(TypeRectangular, 4), []float64{1, 1, 1, 1}, 0)
}

func TestBlackmanSymmetric(t *testing.T) {
	w := Generate(TypeBlackman, 33)
	if !almostEqual(w[0], 0, 1e-12) || !almostEqual(w[32], 0, 1e-12) {
		t.Fatalf("edges=%v,%v, want 0", w[0], w[32])
	}
	if !almostEqual(w[16], 1, 1e-12) {
		t.Fatalf("centre=%v, want 1", w[16])
	}
	for i := range w {
		if !almostEqual(w[i], w[len(w)-1-i], 1e-12) {
			t.Fatalf("w[%d]=%v != w[%d]=%v", i, w[i], len(w)-1-i, w[len(w)-1-i])
		}
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	if almostEqual(a[15], b[15], 1e-12) {
		t.Fatal("expected different end coefficient for periodic form")
	}
	if !almostEqual(b[8], 1, 1e-12) {
		t.Fatalf("periodic centre=%v, want 1", b[8])
	}
}

func TestHannSingleSample(t *testing.T) {
	w, err := Hann(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != 1 || w[0] != 1 {
		t.Fatalf("Hann(1)=%v, want [1]", w)
	}
}

func TestValidationAndEdgeCases(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("expected nil for zero length, got %v", got)
	}
	if _, err := Hann(0); err == nil {
		t.Fatal("expected size validation error")
	}
	if _, err := ApplyCoefficients([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{1, 2, 3}, []float64{0.5, 0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	checkGolden(t, out, []float64{0.5, 1, 1.5}, 1e-12)
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"hann", TypeHann},
		{" Hamming ", TypeHamming},
		{"blackman", TypeBlackman},
		{"rectangular", TypeRectangular},
		{"rect", TypeRectangular},
		{"none", TypeRectangular},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if err != nil {
			t.Fatalf("ParseType(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseType(%q)=%v, want %v", tt.in, got, tt.want)
		}
		if back, _ := ParseType(got.String()); back != got {
			t.Errorf("round trip %v -> %q -> %v", got, got.String(), back)
		}
	}

	if _, err := ParseType("kaiser"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
	if Type(99).String() != "unknown" {
		t.Fatalf("String() of invalid type = %q", Type(99).String())
	}
}
