package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-itd/dsp/core"
)

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T core.Sample](t *testing.T, data []T) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequirePeakAtMost fails t if any |element| exceeds peak.
func RequirePeakAtMost[T core.Sample](t *testing.T, data []T, peak float64) {
	t.Helper()
	for i, v := range data {
		if math.Abs(float64(v)) > peak {
			t.Fatalf("index %d: |%v| exceeds peak %v", i, v, peak)
		}
	}
}
