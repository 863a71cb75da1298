package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-itd/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestSineInvalidLength(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(1000, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestDelayedSine(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8000))
	ref, err := g.Sine(250, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	delayed, err := g.DelayedSine(250, 1, 4, 64)
	if err != nil {
		t.Fatalf("DelayedSine() error = %v", err)
	}

	for i := 4; i < 64; i++ {
		if math.Abs(delayed[i]-ref[i-4]) > 1e-12 {
			t.Fatalf("delayed[%d] = %v, want %v", i, delayed[i], ref[i-4])
		}
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
}

func TestNormalizeErrors(t *testing.T) {
	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative peak")
	}
}
