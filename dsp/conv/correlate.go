package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// CorrelateDirect computes the full cross-correlation of a against b in the time domain.
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(a)+len(b)-1)
	for k := range out {
		lag := LagFromIndex(k, len(b))

		lo := max(0, -lag)
		hi := min(len(b), len(a)-lag)

		var sum float64
		for i := lo; i < hi; i++ {
			sum += a[i+lag] * b[i]
		}
		out[k] = sum
	}

	return out, nil
}

// CorrelateFFT computes the full cross-correlation of a against b via FFT.
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	c, err := NewCorrelator(len(a) + len(b) - 1)
	if err != nil {
		return nil, err
	}

	return c.Correlate(a, b)
}

// Correlator holds an FFT plan and scratch spectra for repeated
// correlations whose combined length fits its size.
// A Correlator is not safe for concurrent use.
type Correlator struct {
	size  int
	plan  *algofft.Plan[complex128]
	specA []complex128
	specB []complex128
	work  []complex128
}

// NewCorrelator sizes a Correlator for len(a)+len(b)-1 <= span.
func NewCorrelator(span int) (*Correlator, error) {
	if span <= 0 {
		return nil, ErrEmptyInput
	}

	size := nextPowerOf2(span)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	return &Correlator{
		size:  size,
		plan:  plan,
		specA: make([]complex128, size),
		specB: make([]complex128, size),
		work:  make([]complex128, size),
	}, nil
}

// Size returns the FFT length.
func (c *Correlator) Size() int { return c.size }

// Correlate returns the full cross-correlation of a against b, laid out as
// CorrelateDirect does.
func (c *Correlator) Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	span := len(a) + len(b) - 1
	if span > c.size {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInputTooLong, span, c.size)
	}

	if err := c.spectrum(c.specA, a); err != nil {
		return nil, err
	}
	if err := c.spectrum(c.specB, b); err != nil {
		return nil, err
	}

	// A * conj(B)
	for i, bv := range c.specB {
		c.specA[i] *= complex(real(bv), -imag(bv))
	}

	if err := c.plan.Inverse(c.work, c.specA); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// Circular index j holds lag j for j < len(a) and lag j-size above that.
	out := make([]float64, span)
	for k := range out {
		lag := LagFromIndex(k, len(b))
		if lag < 0 {
			lag += c.size
		}
		out[k] = real(c.work[lag])
	}

	return out, nil
}

func (c *Correlator) spectrum(dst []complex128, x []float64) error {
	for i := range c.work {
		c.work[i] = 0
	}
	for i, v := range x {
		c.work[i] = complex(v, 0)
	}

	if err := c.plan.Forward(dst, c.work); err != nil {
		return fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	return nil
}
