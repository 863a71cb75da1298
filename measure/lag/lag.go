package lag

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-itd/dsp/conv"
	"github.com/cwbudde/algo-itd/dsp/core"
	"github.com/cwbudde/algo-itd/dsp/window"
)

var (
	// ErrEmptyInput is returned when a channel has no samples.
	ErrEmptyInput = errors.New("lag: empty input")
	// ErrLengthMismatch is returned when the two channels differ in length.
	ErrLengthMismatch = errors.New("lag: channel lengths differ")
	// ErrInvalidLayout is returned when an interleaved buffer does not hold whole frames.
	ErrInvalidLayout = errors.New("lag: buffer is not a whole number of frames")
)

// Option configures Estimate.
type Option func(*config)

type config struct {
	taper func(n int) ([]float64, error)
}

// WithWindow replaces the default Hann taper applied before correlation.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.taper = func(n int) ([]float64, error) {
			return window.Generate(t, n), nil
		}
	}
}

// Result describes the measured offset between two channels.
type Result struct {
	// Lag is the fractional offset in samples. Positive means the delayed
	// channel trails the reference.
	Lag float64
	// Index is the integer lag of the correlation peak.
	Index int
	// Peak is the correlation at Index normalised by both channel energies,
	// in [-1, 1].
	Peak float64
}

// Deinterleave splits an interleaved float32 buffer into per-channel float64 slices.
func Deinterleave(buf []float32, channels int) ([][]float64, error) {
	if channels <= 0 || len(buf)%channels != 0 {
		return nil, fmt.Errorf("%w: len=%d channels=%d", ErrInvalidLayout, len(buf), channels)
	}

	frames := len(buf) / channels
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}
	for i, v := range buf {
		out[i%channels][i/channels] = float64(v)
	}

	return out, nil
}

// Estimate measures how far delayed trails ref, searching lags in
// [-maxLag, maxLag]. Both channels are tapered (Hann unless WithWindow is
// given) before correlation.
func Estimate(ref, delayed []float64, maxLag int, opts ...Option) (Result, error) {
	if len(ref) == 0 || len(delayed) == 0 {
		return Result{}, ErrEmptyInput
	}
	if len(ref) != len(delayed) {
		return Result{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(ref), len(delayed))
	}

	cfg := config{taper: func(n int) ([]float64, error) { return window.Hann(n) }}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(ref)
	if maxLag < 0 || maxLag > n-1 {
		maxLag = n - 1
	}

	win, err := cfg.taper(n)
	if err != nil {
		return Result{}, err
	}
	a, err := window.ApplyCoefficients(delayed, win)
	if err != nil {
		return Result{}, err
	}
	b, err := window.ApplyCoefficients(ref, win)
	if err != nil {
		return Result{}, err
	}

	corr, err := conv.CorrelateFFT(a, b)
	if err != nil {
		return Result{}, err
	}

	lo := conv.IndexFromLag(-maxLag, n)
	off, peak := conv.FindPeak(corr[lo : conv.IndexFromLag(maxLag, n)+1])
	best := lo + off

	res := Result{Index: conv.LagFromIndex(best, n)}
	res.Lag = float64(res.Index) + parabolicOffset(corr, best)

	if norm := math.Sqrt(Energy(a) * Energy(b)); norm > 0 {
		res.Peak = core.Clamp(peak/norm, -1, 1)
	}

	return res, nil
}

// Energy returns the sum of squares of x.
func Energy(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	sq := make([]float64, len(x))
	vecmath.MulBlock(sq, x, x)

	var sum float64
	for _, v := range sq {
		sum += v
	}
	return sum
}

// RMS returns the root mean square of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(Energy(x) / float64(len(x)))
}

// parabolicOffset fits a parabola through corr[i-1..i+1] and returns the
// vertex position relative to i, in (-0.5, 0.5).
func parabolicOffset(corr []float64, i int) float64 {
	if i <= 0 || i >= len(corr)-1 {
		return 0
	}

	l, c, r := corr[i-1], corr[i], corr[i+1]
	den := l - 2*c + r
	if den == 0 {
		return 0
	}

	off := 0.5 * (l - r) / den
	if off <= -0.5 || off >= 0.5 {
		return 0
	}
	return off
}
