package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-itd/dsp/core"
)

// SineProvider is a pull-based, non-localised tone source. It writes the
// tone to the first channel of each interleaved frame and silence to the
// remaining channels. Frequency and amplitude changes apply immediately.
//
// It is the reference the localised provider is compared against.
type SineProvider struct {
	Frequency float64
	Amplitude float64

	sampleRate int
	channels   int
	sample     int
}

// NewSineProvider returns a 1 kHz tone at amplitude 0.25 for the given
// interleaved format.
func NewSineProvider(sampleRate, channels int) (*SineProvider, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sine provider sample rate must be > 0: %d", sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("sine provider channels must be > 0: %d", channels)
	}

	return &SineProvider{
		Frequency:  1000,
		Amplitude:  0.25,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// Channels returns the interleaved channel count.
func (s *SineProvider) Channels() int { return s.channels }

// SampleRate returns the output sample rate.
func (s *SineProvider) SampleRate() int { return s.sampleRate }

// Render fills buf[offset:offset+sampleCount] and returns sampleCount.
func (s *SineProvider) Render(buf []float32, offset, sampleCount int) (int, error) {
	if sampleCount%s.channels != 0 {
		return 0, fmt.Errorf("sine provider sample count %d is not a multiple of %d channels", sampleCount, s.channels)
	}
	if !core.InRange(len(buf), offset, sampleCount) {
		return 0, fmt.Errorf("sine provider range [%d, %d) outside buffer of %d", offset, offset+sampleCount, len(buf))
	}

	out := buf[offset : offset+sampleCount]
	rate := float64(s.sampleRate)
	for n := 0; n < len(out); n += s.channels {
		out[n] = float32(s.Amplitude * math.Sin(2*math.Pi*float64(s.sample)*s.Frequency/rate))
		core.Zero(out[n+1 : n+s.channels])

		s.sample++
		if s.sample >= s.sampleRate {
			s.sample = 0
		}
	}

	return sampleCount, nil
}
