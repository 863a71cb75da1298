package binaural

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-itd/dsp/core"
)

// Render fills buf[offset:offset+sampleCount] with interleaved stereo
// samples and returns sampleCount. The tone is infinite, so Render never
// reports end of stream.
//
// All preconditions are checked before any sample is written: the format
// must be configured, offset and sampleCount must be non-negative,
// sampleCount must be even and the range must fit inside buf.
func (p *Provider) Render(buf []float32, offset, sampleCount int) (int, error) {
	if p.sampleRate <= 0 {
		return 0, ErrFormatNotSet
	}
	if offset < 0 || sampleCount < 0 {
		return 0, fmt.Errorf("%w: offset=%d count=%d", ErrNegativeRange, offset, sampleCount)
	}
	if sampleCount%stereoChannels != 0 {
		return 0, fmt.Errorf("%w: %d", ErrOddSampleCount, sampleCount)
	}
	if !core.InRange(len(buf), offset, sampleCount) {
		return 0, fmt.Errorf("%w: len=%d offset=%d count=%d", ErrBufferTooSmall, len(buf), offset, sampleCount)
	}

	out := buf[offset : offset+sampleCount]
	rate := float64(p.sampleRate)

	for n := 0; n < len(out); n += stereoChannels {
		t := float64(p.sample)
		left := p.channels[Left].value(t, rate)
		right := p.channels[Right].value(t-p.adjust, rate)

		p.channels[Left].advance(left, p.amplitude, p.frequency)
		p.channels[Right].advance(right, p.amplitude, p.frequency)

		out[n] = float32(left)
		out[n+1] = float32(right)

		p.sample++
		if p.sample >= p.sampleRate {
			p.sample = 0
		}
	}

	return sampleCount, nil
}

// Read renders len(buf) samples into buf. It is Render(buf, 0, len(buf)).
func (p *Provider) Read(buf []float32) (int, error) {
	return p.Render(buf, 0, len(buf))
}

func (c *ChannelState) value(t, sampleRate float64) float64 {
	return c.Amplitude * math.Sin(2*math.Pi*t*c.Frequency/sampleRate)
}
