package binaural

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-itd/dsp/core"
)

const (
	defaultFrequency = 1000.0
	defaultAmplitude = 0.25

	// Committed state before the first zero-crossing. Amplitude 0 renders
	// silence, which is itself a crossing, so targets commit on sample 0.
	initialCommittedAmplitude = 0.0
	initialCommittedFrequency = 100.0

	stereoChannels = 2
)

// Channel indexes one side of the interleaved stereo output.
type Channel int

const (
	// Left is the first interleaved sample of each frame.
	Left Channel = 0
	// Right is the second interleaved sample of each frame, rendered at the
	// sample index shifted by the interaural delay.
	Right Channel = 1
)

// Valid reports whether c is Left or Right.
func (c Channel) Valid() bool {
	return c == Left || c == Right
}

// ChannelState is the rendering state of one channel: the amplitude and
// frequency currently in use and the last rendered value.
type ChannelState struct {
	Amplitude float64
	Frequency float64
	Previous  float64
}

// Option configures a Provider at construction time.
type Option func(*Provider) error

// WithFrequency sets the initial tone frequency in Hz.
func WithFrequency(hz float64) Option {
	return func(p *Provider) error {
		if math.IsNaN(hz) || math.IsInf(hz, 0) {
			return fmt.Errorf("binaural frequency must be finite: %f", hz)
		}
		p.frequency = hz
		return nil
	}
}

// WithAmplitude sets the initial linear peak amplitude.
func WithAmplitude(amplitude float64) Option {
	return func(p *Provider) error {
		if math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
			return fmt.Errorf("binaural amplitude must be finite: %f", amplitude)
		}
		p.amplitude = amplitude
		return nil
	}
}

// WithAzimuthRadians sets the initial source azimuth in radians.
func WithAzimuthRadians(rad float64) Option {
	return func(p *Provider) error {
		if math.IsNaN(rad) || math.IsInf(rad, 0) {
			return fmt.Errorf("binaural azimuth must be finite: %f", rad)
		}
		p.SetAzimuthRadians(rad)
		return nil
	}
}

// WithAzimuthDegrees sets the initial source azimuth in degrees.
func WithAzimuthDegrees(deg float64) Option {
	return WithAzimuthRadians(core.DegreesToRadians(deg))
}

// WithSampleRate configures the stereo wave format during construction.
func WithSampleRate(sampleRate int) Option {
	return func(p *Provider) error {
		return p.SetWaveFormat(sampleRate)
	}
}

// Provider generates an interleaved stereo sine tone whose right channel is
// delayed by the interaural time difference of the configured azimuth.
type Provider struct {
	frequency float64
	amplitude float64
	azimuth   float64
	itd       float64 // seconds
	adjust    float64 // itd expressed in samples

	sampleRate int
	sample     int

	channels [stereoChannels]ChannelState
}

// NewProvider returns a provider with a 1 kHz tone at amplitude 0.25 placed
// straight ahead. The wave format must be configured with SetWaveFormat (or
// WithSampleRate) before rendering.
func NewProvider(opts ...Option) (*Provider, error) {
	p := &Provider{
		frequency: defaultFrequency,
		amplitude: defaultAmplitude,
	}
	p.resetChannels()
	p.SetAzimuthRadians(0)

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(p)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetWaveFormat configures the sample rate of the stereo output.
func (p *Provider) SetWaveFormat(sampleRate int) error {
	return p.SetWaveFormatChannels(sampleRate, stereoChannels)
}

// SetWaveFormatChannels configures the output format. Localisation needs
// exactly two channels; any other count fails with ErrUnsupportedChannels
// and leaves the previous format untouched.
func (p *Provider) SetWaveFormatChannels(sampleRate, channels int) error {
	if channels != stereoChannels {
		return fmt.Errorf("%w: got %d channels", ErrUnsupportedChannels, channels)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	p.sampleRate = sampleRate
	if p.sample >= sampleRate {
		p.sample = 0
	}
	p.updateDelay()

	return nil
}

// Configured reports whether a wave format has been set.
func (p *Provider) Configured() bool { return p.sampleRate > 0 }

// SampleRate returns the configured sample rate, or 0 before configuration.
func (p *Provider) SampleRate() int { return p.sampleRate }

// Channels returns the interleaved channel count, which is always 2.
func (p *Provider) Channels() int { return stereoChannels }

// Frequency returns the target frequency in Hz.
func (p *Provider) Frequency() float64 { return p.frequency }

// SetFrequency sets the target frequency. Each channel picks it up at its
// next zero-crossing. A frequency of 0 renders a constant value and so
// never produces another crossing on its own.
func (p *Provider) SetFrequency(hz float64) { p.frequency = hz }

// Amplitude returns the target linear amplitude.
func (p *Provider) Amplitude() float64 { return p.amplitude }

// SetAmplitude sets the target linear amplitude, committed per channel at
// the next zero-crossing.
func (p *Provider) SetAmplitude(amplitude float64) { p.amplitude = amplitude }

// AzimuthRadians returns the source azimuth in radians.
func (p *Provider) AzimuthRadians() float64 { return p.azimuth }

// SetAzimuthRadians moves the source and recomputes the interaural delay.
// The new delay applies from the next rendered sample.
func (p *Provider) SetAzimuthRadians(rad float64) {
	p.azimuth = rad
	p.itd = ComputeITD(rad)
	p.updateDelay()
}

// AzimuthDegrees returns the source azimuth in degrees (-90 left, +90 right).
func (p *Provider) AzimuthDegrees() float64 {
	return core.RadiansToDegrees(p.azimuth)
}

// SetAzimuthDegrees moves the source to an azimuth given in degrees.
func (p *Provider) SetAzimuthDegrees(deg float64) {
	p.SetAzimuthRadians(core.DegreesToRadians(deg))
}

// InterauralDelay returns the current ITD in seconds.
func (p *Provider) InterauralDelay() float64 { return p.itd }

// DelaySamples returns the current ITD in samples at the configured rate.
func (p *Provider) DelaySamples() float64 { return p.adjust }

// SampleIndex returns the shared sample clock, always in [0, SampleRate).
func (p *Provider) SampleIndex() int { return p.sample }

// ChannelState returns the rendering state of ch, or the zero ChannelState
// if ch is not Left or Right.
func (p *Provider) ChannelState(ch Channel) ChannelState {
	if !ch.Valid() {
		return ChannelState{}
	}
	return p.channels[ch]
}

// Reset rewinds the sample clock and the per-channel state. Targets, azimuth
// and format are kept.
func (p *Provider) Reset() {
	p.sample = 0
	p.resetChannels()
}

func (p *Provider) resetChannels() {
	for i := range p.channels {
		p.channels[i] = ChannelState{
			Amplitude: initialCommittedAmplitude,
			Frequency: initialCommittedFrequency,
		}
	}
}

func (p *Provider) updateDelay() {
	p.adjust = p.itd * float64(p.sampleRate)
}
