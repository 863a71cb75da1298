// Package playback adapts a binaural provider to byte-oriented audio sinks.
package playback

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"

	"github.com/cwbudde/algo-itd/dsp/binaural"
	"github.com/cwbudde/algo-itd/dsp/core"
)

// BytesPerFrame is the size of one float32 stereo frame.
const BytesPerFrame = 2 * 4

// ErrNotConfigured is returned for providers without a wave format.
var ErrNotConfigured = errors.New("playback: provider has no wave format")

// Stream serialises access to a Provider so an audio callback can pull
// samples while a control goroutine moves the source. Read produces
// little-endian float32 stereo frames.
type Stream struct {
	mu      sync.Mutex
	p       *binaural.Provider
	scratch []float32
	frames  int64
}

// NewStream wraps p. The provider must already have a wave format and must
// not be used directly afterwards.
func NewStream(p *binaural.Provider) (*Stream, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}
	return &Stream{p: p}, nil
}

// SampleRate returns the provider sample rate.
func (s *Stream) SampleRate() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.SampleRate()
}

// Read fills p with whole frames and returns the number of bytes written.
// Trailing bytes that do not form a full frame are left untouched. A
// non-empty p shorter than one frame yields io.ErrShortBuffer.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	frames := len(p) / BytesPerFrame
	if frames == 0 {
		return 0, io.ErrShortBuffer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scratch = core.EnsureLen(s.scratch, 2*frames)
	if _, err := s.p.Read(s.scratch); err != nil {
		return 0, err
	}
	s.frames += int64(frames)

	for i, v := range s.scratch {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(v))
	}

	return frames * BytesPerFrame, nil
}

// ReadSamples renders len(buf) interleaved samples under the lock.
func (s *Stream) ReadSamples(buf []float32) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.p.Read(buf)
	s.frames += int64(n / 2)
	return n, err
}

// Frames returns the number of frames rendered through the stream.
func (s *Stream) Frames() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// SetFrequency sets the target frequency.
func (s *Stream) SetFrequency(hz float64) {
	s.Update(func(p *binaural.Provider) { p.SetFrequency(hz) })
}

// SetAmplitude sets the target amplitude.
func (s *Stream) SetAmplitude(amplitude float64) {
	s.Update(func(p *binaural.Provider) { p.SetAmplitude(amplitude) })
}

// SetAzimuthDegrees moves the source.
func (s *Stream) SetAzimuthDegrees(deg float64) {
	s.Update(func(p *binaural.Provider) { p.SetAzimuthDegrees(deg) })
}

// Update runs fn with exclusive access to the provider.
func (s *Stream) Update(fn func(*binaural.Provider)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.p)
}
