package binaural

import "errors"

var (
	// ErrUnsupportedChannels is returned when a format with a channel count
	// other than two is requested.
	ErrUnsupportedChannels = errors.New("binaural: localised sources must be stereo")
	// ErrInvalidSampleRate is returned for non-positive sample rates.
	ErrInvalidSampleRate = errors.New("binaural: sample rate must be > 0")
	// ErrFormatNotSet is returned when rendering before a format was configured.
	ErrFormatNotSet = errors.New("binaural: wave format not configured")
	// ErrBufferTooSmall is returned when offset+count exceeds the buffer length.
	ErrBufferTooSmall = errors.New("binaural: buffer too small")
	// ErrOddSampleCount is returned when the sample count is not a whole number of frames.
	ErrOddSampleCount = errors.New("binaural: sample count must be a multiple of the channel count")
	// ErrNegativeRange is returned for a negative offset or sample count.
	ErrNegativeRange = errors.New("binaural: offset and sample count must be >= 0")
)
