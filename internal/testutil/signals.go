package testutil

import "math"

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Channel extracts channel ch from an interleaved buffer.
func Channel(buf []float32, channels, ch int) []float32 {
	out := make([]float32, 0, len(buf)/channels)
	for i := ch; i < len(buf); i += channels {
		out = append(out, buf[i])
	}
	return out
}
