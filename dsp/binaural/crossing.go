package binaural

// crossesZero reports whether a waveform moving from prev to cur changes
// sign or lands exactly on zero. Two consecutive exact zeros count as a
// crossing again.
func crossesZero(prev, cur float64) bool {
	return (prev <= 0 && cur > 0) || (prev >= 0 && cur < 0) || cur == 0
}

// advance records cur as the channel's latest value and, at a zero-crossing,
// commits the target amplitude and frequency. The value passed in has
// already been rendered with the old committed state.
func (c *ChannelState) advance(cur, amplitude, frequency float64) {
	if crossesZero(c.Previous, cur) {
		c.Amplitude = amplitude
		c.Frequency = frequency
	}
	c.Previous = cur
}
