// Package binaural renders a sine tone localised on the horizontal plane
// using a single binaural cue: the interaural time difference (ITD).
//
// The [Provider] is a pull-based stereo generator. A host repeatedly calls
// [Provider.Render] to fill interleaved float32 buffers (left, right, left,
// right, ...). The right channel runs on the same sample clock as the left
// channel, shifted by the ITD derived from the configured azimuth:
//
//	itd = 3 * (HeadRadius / SpeedOfSound) * sin(azimuth)
//
// Frequency and amplitude changes are deferred per channel until that
// channel's waveform crosses zero, so retuning a running tone does not click.
// Azimuth changes take effect on the next rendered sample.
//
// Level differences and spectral (HRTF) cues are not modelled.
//
// A Provider is not safe for concurrent use. Hosts that drive the setters
// from a control goroutine while an audio goroutine renders must serialise
// access externally.
package binaural
