// Package conv provides cross-correlation routines for signal alignment.
//
// Two strategies are offered with identical output layout:
//
//   - [CorrelateDirect]: O(N*M) time-domain sum, exact and fine for short inputs
//   - [CorrelateFFT] / [Correlator]: frequency-domain correlation for long captures
//
// A full correlation of a (length N) against b (length M) has N+M-1 entries.
// Entry k holds lag k-(M-1), the sum over i of a[i+lag]*b[i], so a positive
// lag means a trails b:
//
//	corr, err := conv.CorrelateFFT(delayed, reference)
//	idx, _ := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(idx, len(reference))
//
// Repeated measurements of the same capture length should reuse a
// [Correlator] to avoid rebuilding the FFT plan.
package conv
