// Package lag measures inter-channel time offsets of rendered audio.
//
// The estimator cross-correlates a reference channel with a delayed channel
// in the frequency domain, restricts the search to a lag window and refines
// the integer peak with parabolic interpolation:
//
//	ch, err := lag.Deinterleave(buf, 2)
//	res, err := lag.Estimate(ch[0], ch[1], 64)
//	fmt.Println(res.Lag) // positive: ch[1] lags ch[0]
//
// For periodic signals the lag is only unambiguous within half a period, so
// maxLag should stay below half the period of the lowest frequency present.
package lag
