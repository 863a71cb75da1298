package conv

import "errors"

var (
	// ErrEmptyInput is returned when either operand has no samples.
	ErrEmptyInput = errors.New("conv: empty input")
	// ErrInputTooLong is returned when a Correlator is fed inputs larger than it was sized for.
	ErrInputTooLong = errors.New("conv: input exceeds correlator size")
)

// LagFromIndex converts a correlation index to a lag for a second operand of length lenB.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag is the inverse of LagFromIndex.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}

// FindPeak returns the index and value of the largest entry in corr.
// An empty slice yields index -1.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index, value = 0, corr[0]
	for i, v := range corr[1:] {
		if v > value {
			index, value = i+1, v
		}
	}

	return index, value
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
