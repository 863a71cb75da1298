package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-itd/dsp/conv"
)

func ExampleCorrelateFFT() {
	reference := []float64{0, 1, 0, 0, 0, 0, 0, 0}
	delayed := []float64{0, 0, 0, 0, 1, 0, 0, 0}

	corr, _ := conv.CorrelateFFT(delayed, reference)
	idx, _ := conv.FindPeak(corr)

	fmt.Printf("length %d, lag %d\n", len(corr), conv.LagFromIndex(idx, len(reference)))

	// Output:
	// length 15, lag 3
}
