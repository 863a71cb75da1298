package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-itd/dsp/binaural"
	"github.com/cwbudde/algo-itd/dsp/core"
)

var tableAzimuths = []float64{-90, -60, -45, -30, -15, 0, 15, 30, 45, 60, 90}

func printTable(w io.Writer, rate int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Azimuth [deg]\tITD [us]\tDelay [samples @ %d Hz]\n", rate); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-------------\t--------\t-----------------------\n"); err != nil {
		return err
	}

	for _, deg := range tableAzimuths {
		itd := binaural.ComputeITD(core.DegreesToRadians(deg))
		if _, err := fmt.Fprintf(tw, "%.0f\t%.1f\t%.2f\n", deg, itd*1e6, itd*float64(rate)); err != nil {
			return err
		}
	}

	return tw.Flush()
}
