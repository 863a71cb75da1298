// Command itdtone renders or plays a sine tone localised by interaural time
// difference.
//
// Usage:
//
//	itdtone [flags]
//
// Examples:
//
//	itdtone -azimuth 60 -duration 3 -out tone.wav
//	itdtone -azimuth -90 -sweep 45 -play
//	itdtone -freq 200 -azimuth 30 -measure
//	itdtone -table
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-itd/dsp/window"
)

type config struct {
	rate     int
	freq     float64
	amp      float64
	azimuth  float64
	sweep    float64
	duration time.Duration
	block    int
	out      string
	play     bool
	measure  bool
	window   window.Type
	mono     bool
	table    bool
	verbose  bool
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config
	var seconds float64
	var taper string

	fs.IntVar(&cfg.rate, "rate", 44100, "sample rate in Hz")
	fs.Float64Var(&cfg.freq, "freq", 1000, "tone frequency in Hz")
	fs.Float64Var(&cfg.amp, "amp", 0.25, "linear peak amplitude")
	fs.Float64Var(&cfg.azimuth, "azimuth", 0, "source azimuth in degrees (-90 left, +90 right)")
	fs.Float64Var(&cfg.sweep, "sweep", 0, "azimuth sweep speed in degrees per second (bounces between -90 and +90)")
	fs.Float64Var(&seconds, "duration", 2, "length in seconds")
	fs.IntVar(&cfg.block, "block", 1024, "render block size in frames")
	fs.StringVar(&cfg.out, "out", "", "write a 32-bit float WAV file")
	fs.BoolVar(&cfg.play, "play", false, "play on the default audio device")
	fs.BoolVar(&cfg.measure, "measure", false, "measure the rendered interaural lag")
	fs.StringVar(&taper, "window", "hann", "taper used by -measure: hann, hamming, blackman or rect")
	fs.BoolVar(&cfg.mono, "mono", false, "render the non-localised reference tone instead")
	fs.BoolVar(&cfg.table, "table", false, "print the ITD model for common azimuths and exit")
	fs.BoolVar(&cfg.verbose, "v", false, "development logging")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: itdtone [flags]\n\n")
		fmt.Fprintf(out, "Renders a sine tone placed at an azimuth using interaural time difference.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  itdtone -azimuth 60 -duration 3 -out tone.wav\n")
		fmt.Fprintf(out, "  itdtone -azimuth -90 -sweep 45 -play\n")
		fmt.Fprintf(out, "  itdtone -freq 200 -azimuth 30 -measure\n")
		fmt.Fprintf(out, "  itdtone -table\n")
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.rate <= 0 {
		return cfg, fmt.Errorf("rate must be > 0: %d", cfg.rate)
	}
	if cfg.block <= 0 {
		return cfg, fmt.Errorf("block must be > 0: %d", cfg.block)
	}
	if seconds <= 0 {
		return cfg, fmt.Errorf("duration must be > 0: %g", seconds)
	}
	cfg.duration = time.Duration(seconds * float64(time.Second))

	w, err := window.ParseType(taper)
	if err != nil {
		return cfg, err
	}
	cfg.window = w

	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain returns the process exit code so deferred cleanup runs before exit.
func runMain(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("itdtone", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg, err := parseFlags(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if cfg.table {
		if err := printTable(stdout, cfg.rate); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("itdtone failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger.Info("starting",
		zap.Int("rate", cfg.rate),
		zap.Float64("freq", cfg.freq),
		zap.Float64("amp", cfg.amp),
		zap.Float64("azimuthDeg", cfg.azimuth),
		zap.Float64("sweepDegPerSec", cfg.sweep),
		zap.Duration("duration", cfg.duration),
	)

	if cfg.play {
		return play(ctx, cfg, logger)
	}
	return renderOffline(ctx, cfg, logger)
}
