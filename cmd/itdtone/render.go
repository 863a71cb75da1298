package main

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-itd/dsp/binaural"
	"github.com/cwbudde/algo-itd/dsp/core"
	"github.com/cwbudde/algo-itd/dsp/signal"
	"github.com/cwbudde/algo-itd/internal/wav"
	"github.com/cwbudde/algo-itd/measure/lag"
)

const maxMeasureFrames = 1 << 15

type source interface {
	Render(buf []float32, offset, sampleCount int) (int, error)
}

// newSource returns the tone source for cfg. The provider is nil for the
// mono reference tone.
func newSource(cfg config) (source, *binaural.Provider, error) {
	if cfg.mono {
		s, err := signal.NewSineProvider(cfg.rate, 2)
		if err != nil {
			return nil, nil, err
		}
		s.Frequency = cfg.freq
		s.Amplitude = cfg.amp
		return s, nil, nil
	}

	p, err := binaural.NewProvider(
		binaural.WithSampleRate(cfg.rate),
		binaural.WithFrequency(cfg.freq),
		binaural.WithAmplitude(cfg.amp),
		binaural.WithAzimuthDegrees(cfg.azimuth),
	)
	if err != nil {
		return nil, nil, err
	}
	return p, p, nil
}

// sweepAzimuth returns the azimuth after t seconds when moving at speed
// degrees per second from start, reflecting at ±90°.
func sweepAzimuth(start, speed, t float64) float64 {
	y := math.Mod(start+speed*t+90, 360)
	if y < 0 {
		y += 360
	}
	if y > 180 {
		y = 360 - y
	}
	return y - 90
}

// renderBlocks pulls frames from src block by block and hands each block
// to sink. The sink must not retain the slice.
func renderBlocks(ctx context.Context, cfg config, src source, p *binaural.Provider, frames int, sink func([]float32) error) error {
	pc := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(cfg.rate)),
		core.WithBlockSize(cfg.block),
		core.WithChannels(2),
	)
	buf := make([]float32, pc.BlockSamples())

	for done := 0; done < frames; {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := min(pc.BlockSize, frames-done)
		if p != nil && cfg.sweep != 0 {
			p.SetAzimuthDegrees(sweepAzimuth(cfg.azimuth, cfg.sweep, float64(done)/pc.SampleRate))
		}

		count := n * pc.Channels
		if _, err := src.Render(buf, 0, count); err != nil {
			return fmt.Errorf("render at frame %d: %w", done, err)
		}
		if err := sink(buf[:count]); err != nil {
			return err
		}

		done += n
	}

	return nil
}

func renderOffline(ctx context.Context, cfg config, logger *zap.Logger) (err error) {
	if cfg.out == "" && !cfg.measure {
		return errors.New("nothing to do: pass -out, -measure or -play")
	}

	src, p, err := newSource(cfg)
	if err != nil {
		return err
	}

	var w *wav.Writer
	if cfg.out != "" {
		w, err = wav.NewFile(cfg.out, cfg.rate, 2)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := w.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}

	frames := int(cfg.duration.Seconds() * float64(cfg.rate))
	var captured []float32
	peak := 0.0

	err = renderBlocks(ctx, cfg, src, p, frames, func(block []float32) error {
		for _, v := range block {
			peak = math.Max(peak, math.Abs(float64(v)))
		}
		if cfg.measure && len(captured) < 2*maxMeasureFrames {
			captured = append(captured, block...)
		}
		if w != nil {
			_, werr := w.Write(block)
			return werr
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("rendered",
		zap.Int("frames", frames),
		zap.String("out", cfg.out),
		zap.Float64("peakDB", core.LinearToDB(peak)),
	)

	if cfg.measure {
		return measure(captured, cfg, p, logger)
	}
	return nil
}

// maxSearchLag bounds the correlation search: wide enough for the largest
// possible ITD, and below half a period so the tone's periodicity does not
// alias the peak.
func maxSearchLag(rate int, freq float64) int {
	lim := int(math.Ceil(binaural.ITDFactor*float64(rate))) + 2
	if freq > 0 {
		half := int(float64(rate)/(2*freq)) - 1
		if half < lim {
			lim = half
		}
	}
	return max(lim, 1)
}

func measure(buf []float32, cfg config, p *binaural.Provider, logger *zap.Logger) error {
	ch, err := lag.Deinterleave(buf, 2)
	if err != nil {
		return err
	}

	fields := []zap.Field{
		zap.Float64("leftRMSDB", core.LinearToDB(lag.RMS(ch[0]))),
		zap.Float64("rightRMSDB", core.LinearToDB(lag.RMS(ch[1]))),
	}

	if p != nil && cfg.sweep == 0 {
		maxLag := maxSearchLag(cfg.rate, cfg.freq)
		res, err := lag.Estimate(ch[0], ch[1], maxLag, lag.WithWindow(cfg.window))
		if err != nil {
			return err
		}
		if math.Abs(p.DelaySamples()) > float64(maxLag) {
			logger.Warn("model delay exceeds unambiguous search range; lower -freq",
				zap.Int("maxLag", maxLag))
		}
		fields = append(fields,
			zap.Float64("measuredLagSamples", res.Lag),
			zap.Float64("modelLagSamples", p.DelaySamples()),
			zap.Float64("modelITDSeconds", p.InterauralDelay()),
			zap.Float64("correlation", res.Peak),
			zap.Stringer("window", cfg.window),
		)
	}

	logger.Info("measured", fields...)
	return nil
}
