package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-itd/internal/output"
	"github.com/cwbudde/algo-itd/internal/playback"
)

const sweepInterval = 20 * time.Millisecond

func play(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.mono {
		return errors.New("-mono cannot be combined with -play")
	}

	_, p, err := newSource(cfg)
	if err != nil {
		return err
	}

	stream, err := playback.NewStream(p)
	if err != nil {
		return err
	}

	player, err := output.NewPlayer(stream)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := player.Close(); cerr != nil {
			logger.Warn("closing player", zap.Error(cerr))
		}
	}()

	player.Start()
	logger.Info("playing", zap.Int("rate", stream.SampleRate()))

	deadline := time.NewTimer(cfg.duration)
	defer deadline.Stop()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			logger.Info("interrupted", zap.Int64("frames", stream.Frames()))
			return nil
		case <-deadline.C:
			logger.Info("done", zap.Int64("frames", stream.Frames()))
			return nil
		case <-ticker.C:
			if cfg.sweep != 0 {
				az := sweepAzimuth(cfg.azimuth, cfg.sweep, time.Since(start).Seconds())
				stream.SetAzimuthDegrees(az)
				logger.Debug("azimuth", zap.Float64("deg", az))
			}
		}
	}
}
