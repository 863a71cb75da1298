package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/algo-itd/dsp/binaural"
	"github.com/cwbudde/algo-itd/dsp/window"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("itdtone", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if cfg.rate != 44100 || cfg.freq != 1000 || cfg.amp != 0.25 || cfg.azimuth != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.duration != 2*time.Second {
		t.Fatalf("duration = %v, want 2s", cfg.duration)
	}
	if cfg.window != window.TypeHann {
		t.Fatalf("window = %v, want hann", cfg.window)
	}
}

func TestParseFlagsWindow(t *testing.T) {
	cfg, err := parseFlags(newFlagSet(), []string{"-window", "Blackman"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if cfg.window != window.TypeBlackman {
		t.Fatalf("window = %v, want blackman", cfg.window)
	}
}

func TestRunMainExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "help", args: []string{"-h"}, want: 0},
		{name: "table", args: []string{"-table"}, want: 0},
		{name: "bad flag", args: []string{"-rate", "0"}, want: 2},
		{name: "run failure", args: []string{"-duration", "0.01"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := runMain(tt.args, &stdout, &stderr); got != tt.want {
				t.Fatalf("runMain(%v) = %d, want %d (stderr: %s)", tt.args, got, tt.want, stderr.String())
			}
		})
	}
}

func TestRunMainTableOutput(t *testing.T) {
	var stdout bytes.Buffer
	if code := runMain([]string{"-table", "-rate", "48000"}, &stdout, io.Discard); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "29.04") {
		t.Fatalf("table missing 48 kHz full-lateral delay:\n%s", stdout.String())
	}
}

func TestParseFlagsValidation(t *testing.T) {
	tests := [][]string{
		{"-rate", "0"},
		{"-block", "-4"},
		{"-duration", "0"},
		{"-window", "kaiser"},
	}

	for _, args := range tests {
		if _, err := parseFlags(newFlagSet(), args); err == nil {
			t.Fatalf("parseFlags(%v) error = nil, want error", args)
		}
	}
}

func TestSweepAzimuth(t *testing.T) {
	tests := []struct {
		start, speed, t float64
		want            float64
	}{
		{start: 0, speed: 0, t: 10, want: 0},
		{start: 0, speed: 45, t: 1, want: 45},
		{start: 0, speed: 45, t: 3, want: 45},
		{start: 0, speed: 45, t: 4, want: 0},
		{start: -90, speed: 90, t: 3, want: 0},
		{start: 0, speed: -45, t: 3, want: -45},
	}

	for _, tt := range tests {
		if got := sweepAzimuth(tt.start, tt.speed, tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("sweepAzimuth(%v, %v, %v) = %v, want %v", tt.start, tt.speed, tt.t, got, tt.want)
		}
	}
}

func TestMaxSearchLag(t *testing.T) {
	if got := maxSearchLag(44100, 200); got != 29 {
		t.Fatalf("maxSearchLag(44100, 200) = %d, want 29", got)
	}
	if got := maxSearchLag(44100, 1000); got != 21 {
		t.Fatalf("maxSearchLag(44100, 1000) = %d, want 21", got)
	}
	if got := maxSearchLag(8000, 20000); got != 1 {
		t.Fatalf("maxSearchLag(8000, 20000) = %d, want 1", got)
	}
}

func TestRenderBlocksSweepsAzimuth(t *testing.T) {
	cfg := config{rate: 1000, freq: 50, amp: 0.5, azimuth: 0, sweep: 90, block: 100, duration: time.Second}
	src, p, err := newSource(cfg)
	if err != nil {
		t.Fatalf("newSource() error = %v", err)
	}

	total := 0
	err = renderBlocks(context.Background(), cfg, src, p, 1050, func(b []float32) error {
		total += len(b)
		return nil
	})
	if err != nil {
		t.Fatalf("renderBlocks() error = %v", err)
	}
	if total != 2*1050 {
		t.Fatalf("rendered %d samples, want %d", total, 2*1050)
	}
	// Last block starts at t = 1.0 s.
	if got := p.AzimuthDegrees(); math.Abs(got-90) > 1e-9 {
		t.Fatalf("AzimuthDegrees() = %v, want 90", got)
	}
}

func TestRenderBlocksCancelled(t *testing.T) {
	cfg := config{rate: 1000, freq: 50, amp: 0.5, block: 10}
	src, p, err := newSource(cfg)
	if err != nil {
		t.Fatalf("newSource() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = renderBlocks(ctx, cfg, src, p, 100, func([]float32) error { return nil })
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestRenderOfflineWritesWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	cfg := config{rate: 8000, freq: 500, amp: 0.5, azimuth: 45, block: 256, duration: 250 * time.Millisecond, out: path}

	if err := renderOffline(context.Background(), cfg, zap.NewNop()); err != nil {
		t.Fatalf("renderOffline() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if want := 0x2C + 2000*2*4; len(data) != want {
		t.Fatalf("file size = %d, want %d", len(data), want)
	}
}

func TestRenderOfflineNothingToDo(t *testing.T) {
	cfg := config{rate: 8000, freq: 500, amp: 0.5, block: 256, duration: time.Second}
	if err := renderOffline(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error without -out or -measure")
	}
}

func TestRenderOfflineMeasure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := config{rate: 44100, freq: 200, amp: 0.25, azimuth: 60, block: 512, duration: 500 * time.Millisecond, measure: true, window: window.TypeHann}

	if err := renderOffline(context.Background(), cfg, zap.New(core)); err != nil {
		t.Fatalf("renderOffline() error = %v", err)
	}

	entries := logs.FilterMessage("measured").All()
	if len(entries) != 1 {
		t.Fatalf("got %d measured entries, want 1", len(entries))
	}

	fields := entries[0].ContextMap()
	got, ok := fields["measuredLagSamples"].(float64)
	if !ok {
		t.Fatalf("measuredLagSamples missing: %v", fields)
	}
	want := binaural.ComputeITD(math.Pi/3) * 44100
	if math.Abs(got-want) > 0.1 {
		t.Fatalf("measured lag = %v, want %v", got, want)
	}
}

func TestRenderOfflineMono(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := config{rate: 8000, freq: 500, amp: 0.5, block: 128, duration: 100 * time.Millisecond, measure: true, mono: true}

	if err := renderOffline(context.Background(), cfg, zap.New(core)); err != nil {
		t.Fatalf("renderOffline() error = %v", err)
	}

	fields := logs.FilterMessage("measured").All()[0].ContextMap()
	if _, ok := fields["measuredLagSamples"]; ok {
		t.Fatal("mono reference must not report a lag")
	}
	if r, ok := fields["rightRMSDB"].(float64); !ok || !math.IsInf(r, -1) {
		t.Fatalf("rightRMSDB = %v, want -Inf", fields["rightRMSDB"])
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	if err := printTable(&buf, 44100); err != nil {
		t.Fatalf("printTable() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "26.68") || !strings.Contains(out, "-26.68") {
		t.Fatalf("table missing full-lateral delay:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != len(tableAzimuths)+2 {
		t.Fatalf("table has %d lines, want %d", lines, len(tableAzimuths)+2)
	}
}
