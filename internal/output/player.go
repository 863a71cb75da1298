//go:build !headless

// Package output plays a playback stream on the default audio device.
package output

import (
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-itd/internal/playback"
)

// Player pulls float32 stereo frames from a stream through oto.
type Player struct {
	ctx     *oto.Context
	player  *oto.Player
	started bool
	mutex   sync.Mutex
}

// NewPlayer opens the audio device at the stream's sample rate. Only one
// Player may exist per process.
func NewPlayer(stream *playback.Stream) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   stream.SampleRate(),
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(stream),
	}, nil
}

// Start begins playback.
func (p *Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.started && p.player != nil {
		p.player.Play()
		p.started = true
	}
}

// Stop pauses playback.
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.started && p.player != nil {
		p.player.Pause()
		p.started = false
	}
}

// Close stops playback and releases the player.
func (p *Player) Close() error {
	p.Stop()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	return err
}

// IsStarted reports whether playback is running.
func (p *Player) IsStarted() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.started
}
