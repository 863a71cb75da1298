//go:build headless

// Package output plays a playback stream on the default audio device.
package output

import (
	"errors"

	"github.com/cwbudde/algo-itd/internal/playback"
)

// ErrHeadless is returned by NewPlayer in headless builds.
var ErrHeadless = errors.New("output: built without audio device support")

// Player is unavailable in headless builds.
type Player struct {
	started bool
}

// NewPlayer always fails in headless builds.
func NewPlayer(*playback.Stream) (*Player, error) {
	return nil, ErrHeadless
}

func (p *Player) Start()          { p.started = true }
func (p *Player) Stop()           { p.started = false }
func (p *Player) Close() error    { p.started = false; return nil }
func (p *Player) IsStarted() bool { return p.started }
