// Package audio models optional sound accompaniment.
// A Sink only has to name itself; playback capabilities are discovered by
// type assertion and silently skipped when absent. Every call is best effort:
// failures are logged and never returned to the caller.
package audio

import (
	"io"

	"github.com/charmbracelet/log"
)

// Sink is any sound source the game can hold a reference to.
type Sink interface {
	Name() string
}

// Player is a sink that can start playback.
type Player interface {
	Play() error
}

// Pauser is a sink that can pause playback.
type Pauser interface {
	Pause() error
}

// Rewinder is a sink that can seek back to the start.
type Rewinder interface {
	Rewind() error
}

// Start rewinds the sink if it can, then plays it if it can.
func Start(logger *log.Logger, s Sink) {
	if s == nil {
		return
	}
	if r, ok := s.(Rewinder); ok {
		if err := r.Rewind(); err != nil {
			warn(logger, "audio rewind failed", s, err)
		}
	}
	if p, ok := s.(Player); ok {
		if err := p.Play(); err != nil {
			warn(logger, "audio playback failed", s, err)
		}
	}
}

// Halt pauses the sink if it can, then rewinds it if it can.
func Halt(logger *log.Logger, s Sink) {
	if s == nil {
		return
	}
	if p, ok := s.(Pauser); ok {
		if err := p.Pause(); err != nil {
			warn(logger, "audio pause failed", s, err)
		}
	}
	if r, ok := s.(Rewinder); ok {
		if err := r.Rewind(); err != nil {
			warn(logger, "audio rewind failed", s, err)
		}
	}
}

func warn(logger *log.Logger, msg string, s Sink, err error) {
	if logger == nil {
		return
	}
	logger.Warn(msg, "sink", s.Name(), "error", err)
}

// Silent is a sink with no capabilities.
type Silent struct{}

// Name implements Sink.
func (Silent) Name() string { return "silent" }

// Bell rings the terminal bell on Play.
type Bell struct {
	w io.Writer
}

// NewBell creates a bell that writes to w (usually the program output).
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Name implements Sink.
func (b *Bell) Name() string { return "bell" }

// Play writes the BEL control character.
func (b *Bell) Play() error {
	if b.w == nil {
		return nil
	}
	_, err := io.WriteString(b.w, "\a")
	return err
}
