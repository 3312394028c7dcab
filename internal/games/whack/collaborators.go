package whack

import "github.com/vovakirdan/whack-arcade/internal/audio"

// Display receives the numbers shown to the player.
type Display interface {
	ShowScore(points int) error
	ShowTime(seconds int) error
}

// Affordance is the control that starts a game.
type Affordance interface {
	SetEnabled(enabled bool) error
}

// Collaborators are the optional outer surfaces the controller drives.
// Nil fields fall back to no-ops.
type Collaborators struct {
	Display  Display
	Button   Affordance
	HitSound audio.Sink
	Music    audio.Sink
}

type nopDisplay struct{}

func (nopDisplay) ShowScore(int) error { return nil }
func (nopDisplay) ShowTime(int) error  { return nil }

type nopButton struct{}

func (nopButton) SetEnabled(bool) error { return nil }

func (c Collaborators) withDefaults() Collaborators {
	if c.Display == nil {
		c.Display = nopDisplay{}
	}
	if c.Button == nil {
		c.Button = nopButton{}
	}
	return c
}
