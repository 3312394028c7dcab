package whack

import (
	"strings"
	"testing"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/core"
)

func newTestGame(level config.Difficulty) *Game {
	g := New(testConfig(level))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7})
	return g
}

func confirm() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	return in
}

func pause() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	return in
}

func TestGameReset(t *testing.T) {
	g := newTestGame(config.DifficultyNormal)

	state := g.State()
	if state.Running || state.GameOver || state.Paused || state.Score != 0 {
		t.Errorf("state after reset = %+v", state)
	}
	if !g.Button().Enabled() {
		t.Error("start button should be enabled on the title screen")
	}
	if g.HUD().TimeText() != "10" {
		t.Errorf("HUD time = %q, expected \"10\"", g.HUD().TimeText())
	}
	if g.ID() != ID || g.Title() == "" {
		t.Error("game should have an ID and title")
	}
}

func TestGameConfirmStarts(t *testing.T) {
	g := newTestGame(config.DifficultyNormal)

	res := g.Step(confirm())

	if !res.State.Running {
		t.Fatal("confirm should start a game")
	}
	if g.Button().Enabled() {
		t.Error("start button should be disabled while running")
	}

	// Confirm while running is ignored
	g.Step(confirm())
	if !g.State().Running {
		t.Error("second confirm should not stop the game")
	}
}

func TestGameSelectScores(t *testing.T) {
	g := newTestGame(config.DifficultyNormal)
	g.Step(confirm())

	target := g.Controller().Rounds().Target()
	if target == nil {
		t.Fatal("no mole visible after start")
	}

	miss := core.NewInputFrame()
	miss.Select((target.Index + 1) % g.Controller().Field().Len())
	g.Step(miss)
	if g.State().Score != 0 {
		t.Errorf("hidden hole scored, score = %d", g.State().Score)
	}

	hit := core.NewInputFrame()
	hit.Select(target.Index)
	res := g.Step(hit)
	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
	if g.HUD().ScoreText() != "1" {
		t.Errorf("HUD score = %q, expected \"1\"", g.HUD().ScoreText())
	}
}

func TestGameRunsToCompletion(t *testing.T) {
	g := newTestGame(config.DifficultyNormal)
	g.Step(confirm())

	finished := 0
	for i := 0; i < 30*14; i++ {
		if g.Step(core.NewInputFrame()).Finished {
			finished++
		}
	}

	if finished != 1 {
		t.Errorf("Finished reported %d times, expected 1", finished)
	}
	state := g.State()
	if state.Running || !state.GameOver {
		t.Errorf("state after game = %+v, expected game over", state)
	}
	if g.HUD().TimeText() != "0" {
		t.Errorf("HUD time = %q, expected \"0\"", g.HUD().TimeText())
	}
	if !g.Button().Enabled() {
		t.Error("start button should be enabled after the game")
	}
	if g.LastSession().Remaining != 0 {
		t.Errorf("last session remaining = %d", g.LastSession().Remaining)
	}

	// Play again
	if !g.Step(confirm()).State.Running {
		t.Error("confirm after game over should start a new game")
	}
	if g.State().GameOver {
		t.Error("game over flag should clear on restart")
	}
}

func TestGameBestScore(t *testing.T) {
	g := newTestGame(config.DifficultyNormal)
	g.SetBest(5)
	g.SetBest(3)
	if g.Best() != 5 {
		t.Errorf("Best() = %d, expected 5", g.Best())
	}

	g.Step(confirm())
	for i := 0; i < 6; i++ {
		g.Controller().OnHit(nil)
	}
	for i := 0; i < 30*14; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Best() != 6 {
		t.Errorf("Best() = %d after scoring 6, expected 6", g.Best())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(config.DifficultyNormal)

	g.Step(pause())
	if g.State().Paused {
		t.Error("pause should be ignored on the title screen")
	}

	g.Step(confirm())
	g.Step(pause())
	if !g.State().Paused {
		t.Fatal("pause should toggle while running")
	}

	for i := 0; i < 30*3; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.HUD().TimeText() != "10" {
		t.Errorf("time moved while paused: %q", g.HUD().TimeText())
	}

	g.Step(pause())
	if g.State().Paused {
		t.Error("second pause should resume")
	}
	for i := 0; i < 31; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.HUD().TimeText() != "9" {
		t.Errorf("time after resume = %q, expected \"9\"", g.HUD().TimeText())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(config.DifficultyNormal)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"WHACK-A-MOLE", "Press ENTER to start", "Level: Normal"} {
		if !strings.Contains(out, want) {
			t.Errorf("title screen missing %q", want)
		}
	}
	if strings.Contains(out, moleSprite) {
		t.Error("no mole should be drawn before start")
	}

	g.Step(confirm())
	g.Render(screen)
	out = screen.String()
	if strings.Count(out, moleSprite) != 1 {
		t.Errorf("expected exactly one mole on screen, got %d", strings.Count(out, moleSprite))
	}
	if strings.Contains(out, "Press ENTER to start") {
		t.Error("start prompt should be hidden while running")
	}

	g.Step(pause())
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should say so")
	}
}

func TestGameHoleAt(t *testing.T) {
	g := newTestGame(config.DifficultyNormal)
	g.Render(core.NewScreen(80, 24))

	// 80x24 with 3 columns: 13x5 boxes starting at (19, 3)
	tests := []struct {
		x, y  int
		index int
		ok    bool
	}{
		{20, 4, 0, true},
		{19 + 14, 4, 1, true},
		{20, 3 + 5, 3, true},
		{0, 0, 0, false},
		{79, 23, 0, false},
	}
	for _, tt := range tests {
		index, ok := g.HoleAt(tt.x, tt.y)
		if ok != tt.ok || (ok && index != tt.index) {
			t.Errorf("HoleAt(%d, %d) = (%d, %v), expected (%d, %v)", tt.x, tt.y, index, ok, tt.index, tt.ok)
		}
	}
}

func TestHoleLayout(t *testing.T) {
	rects := holeLayout(9, 3, 80, 24)
	if len(rects) != 9 {
		t.Fatalf("len = %d, expected 9", len(rects))
	}
	for i := 1; i < len(rects); i++ {
		for j := 0; j < i; j++ {
			if overlaps(rects[i], rects[j]) {
				t.Errorf("holes %d and %d overlap", i, j)
			}
		}
	}
	if holeLayout(0, 3, 80, 24) != nil {
		t.Error("no holes should produce no layout")
	}
}

func overlaps(a, b core.Rect) bool {
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
}
