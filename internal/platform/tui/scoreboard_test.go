package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

type failingLister struct{}

func (failingLister) TopScores(config.Difficulty, int) ([]storage.ScoreEntry, error) {
	return nil, errors.New("database locked")
}

func seededStore() *fakeStore {
	return &fakeStore{saved: []storage.ScoreEntry{
		{Player: "ann", Difficulty: config.DifficultyEasy, Score: 9},
		{Player: "bob", Difficulty: config.DifficultyHard, Score: 4},
		{Player: "cid", Difficulty: config.DifficultyHard, Score: 3},
	}}
}

func TestScoreboardStartsOnRequestedTab(t *testing.T) {
	m := NewScoreboardModel(seededStore(), config.DifficultyHard, 80, 24)

	if m.Selected() != config.DifficultyHard {
		t.Errorf("Selected() = %v, expected hard", m.Selected())
	}
	if len(m.Scores()) != 2 {
		t.Errorf("loaded %d hard scores, expected 2", len(m.Scores()))
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Hard") {
		t.Error("title should name the difficulty")
	}
}

func TestScoreboardTabs(t *testing.T) {
	m := NewScoreboardModel(seededStore(), config.DifficultyEasy, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Selected() != config.DifficultyNormal {
		t.Errorf("after tab: %v, expected normal", m.Selected())
	}
	if len(m.Scores()) != 0 || !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("normal tab should be empty")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Selected() != config.DifficultyHard {
		t.Errorf("shift+tab should wrap around to hard, got %v", m.Selected())
	}
}

func TestScoreboardLoadError(t *testing.T) {
	m := NewScoreboardModel(failingLister{}, config.DifficultyEasy, 80, 24)

	if !strings.Contains(m.View(), "database locked") {
		t.Error("load error should be shown")
	}
}

func TestScoreboardNilStore(t *testing.T) {
	m := NewScoreboardModel(nil, config.DifficultyNormal, 80, 24)

	if len(m.Scores()) != 0 {
		t.Error("nil store should show no scores")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, config.DifficultyNormal, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("view should be empty after quit")
	}
}
