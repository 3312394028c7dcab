package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

// resetFlags restores the global flags after a test changes them.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	saved := struct {
		config, difficulty, level string
		fps                       int
	}{flagConfig, flagDifficulty, flagLogLevel, flagFPS}
	t.Cleanup(func() {
		flagConfig = saved.config
		flagDifficulty = saved.difficulty
		flagLogLevel = saved.level
		flagFPS = saved.fps
	})
}

func TestLoadConfigFlags(t *testing.T) {
	resetFlags(t)
	flagDifficulty = "Easy"
	flagFPS = 60

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Difficulty.Level != config.DifficultyEasy {
		t.Errorf("level = %v, expected easy", cfg.Difficulty.Level)
	}
	if cfg.Game.TickRate != 60 {
		t.Errorf("tick rate = %d, expected 60", cfg.Game.TickRate)
	}
}

func TestLoadConfigRejectsDifficulty(t *testing.T) {
	resetFlags(t)
	flagDifficulty = "nightmare"

	if _, err := loadConfig(); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestLoadConfigFile(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "whack.yaml")
	if err := os.WriteFile(path, []byte("game:\n  duration: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Game.Duration != 25 {
		t.Errorf("duration = %d, expected 25", cfg.Game.Duration)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	resetFlags(t)

	flagLogLevel = "warn"
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "test")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("level filtering wrong: %q", buf.String())
	}

	flagLogLevel = "loud"
	if _, err := newLogger(&buf, "test"); err == nil {
		t.Error("unknown level should fail")
	}
}

func TestOpenLogFileExpandsHome(t *testing.T) {
	resetFlags(t)

	f, err := openLogFile("~/.whack/whack.log")
	if err != nil {
		t.Fatalf("openLogFile() failed: %v", err)
	}
	f.Close()

	if _, err := os.Stat(filepath.Join(os.Getenv("HOME"), ".whack", "whack.log")); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	if err := printScores(&out, store, config.DifficultyHard); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("empty board output = %q", out.String())
	}

	store.SaveScore(storage.ScoreEntry{Player: "ann", Difficulty: config.DifficultyHard, Score: 11})
	store.SaveScore(storage.ScoreEntry{Player: "bob", Difficulty: config.DifficultyHard, Score: 7})

	out.Reset()
	if err := printScores(&out, store, config.DifficultyHard); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "High Scores - Hard") || !strings.Contains(text, "Best: 11") {
		t.Errorf("output = %q", text)
	}
	if strings.Index(text, "ann") > strings.Index(text, "bob") {
		t.Error("scores should be listed best first")
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"2222":           "2222",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", addr, got, want)
		}
	}
}
