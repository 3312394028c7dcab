package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/whack-arcade/internal/audio"
	"github.com/vovakirdan/whack-arcade/internal/core"
	"github.com/vovakirdan/whack-arcade/internal/games/whack"
	"github.com/vovakirdan/whack-arcade/internal/platform/tui"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

var (
	flagDuration int
	flagPlayer   string
	flagMute     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of whack-a-mole.

Controls:
  Enter/Space  - Start (again)
  1-9 / click  - Whack the matching hole
  P/Esc        - Pause
  Q/Ctrl+C     - Quit

Difficulty:
  easy   - Moles stay up for 1.5s
  normal - Moles stay up for 1s
  hard   - Moles stay up between 0.6s and 1.2s

Examples:
  whack play
  whack play --difficulty easy
  whack play --duration 30 --player ann
  whack play --config ./my-whack.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagDuration, "duration", 0, "Game length in seconds (0 = from config)")
	playCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name recorded with your scores")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not ring the terminal bell on hits")
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagDuration > 0 {
		cfg.Game.Duration = flagDuration
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger, err := newLogger(logOut, "whack")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Game.TickRate,
		Seed:     flagSeed,
	}

	var hitSound audio.Sink = audio.Silent{}
	if cfg.Sound.HitBell && !flagMute {
		hitSound = audio.NewBell(os.Stderr)
	}
	game := whack.New(cfg,
		whack.WithLogger(logger),
		whack.WithHitSound(hitSound),
	)

	// Continue without storage if the database is unavailable
	var scores tui.ScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
	} else {
		defer store.Close()
		scores = store
	}

	logger.Info("session started", "player", flagPlayer, "difficulty", cfg.Difficulty.Level, "duration", cfg.Game.Duration)
	if err := tui.Run(game, scores, runtime, flagPlayer, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("session ended", "player", flagPlayer, "best", game.Best())
	return nil
}
