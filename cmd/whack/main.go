// whack is a whack-a-mole game for the terminal.
//
// Usage:
//
//	whack play                 - Play a game
//	whack scores [difficulty]  - Show high scores
//	whack board                - Browse high scores interactively
//	whack serve                - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <level> - easy, normal or hard (default: from config)
//	--fps <rate>         - Set tick rate (default: from config)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.whack/scores.db)
//	--log-file <path>    - Where play sessions log (default: ~/.whack/whack.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "whack",
	Short: "Whack-a-Mole in your terminal",
	Long: `Whack-a-Mole: moles pop out of a grid of holes one at a time.
Hit them before they duck back down and score as many as you can
before the timer runs out.

Available commands:
  play     - Play a game
  scores   - Print the top scores for a difficulty
  board    - Interactive scoreboard
  serve    - Start SSH server for remote play

Examples:
  whack play
  whack play --difficulty easy --duration 30
  whack scores hard
  whack serve --ssh :2222 --http :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard (default from config)")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file for play sessions")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the game config from file, environment and the
// global flags, in that order.
func loadConfig() (config.WhackConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, flagDifficulty); err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Game.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}
