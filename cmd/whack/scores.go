package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a difficulty.
Without an argument the configured difficulty is used.

Examples:
  whack scores
  whack scores easy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d := cfg.Difficulty.Level
	if len(args) == 1 {
		if d, err = config.ParseDifficulty(args[0]); err != nil {
			return err
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	return printScores(cmd.OutOrStdout(), store, d)
}

func printScores(w io.Writer, store *storage.Store, d config.Difficulty) error {
	scores, err := store.TopScores(d, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", d.Title())

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'whack play --difficulty %s' to set the first high score!\n", d)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-16s  %-6d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	fmt.Fprintf(w, "\nBest: %d\n", scores[0].Score)
	return nil
}
