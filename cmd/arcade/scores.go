package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-collection/internal/platform/tui"
	"github.com/vovakirdan/arcade-collection/internal/registry"
	"github.com/vovakirdan/arcade-collection/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show score history",
	Long: `Without arguments, opens the interactive scoreboard.
With a game ID, prints its top scores.

Examples:
  arcade scores
  arcade scores dino
  arcade scores snake --limit 25
  arcade scores maze --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the game's score history")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		w, h := terminalSize()
		_, err := tui.RunScoreboard(store, w, h)
		return err
	}

	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	ctx := context.Background()
	if flagScoresClear {
		if err := store.ClearScores(ctx, gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared score history for %s.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(ctx, gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	now := time.Now()
	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "Rank", "Score", "Level", "Time", "When")
	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----", "----")
	for i, r := range scores {
		level := r.Difficulty
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %-4d  %-10s  %-8s  %-8s  %s\n",
			i+1, humanize.Comma(int64(r.Score)), level, r.Duration.Round(time.Second), humanize.RelTime(r.CreatedAt, now, "ago", "from now"))
	}

	sum, err := store.Summary(ctx, gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %s  Runs: %d  Average: %.0f  Total time: %s\n",
			humanize.Comma(int64(sum.HighScore)), sum.Runs, sum.AvgScore, sum.TotalTime.Round(time.Second))
	}
	return nil
}
