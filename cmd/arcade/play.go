package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-collection/internal/platform/tui"
	"github.com/vovakirdan/arcade-collection/internal/platform/window"
	"github.com/vovakirdan/arcade-collection/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Up     - Jump, flip, shoot, start
  Down         - Duck (held)
  Arrows/WASD  - Move
  Enter        - Start / place mark
  P            - Pause
  R            - Restart (after game over)
  Esc/B/Q      - Back to the launcher

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play dino
  arcade play ninja --difficulty hard
  arcade play fighter --window
  arcade play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	session, release := newSession(store)
	defer release()

	cfg := runtimeConfig()
	cfg.HighScore = session.HighScore(gameID)
	logger.Debug("starting game", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate, "window", flagWindow)

	if flagWindow {
		err = window.Run(game, session, cfg)
	} else {
		err = tui.Run(game, session, cfg)
	}
	if err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
