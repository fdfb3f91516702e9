package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-collection/internal/launcher"
	"github.com/vovakirdan/arcade-collection/internal/platform/tui"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Open the game launcher",
	Long: `Shows every game as a card. Each game starts in its own window as a
child process; the launcher keeps running and tracks when it exits.

Controls:
  Arrows/hjkl  - Move between cards
  Enter/Space  - Launch (or click a card)
  Mouse wheel  - Scroll
  Tab          - Score history
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runLaunch,
}

var flagRunTimeout time.Duration

var runCmd = &cobra.Command{
	Use:   "run <game>",
	Short: "Start a game as a child process and wait for it",
	Long: `Starts a catalog entry exactly as the launcher would, records the
launch in the stats file, and waits for the game to exit.

Examples:
  arcade run dino
  arcade run maze --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().DurationVar(&flagRunTimeout, "timeout", 24*time.Hour, "Stop waiting after this long")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	l, err := newLauncher(loadStats())
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	w, h := terminalSize()
	return tui.RunLauncher(l, store, w, h)
}

func runRun(cmd *cobra.Command, args []string) error {
	id := args[0]
	l, err := newLauncher(loadStats())
	if err != nil {
		return err
	}
	if err := l.Launch(id); err != nil {
		return err
	}

	st, done := l.Wait(id, flagRunTimeout)
	if !done {
		fmt.Printf("%s still running (pid %d)\n", id, st.PID)
		return nil
	}
	l.Poll()

	took := st.Ended.Sub(st.Started).Round(time.Second)
	if st.State == launcher.Failed {
		return fmt.Errorf("%s exited with code %d after %s", id, st.ExitCode, took)
	}
	fmt.Printf("%s exited after %s\n", id, took)
	return nil
}
