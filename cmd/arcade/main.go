// arcade is a collection of small arcade games with a launcher.
//
// Usage:
//
//	arcade                   - Open the launcher
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal (or --window)
//	arcade launch            - Open the launcher
//	arcade run <game>        - Start a game as a child process and wait for it
//	arcade scores [game]     - Show score history
//	arcade stats             - Show launcher play counts
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--stats <path>        - Set launcher stats file (default: ~/.arcade/game_stats.json)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-collection/internal/games/dino"
	_ "github.com/vovakirdan/arcade-collection/internal/games/fighter"
	_ "github.com/vovakirdan/arcade-collection/internal/games/maze"
	_ "github.com/vovakirdan/arcade-collection/internal/games/ninja"
	_ "github.com/vovakirdan/arcade-collection/internal/games/snake"
	_ "github.com/vovakirdan/arcade-collection/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStatsPath  string
	flagLogLevel   string
	flagSound      bool
	flagWindow     bool
	flagConfig     string
	flagDifficulty string
	flagCatalog    string

	logger *log.Logger
)

func main() {
	if err := guard(rootCmd.Execute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// guard runs fn and turns a panic into an error, logging the stack. Games
// under --window step inside ebiten, which does not recover.
func guard(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		l := logger
		if l == nil {
			l = log.Default()
		}
		l.Error("crashed", "panic", r, "stack", string(debug.Stack()))
		err = fmt.Errorf("arcade: %v", r)
	}()
	return fn()
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade Collection - small arcade games and a launcher",
	Long: `Arcade Collection bundles Dino Run, Gravity Flip Ninja, Fighter Shoot,
Snake, Tic-Tac-Toe and Maze Explorer behind one launcher.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  launch   - Open the launcher (default)
  run      - Start a game as a child process
  scores   - View score history
  stats    - View launcher play counts

Examples:
  arcade
  arcade play dino
  arcade play fighter --window
  arcade run maze
  arcade scores snake`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(flagLogLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	RunE: runLaunch,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagStatsPath, "stats", "~/.arcade/game_stats.json", "Path to launcher stats file")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagSound, "sound", true, "Play sound effects")
	pf.BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagCatalog, "catalog", "~/.arcade/catalog.yaml", "Launcher catalog overrides (YAML)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}

// newLogger builds the process logger. Logs go to stderr so they never
// mix with a full-screen terminal UI on stdout.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           lvl,
	})
	return l, nil
}
