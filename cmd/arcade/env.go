package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/arcade-collection/internal/audio"
	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/highscore"
	"github.com/vovakirdan/arcade-collection/internal/launcher"
	"github.com/vovakirdan/arcade-collection/internal/platform"
	"github.com/vovakirdan/arcade-collection/internal/registry"
	"github.com/vovakirdan/arcade-collection/internal/stats"
	"github.com/vovakirdan/arcade-collection/internal/storage"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// terminalSize returns the terminal size, or 80x24 when stdout is not one.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the score database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// loadStats reads the launcher stats file; a bad file starts empty.
func loadStats() *stats.File {
	path := expandHome(flagStatsPath)
	st, err := stats.Load(path)
	if err != nil {
		logger.Warn("stats file unreadable, starting fresh", "path", path, "err", err)
	}
	return st
}

// runtimeConfig collects the flags every game sees.
func runtimeConfig() core.RuntimeConfig {
	w, h := terminalSize()
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:    w,
		ScreenH:    h,
		TickRate:   flagFPS,
		Seed:       seed,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}

// newSession wires the persistence and sound backends for one game.
// The returned func releases them.
func newSession(store *storage.Store) (*platform.Session, func()) {
	s := &platform.Session{
		Store:      store,
		Scores:     highscore.Open(highscore.AppName, logger),
		Logger:     logger,
		Difficulty: flagDifficulty,
	}
	if !flagSound {
		return s, func() {}
	}

	bank := audio.NewBank()
	if err := bank.Init(); err != nil {
		logger.Warn("no audio device, playing silently", "err", err)
		return s, func() {}
	}
	s.Sound = bank
	return s, bank.Close
}

// childFlags are the flags passed on to games started by the launcher.
// Children have no terminal, so they always open a window. They run from
// the binary's directory, so paths are made absolute. --config is not
// passed on: it names one game's file, and children find their own
// overrides under configs/<id>.yaml.
func childFlags() []string {
	flags := []string{
		"--window",
		"--fps=" + strconv.Itoa(flagFPS),
		"--db=" + absPath(flagDBPath),
		"--sound=" + strconv.FormatBool(flagSound),
		"--log-level=" + flagLogLevel,
	}
	if flagDifficulty != "" {
		flags = append(flags, "--difficulty="+flagDifficulty)
	}
	return flags
}

// absPath expands ~ and resolves path against the working directory.
func absPath(path string) string {
	path = expandHome(path)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// newLauncher builds the catalog and the launcher around it.
func newLauncher(st *stats.File) (*launcher.Launcher, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate arcade binary: %w", err)
	}
	entries := launcher.DefaultCatalog(exe, registry.List(), childFlags())

	path := expandHome(flagCatalog)
	entries, err = launcher.LoadCatalog(path, entries)
	if err != nil {
		logger.Warn("catalog overrides ignored", "path", path, "err", err)
	}
	return launcher.New(entries, st, logger), nil
}
