// Package registry is the catalog of built-in games. Each game package
// registers a factory from init(), so front-ends and the launcher find
// games without importing them directly.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
)

// Game is implemented by every arcade game. Games are pure simulations:
// no terminal, window, clock or file access. The platform handles input
// mapping, timing, rendering and persistence.
type Game interface {
	// ID is the stable key used by the CLI, score history and high scores.
	ID() string

	// Title is the display name. Launcher stats are keyed by title.
	Title() string

	// Description is a one-line blurb for the launcher card.
	Description() string

	// Reset loads configuration and starts over on the title screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Scene describes the current frame without changing state.
	Scene() engine.Scene

	// State returns the current score and phase flags.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type registered struct {
	info    GameInfo
	factory Factory
}

var (
	mu    sync.RWMutex
	games = make(map[string]registered)
)

// Register adds a game. It panics on an empty or duplicate ID, which can
// only happen through a programming error in some init().
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	// Metadata comes from a throwaway instance.
	g := f()
	info := GameInfo{ID: id, Title: g.Title(), Description: g.Description()}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = registered{info: info, factory: f}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(games))
	for _, r := range games {
		out = append(out, r.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create instantiates a fresh game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	r, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return r.factory(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}

// Info returns metadata for one registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	r, ok := games[id]
	return r.info, ok
}
