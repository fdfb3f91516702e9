// Package highscore keeps the best score of each game across sessions.
// Scores are stored with gdata, one property per game id holding plain
// decimal text. Without storage the book still works in memory.
package highscore

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
)

// AppName is the gdata application the book lives under.
const AppName = "arcade-collection"

const object = "highscore"

// Book maps game ids to their best scores.
type Book struct {
	mu     sync.Mutex
	data   *gdata.Manager // nil = memory only
	logger *log.Logger
	cache  map[string]int
}

// Open opens the book in the platform data directory. Storage errors are
// logged and leave the book in memory-only mode.
func Open(appName string, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.Default()
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("high scores will not persist", "err", err)
		m = nil
	}
	return New(m, logger)
}

// New wraps an existing gdata manager, which may be nil.
func New(m *gdata.Manager, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.Default()
	}
	return &Book{data: m, logger: logger, cache: make(map[string]int)}
}

// Persistent reports whether scores survive the process.
func (b *Book) Persistent() bool {
	return b.data != nil
}

// Get returns the best score for a game. Missing or unreadable entries
// count as 0.
func (b *Book) Get(gameID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.get(gameID)
}

func (b *Book) get(gameID string) int {
	if v, ok := b.cache[gameID]; ok {
		return v
	}
	v := 0
	if b.data != nil && b.data.ObjectPropExists(object, gameID) {
		raw, err := b.data.LoadObjectProp(object, gameID)
		if err != nil {
			b.logger.Warn("read high score", "game", gameID, "err", err)
		} else {
			v = parse(raw)
		}
	}
	b.cache[gameID] = v
	return v
}

// parse reads plain decimal text. Anything else is 0.
func parse(raw []byte) int {
	v, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Record stores score if it beats the current best and reports whether it
// did. The in-memory value is updated even when saving fails.
func (b *Book) Record(gameID string, score int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if score <= b.get(gameID) {
		return false, nil
	}
	b.cache[gameID] = score
	if b.data == nil {
		return true, nil
	}
	if err := b.data.SaveObjectProp(object, gameID, []byte(strconv.Itoa(score))); err != nil {
		return true, fmt.Errorf("highscore: save %s: %w", gameID, err)
	}
	return true, nil
}
