// Package platform holds what the terminal and window front-ends share:
// turning step results into sounds, high scores and score history.
package platform

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-collection/internal/audio"
	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/highscore"
	"github.com/vovakirdan/arcade-collection/internal/storage"
)

// Session carries the persistence and sound backends for one game. Every
// field is optional; a nil backend is skipped.
type Session struct {
	Store      *storage.Store
	Scores     *highscore.Book
	Sound      *audio.Bank
	Logger     *log.Logger
	Difficulty string

	now      func() time.Time
	started  time.Time
	pausedAt time.Time     // Zero unless the game is paused
	paused   time.Duration // Paused time since started
	recorded bool
}

// HighScore returns the best known score for a game across both stores.
func (s *Session) HighScore(gameID string) int {
	best := 0
	if s.Scores != nil {
		best = s.Scores.Get(gameID)
	}
	if s.Store != nil {
		v, err := s.Store.HighScore(context.Background(), gameID)
		if err != nil {
			s.Log().Warn("could not read score history", "game", gameID, "err", err)
		}
		best = max(best, v)
	}
	return best
}

// Begin marks the start of a run.
func (s *Session) Begin() {
	s.restartClock()
	s.recorded = false
}

func (s *Session) restartClock() {
	s.started = s.clock()
	s.pausedAt = time.Time{}
	s.paused = 0
}

// Observe handles one tick's result. A run is recorded once, on the tick it
// ends; leaving game over starts a new run.
func (s *Session) Observe(gameID string, res core.StepResult) {
	if s.Sound != nil && len(res.Events) > 0 {
		s.Sound.Play(res.Events...)
	}
	s.trackPause(res.State.Paused)

	switch {
	case res.State.GameOver && !s.recorded:
		s.record(gameID, res.State.Score)
		s.recorded = true
	case !res.State.GameOver && s.recorded:
		s.Begin()
	case res.State.InMenu:
		s.restartClock()
	}
}

func (s *Session) trackPause(paused bool) {
	switch {
	case paused && s.pausedAt.IsZero():
		s.pausedAt = s.clock()
	case !paused && !s.pausedAt.IsZero():
		s.paused += s.clock().Sub(s.pausedAt)
		s.pausedAt = time.Time{}
	}
}

// played is the time since the run started, less time spent paused.
func (s *Session) played() time.Duration {
	now := s.clock()
	d := now.Sub(s.started) - s.paused
	if !s.pausedAt.IsZero() {
		d -= now.Sub(s.pausedAt)
	}
	return max(d, 0)
}

// Recorded reports whether the current run has been saved.
func (s *Session) Recorded() bool {
	return s.recorded
}

func (s *Session) record(gameID string, score int) {
	if score <= 0 {
		return
	}
	logger := s.Log().With("game", gameID, "score", score)

	if s.Scores != nil {
		best, err := s.Scores.Record(gameID, score)
		if err != nil {
			logger.Warn("could not save high score", "err", err)
		} else if best {
			logger.Info("new high score")
		}
	}

	if s.Store != nil {
		run := storage.Run{
			GameID:     gameID,
			Score:      score,
			Difficulty: s.Difficulty,
			Duration:   s.played(),
		}
		if _, err := s.Store.SaveRun(context.Background(), run); err != nil {
			logger.Warn("could not save run", "err", err)
		}
	}
}

func (s *Session) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Log returns the session logger, or the default one.
func (s *Session) Log() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}
