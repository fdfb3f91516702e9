package core

import "time"

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 lets the platform pick one

	ConfigPath string // Optional YAML override for the game's config
	Difficulty string // Difficulty preset name: easy, normal, hard, fixed
	HighScore  int    // Best score known at session start
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickDuration returns the wall-clock length of one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// DeltaSeconds returns the simulated seconds covered by one tick.
func (c RuntimeConfig) DeltaSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Score     int
	HighScore int  // Best of the stored high score and this session
	InMenu    bool // Waiting on the title screen
	GameOver  bool
	Paused    bool
}

// Event is a notable thing that happened during a tick. Front-ends use
// events for sound effects; games never depend on them being consumed.
type Event int

const (
	EventJump Event = iota + 1
	EventFlip
	EventShoot
	EventHit
	EventPickup
	EventCrash
	EventPoint
)

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
