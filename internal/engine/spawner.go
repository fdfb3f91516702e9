package engine

import (
	"math/rand"

	"github.com/vovakirdan/arcade-collection/internal/config"
)

// Shaper turns a kind name into a concrete obstacle. X is set by the
// spawner afterwards. Returning false rejects the spawn.
type Shaper func(kind string, rng *rand.Rand) (Obstacle, bool)

// SpawnerConfig is the immutable description of a spawner.
type SpawnerConfig struct {
	Kinds             []string
	BaseInterval      int // Frames
	MinInterval       int
	IntervalReduction int
	Jitter            int
	MinDistance       float64
	SpawnX            float64 // Left edge of new obstacles
	ScrollSpeed       float64 // Must match the pool's speed
}

// SpawnerFromConfig derives spawner settings from a game's YAML sections.
func SpawnerFromConfig(world config.World, spawn config.Spawn, physics config.Physics) SpawnerConfig {
	return SpawnerConfig{
		Kinds:             spawn.Kinds,
		BaseInterval:      spawn.BaseInterval,
		MinInterval:       spawn.MinInterval,
		IntervalReduction: spawn.IntervalReduction,
		Jitter:            spawn.Jitter,
		MinDistance:       spawn.MinDistance,
		SpawnX:            world.Width + spawn.Margin,
		ScrollSpeed:       max(physics.ObstacleSpeed, MinScrollSpeed),
	}
}

// Spawner is a timer-gated random obstacle generator.
type Spawner struct {
	cfg        SpawnerConfig
	shape      Shaper
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	countdown float64 // Frames until the next spawn attempt
	lastX     float64 // Current X of the last spawned obstacle
	hasLast   bool
	nextID    int
	ticks     int
}

// NewSpawner creates a spawner. difficulty may be nil for a fixed pace.
func NewSpawner(cfg SpawnerConfig, shape Shaper, difficulty *config.DifficultyManager, rng *rand.Rand) *Spawner {
	s := &Spawner{
		cfg:        cfg,
		shape:      shape,
		rng:        rng,
		difficulty: difficulty,
	}
	s.Reset(rng)
	return s
}

// Reset restores the initial countdown and forgets the last spawn.
func (s *Spawner) Reset(rng *rand.Rand) {
	s.rng = rng
	s.countdown = float64(s.cfg.BaseInterval)
	s.lastX = 0
	s.hasLast = false
	s.nextID = 0
	s.ticks = 0
}

// Countdown returns the frames left before the next spawn attempt.
func (s *Spawner) Countdown() float64 {
	return s.countdown
}

// SetLast records x as the position of the most recent spawn.
func (s *Spawner) SetLast(x float64) {
	s.lastX = x
	s.hasLast = true
}

// LastX returns the tracked position of the most recent spawn.
func (s *Spawner) LastX() (float64, bool) {
	return s.lastX, s.hasLast
}

// NextID hands out a spawn sequence number for obstacles created outside
// the timer (enemy shots), keeping IDs unique within the pool.
func (s *Spawner) NextID() int {
	s.nextID++
	return s.nextID
}

// MaybeSpawn advances the countdown by dt and, when it has expired,
// creates one obstacle at the spawn X. While the last spawn is still
// closer than MinDistance the countdown stays expired and the spawn is
// retried on the next tick.
func (s *Spawner) MaybeSpawn(dt, gameSpeed float64, score int) (Obstacle, bool) {
	s.ticks++
	if s.hasLast {
		s.lastX -= Displacement(s.cfg.ScrollSpeed, gameSpeed, dt)
	}

	s.countdown -= Frames(dt)
	if s.countdown > 0 {
		return Obstacle{}, false
	}
	if len(s.cfg.Kinds) == 0 || s.shape == nil || s.rng == nil {
		return Obstacle{}, false
	}
	if s.hasLast && s.cfg.SpawnX-s.lastX < s.cfg.MinDistance {
		return Obstacle{}, false
	}

	kind := s.cfg.Kinds[s.rng.Intn(len(s.cfg.Kinds))]
	s.countdown = float64(s.interval(score))

	o, ok := s.shape(kind, s.rng)
	if !ok {
		return Obstacle{}, false
	}
	o.X = s.cfg.SpawnX
	o.ID = s.NextID()
	s.SetLast(o.X)
	return o, true
}

// interval computes the next countdown: the difficulty-scaled base plus
// uniform jitter, never below MinInterval.
func (s *Spawner) interval(score int) int {
	base := s.cfg.BaseInterval
	if s.difficulty != nil {
		base = s.difficulty.Interval(s.cfg.BaseInterval, s.cfg.MinInterval, s.cfg.IntervalReduction, score, s.ticks)
	}
	if s.cfg.Jitter > 0 {
		base += s.rng.Intn(2*s.cfg.Jitter+1) - s.cfg.Jitter
	}
	return max(base, s.cfg.MinInterval, 1)
}
