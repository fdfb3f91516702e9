package config

import "math"

// DifficultyManager maps progress (score or elapsed ticks) to a level in
// [0, 1] and scales speeds and spawn intervals by it.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager. Presets are applied to cfg first.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: clamp01(cfg.InitialLevel)}
}

// Progressive reports whether the level moves at all.
func (d *DifficultyManager) Progressive() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level interpolates from the initial level to 1.0 as progress reaches
// progression.max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	return d.start + d.progress(score, ticks)*(1-d.start)
}

func (d *DifficultyManager) progress(score, ticks int) float64 {
	if !d.Progressive() {
		return 0
	}
	var done int
	switch d.cfg.Progression.Type {
	case "score":
		done = score
	case "time":
		done = ticks
	default:
		return 0
	}
	return clamp01(float64(done) / float64(max(d.cfg.Progression.MaxAt, 1)))
}

// Speed scales a base speed up to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shortens a frame interval as difficulty rises: at level 1.0 the
// full reduction applies. The result never drops below minInterval or 1.
func (d *DifficultyManager) Interval(base, minInterval, reduction, score, ticks int) int {
	level := d.Level(score, ticks)
	return max(base-int(level*float64(reduction)), minInterval, 1)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
