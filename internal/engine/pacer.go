package engine

import "github.com/vovakirdan/arcade-collection/internal/config"

// Pacer owns the score accumulator and the global game speed.
type Pacer struct {
	cfg     config.Pacing
	score   float64
	speed   float64
	elapsed float64 // Seconds since the last speed step
}

// NewPacer creates a pacer at its initial speed and zero score.
func NewPacer(cfg config.Pacing) *Pacer {
	p := &Pacer{cfg: cfg}
	p.Reset()
	return p
}

// Reset restores score and speed to their initial values.
func (p *Pacer) Reset() {
	p.score = 0
	p.elapsed = 0
	p.speed = p.cfg.InitialSpeed
	if p.speed <= 0 {
		p.speed = 1
	}
	if p.cfg.MaxSpeed > 0 && p.speed > p.cfg.MaxSpeed {
		p.speed = p.cfg.MaxSpeed
	}
}

// Tick accrues score for dt seconds and steps the speed every
// SpeedInterval seconds up to MaxSpeed.
func (p *Pacer) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	if p.cfg.ScoreRate > 0 {
		p.score += p.cfg.ScoreRate * p.speed * Frames(dt)
	}
	if p.cfg.SpeedInterval <= 0 || p.cfg.SpeedStep <= 0 {
		return
	}
	p.elapsed += dt
	for p.elapsed >= p.cfg.SpeedInterval {
		p.elapsed -= p.cfg.SpeedInterval
		p.speed += p.cfg.SpeedStep
		if p.cfg.MaxSpeed > 0 && p.speed > p.cfg.MaxSpeed {
			p.speed = p.cfg.MaxSpeed
		}
	}
}

// AddBonus adds points outside the time-based rate. Negative values are ignored.
func (p *Pacer) AddBonus(points int) {
	if points > 0 {
		p.score += float64(points)
	}
}

// Score returns the whole-point score.
func (p *Pacer) Score() int {
	return int(p.score)
}

// RawScore returns the fractional accumulator.
func (p *Pacer) RawScore() float64 {
	return p.score
}

// Speed returns the current game speed multiplier.
func (p *Pacer) Speed() float64 {
	return p.speed
}
