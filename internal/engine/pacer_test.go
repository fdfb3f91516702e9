package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-collection/internal/config"
)

func testPacing() config.Pacing {
	return config.Pacing{
		ScoreRate:     0.1,
		InitialSpeed:  1.0,
		SpeedStep:     0.1,
		MaxSpeed:      3.0,
		SpeedInterval: 5,
	}
}

func TestScoreMonotonic(t *testing.T) {
	p := NewPacer(testPacing())
	prev := p.RawScore()
	for i := 0; i < 10000; i++ {
		if i%97 == 0 {
			p.AddBonus(-50)
			p.AddBonus(10)
		}
		p.Tick(dt60)
		if p.RawScore() < prev {
			t.Fatalf("tick %d: score dropped from %v to %v", i, prev, p.RawScore())
		}
		prev = p.RawScore()
	}
}

func TestSpeedCap(t *testing.T) {
	p := NewPacer(testPacing())
	prev := p.Speed()
	for i := 0; i < 60*60*10; i++ {
		p.Tick(dt60)
		if p.Speed() > 3.0 {
			t.Fatalf("tick %d: speed %v above cap", i, p.Speed())
		}
		if p.Speed() < prev {
			t.Fatalf("tick %d: speed decreased", i)
		}
		prev = p.Speed()
	}
	if p.Speed() != 3.0 {
		t.Errorf("speed after ten minutes = %v, want 3.0", p.Speed())
	}
}

func TestSpeedStepsOnInterval(t *testing.T) {
	p := NewPacer(testPacing())
	for i := 0; i < 299; i++ {
		p.Tick(dt60)
	}
	if p.Speed() != 1.0 {
		t.Fatalf("speed before 5s = %v", p.Speed())
	}
	p.Tick(dt60)
	p.Tick(dt60)
	if p.Speed() != 1.1 {
		t.Errorf("speed after 5s = %v, want 1.1", p.Speed())
	}
}

func TestScoreScalesWithSpeed(t *testing.T) {
	p := NewPacer(testPacing())
	for i := 0; i < 60; i++ {
		p.Tick(dt60)
	}
	if got := p.RawScore(); math.Abs(got-6) > 1e-9 {
		t.Errorf("score after one second = %v, want 6", got)
	}
}

func TestInitialSpeedAboveCap(t *testing.T) {
	cfg := testPacing()
	cfg.InitialSpeed = 5
	if got := NewPacer(cfg).Speed(); got != 3.0 {
		t.Errorf("speed = %v, want clamp to 3.0", got)
	}
}

func TestPacerReset(t *testing.T) {
	p := NewPacer(testPacing())
	for i := 0; i < 1000; i++ {
		p.Tick(dt60)
	}
	p.AddBonus(10)
	p.Reset()
	if p.Score() != 0 || p.Speed() != 1.0 {
		t.Errorf("after Reset score=%d speed=%v", p.Score(), p.Speed())
	}
}
