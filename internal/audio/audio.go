// Package audio plays short procedural sound effects for game events.
// Without an audio device every call is a silent no-op.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/arcade-collection/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Bank owns the speaker mixer and turns events into sounds.
type Bank struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewBank creates a silent bank. Call Init to reach the speaker.
func NewBank() *Bank {
	return &Bank{mixer: &beep.Mixer{}}
}

// Init opens the speaker. On failure the bank stays silent and the error
// is returned for logging.
func (b *Bank) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Enabled reports whether sounds reach the speaker.
func (b *Bank) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialized && !b.muted
}

// SetMuted silences or restores playback.
func (b *Bank) SetMuted(muted bool) {
	b.mu.Lock()
	b.muted = muted
	b.mu.Unlock()
}

// Play queues the sounds for a tick's events.
func (b *Bank) Play(events ...core.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.muted {
		return
	}
	for _, e := range events {
		if s := Sound(e); s != nil {
			speaker.Lock()
			b.mixer.Add(s)
			speaker.Unlock()
		}
	}
}

// Close drops queued sounds.
func (b *Bank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	b.initialized = false
}

// Sound builds a fresh streamer for an event, or nil for silent events.
func Sound(e core.Event) beep.Streamer {
	switch e {
	case core.EventJump:
		return tone(300, 620, 120*time.Millisecond, sine, 0.25)
	case core.EventFlip:
		return tone(700, 250, 140*time.Millisecond, sine, 0.25)
	case core.EventShoot:
		return tone(1200, 800, 50*time.Millisecond, square, 0.08)
	case core.EventHit:
		return tone(160, 120, 150*time.Millisecond, square, 0.15)
	case core.EventPickup:
		return beep.Seq(
			tone(660, 660, 60*time.Millisecond, sine, 0.2),
			tone(990, 990, 90*time.Millisecond, sine, 0.2),
		)
	case core.EventPoint:
		return tone(1320, 1320, 70*time.Millisecond, sine, 0.15)
	case core.EventCrash:
		return beep.Take(sampleRate.N(400*time.Millisecond), &noise{seed: 1})
	}
	return nil
}

type wave func(phase float64) float64

func sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

// sweep glides from one frequency to another with a linear fade-out.
type sweep struct {
	from, to float64
	total    int
	pos      int
	phase    float64
	shape    wave
	volume   float64
}

func tone(from, to float64, d time.Duration, shape wave, volume float64) beep.Streamer {
	total := sampleRate.N(d)
	return beep.Take(total, &sweep{from: from, to: to, total: total, shape: shape, volume: volume})
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(s.pos)/float64(s.total), 1)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(sampleRate)

		v := s.volume * (1 - progress) * s.shape(s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error {
	return nil
}

// noise is a decaying burst of white noise over a low rumble.
type noise struct {
	seed int64
	pos  int
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		envelope := math.Exp(-t * 8)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		white := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		v := envelope * (0.25*white + rumble)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *noise) Err() error {
	return nil
}
