package fighter

import (
	"testing"

	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
)

func newPlaying(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, TickRate: 60})
	g.Step(core.InputOf(core.ActionConfirm))
	if g.machine.Phase() != engine.Playing {
		t.Fatalf("phase = %v, want playing", g.machine.Phase())
	}
	return g
}

func countEvents(events []core.Event, want core.Event) int {
	n := 0
	for _, e := range events {
		if e == want {
			n++
		}
	}
	return n
}

// overlapping returns an obstacle placed on top of the ship.
func overlapping(g *Game, kind engine.Kind, id int) engine.Obstacle {
	box := g.actor.Box()
	return engine.Obstacle{ID: id, Kind: kind, X: box.X + 10, Y: box.Y, W: 10, H: 10, HP: 2}
}

func TestMenuStartsOnShoot(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 60})
	if !g.State().InMenu {
		t.Fatal("expected menu after reset")
	}
	g.Step(core.NewInputFrame())
	if !g.State().InMenu {
		t.Fatal("idle input should not start the game")
	}
	g.Step(core.InputOf(core.ActionShoot))
	if g.machine.Phase() != engine.Playing {
		t.Errorf("phase = %v, want playing", g.machine.Phase())
	}
}

func TestShotCooldown(t *testing.T) {
	g := newPlaying(t, 1)
	shoot := core.InputOf(core.ActionShoot)

	fired := 0
	for i := 0; i < 15; i++ {
		fired += countEvents(g.Step(shoot).Events, core.EventShoot)
	}
	if fired != 1 {
		t.Fatalf("fired %d shots in 15 ticks, want 1", fired)
	}
	fired += countEvents(g.Step(shoot).Events, core.EventShoot)
	if fired != 2 {
		t.Errorf("cooldown should expire on tick 16, fired %d", fired)
	}
}

func TestRapidFire(t *testing.T) {
	g := newPlaying(t, 1)
	g.rapid = float64(g.cfg.Combat.RapidDuration)
	shoot := core.InputOf(core.ActionShoot)

	fired := 0
	for i := 0; i < 6; i++ {
		fired += countEvents(g.Step(shoot).Events, core.EventShoot)
	}
	if fired != 2 {
		t.Errorf("fired %d shots in 6 ticks under rapid fire, want 2", fired)
	}
}

func TestShotsLeaveScreen(t *testing.T) {
	g := newPlaying(t, 1)
	g.shots = []shot{{x: g.cfg.World.Width - 1, y: 10}}
	g.advanceShots(1)
	if len(g.shots) != 0 {
		t.Errorf("shot past the right edge should be dropped, have %d", len(g.shots))
	}
}

func TestEnemyTakesTwoHits(t *testing.T) {
	g := newPlaying(t, 1)
	g.pool.Add(engine.Obstacle{ID: 1000, Kind: engine.FlyingHazard, X: 400, Y: 300, W: enemyW, H: enemyH, HP: 2, Timer: 999})

	g.shots = []shot{{x: 395, y: 310}}
	if kills := g.advanceShots(1); kills != 0 {
		t.Fatalf("first hit killed the enemy")
	}
	if e := g.pool.Get(1000); e == nil || e.HP != 1 {
		t.Fatalf("enemy after one hit = %+v", e)
	}
	if len(g.shots) != 0 {
		t.Error("bullet should be consumed by the hit")
	}

	g.shots = []shot{{x: 395, y: 310}}
	if kills := g.advanceShots(1); kills != 1 {
		t.Fatalf("second hit should kill")
	}
	if g.pool.Get(1000) != nil {
		t.Error("dead enemy should leave the pool")
	}
	if g.pacer.Score() != g.cfg.Combat.KillBonus {
		t.Errorf("score = %d, want kill bonus %d", g.pacer.Score(), g.cfg.Combat.KillBonus)
	}
}

func TestContactDamage(t *testing.T) {
	tests := []struct {
		name string
		kind engine.Kind
		want int
	}{
		{"ram", engine.FlyingHazard, 80},
		{"bolt", engine.Projectile, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newPlaying(t, 1)
			g.pool.Clear()
			g.pool.Add(overlapping(g, tt.kind, 1000))

			events := g.resolveContacts()
			if g.health != tt.want {
				t.Errorf("health = %d, want %d", g.health, tt.want)
			}
			if g.pool.Get(1000) != nil {
				t.Error("contact should be consumed")
			}
			if countEvents(events, core.EventHit) != 1 {
				t.Errorf("events = %v, want one hit", events)
			}
		})
	}
}

func TestPickups(t *testing.T) {
	g := newPlaying(t, 1)
	g.pool.Clear()

	g.health = 50
	p := overlapping(g, engine.Pickup, 1000)
	p.Variant = pickupHealth
	g.pool.Add(p)
	g.resolveContacts()
	if g.health != 75 {
		t.Errorf("health = %d, want 75", g.health)
	}

	g.health = 90
	p.ID = 1001
	g.pool.Add(p)
	g.resolveContacts()
	if g.health != g.cfg.Combat.Health {
		t.Errorf("health = %d, should cap at %d", g.health, g.cfg.Combat.Health)
	}

	p.ID = 1002
	p.Variant = pickupRapid
	g.pool.Add(p)
	g.resolveContacts()
	if g.rapid != float64(g.cfg.Combat.RapidDuration) {
		t.Errorf("rapid = %v, want %d", g.rapid, g.cfg.Combat.RapidDuration)
	}
}

func TestDeathEndsGame(t *testing.T) {
	g := newPlaying(t, 1)
	g.pool.Clear()
	g.pacer.AddBonus(30)
	g.health = 10
	g.pool.Add(overlapping(g, engine.Projectile, 1000))

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over at zero health")
	}
	if countEvents(res.Events, core.EventCrash) != 1 {
		t.Errorf("events = %v, want crash", res.Events)
	}
	if res.State.HighScore != 30 {
		t.Errorf("high score = %d, want 30", res.State.HighScore)
	}
}

func TestEnemyFires(t *testing.T) {
	g := newPlaying(t, 1)
	g.pool.Clear()
	g.pool.Add(engine.Obstacle{ID: 1000, Kind: engine.FlyingHazard, X: 500, Y: 300, W: enemyW, H: enemyH, HP: 2, Timer: 1})

	g.enemyFire(1)
	if g.pool.Len() != 2 {
		t.Fatalf("pool len = %d, want enemy plus bolt", g.pool.Len())
	}
	bolt, _ := g.pool.Last()
	if bolt.Kind != engine.Projectile || bolt.X != 500-boltW {
		t.Errorf("bolt = %+v", bolt)
	}
	if bolt.VX != g.cfg.Combat.EnemyShotSpeed {
		t.Errorf("bolt speed = %v, want %v at level zero", bolt.VX, g.cfg.Combat.EnemyShotSpeed)
	}
	if e := g.pool.Get(1000); e.Timer < float64(g.cfg.Combat.EnemyFireMin) {
		t.Errorf("enemy timer = %v, should be rearmed", e.Timer)
	}
}

func TestShipStaysInLeftHalf(t *testing.T) {
	g := newPlaying(t, 1)
	for i := 0; i < 500; i++ {
		g.steer(core.InputOf(core.ActionRight, core.ActionUp), 1)
	}
	if right := g.actor.Box().Right(); right > g.cfg.World.Width/2 {
		t.Errorf("ship right edge %v past the middle", right)
	}
	if g.actor.Y < g.cfg.World.CeilingY {
		t.Errorf("ship y %v above the ceiling", g.actor.Y)
	}
}

func TestRestartResetsState(t *testing.T) {
	g := newPlaying(t, 7)
	g.health = 1
	g.kills = 4
	g.shots = []shot{{x: 100, y: 100}}
	g.pool.Add(overlapping(g, engine.Projectile, 1000))
	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Step(core.InputOf(core.ActionRestart))
	if g.health != g.cfg.Combat.Health || g.kills != 0 || len(g.shots) != 0 || g.pool.Len() != 0 {
		t.Errorf("restart left health=%d kills=%d shots=%d pool=%d",
			g.health, g.kills, len(g.shots), g.pool.Len())
	}
	if g.pacer.Score() != 0 || g.State().GameOver {
		t.Errorf("state after restart = %+v", g.State())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (int, int, int, int) {
		g := newPlaying(t, 4242)
		for i := 0; i < 900; i++ {
			in := core.InputOf(core.ActionShoot)
			if (i/60)%2 == 0 {
				in.Set(core.ActionUp)
			} else {
				in.Set(core.ActionDown)
			}
			g.Step(in)
		}
		return g.pacer.Score(), g.health, g.kills, g.pool.Len()
	}

	s1, h1, k1, p1 := run()
	s2, h2, k2, p2 := run()
	if s1 != s2 || h1 != h2 || k1 != k2 || p1 != p2 {
		t.Errorf("runs diverged: (%d %d %d %d) vs (%d %d %d %d)", s1, h1, k1, p1, s2, h2, k2, p2)
	}
}

func TestSceneHasShotsAndShip(t *testing.T) {
	g := newPlaying(t, 1)
	g.fire()

	var shots, actors int
	for _, e := range g.Scene().Entities {
		switch e.(type) {
		case engine.ShotView:
			shots++
		case engine.ActorView:
			actors++
		}
	}
	if shots != 1 || actors != 1 {
		t.Errorf("scene has %d shots and %d actors", shots, actors)
	}
}
