// Package fighter implements Fighter Shoot, a side-scrolling shooter on the
// runner loop: enemies fly in from the right and shoot back, power-ups
// restore health or speed up the guns.
package fighter

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-collection/internal/config"
	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
	"github.com/vovakirdan/arcade-collection/internal/registry"
)

const starCount = 30

// Game implements the Fighter Shoot game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.FighterConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	runs       int64

	machine *engine.Machine
	actor   *engine.Actor
	spawner *engine.Spawner
	pool    *engine.Pool
	stars   *engine.Pool
	starID  int
	checker engine.Checker
	pacer   *engine.Pacer

	shots    []shot
	health   int
	cooldown float64 // Frames until the guns may fire again
	rapid    float64 // Frames of rapid fire left
	kills    int

	highScore int
	ticks     int
}

// New creates a new Fighter Shoot game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "fighter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fighter Shoot"
}

// Description returns the launcher blurb.
func (g *Game) Description() string {
	return "Shoot down enemy ships, grab power-ups"
}

// Reset loads configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFighter(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultFighterConfig()
	}
	config.ApplyNamedPreset(&cfg.Difficulty, runtime.Difficulty)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.checker = engine.Checker{Margin: cfg.Player.HitMargin}
	g.pool = engine.NewPool(cfg.Physics.ObstacleSpeed)
	g.stars = engine.NewPool(cfg.Physics.ObstacleSpeed / 2)
	g.pacer = engine.NewPacer(cfg.Pacing)
	g.spawner = engine.NewSpawner(
		engine.SpawnerFromConfig(cfg.World, cfg.Spawn, cfg.Physics),
		shaper(cfg.World, cfg.Combat), g.difficulty, nil,
	)

	g.highScore = runtime.HighScore
	g.runs = 0
	g.restart()
	g.machine = engine.NewMachine(engine.Menu)
}

// restart rebuilds all session state to its initial values.
func (g *Game) restart() {
	g.rng = rand.New(rand.NewSource(g.runtime.Seed + g.runs))
	g.runs++

	// The ship flies freely in the left half of the screen.
	ac := engine.ActorFromConfig(g.cfg.World, g.cfg.Player, g.cfg.Physics)
	ac.Gravity = 0
	ac.MaxX = g.cfg.World.Width / 2
	g.actor = engine.NewActor(ac)
	g.actor.Y = (g.cfg.World.CeilingY + g.cfg.World.GroundY - g.actor.H) / 2

	g.pool.Clear()
	g.pacer.Reset()
	g.spawner.Reset(g.rng)
	g.shots = g.shots[:0]
	g.health = g.cfg.Combat.Health
	g.cooldown = 0
	g.rapid = 0
	g.kills = 0
	g.ticks = 0

	g.stars.Clear()
	for i := 0; i < starCount; i++ {
		g.addStar(g.rng.Float64() * g.cfg.World.Width)
	}
}

func (g *Game) addStar(x float64) {
	g.starID++
	g.stars.Add(engine.Obstacle{
		ID:   g.starID,
		Kind: engine.Decor,
		X:    x,
		Y:    g.cfg.World.CeilingY + g.rng.Float64()*(g.cfg.World.GroundY-g.cfg.World.CeilingY),
		W:    2,
		H:    2,
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.machine.Phase() {
	case engine.Menu:
		if in.Any(core.ActionConfirm, core.ActionShoot) {
			g.machine.Start()
		}
		return core.StepResult{State: g.State()}
	case engine.Paused:
		if in.Has(core.ActionPause) {
			g.machine.TogglePause()
		}
		return core.StepResult{State: g.State()}
	case engine.GameOver:
		if in.Any(core.ActionRestart, core.ActionConfirm) {
			g.restart()
			g.machine.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.machine.TogglePause()
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	dt := g.runtime.DeltaSeconds()
	frames := engine.Frames(dt)
	g.ticks++

	g.steer(in, frames)
	g.actor.Update(dt)

	g.cooldown = max(0, g.cooldown-frames)
	g.rapid = max(0, g.rapid-frames)
	if in.Has(core.ActionShoot) && g.cooldown <= 0 {
		g.fire()
		events = append(events, core.EventShoot)
	}

	speed := g.pacer.Speed()
	if o, ok := g.spawner.MaybeSpawn(dt, speed, g.pacer.Score()); ok {
		g.pool.Add(o)
	}
	g.pool.AdvanceAndPrune(dt, speed)
	if g.stars.AdvanceAndPrune(dt, speed) > 0 {
		g.addStar(g.cfg.World.Width)
	}
	g.enemyFire(frames)

	if g.advanceShots(frames) > 0 {
		events = append(events, core.EventPoint)
	}
	events = append(events, g.resolveContacts()...)

	if g.health <= 0 {
		g.health = 0
		g.machine.End()
		g.highScore = max(g.highScore, g.pacer.Score())
		events = append(events, core.EventCrash)
		return core.StepResult{State: g.State(), Events: events}
	}

	g.pacer.Tick(dt)
	return core.StepResult{State: g.State(), Events: events}
}

// steer moves the ship with the held direction keys.
func (g *Game) steer(in core.InputFrame, frames float64) {
	step := g.cfg.Player.MoveSpeed * frames
	if in.Has(core.ActionLeft) {
		g.actor.Move(-step)
	}
	if in.Has(core.ActionRight) {
		g.actor.Move(step)
	}
	if in.Has(core.ActionUp) {
		g.actor.MoveY(-step)
	}
	if in.Has(core.ActionDown) {
		g.actor.MoveY(step)
	}
}

// fire launches a bullet from the ship's nose and starts the cooldown.
func (g *Game) fire() {
	box := g.actor.Box()
	_, cy := box.Center()
	g.shots = append(g.shots, shot{x: box.Right(), y: cy - shotH/2})

	g.cooldown = float64(g.cfg.Combat.ShotCooldown)
	if g.rapid > 0 {
		g.cooldown = float64(g.cfg.Combat.RapidCooldown)
	}
}

// enemyFire counts down each enemy's gun and spawns bolts into the pool.
func (g *Game) enemyFire(frames float64) {
	boltSpeed := g.difficulty.Speed(g.cfg.Combat.EnemyShotSpeed, g.pacer.Score(), g.ticks)

	var bolts []engine.Obstacle
	items := g.pool.Items()
	for i := range items {
		o := &items[i]
		if o.Kind != engine.FlyingHazard || o.X > g.cfg.World.Width {
			continue
		}
		o.Timer -= frames
		if o.Timer > 0 {
			continue
		}
		o.Timer = fireDelay(g.cfg.Combat, g.rng)
		_, cy := o.Box().Center()
		bolts = append(bolts, engine.Obstacle{
			ID:   g.spawner.NextID(),
			Kind: engine.Projectile,
			X:    o.X - boltW,
			Y:    cy - boltH/2,
			W:    boltW,
			H:    boltH,
			VX:   boltSpeed,
		})
	}
	for _, b := range bolts {
		g.pool.Add(b)
	}
}

// advanceShots moves bullets, applies hits to enemies and drops spent
// bullets. Returns the number of enemies destroyed.
func (g *Game) advanceShots(frames float64) int {
	step := g.cfg.Combat.ShotSpeed * frames
	items := g.pool.Items()

	var dead []int
	live := g.shots[:0]
	for _, s := range g.shots {
		s.x += step
		if s.x > g.cfg.World.Width {
			continue
		}
		hit := false
		for i := range items {
			o := &items[i]
			if o.Kind != engine.FlyingHazard || o.HP <= 0 || !s.box().Overlaps(o.Box()) {
				continue
			}
			hit = true
			o.HP--
			if o.HP <= 0 {
				dead = append(dead, o.ID)
			}
			break
		}
		if !hit {
			live = append(live, s)
		}
	}
	g.shots = live

	for _, id := range dead {
		g.pool.Remove(id)
		g.pacer.AddBonus(g.cfg.Combat.KillBonus)
		g.kills++
	}
	return len(dead)
}

// resolveContacts applies everything touching the ship: rams, enemy
// bolts and power-ups. Each contact is consumed.
func (g *Game) resolveContacts() []core.Event {
	var events []core.Event
	for {
		i, ok := g.checker.FirstHit(g.actor.Box(), g.pool.Items())
		if !ok {
			return events
		}
		o := g.pool.Items()[i]
		g.pool.Remove(o.ID)

		switch o.Kind {
		case engine.Pickup:
			g.collect(o.Variant)
			events = append(events, core.EventPickup)
		case engine.Projectile:
			g.health -= g.cfg.Combat.ShotDamage
			events = append(events, core.EventHit)
		default:
			g.health -= g.cfg.Combat.RamDamage
			events = append(events, core.EventHit)
		}
	}
}

func (g *Game) collect(variant string) {
	switch variant {
	case pickupRapid:
		g.rapid = float64(g.cfg.Combat.RapidDuration)
	default:
		g.health = min(g.cfg.Combat.Health, g.health+g.cfg.Combat.HealAmount)
	}
}

// Scene describes the current frame.
func (g *Game) Scene() engine.Scene {
	s := engine.Scene{
		Width:  g.cfg.World.Width,
		Height: g.cfg.World.Height,
	}

	for _, st := range g.stars.Items() {
		s.Add(obstacleView(st))
	}
	for _, o := range g.pool.Items() {
		s.Add(obstacleView(o))
	}
	for _, sh := range g.shots {
		s.Add(engine.ShotView{Box: sh.box(), Glyph: ShotChar, Color: core.ColorBrightCyan})
	}

	color := core.ColorBrightBlue
	if g.rapid > 0 {
		color = core.ColorBrightYellow
	}
	s.Add(engine.ActorEntity(g.actor, ShipChar, color))

	hud := fmt.Sprintf("Score: %d  HI: %d  Health: %d  Kills: %d",
		g.pacer.Score(), max(g.highScore, g.pacer.Score()), g.health, g.kills)
	if g.rapid > 0 {
		hud += fmt.Sprintf("  Rapid: %ds", int(g.rapid/engine.ReferenceFPS)+1)
	}
	s.HUD = []string{hud}
	s.Overlay = engine.PhaseOverlay(g.machine.Phase(), g.Title(), g.pacer.Score(), g.highScore,
		"Arrows move, Space shoot, P pause")
	return s
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.machine.Phase()
	return core.GameState{
		Score:     g.pacer.Score(),
		HighScore: max(g.highScore, g.pacer.Score()),
		InMenu:    phase == engine.Menu,
		GameOver:  phase == engine.GameOver,
		Paused:    phase == engine.Paused,
	}
}

func init() {
	registry.Register("fighter", func() registry.Game {
		return New()
	})
}
