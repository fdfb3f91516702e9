// Package ninja implements Gravity Flip Ninja: flip gravity between floor
// and ceiling to dodge spikes and floating blocks.
package ninja

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/arcade-collection/internal/config"
	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
	"github.com/vovakirdan/arcade-collection/internal/registry"
)

const (
	accel       = 1.0  // Horizontal acceleration per frame while a key is held
	friction    = 0.95 // Horizontal velocity retained per frame
	boundsSlack = 100  // Pixels past floor/ceiling before the ninja is lost
	starCount   = 40
)

// Game implements the Gravity Flip Ninja game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.NinjaConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	runs       int64

	machine *engine.Machine
	actor   *engine.Actor
	vx      float64
	spawner *engine.Spawner
	pool    *engine.Pool
	stars   *engine.Pool
	starID  int
	checker engine.Checker
	pacer   *engine.Pacer

	highScore int
	ticks     int
}

// New creates a new Gravity Flip Ninja game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ninja"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gravity Flip Ninja"
}

// Description returns the launcher blurb.
func (g *Game) Description() string {
	return "Flip gravity to dodge spikes and blocks"
}

// Reset loads configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadNinja(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultNinjaConfig()
	}
	config.ApplyNamedPreset(&cfg.Difficulty, runtime.Difficulty)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.checker = engine.Checker{Margin: cfg.Player.HitMargin}
	g.pool = engine.NewPool(cfg.Physics.ObstacleSpeed)
	g.pool.SetDrift(cfg.Drift.Amplitude, cfg.Drift.Frequency)
	g.stars = engine.NewPool(cfg.Physics.ObstacleSpeed / 3)
	g.pacer = engine.NewPacer(cfg.Pacing)
	g.spawner = engine.NewSpawner(
		engine.SpawnerFromConfig(cfg.World, cfg.Spawn, cfg.Physics),
		shaper(cfg.World), g.difficulty, nil,
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
	g.actor = engine.NewActor(engine.ActorFromConfig(g.cfg.World, g.cfg.Player, g.cfg.Physics))
	// The ninja drops in from mid-air.
	g.actor.Y = (g.cfg.World.CeilingY + g.cfg.World.GroundY - g.actor.H) / 2
	g.vx = 0
	g.pool.Clear()
	g.pacer.Reset()
	g.spawner.Reset(g.rng)
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
		Y:    g.rng.Float64() * g.cfg.World.Height,
		W:    2,
		H:    2,
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.machine.Phase() {
	case engine.Menu:
		if in.Any(core.ActionConfirm, core.ActionFlip) {
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

	if in.Has(core.ActionFlip) && g.actor.Flip() {
		events = append(events, core.EventFlip)
	}
	if in.Has(core.ActionJump) && g.actor.Jump() {
		events = append(events, core.EventJump)
	}
	g.steer(in, frames)
	g.actor.Update(dt)

	speed := g.pacer.Speed()
	if o, ok := g.spawner.MaybeSpawn(dt, speed, g.pacer.Score()); ok {
		g.pool.Add(o)
	}
	g.pool.AdvanceAndPrune(dt, speed)
	if g.stars.AdvanceAndPrune(dt, speed) > 0 {
		g.addStar(g.cfg.World.Width)
	}

	if g.checker.Check(g.actor.Box(), g.pool.Items()) || g.actor.OutOfBounds(boundsSlack) {
		g.machine.End()
		g.highScore = max(g.highScore, g.pacer.Score())
		events = append(events, core.EventCrash)
		return core.StepResult{State: g.State(), Events: events}
	}

	before := g.pacer.Score()
	g.pacer.Tick(dt)
	if g.pacer.Score()/100 > before/100 {
		events = append(events, core.EventPoint)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// steer applies held left/right input with acceleration and friction.
func (g *Game) steer(in core.InputFrame, frames float64) {
	limit := g.cfg.Player.MoveSpeed
	if in.Has(core.ActionLeft) {
		g.vx = max(-limit, g.vx-accel*frames)
	}
	if in.Has(core.ActionRight) {
		g.vx = min(limit, g.vx+accel*frames)
	}
	g.vx *= math.Pow(friction, frames)
	g.actor.Move(g.vx * frames)
}

// Scene describes the current frame.
func (g *Game) Scene() engine.Scene {
	s := engine.Scene{
		Width:    g.cfg.World.Width,
		Height:   g.cfg.World.Height,
		GroundY:  g.cfg.World.GroundY,
		CeilingY: g.cfg.World.CeilingY,
	}

	for _, st := range g.stars.Items() {
		s.Add(obstacleView(st, g.cfg.World))
	}
	for _, o := range g.pool.Items() {
		s.Add(obstacleView(o, g.cfg.World))
	}

	color := core.ColorBrightBlue
	if g.actor.Gravity == engine.FlippedGravity {
		color = core.ColorPurple
	}
	s.Add(engine.ActorEntity(g.actor, NinjaChar, color))

	gravity := "v"
	if g.actor.Gravity == engine.FlippedGravity {
		gravity = "^"
	}
	flip := "ready"
	if !g.actor.FlipReady() {
		flip = "cooling"
	}
	level := 1 + int(g.difficulty.Level(g.pacer.Score(), g.ticks)*9)
	s.HUD = []string{fmt.Sprintf("Score: %d  HI: %d  Level: %d  Gravity: %s  Flip: %s",
		g.pacer.Score(), max(g.highScore, g.pacer.Score()), level, gravity, flip)}
	s.Overlay = engine.PhaseOverlay(g.machine.Phase(), g.Title(), g.pacer.Score(), g.highScore,
		"Space flip, Up jump, Left/Right move")
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
	registry.Register("ninja", func() registry.Game {
		return New()
	})
}
