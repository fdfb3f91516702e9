// Package dino implements Dino Run, an endless runner: jump over cacti
// and rocks, duck under birds, and survive as the pace quickens.
package dino

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-collection/internal/config"
	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
	"github.com/vovakirdan/arcade-collection/internal/registry"
)

// Game implements the Dino Run game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.DinoConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	runs       int64 // Restarts since Reset, mixed into the seed

	machine *engine.Machine
	actor   *engine.Actor
	spawner *engine.Spawner
	pool    *engine.Pool
	clouds  *clouds
	checker engine.Checker
	pacer   *engine.Pacer

	highScore int
	ticks     int
}

// New creates a new Dino Run game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Run"
}

// Description returns the launcher blurb.
func (g *Game) Description() string {
	return "Jump cacti and rocks, duck under birds"
}

// Reset loads configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDino(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultDinoConfig()
	}
	config.ApplyNamedPreset(&cfg.Difficulty, runtime.Difficulty)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.checker = engine.Checker{Margin: cfg.Player.HitMargin}
	g.pool = engine.NewPool(cfg.Physics.ObstacleSpeed)
	g.clouds = newClouds(cfg.World.Width)
	g.pacer = engine.NewPacer(cfg.Pacing)
	g.spawner = engine.NewSpawner(
		engine.SpawnerFromConfig(cfg.World, cfg.Spawn, cfg.Physics),
		shaper(cfg.World.GroundY), g.difficulty, nil,
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
	g.pool.Clear()
	g.clouds.reset(g.rng)
	g.pacer.Reset()
	g.spawner.Reset(g.rng)
	g.ticks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.machine.Phase() {
	case engine.Menu:
		if in.Any(core.ActionConfirm, core.ActionJump) {
			g.machine.Start()
		}
		return core.StepResult{State: g.State()}
	case engine.Paused:
		if in.Has(core.ActionPause) {
			g.machine.TogglePause()
		}
		return core.StepResult{State: g.State()}
	case engine.GameOver:
		if in.Any(core.ActionRestart, core.ActionJump, core.ActionConfirm) {
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
	g.ticks++

	if in.Has(core.ActionJump) && g.actor.Jump() {
		events = append(events, core.EventJump)
	}
	g.actor.Duck(in.Has(core.ActionDuck))
	g.actor.Update(dt)

	speed := g.pacer.Speed()
	if o, ok := g.spawner.MaybeSpawn(dt, speed, g.pacer.Score()); ok {
		g.pool.Add(o)
	}
	g.pool.AdvanceAndPrune(dt, speed)
	g.clouds.update(g.rng, dt)

	if g.checker.Check(g.actor.Box(), g.pool.Items()) {
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

// Scene describes the current frame.
func (g *Game) Scene() engine.Scene {
	s := engine.Scene{
		Width:   g.cfg.World.Width,
		Height:  g.cfg.World.Height,
		GroundY: g.cfg.World.GroundY,
	}

	for _, c := range g.clouds.pool.Items() {
		s.Add(obstacleView(c))
	}
	for _, o := range g.pool.Items() {
		s.Add(obstacleView(o))
	}

	glyph := DinoBody
	if g.actor.Posture == engine.Ducking {
		glyph = DinoDuck
	}
	s.Add(engine.ActorEntity(g.actor, glyph, core.ColorBrightGreen))

	s.HUD = []string{fmt.Sprintf("Score: %05d  HI: %05d  Speed: %.1fx",
		g.pacer.Score(), max(g.highScore, g.pacer.Score()), g.pacer.Speed())}
	s.Overlay = engine.PhaseOverlay(g.machine.Phase(), g.Title(), g.pacer.Score(), g.highScore,
		"Space/Up jump, Down duck, P pause")
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

// Register the game with the registry
func init() {
	registry.Register("dino", func() registry.Game {
		return New()
	})
}
