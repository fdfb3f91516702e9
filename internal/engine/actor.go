package engine

import (
	"github.com/vovakirdan/arcade-collection/internal/config"
	"github.com/vovakirdan/arcade-collection/internal/core"
)

// Posture is the actor's movement state.
type Posture int

const (
	Running Posture = iota
	Jumping
	Ducking
)

func (p Posture) String() string {
	switch p {
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Ducking:
		return "ducking"
	default:
		return "unknown"
	}
}

// GravityDir is the direction gravity pulls the actor.
type GravityDir int

const (
	NormalGravity  GravityDir = iota // Pulls toward the ground
	FlippedGravity                   // Pulls toward the ceiling
)

// Sign returns +1 for normal gravity and -1 when flipped.
func (g GravityDir) Sign() float64 {
	if g == FlippedGravity {
		return -1
	}
	return 1
}

// ActorConfig is the immutable description of an actor and its play area.
// GroundY and CeilingY are the floor and ceiling lines; the actor's box
// rests on the floor with its bottom edge and on the ceiling with its top.
type ActorConfig struct {
	X          float64 // Spawn X
	Width      float64
	Height     float64
	DuckHeight float64 // 0 disables ducking

	GroundY  float64
	CeilingY float64
	MinX     float64
	MaxX     float64

	Gravity      float64 // Per frame; 0 makes a free-flying actor
	JumpImpulse  float64 // Negative is up
	MaxFallSpeed float64 // 0 = unlimited
	FlipCooldown int     // Frames
}

// ActorFromConfig derives actor settings from a game's YAML sections.
// The actor may roam the full world width.
func ActorFromConfig(world config.World, player config.Player, physics config.Physics) ActorConfig {
	return ActorConfig{
		X:            player.X,
		Width:        player.Width,
		Height:       player.Height,
		DuckHeight:   player.DuckHeight,
		GroundY:      world.GroundY,
		CeilingY:     world.CeilingY,
		MinX:         0,
		MaxX:         world.Width,
		Gravity:      physics.Gravity,
		JumpImpulse:  physics.JumpImpulse,
		MaxFallSpeed: physics.MaxFallSpeed,
		FlipCooldown: player.FlipCooldown,
	}
}

// Actor is the single player-controlled entity.
type Actor struct {
	X, Y    float64 // Top-left of the standing box
	VY      float64
	W       float64
	StandH  float64
	H       float64 // Current hitbox height
	Posture Posture
	Gravity GravityDir

	cfg      ActorConfig
	cooldown float64 // Frames until the next flip is allowed
}

// NewActor creates an actor standing on the ground at its spawn X.
func NewActor(cfg ActorConfig) *Actor {
	if cfg.MaxX <= cfg.MinX {
		cfg.MaxX = cfg.MinX + cfg.Width
	}
	a := &Actor{
		X:      cfg.X,
		W:      cfg.Width,
		StandH: cfg.Height,
		H:      cfg.Height,
		cfg:    cfg,
	}
	a.Y = a.GroundY()
	a.X = core.ClampF(a.X, cfg.MinX, cfg.MaxX-a.W)
	return a
}

// Config returns the actor's configuration.
func (a *Actor) Config() ActorConfig {
	return a.cfg
}

// GroundY is the resting Y (top of the standing box) on the floor.
func (a *Actor) GroundY() float64 {
	return a.cfg.GroundY - a.StandH
}

// CeilingY is the resting Y against the ceiling.
func (a *Actor) CeilingY() float64 {
	return a.cfg.CeilingY
}

// Grounded reports whether the actor rests on the surface gravity pulls
// it toward. Free-flying actors are always grounded.
func (a *Actor) Grounded() bool {
	if a.cfg.Gravity == 0 {
		return true
	}
	if a.Gravity == FlippedGravity {
		return a.Y <= a.CeilingY() && a.VY <= 0
	}
	return a.Y >= a.GroundY() && a.VY >= 0
}

// Airborne is the inverse of Grounded.
func (a *Actor) Airborne() bool {
	return !a.Grounded()
}

// Update integrates gravity over dt seconds and clamps to the floor and
// ceiling. Reaching the surface gravity points at is a landing: VY is
// zeroed and Jumping is cleared. Hitting the opposite surface only stops
// the vertical motion.
func (a *Actor) Update(dt float64) {
	f := Frames(dt)
	if f <= 0 {
		return
	}
	if a.cooldown > 0 {
		a.cooldown = max(0, a.cooldown-f)
	}
	if a.cfg.Gravity == 0 {
		return
	}

	a.VY += a.cfg.Gravity * a.Gravity.Sign() * f
	if limit := a.cfg.MaxFallSpeed; limit > 0 {
		a.VY = core.ClampF(a.VY, -limit, limit)
	}
	a.Y += a.VY * f

	ground, ceiling := a.GroundY(), a.CeilingY()
	switch {
	case a.Y >= ground:
		a.Y = ground
		a.VY = 0
		if a.Gravity == NormalGravity {
			a.land()
		}
	case a.Y <= ceiling:
		a.Y = ceiling
		a.VY = 0
		if a.Gravity == FlippedGravity {
			a.land()
		}
	}
}

func (a *Actor) land() {
	if a.Posture == Jumping {
		a.Posture = Running
	}
}

// Jump applies the jump impulse, away from the surface the actor stands
// on. Returns false (and does nothing) while airborne.
func (a *Actor) Jump() bool {
	if a.cfg.Gravity == 0 || a.Airborne() {
		return false
	}
	a.standUp()
	a.VY = a.cfg.JumpImpulse * a.Gravity.Sign()
	a.Posture = Jumping
	return true
}

// Duck switches the reduced hitbox on or off. Ignored while airborne.
func (a *Actor) Duck(active bool) {
	if a.cfg.DuckHeight <= 0 || a.Airborne() {
		return
	}
	if active {
		a.Posture = Ducking
		a.H = a.cfg.DuckHeight
		return
	}
	a.standUp()
}

func (a *Actor) standUp() {
	if a.Posture == Ducking {
		a.Posture = Running
	}
	a.H = a.StandH
}

// Flip inverts gravity when the cooldown allows it, halving vertical speed.
func (a *Actor) Flip() bool {
	if a.cooldown > 0 {
		return false
	}
	a.standUp()
	if a.Gravity == NormalGravity {
		a.Gravity = FlippedGravity
	} else {
		a.Gravity = NormalGravity
	}
	a.VY *= 0.5
	a.Posture = Jumping
	a.cooldown = float64(a.cfg.FlipCooldown)
	return true
}

// FlipReady reports whether Flip would succeed.
func (a *Actor) FlipReady() bool {
	return a.cooldown <= 0
}

// Move shifts the actor horizontally, keeping its box inside [MinX, MaxX].
func (a *Actor) Move(dx float64) {
	a.X = core.ClampF(a.X+dx, a.cfg.MinX, a.cfg.MaxX-a.W)
}

// MoveY shifts a free-flying actor vertically between ceiling and ground.
func (a *Actor) MoveY(dy float64) {
	a.Y = core.ClampF(a.Y+dy, a.CeilingY(), a.GroundY())
}

// OutOfBounds reports whether the actor has left the vertical band between
// ceiling and ground by more than slack pixels.
func (a *Actor) OutOfBounds(slack float64) bool {
	return a.Y < a.CeilingY()-slack || a.Y > a.GroundY()+slack
}

// Box returns the current hitbox. A ducking actor keeps its bottom edge on
// the ground; under flipped gravity the top edge stays put instead.
func (a *Actor) Box() core.Box {
	y := a.Y
	if a.Gravity == NormalGravity {
		y += a.StandH - a.H
	}
	return core.NewBox(a.X, y, a.W, a.H)
}
