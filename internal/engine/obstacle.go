package engine

import (
	"math"

	"github.com/vovakirdan/arcade-collection/internal/core"
)

// Kind is the closed set of obstacle types.
type Kind int

const (
	GroundSpike  Kind = iota + 1 // Cactus, floor or ceiling spikes
	FlyingHazard                 // Bird, enemy ship
	Boulder                      // Rock
	Block                        // Static platform block
	Drifter                      // Sine-wobbling block
	Projectile                   // Enemy shot
	Pickup                       // Power-up, collected on contact
	Decor                        // Clouds and stars, never collidable
)

var kindNames = map[Kind]string{
	GroundSpike:  "spike",
	FlyingHazard: "flyer",
	Boulder:      "boulder",
	Block:        "block",
	Drifter:      "drifter",
	Projectile:   "projectile",
	Pickup:       "pickup",
	Decor:        "decor",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Collidable reports whether the kind takes part in collision checks.
func (k Kind) Collidable() bool {
	return k != Decor
}

// Obstacle is one entity in the scrolling pool.
type Obstacle struct {
	ID      int    // Spawn sequence number, assigned by the Spawner
	Kind    Kind
	Variant string // Game-specific flavor ("cactus", "bird", "health")

	X, Y, W, H float64

	BaseY float64 // Drifter center line
	Phase float64 // Drifter phase, radians

	VX    float64 // Extra leftward speed per frame on top of the scroll
	HP    int
	Timer float64 // Game-owned countdown in frames (enemy fire)
}

// Box returns the obstacle's hitbox.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Offscreen reports whether the right edge has passed the left boundary.
func (o Obstacle) Offscreen() bool {
	return o.X+o.W < 0
}

func (o *Obstacle) wobble(amplitude, frequency, frames float64) {
	if o.Kind != Drifter {
		return
	}
	o.Phase += frequency * frames
	o.Y = o.BaseY + amplitude*math.Sin(o.Phase)
}
