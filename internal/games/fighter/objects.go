package fighter

import (
	"math/rand"

	"github.com/vovakirdan/arcade-collection/internal/config"
	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
)

// Object sizes in world pixels.
const (
	enemyW, enemyH   = 40, 30
	pickupW, pickupH = 20, 20
	shotW, shotH     = 12, 4
	boltW, boltH     = 10, 4
)

// Pickup variants.
const (
	pickupHealth = "health"
	pickupRapid  = "rapid"
)

// Visual characters for rendering
const (
	ShipChar   = '►'
	EnemyChar  = '◄'
	ShotChar   = '-'
	BoltChar   = '•'
	HealthChar = '+'
	RapidChar  = 'R'
)

// shaper builds enemies and the occasional power-up at a random height.
func shaper(world config.World, combat config.Combat) engine.Shaper {
	return func(kind string, rng *rand.Rand) (engine.Obstacle, bool) {
		if kind == "enemy" && rng.Float64() < combat.PickupChance {
			kind = "pickup"
		}
		switch kind {
		case "enemy":
			return engine.Obstacle{
				Kind:    engine.FlyingHazard,
				Variant: kind,
				Y:       lane(world, enemyH, rng),
				W:       enemyW,
				H:       enemyH,
				HP:      max(combat.EnemyHP, 1),
				Timer:   fireDelay(combat, rng),
			}, true
		case "pickup":
			variant := pickupHealth
			if rng.Intn(2) == 1 {
				variant = pickupRapid
			}
			return engine.Obstacle{
				Kind:    engine.Pickup,
				Variant: variant,
				Y:       lane(world, pickupH, rng),
				W:       pickupW,
				H:       pickupH,
			}, true
		default:
			return engine.Obstacle{}, false
		}
	}
}

// lane picks a top edge that keeps an object of height h inside the world.
func lane(world config.World, h float64, rng *rand.Rand) float64 {
	span := world.GroundY - world.CeilingY - h
	if span <= 0 {
		return world.CeilingY
	}
	return world.CeilingY + rng.Float64()*span
}

// fireDelay returns frames until an enemy's next shot.
func fireDelay(combat config.Combat, rng *rand.Rand) float64 {
	lo, hi := combat.EnemyFireMin, combat.EnemyFireMax
	if hi <= lo {
		return float64(max(lo, 1))
	}
	return float64(lo + rng.Intn(hi-lo+1))
}

// shot is a player bullet. It flies right and is not part of the pool.
type shot struct {
	x, y float64
}

func (s shot) box() core.Box {
	return core.NewBox(s.x, s.y, shotW, shotH)
}

func obstacleView(o engine.Obstacle) engine.ObstacleView {
	switch o.Kind {
	case engine.Projectile:
		return engine.ObstacleEntity(o, BoltChar, core.ColorBrightRed)
	case engine.Pickup:
		if o.Variant == pickupRapid {
			return engine.ObstacleEntity(o, RapidChar, core.ColorBrightYellow)
		}
		return engine.ObstacleEntity(o, HealthChar, core.ColorBrightGreen)
	case engine.Decor:
		return engine.ObstacleEntity(o, '.', core.ColorGray)
	default:
		color := core.ColorRed
		if o.HP == 1 {
			color = core.ColorOrange
		}
		return engine.ObstacleEntity(o, EnemyChar, color)
	}
}
