package dino

import (
	"math/rand"

	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
)

// Obstacle sizes in world pixels.
const (
	cactusW, cactusH = 20, 40
	birdW, birdH     = 25, 15
	rockW, rockH     = 30, 20
)

// birdLift is how far above the ground a bird's bottom edge flies. The
// lowest lane must be ducked or jumped, the others only reward timing.
var birdLift = []float64{25, 45, 80}

// shaper builds Dino Run obstacles resting on the ground line.
func shaper(groundY float64) engine.Shaper {
	return func(kind string, rng *rand.Rand) (engine.Obstacle, bool) {
		switch kind {
		case "cactus":
			return engine.Obstacle{Kind: engine.GroundSpike, Variant: kind, Y: groundY - cactusH, W: cactusW, H: cactusH}, true
		case "bird":
			bottom := groundY - birdLift[rng.Intn(len(birdLift))]
			return engine.Obstacle{Kind: engine.FlyingHazard, Variant: kind, Y: bottom - birdH, W: birdW, H: birdH}, true
		case "rock":
			return engine.Obstacle{Kind: engine.Boulder, Variant: kind, Y: groundY - rockH, W: rockW, H: rockH}, true
		default:
			return engine.Obstacle{}, false
		}
	}
}

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoDuck   = '▄'
	CactusChar = '▓'
	BirdChar   = '≈'
	RockChar   = '▒'
	CloudChar  = '~'
)

func obstacleView(o engine.Obstacle) engine.ObstacleView {
	switch o.Kind {
	case engine.FlyingHazard:
		return engine.ObstacleEntity(o, BirdChar, core.ColorMagenta)
	case engine.Boulder:
		return engine.ObstacleEntity(o, RockChar, core.ColorOrange)
	case engine.Decor:
		return engine.ObstacleEntity(o, CloudChar, core.ColorGray)
	default:
		return engine.ObstacleEntity(o, CactusChar, core.ColorGreen)
	}
}

// clouds drift slowly behind the action and never collide.
type clouds struct {
	pool   *engine.Pool
	timer  float64
	nextID int
	world  float64
}

func newClouds(worldW float64) *clouds {
	return &clouds{pool: engine.NewPool(1), world: worldW}
}

func (c *clouds) reset(rng *rand.Rand) {
	c.pool.Clear()
	c.nextID = 0
	c.timer = 0
	for i := 0; i < 3; i++ {
		c.add(rng, rng.Float64()*c.world)
	}
}

func (c *clouds) add(rng *rand.Rand, x float64) {
	c.nextID++
	size := 30 + rng.Float64()*30
	c.pool.Add(engine.Obstacle{
		ID:   c.nextID,
		Kind: engine.Decor,
		X:    x,
		Y:    50 + rng.Float64()*100,
		W:    size,
		H:    size / 3,
	})
}

func (c *clouds) update(rng *rand.Rand, dt float64) {
	c.timer -= engine.Frames(dt)
	if c.timer <= 0 {
		c.add(rng, c.world+100)
		c.timer = float64(120 + rng.Intn(181))
	}
	c.pool.AdvanceAndPrune(dt, 1)
}
