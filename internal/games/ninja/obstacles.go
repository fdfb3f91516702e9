package ninja

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/arcade-collection/internal/config"
	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
)

// Obstacle sizes in world pixels.
const (
	spikeW               = 60
	spikeMinH, spikeMaxH = 40, 80
	blockMinW, blockMaxW = 80, 120
	blockH               = 20
	blockBand            = 200 // Blocks keep this far from floor and ceiling
)

// shaper builds ninja obstacles: spikes hug the floor or the ceiling,
// blocks and drifters float in the middle band.
func shaper(world config.World) engine.Shaper {
	return func(kind string, rng *rand.Rand) (engine.Obstacle, bool) {
		switch kind {
		case "spike":
			h := float64(spikeMinH + rng.Intn(spikeMaxH-spikeMinH+1))
			y := world.GroundY - h
			if rng.Intn(2) == 0 {
				y = world.CeilingY
			}
			return engine.Obstacle{Kind: engine.GroundSpike, Variant: kind, Y: y, W: spikeW, H: h}, true
		case "block", "drifter":
			lo, hi := world.CeilingY+blockBand, world.GroundY-blockBand-blockH
			if hi < lo {
				return engine.Obstacle{}, false
			}
			w := float64(blockMinW + rng.Intn(blockMaxW-blockMinW+1))
			y := lo + rng.Float64()*(hi-lo)
			o := engine.Obstacle{Kind: engine.Block, Variant: kind, Y: y, W: w, H: blockH}
			if kind == "drifter" {
				o.Kind = engine.Drifter
				o.BaseY = y
				o.Phase = rng.Float64() * 2 * math.Pi
			}
			return o, true
		default:
			return engine.Obstacle{}, false
		}
	}
}

// Visual characters for rendering
const (
	NinjaChar   = '█'
	SpikeChar   = '▲'
	CeilSpike   = '▼'
	BlockChar   = '▬'
	DrifterChar = '◆'
	StarChar    = '·'
)

func obstacleView(o engine.Obstacle, world config.World) engine.ObstacleView {
	switch o.Kind {
	case engine.GroundSpike:
		if o.Y <= world.CeilingY {
			return engine.ObstacleEntity(o, CeilSpike, core.ColorRed)
		}
		return engine.ObstacleEntity(o, SpikeChar, core.ColorRed)
	case engine.Drifter:
		return engine.ObstacleEntity(o, DrifterChar, core.ColorYellow)
	case engine.Decor:
		return engine.ObstacleEntity(o, StarChar, core.ColorGray)
	default:
		return engine.ObstacleEntity(o, BlockChar, core.ColorGreen)
	}
}
