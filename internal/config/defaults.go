package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

//go:embed defaults/ninja.yaml
var defaultNinjaYAML []byte

//go:embed defaults/fighter.yaml
var defaultFighterYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultDinoConfig returns the default Dino Run configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		World: World{Width: 800, Height: 400, GroundY: 350},
		Physics: Physics{
			Gravity:       0.8,
			JumpImpulse:   -15,
			MaxFallSpeed:  20,
			ObstacleSpeed: 6,
		},
		Player: Player{
			X:          80,
			Width:      30,
			Height:     40,
			DuckHeight: 20,
		},
		Spawn: Spawn{
			Kinds:             []string{"cactus", "bird", "rock"},
			BaseInterval:      90,
			MinInterval:       30,
			IntervalReduction: 60,
			Jitter:            20,
			MinDistance:       250,
			Margin:            20,
		},
		Pacing: Pacing{
			ScoreRate:     0.1,
			InitialSpeed:  1.0,
			SpeedStep:     0.1,
			MaxSpeed:      3.0,
			SpeedInterval: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
		},
	}
}

// DefaultNinjaConfig returns the default Gravity Flip Ninja configuration.
func DefaultNinjaConfig() NinjaConfig {
	return NinjaConfig{
		World: World{Width: 1200, Height: 800, GroundY: 750, CeilingY: 50},
		Physics: Physics{
			Gravity:       0.5,
			JumpImpulse:   -12,
			MaxFallSpeed:  20,
			ObstacleSpeed: 5,
		},
		Player: Player{
			X:            150,
			Width:        40,
			Height:       40,
			MoveSpeed:    8,
			FlipCooldown: 10,
		},
		Spawn: Spawn{
			Kinds:             []string{"spike", "block", "drifter"},
			BaseInterval:      80,
			MinInterval:       30,
			IntervalReduction: 40,
			Jitter:            20,
			MinDistance:       200,
			Margin:            20,
		},
		Pacing: Pacing{
			ScoreRate:     0.1,
			InitialSpeed:  1.0,
			SpeedStep:     0.1,
			MaxSpeed:      2.5,
			SpeedInterval: 10,
		},
		Drift: Drift{Amplitude: 60, Frequency: 0.05},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 600,
			},
		},
	}
}

// DefaultFighterConfig returns the default Fighter Shoot configuration.
func DefaultFighterConfig() FighterConfig {
	return FighterConfig{
		World: World{Width: 800, Height: 600, GroundY: 600},
		Physics: Physics{
			ObstacleSpeed: 3,
		},
		Player: Player{
			X:         60,
			Width:     40,
			Height:    30,
			MoveSpeed: 5,
		},
		Spawn: Spawn{
			Kinds:             []string{"enemy"},
			BaseInterval:      90,
			MinInterval:       35,
			IntervalReduction: 45,
			Jitter:            20,
			MinDistance:       80,
			Margin:            10,
		},
		Pacing: Pacing{
			ScoreRate:     0.05,
			InitialSpeed:  1.0,
			SpeedStep:     0.1,
			MaxSpeed:      2.5,
			SpeedInterval: 10,
		},
		Combat: Combat{
			Health:         100,
			EnemyHP:        2,
			ShotSpeed:      10,
			EnemyShotSpeed: 6,
			ShotCooldown:   15,
			RapidCooldown:  5,
			RapidDuration:  300,
			EnemyFireMin:   60,
			EnemyFireMax:   150,
			ShotDamage:     10,
			RamDamage:      20,
			HealAmount:     25,
			KillBonus:      10,
			PickupChance:   0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{Width: 30, Height: 20},
		Gameplay: SnakeGameplay{
			MoveInterval:    8,
			MinMoveInterval: 3,
			FoodPoints:      10,
			InitialLength:   3,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
		},
	}
}

// DefaultMazeConfig returns the default Maze Explorer configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Width:      31,
		Height:     21,
		ExtraPaths: 0.1,
		MaxScore:   1000,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dino":
		return defaultDinoYAML
	case "ninja":
		return defaultNinjaYAML
	case "fighter":
		return defaultFighterYAML
	case "snake":
		return defaultSnakeYAML
	case "maze":
		return defaultMazeYAML
	default:
		return nil
	}
}
