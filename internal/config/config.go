// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade collection.
package config

// World describes the play area of a scrolling game in world pixels.
type World struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	GroundY  float64 `yaml:"ground_y"`  // Y of the floor line
	CeilingY float64 `yaml:"ceiling_y"` // Y of the ceiling line (0 for open sky)
}

// Physics defines per-reference-frame (60 Hz) physics constants.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	ObstacleSpeed float64 `yaml:"obstacle_speed"` // Pixels per frame at game speed 1.0
}

// Player defines the player's box and movement.
type Player struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	DuckHeight   float64 `yaml:"duck_height"`
	MoveSpeed    float64 `yaml:"move_speed"`
	FlipCooldown int     `yaml:"flip_cooldown"` // Frames
	HitMargin    float64 `yaml:"hit_margin"`    // Collision inset, 0 = exact AABB
}

// Spawn defines the obstacle spawner's timing and spacing.
type Spawn struct {
	Kinds             []string `yaml:"kinds"`
	BaseInterval      int      `yaml:"base_interval"`      // Frames between spawns at level 0
	MinInterval       int      `yaml:"min_interval"`       // Floor for the countdown
	IntervalReduction int      `yaml:"interval_reduction"` // Frames removed at max difficulty
	Jitter            int      `yaml:"jitter"`             // +/- frames of randomness
	MinDistance       float64  `yaml:"min_distance"`       // Minimum gap to the last spawn
	Margin            float64  `yaml:"margin"`             // Spawn X = world width + margin
}

// Pacing defines score accrual and game-speed progression.
type Pacing struct {
	ScoreRate     float64 `yaml:"score_rate"` // Points per frame at game speed 1.0
	InitialSpeed  float64 `yaml:"initial_speed"`
	SpeedStep     float64 `yaml:"speed_step"`
	MaxSpeed      float64 `yaml:"max_speed"`
	SpeedInterval float64 `yaml:"speed_interval"` // Simulated seconds between steps
}

// DinoConfig contains all configuration for Dino Run.
type DinoConfig struct {
	World      World            `yaml:"world"`
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Spawn      Spawn            `yaml:"spawn"`
	Pacing     Pacing           `yaml:"pacing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// NinjaConfig contains all configuration for Gravity Flip Ninja.
type NinjaConfig struct {
	World      World            `yaml:"world"`
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Spawn      Spawn            `yaml:"spawn"`
	Pacing     Pacing           `yaml:"pacing"`
	Drift      Drift            `yaml:"drift"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Drift controls the sine wobble of moving blocks.
type Drift struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"` // Radians per frame
}

// FighterConfig contains all configuration for Fighter Shoot.
type FighterConfig struct {
	World      World            `yaml:"world"`
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Spawn      Spawn            `yaml:"spawn"`
	Pacing     Pacing           `yaml:"pacing"`
	Combat     Combat           `yaml:"combat"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Combat defines Fighter Shoot's weapons, health and rewards.
type Combat struct {
	Health          int     `yaml:"health"`
	EnemyHP         int     `yaml:"enemy_hp"`
	ShotSpeed       float64 `yaml:"shot_speed"`
	EnemyShotSpeed  float64 `yaml:"enemy_shot_speed"`
	ShotCooldown    int     `yaml:"shot_cooldown"`     // Frames
	RapidCooldown   int     `yaml:"rapid_cooldown"`    // Frames while rapid fire is active
	RapidDuration   int     `yaml:"rapid_duration"`    // Frames
	EnemyFireMin    int     `yaml:"enemy_fire_min"`    // Frames
	EnemyFireMax    int     `yaml:"enemy_fire_max"`    // Frames
	ShotDamage      int     `yaml:"shot_damage"`       // Health lost per enemy shot
	RamDamage       int     `yaml:"ram_damage"`        // Health lost per enemy body hit
	HealAmount      int     `yaml:"heal_amount"`
	KillBonus       int     `yaml:"kill_bonus"`
	PickupChance    float64 `yaml:"pickup_chance"` // Probability a spawn is a pickup
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Gameplay   SnakeGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the board size in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeGameplay defines movement pace and rewards.
type SnakeGameplay struct {
	MoveInterval    int `yaml:"move_interval"`     // Ticks between moves at level 0
	MinMoveInterval int `yaml:"min_move_interval"` // Fastest pace
	FoodPoints      int `yaml:"food_points"`
	InitialLength   int `yaml:"initial_length"`
}

// MazeConfig contains all configuration for Maze Explorer.
type MazeConfig struct {
	Width      int     `yaml:"width"`       // Cells, forced odd
	Height     int     `yaml:"height"`      // Cells, forced odd
	ExtraPaths float64 `yaml:"extra_paths"` // Fraction of eligible walls knocked out for loops
	MaxScore   int     `yaml:"max_score"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty section based on a preset.
func ApplyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyNamedPreset applies a preset given by its flag name. An empty or
// unknown name keeps the loaded configuration.
func ApplyNamedPreset(d *DifficultyConfig, name string) {
	if name == "" {
		return
	}
	if preset, ok := ParsePreset(name); ok {
		ApplyPreset(d, preset)
	}
}
