package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDino loads Dino Run configuration.
// Search order: customPath -> ~/.arcade/configs/dino.yaml -> ./configs/dino.yaml -> embedded default
func LoadDino(customPath string) (DinoConfig, error) {
	return load("dino", customPath, DefaultDinoConfig)
}

// LoadNinja loads Gravity Flip Ninja configuration.
func LoadNinja(customPath string) (NinjaConfig, error) {
	return load("ninja", customPath, DefaultNinjaConfig)
}

// LoadFighter loads Fighter Shoot configuration.
func LoadFighter(customPath string) (FighterConfig, error) {
	return load("fighter", customPath, DefaultFighterConfig)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig)
}

// LoadMaze loads Maze Explorer configuration.
func LoadMaze(customPath string) (MazeConfig, error) {
	return load("maze", customPath, DefaultMazeConfig)
}

// load resolves a game's configuration. Each candidate file is decoded on
// top of the hardcoded defaults, so a partial YAML only overrides the keys
// it names. Only an explicit customPath can produce an error; the other
// sources are best-effort and fall through on any failure.
func load[T any](gameID, customPath string, fallback func() T) (T, error) {
	filename := gameID + ".yaml"

	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
