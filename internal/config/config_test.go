package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	dino, err := LoadDino("")
	if err != nil {
		t.Fatalf("LoadDino: %v", err)
	}
	want := DefaultDinoConfig()
	if dino.Physics != want.Physics {
		t.Errorf("dino physics = %+v, want %+v", dino.Physics, want.Physics)
	}
	if dino.World != want.World {
		t.Errorf("dino world = %+v, want %+v", dino.World, want.World)
	}
	if len(dino.Spawn.Kinds) != 3 {
		t.Errorf("dino kinds = %v", dino.Spawn.Kinds)
	}

	fighter, err := LoadFighter("")
	if err != nil {
		t.Fatalf("LoadFighter: %v", err)
	}
	if fighter.Combat != DefaultFighterConfig().Combat {
		t.Errorf("fighter combat = %+v", fighter.Combat)
	}
}

func TestEmbeddedYAMLPresent(t *testing.T) {
	for _, id := range []string{"dino", "ninja", "fighter", "snake", "maze"} {
		if len(GetDefaultYAML(id)) == 0 {
			t.Errorf("no embedded yaml for %s", id)
		}
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no embedded yaml")
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dino.yaml")
	data := []byte("physics:\n  gravity: 1.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDino(path)
	if err != nil {
		t.Fatalf("LoadDino: %v", err)
	}
	if cfg.Physics.Gravity != 1.5 {
		t.Errorf("gravity = %v, want 1.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != -15 {
		t.Errorf("unset keys should keep defaults, jump = %v", cfg.Physics.JumpImpulse)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(path); err == nil {
		t.Error("malformed custom yaml should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"insane", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %q, %v", tt.in, got, ok)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	d := DifficultyConfig{Enabled: true}
	ApplyPreset(&d, DifficultyHard)
	if !d.Enabled || d.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", d)
	}
	ApplyPreset(&d, DifficultyFixed)
	if d.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestApplyNamedPreset(t *testing.T) {
	d := DifficultyConfig{Enabled: true, InitialLevel: 0.2}
	ApplyNamedPreset(&d, "")
	ApplyNamedPreset(&d, "bogus")
	if d.InitialLevel != 0.2 {
		t.Errorf("empty or unknown name changed level to %v", d.InitialLevel)
	}
	ApplyNamedPreset(&d, "easy")
	if d.InitialLevel != 0 {
		t.Errorf("easy level = %v", d.InitialLevel)
	}
}
