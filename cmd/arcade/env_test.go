package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	tests := []struct {
		in, want string
	}{
		{"~/.arcade/scores.db", filepath.Join(home, ".arcade", "scores.db")},
		{"/tmp/x.db", "/tmp/x.db"},
		{"relative/x.db", "relative/x.db"},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChildFlags(t *testing.T) {
	flagFPS, flagDBPath, flagSound, flagLogLevel = 30, "/tmp/s.db", false, "info"
	flagDifficulty, flagConfig = "hard", ""
	t.Cleanup(func() { flagDifficulty = "" })

	got := childFlags()
	want := []string{"--window", "--fps=30", "--db=/tmp/s.db", "--sound=false", "--log-level=info", "--difficulty=hard"}
	if !slices.Equal(got, want) {
		t.Errorf("childFlags() = %v, want %v", got, want)
	}
}

func TestChildFlagsResolvePaths(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	flagFPS, flagDBPath, flagSound, flagLogLevel = 60, "data/scores.db", true, "warn"
	flagDifficulty, flagConfig = "", "./my-dino.yaml"
	t.Cleanup(func() { flagDBPath, flagConfig = "", "" })

	got := childFlags()
	if want := "--db=" + filepath.Join(wd, "data", "scores.db"); !slices.Contains(got, want) {
		t.Errorf("childFlags() = %v, want %s", got, want)
	}
	for _, f := range got {
		if strings.HasPrefix(f, "--config") {
			t.Errorf("childFlags() passes %s to every game", f)
		}
	}
}

func TestChildFlagsParse(t *testing.T) {
	flagFPS, flagDBPath, flagSound, flagLogLevel = 45, "/tmp/s.db", true, "warn"
	flagDifficulty, flagConfig = "", "/tmp/dino.yaml"
	t.Cleanup(func() { flagConfig = "" })

	args := append(childFlags(), "play", "dino")
	cmd, rest, err := rootCmd.Find(args)
	if err != nil {
		t.Fatalf("Find() failed: %v", err)
	}
	if cmd != playCmd {
		t.Fatalf("children run %q, want play", cmd.Name())
	}
	if err := cmd.ParseFlags(rest); err != nil {
		t.Fatalf("child flags do not parse: %v", err)
	}
	if w, _ := cmd.Flags().GetBool("window"); !w {
		t.Error("children must open a window")
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := newLogger("debug"); err != nil {
		t.Errorf("newLogger(debug) failed: %v", err)
	}
	if _, err := newLogger("loud"); err == nil {
		t.Error("unknown level should fail")
	}
}
