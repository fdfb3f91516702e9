package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
	"github.com/vovakirdan/arcade-collection/internal/registry"
)

// brokenGame panics on its first tick.
type brokenGame struct{}

func (brokenGame) ID() string { return "broken" }
func (brokenGame) Title() string { return "Broken" }
func (brokenGame) Description() string { return "Panics when stepped" }
func (brokenGame) Reset(core.RuntimeConfig) {}
func (brokenGame) Scene() engine.Scene { return engine.Scene{} }
func (brokenGame) State() core.GameState { return core.GameState{} }
func (brokenGame) Step(core.InputFrame) core.StepResult { panic("index out of range") }

func init() {
	registry.Register("broken", func() registry.Game { return brokenGame{} })
}

func TestGuardRecoversGamePanic(t *testing.T) {
	prev := logger
	logger = log.New(io.Discard)
	t.Cleanup(func() { logger = prev })

	err := guard(func() error {
		g, err := registry.Create("broken")
		if err != nil {
			return err
		}
		g.Reset(core.RuntimeConfig{TickRate: 60})
		g.Step(core.NewInputFrame())
		return nil
	})
	if err == nil || !strings.Contains(err.Error(), "index out of range") {
		t.Errorf("guard() error = %v, want the panic value", err)
	}
}

func TestGuardPassesErrors(t *testing.T) {
	want := errors.New("bad flag")
	if err := guard(func() error { return want }); err != want {
		t.Errorf("guard() error = %v, want %v", err, want)
	}
	if err := guard(func() error { return nil }); err != nil {
		t.Errorf("guard() error = %v, want nil", err)
	}
}
