package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionDuck)
	if !f.Has(ActionJump) || !f.Any(ActionFlip, ActionDuck) {
		t.Error("Set actions should be reported")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionFlip.String() != "Flip" {
		t.Errorf("ActionFlip.String() = %q", ActionFlip.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}

func TestRuntimeConfigDelta(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 30}
	if got := cfg.DeltaSeconds(); got != 1.0/30 {
		t.Errorf("DeltaSeconds() = %v", got)
	}
	if (RuntimeConfig{}).DeltaSeconds() != 1.0/60 {
		t.Error("zero tick rate should fall back to 60")
	}
}
