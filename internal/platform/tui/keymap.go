package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-collection/internal/core"
)

// Control is a key handled by the front-end instead of the game.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlBack
	ControlScreenshot
)

// binding lists the actions one key produces. Edge actions last a single
// tick; held actions are latched.
type binding struct {
	edge []core.Action
	held []core.Action
}

var gameBindings = map[string]binding{
	" ":     {edge: []core.Action{core.ActionJump, core.ActionFlip}, held: []core.Action{core.ActionShoot}},
	"up":    {edge: []core.Action{core.ActionJump}, held: []core.Action{core.ActionUp}},
	"w":     {edge: []core.Action{core.ActionJump}, held: []core.Action{core.ActionUp}},
	"down":  {held: []core.Action{core.ActionDown, core.ActionDuck}},
	"s":     {held: []core.Action{core.ActionDown, core.ActionDuck}},
	"left":  {held: []core.Action{core.ActionLeft}},
	"a":     {held: []core.Action{core.ActionLeft}},
	"right": {held: []core.Action{core.ActionRight}},
	"d":     {held: []core.Action{core.ActionRight}},
	"f":     {edge: []core.Action{core.ActionFlip}},
	"j":     {held: []core.Action{core.ActionShoot}},
	"x":     {held: []core.Action{core.ActionShoot}},
	"enter": {edge: []core.Action{core.ActionConfirm}},
	"p":     {edge: []core.Action{core.ActionPause}},
	"r":     {edge: []core.Action{core.ActionRestart}},
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	latch *Latch
	edges core.InputFrame
}

// NewKeyMapper creates a key mapper whose held keys stay down for hold ticks.
func NewKeyMapper(hold int) *KeyMapper {
	return &KeyMapper{
		latch: NewLatch(hold),
		edges: core.NewInputFrame(),
	}
}

// Press records a key. Keys the front-end handles itself are returned as
// a Control and never reach the game.
func (km *KeyMapper) Press(msg tea.KeyMsg) Control {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return ControlQuit
	case "esc", "b":
		return ControlBack
	case "ctrl+s":
		return ControlScreenshot
	}

	b, ok := gameBindings[key]
	if !ok {
		return ControlNone
	}
	for _, a := range b.edge {
		km.edges.Set(a)
	}
	for _, a := range b.held {
		km.latch.Press(a)
	}
	return ControlNone
}

// Frame builds the input for the next tick and consumes edge actions.
func (km *KeyMapper) Frame() core.InputFrame {
	f := km.edges.Clone()
	km.edges.Clear()
	km.latch.Apply(&f)
	return f
}

// Latch fakes held keys on terminals that only report presses. A press
// keeps its action down for a number of ticks; auto-repeat refreshes it.
type Latch struct {
	hold      int
	remaining map[core.Action]int
}

// NewLatch creates a latch holding each press for hold ticks (minimum 1).
func NewLatch(hold int) *Latch {
	return &Latch{hold: max(hold, 1), remaining: make(map[core.Action]int)}
}

// HoldTicks converts the latch window to ticks at the given rate.
func HoldTicks(cfg core.RuntimeConfig) int {
	const window = 150 * time.Millisecond
	tick := cfg.TickDuration()
	return max(int((window+tick/2)/tick), 1)
}

// Press marks an action as held.
func (l *Latch) Press(a core.Action) {
	l.remaining[a] = l.hold
}

// Apply sets every held action on f and ages the latch by one tick.
func (l *Latch) Apply(f *core.InputFrame) {
	for a, n := range l.remaining {
		f.Set(a)
		if n <= 1 {
			delete(l.remaining, a)
		} else {
			l.remaining[a] = n - 1
		}
	}
}

// Release drops every held action.
func (l *Latch) Release() {
	clear(l.remaining)
}
