package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/arcade-collection/internal/core"
)

// keyBinding ties a physical key to the actions it produces while held
// and on the tick it goes down.
type keyBinding struct {
	key  ebiten.Key
	held []core.Action
	edge []core.Action
}

var bindings = []keyBinding{
	{key: ebiten.KeySpace, held: []core.Action{core.ActionShoot}, edge: []core.Action{core.ActionJump, core.ActionFlip}},
	{key: ebiten.KeyArrowUp, held: []core.Action{core.ActionUp}, edge: []core.Action{core.ActionJump}},
	{key: ebiten.KeyW, held: []core.Action{core.ActionUp}, edge: []core.Action{core.ActionJump}},
	{key: ebiten.KeyArrowDown, held: []core.Action{core.ActionDown, core.ActionDuck}},
	{key: ebiten.KeyS, held: []core.Action{core.ActionDown, core.ActionDuck}},
	{key: ebiten.KeyArrowLeft, held: []core.Action{core.ActionLeft}},
	{key: ebiten.KeyA, held: []core.Action{core.ActionLeft}},
	{key: ebiten.KeyArrowRight, held: []core.Action{core.ActionRight}},
	{key: ebiten.KeyD, held: []core.Action{core.ActionRight}},
	{key: ebiten.KeyJ, held: []core.Action{core.ActionShoot}},
	{key: ebiten.KeyX, held: []core.Action{core.ActionShoot}},
	{key: ebiten.KeyF, edge: []core.Action{core.ActionFlip}},
	{key: ebiten.KeyEnter, edge: []core.Action{core.ActionConfirm}},
	{key: ebiten.KeyP, edge: []core.Action{core.ActionPause}},
	{key: ebiten.KeyR, edge: []core.Action{core.ActionRestart}},
}

var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ, ebiten.KeyB}

// keyState answers whether a key is down and whether it went down this tick.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// readInput builds one tick's frame. Windows report real key state, so no
// latch is needed.
func readInput(ks keyState) (frame core.InputFrame, quit bool) {
	for _, k := range quitKeys {
		if ks.JustPressed(k) {
			return core.NewInputFrame(), true
		}
	}

	frame = core.NewInputFrame()
	for _, b := range bindings {
		if ks.Pressed(b.key) {
			for _, a := range b.held {
				frame.Set(a)
			}
		}
		if ks.JustPressed(b.key) {
			for _, a := range b.edge {
				frame.Set(a)
			}
		}
	}
	return frame, false
}
