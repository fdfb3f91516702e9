package core

// Action is a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up - move up (fighter, snake, maze, cursor)
	ActionDown           // S, Down - move down
	ActionLeft           // A, Left - move left
	ActionRight          // D, Right - move right
	ActionJump           // Space, Up - jump (dino), start from menu
	ActionDuck           // Down, S - duck while held (dino)
	ActionFlip           // Space, F - flip gravity (ninja)
	ActionShoot          // Space, J - fire (fighter)
	ActionConfirm        // Enter - confirm / start / place mark
	ActionBack           // B, Escape - back to launcher
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause toggle
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionJump:    "Jump",
	ActionDuck:    "Duck",
	ActionFlip:    "Flip",
	ActionShoot:   "Shoot",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions active during one simulation tick.
// Edge actions (Jump, Pause) are set on the tick the key was pressed;
// held actions (Duck, Left, Right, Shoot) are set on every tick the
// front-end considers the key down.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions set. Handy in tests.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Any reports whether at least one of the actions is set.
func (f InputFrame) Any(actions ...Action) bool {
	for _, a := range actions {
		if f.Actions[a] {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
