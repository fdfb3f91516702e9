package engine

// Phase is the session state.
type Phase int

const (
	Menu Phase = iota
	Playing
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Machine is the Menu/Playing/Paused/GameOver state machine. Transition
// methods return false and leave the phase unchanged when invalid.
type Machine struct {
	phase Phase
}

// NewMachine creates a machine in the given phase.
func NewMachine(start Phase) *Machine {
	return &Machine{phase: start}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Simulating reports whether actors and obstacles may be updated.
func (m *Machine) Simulating() bool {
	return m.phase == Playing
}

// Start moves Menu to Playing.
func (m *Machine) Start() bool {
	return m.move(Menu, Playing)
}

// TogglePause switches between Playing and Paused.
func (m *Machine) TogglePause() bool {
	switch m.phase {
	case Playing:
		m.phase = Paused
		return true
	case Paused:
		m.phase = Playing
		return true
	}
	return false
}

// End moves Playing to GameOver.
func (m *Machine) End() bool {
	return m.move(Playing, GameOver)
}

// Restart moves GameOver to Playing. The caller rebuilds session state.
func (m *Machine) Restart() bool {
	return m.move(GameOver, Playing)
}

func (m *Machine) move(from, to Phase) bool {
	if m.phase != from {
		return false
	}
	m.phase = to
	return true
}
