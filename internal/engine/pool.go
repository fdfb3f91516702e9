package engine

// MinScrollSpeed is the floor applied to a pool's base speed.
const MinScrollSpeed = 0.1

// Pool is the ordered collection of live obstacles. Order is spawn order.
type Pool struct {
	items     []Obstacle
	speed     float64
	amplitude float64
	frequency float64
}

// NewPool creates an empty pool scrolling at speed pixels per frame.
func NewPool(speed float64) *Pool {
	if speed < MinScrollSpeed {
		speed = MinScrollSpeed
	}
	return &Pool{
		items: make([]Obstacle, 0, 16),
		speed: speed,
	}
}

// SetDrift configures the wobble applied to Drifter obstacles.
func (p *Pool) SetDrift(amplitude, frequency float64) {
	p.amplitude = amplitude
	p.frequency = frequency
}

// Speed returns the base scroll speed in pixels per frame.
func (p *Pool) Speed() float64 {
	return p.speed
}

// Add appends an obstacle at the end of the pool.
func (p *Pool) Add(o Obstacle) {
	p.items = append(p.items, o)
}

// Items returns the live obstacles. The slice must not be retained
// across calls to AdvanceAndPrune.
func (p *Pool) Items() []Obstacle {
	return p.items
}

// Len returns the number of live obstacles.
func (p *Pool) Len() int {
	return len(p.items)
}

// Last returns the most recently spawned obstacle still in the pool.
func (p *Pool) Last() (Obstacle, bool) {
	if len(p.items) == 0 {
		return Obstacle{}, false
	}
	return p.items[len(p.items)-1], true
}

// Get returns a pointer to the obstacle with the given ID.
func (p *Pool) Get(id int) *Obstacle {
	for i := range p.items {
		if p.items[i].ID == id {
			return &p.items[i]
		}
	}
	return nil
}

// Remove drops the obstacle with the given ID, keeping order.
func (p *Pool) Remove(id int) bool {
	for i := range p.items {
		if p.items[i].ID == id {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the pool.
func (p *Pool) Clear() {
	p.items = p.items[:0]
}

// AdvanceAndPrune scrolls every obstacle left and removes those whose right
// edge has crossed x=0. All obstacles are moved first, then survivors are
// copied into a fresh slice, so no entry is skipped or visited twice.
// Returns the number of pruned obstacles.
func (p *Pool) AdvanceAndPrune(dt, gameSpeed float64) int {
	frames := Frames(dt)
	step := Displacement(p.speed, gameSpeed, dt)
	for i := range p.items {
		o := &p.items[i]
		o.X -= step + o.VX*frames
		o.wobble(p.amplitude, p.frequency, frames)
	}

	survivors := make([]Obstacle, 0, len(p.items))
	for _, o := range p.items {
		if !o.Offscreen() {
			survivors = append(survivors, o)
		}
	}
	pruned := len(p.items) - len(survivors)
	p.items = survivors
	return pruned
}
