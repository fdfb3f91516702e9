package engine

import "github.com/vovakirdan/arcade-collection/internal/core"

// Checker tests the actor's hitbox against obstacles. Margin shrinks the
// actor's box on every side before testing; zero means exact AABB.
type Checker struct {
	Margin float64
}

// Check reports whether any collidable obstacle overlaps the actor box.
func (c Checker) Check(actor core.Box, obstacles []Obstacle) bool {
	_, hit := c.FirstHit(actor, obstacles)
	return hit
}

// FirstHit returns the index of the first overlapping obstacle in pool order.
func (c Checker) FirstHit(actor core.Box, obstacles []Obstacle) (int, bool) {
	box := actor
	if c.Margin > 0 {
		box = actor.Inset(c.Margin)
	}
	for i, o := range obstacles {
		if !o.Kind.Collidable() {
			continue
		}
		if box.Overlaps(o.Box()) {
			return i, true
		}
	}
	return -1, false
}
