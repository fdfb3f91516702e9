// Package engine implements the scrolling obstacle game loop shared by the
// runner games: a gravity-driven Actor, a timer-gated Spawner, an ordered
// obstacle Pool, an AABB collision Checker, the score/speed Pacer and the
// Menu/Playing/Paused/GameOver Machine.
//
// Games drive one tick in a fixed order:
//
//	input -> Actor.Update -> Spawner.MaybeSpawn -> Pool.AdvanceAndPrune
//	      -> Checker.Check -> Pacer.Tick -> Scene
//
// Physics constants are expressed per reference frame (60 Hz). A step of
// dt seconds advances Frames(dt) reference frames, so the same config
// plays identically at any tick rate.
package engine

// ReferenceFPS is the frame rate physics constants are tuned for.
const ReferenceFPS = 60.0

// Frames converts simulated seconds to reference frames.
func Frames(dt float64) float64 {
	return dt * ReferenceFPS
}

// Displacement is the leftward scroll distance for one step.
func Displacement(speed, gameSpeed, dt float64) float64 {
	return speed * gameSpeed * Frames(dt)
}
