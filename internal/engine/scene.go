package engine

import (
	"fmt"

	"github.com/vovakirdan/arcade-collection/internal/core"
)

// Scene is a frame description produced by a game. It carries no logic;
// front-ends paint it as terminal cells or window pixels.
type Scene struct {
	Width, Height float64 // World size
	GroundY       float64 // Floor line, 0 = none
	CeilingY      float64 // Ceiling line, 0 = none
	Background    core.Color

	Entities []Entity
	HUD      []string // Status lines above the world
	Overlay  []string // Centered message box, empty = none
}

// Add appends entities in draw order.
func (s *Scene) Add(e ...Entity) {
	s.Entities = append(s.Entities, e...)
}

// Entity is the closed set of drawable things. Dispatch with a type switch.
type Entity interface {
	entity()
}

// ActorView draws the player.
type ActorView struct {
	Box     core.Box
	Glyph   rune
	Color   core.Color
	Posture Posture
	Flipped bool
}

// ObstacleView draws a pooled obstacle.
type ObstacleView struct {
	Box   core.Box
	Kind  Kind
	Glyph rune
	Color core.Color
}

// ShotView draws a projectile owned by the player.
type ShotView struct {
	Box   core.Box
	Glyph rune
	Color core.Color
}

// TileView draws one grid cell of a tile-based game. World units are tiles.
type TileView struct {
	Col, Row int
	Glyph    rune
	Color    core.Color
}

// TextView draws a string at a world position.
type TextView struct {
	X, Y  float64
	Text  string
	Color core.Color
}

func (ActorView) entity()    {}
func (ObstacleView) entity() {}
func (ShotView) entity()     {}
func (TileView) entity()     {}
func (TextView) entity()     {}

// ObstacleEntity converts a pooled obstacle to its view.
func ObstacleEntity(o Obstacle, glyph rune, c core.Color) ObstacleView {
	return ObstacleView{Box: o.Box(), Kind: o.Kind, Glyph: glyph, Color: c}
}

// ActorEntity converts the actor to its view.
func ActorEntity(a *Actor, glyph rune, c core.Color) ActorView {
	return ActorView{
		Box:     a.Box(),
		Glyph:   glyph,
		Color:   c,
		Posture: a.Posture,
		Flipped: a.Gravity == FlippedGravity,
	}
}

// PhaseOverlay returns the standard message box for a non-playing phase.
func PhaseOverlay(phase Phase, title string, score, highScore int, hint string) []string {
	switch phase {
	case Menu:
		return []string{title, "", hint, "Press Enter to start"}
	case Paused:
		return []string{"PAUSED", "", "Press P to resume"}
	case GameOver:
		lines := []string{"GAME OVER", ""}
		if score > 0 && score >= highScore {
			lines = append(lines, "New high score!")
		}
		return append(lines, scoreLine(score, highScore), "Press R to restart, B for menu")
	}
	return nil
}

func scoreLine(score, highScore int) string {
	return fmt.Sprintf("Score: %d  Best: %d", score, max(score, highScore))
}
