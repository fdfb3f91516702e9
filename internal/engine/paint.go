package engine

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/arcade-collection/internal/core"
)

// Glyphs used for scene furniture.
const (
	GroundGlyph  = '═'
	CeilingGlyph = '═'
	defaultGlyph = '█'
)

// viewport maps world coordinates onto the cell grid below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return v.top + int(math.Floor(y*v.sy)) }

// rect converts a world box into a cell rectangle at least one cell wide
// and tall.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := v.top + int(math.Ceil(b.Bottom()*v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Paint renders a scene into a terminal screen buffer. HUD lines take the
// top rows; the world is scaled to fill the rest.
func Paint(scene Scene, dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	for i, line := range scene.HUD {
		dst.DrawTextColored(1, i, line, core.ColorWhite)
	}

	top := len(scene.HUD)
	rows := h - top
	if rows <= 0 || w <= 0 || scene.Width <= 0 || scene.Height <= 0 {
		return
	}
	v := viewport{
		sx:  float64(w) / scene.Width,
		sy:  float64(rows) / scene.Height,
		top: top,
	}

	if scene.GroundY > 0 && scene.GroundY < scene.Height {
		y := min(top+int(math.Ceil(scene.GroundY*v.sy)), h-1)
		dst.DrawHLine(0, y, w, GroundGlyph, core.ColorGray)
	}
	if scene.CeilingY > 0 {
		y := max(v.row(scene.CeilingY)-1, top)
		dst.DrawHLine(0, y, w, CeilingGlyph, core.ColorGray)
	}

	for _, e := range scene.Entities {
		switch e := e.(type) {
		case ActorView:
			fill(dst, v.rect(e.Box), e.Glyph, e.Color)
		case ObstacleView:
			fill(dst, v.rect(e.Box), e.Glyph, e.Color)
		case ShotView:
			fill(dst, v.rect(e.Box), e.Glyph, e.Color)
		case TileView:
			fill(dst, v.rect(core.NewBox(float64(e.Col), float64(e.Row), 1, 1)), e.Glyph, e.Color)
		case TextView:
			dst.DrawTextColored(v.col(e.X), v.row(e.Y), e.Text, e.Color)
		}
	}

	if len(scene.Overlay) > 0 {
		paintOverlay(dst, scene.Overlay)
	}
}

func fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	if glyph == 0 {
		glyph = defaultGlyph
	}
	dst.DrawRect(r, glyph, c)
}

func paintOverlay(dst *core.Screen, lines []string) {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightCyan)
	for i, line := range lines {
		x := box.X + (boxW-utf8.RuneCountInString(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, core.ColorBrightYellow)
	}
}
