package window

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
)

// Debug font metrics
const (
	glyphW = 6
	lineH  = 16
)

var (
	background = color.RGBA{18, 18, 24, 255}
	lineColor  = color.RGBA{90, 90, 110, 255}
	panelColor = color.RGBA{0, 0, 0, 200}
)

// viewport maps world units to window pixels below the HUD band.
type viewport struct {
	sx, sy float64
	top    float64
}

func newViewport(scene engine.Scene, width, height int) (viewport, bool) {
	top := float64(len(scene.HUD)*lineH + 4)
	rows := float64(height) - top
	if rows <= 0 || width <= 0 || scene.Width <= 0 || scene.Height <= 0 {
		return viewport{}, false
	}
	return viewport{
		sx:  float64(width) / scene.Width,
		sy:  rows / scene.Height,
		top: top,
	}, true
}

// rect returns the pixel rectangle of a world box, at least one pixel wide.
func (v viewport) rect(b core.Box) (x, y, w, h float32) {
	return float32(b.X * v.sx),
		float32(v.top + b.Y*v.sy),
		float32(max(b.W*v.sx, 1)),
		float32(max(b.H*v.sy, 1))
}

func (v viewport) point(x, y float64) (int, int) {
	return int(x * v.sx), int(v.top + y*v.sy)
}

func drawScene(screen *ebiten.Image, scene engine.Scene) {
	screen.Fill(background)
	bounds := screen.Bounds()

	for i, line := range scene.HUD {
		ebitenutil.DebugPrintAt(screen, line, 8, 2+i*lineH)
	}

	v, ok := newViewport(scene, bounds.Dx(), bounds.Dy())
	if !ok {
		return
	}

	width := float32(bounds.Dx())
	if scene.GroundY > 0 {
		_, y, _, _ := v.rect(core.NewBox(0, scene.GroundY, 0, 0))
		vector.StrokeLine(screen, 0, y, width, y, 2, lineColor, false)
	}
	if scene.CeilingY > 0 {
		_, y, _, _ := v.rect(core.NewBox(0, scene.CeilingY, 0, 0))
		vector.StrokeLine(screen, 0, y, width, y, 2, lineColor, false)
	}

	for _, e := range scene.Entities {
		switch e := e.(type) {
		case engine.ActorView:
			fillBox(screen, v, e.Box, e.Color)
		case engine.ObstacleView:
			fillBox(screen, v, e.Box, e.Color)
		case engine.ShotView:
			fillBox(screen, v, e.Box, e.Color)
		case engine.TileView:
			drawTile(screen, v, e)
		case engine.TextView:
			x, y := v.point(e.X, e.Y)
			ebitenutil.DebugPrintAt(screen, e.Text, x, y)
		}
	}

	if len(scene.Overlay) > 0 {
		drawOverlay(screen, scene.Overlay)
	}
}

func fillBox(screen *ebiten.Image, v viewport, b core.Box, c core.Color) {
	x, y, w, h := v.rect(b)
	vector.DrawFilledRect(screen, x, y, w, h, rgba(c), false)
}

// drawTile fills a grid cell with a one-pixel gutter. Blank glyphs are
// left empty.
func drawTile(screen *ebiten.Image, v viewport, t engine.TileView) {
	if t.Glyph == ' ' {
		return
	}
	x, y, w, h := v.rect(core.NewBox(float64(t.Col), float64(t.Row), 1, 1))
	if w > 2 && h > 2 {
		x, y, w, h = x+1, y+1, w-2, h-2
	}
	vector.DrawFilledRect(screen, x, y, w, h, rgba(t.Color), false)
}

func drawOverlay(screen *ebiten.Image, lines []string) {
	bounds := screen.Bounds()
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	boxW := width*glyphW + 32
	boxH := len(lines)*lineH + 16
	x0 := (bounds.Dx() - boxW) / 2
	y0 := (bounds.Dy() - boxH) / 2

	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(boxW), float32(boxH), panelColor, false)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(boxW), float32(boxH), 1, rgba(core.ColorBrightCyan), false)
	for i, line := range lines {
		x := x0 + (boxW-utf8.RuneCountInString(line)*glyphW)/2
		ebitenutil.DebugPrintAt(screen, line, x, y0+8+i*lineH)
	}
}
