// Package window runs games in a desktop window with ebiten. It draws the
// same scenes the terminal front-end paints as cells.
package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/platform"
	"github.com/vovakirdan/arcade-collection/internal/registry"
)

const (
	defaultWidth  = 960
	defaultHeight = 540
)

// ebitenKeys reads the live keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Window adapts a registry game to ebiten.Game.
type Window struct {
	game    registry.Game
	session *platform.Session
	keys    keyState
	state   core.GameState
}

// New resets the game and wraps it for ebiten.
func New(game registry.Game, session *platform.Session, cfg core.RuntimeConfig) *Window {
	if session == nil {
		session = &platform.Session{}
	}
	game.Reset(cfg)
	session.Begin()
	return &Window{game: game, session: session, keys: ebitenKeys{}, state: game.State()}
}

// Update advances the game one tick.
func (w *Window) Update() error {
	frame, quit := readInput(w.keys)
	if quit {
		return ebiten.Termination
	}
	res := w.game.Step(frame)
	w.state = res.State
	w.session.Observe(w.game.ID(), res)
	return nil
}

// Draw renders the current scene.
func (w *Window) Draw(screen *ebiten.Image) {
	drawScene(screen, w.game.Scene())
}

// Layout keeps a one-to-one pixel mapping; scenes scale to any size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and plays until it is closed or a quit key is pressed.
func Run(game registry.Game, session *platform.Session, cfg core.RuntimeConfig) error {
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	err := ebiten.RunGame(New(game, session, cfg))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// palette maps cell colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {220, 220, 220, 255},
	core.ColorRed:           {205, 49, 49, 255},
	core.ColorGreen:         {13, 188, 121, 255},
	core.ColorYellow:        {229, 229, 16, 255},
	core.ColorBlue:          {36, 114, 200, 255},
	core.ColorMagenta:       {188, 63, 188, 255},
	core.ColorCyan:          {17, 168, 205, 255},
	core.ColorWhite:         {229, 229, 229, 255},
	core.ColorBrightRed:     {241, 76, 76, 255},
	core.ColorBrightGreen:   {35, 209, 139, 255},
	core.ColorBrightYellow:  {245, 245, 67, 255},
	core.ColorBrightBlue:    {59, 142, 234, 255},
	core.ColorBrightMagenta: {214, 112, 214, 255},
	core.ColorBrightCyan:    {41, 184, 219, 255},
	core.ColorOrange:        {255, 135, 0, 255},
	core.ColorGray:          {138, 138, 138, 255},
	core.ColorPurple:        {135, 0, 255, 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
