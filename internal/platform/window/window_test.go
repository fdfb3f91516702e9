package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/arcade-collection/internal/core"
	"github.com/vovakirdan/arcade-collection/internal/engine"
)

// fakeKeys is a scripted keyboard.
type fakeKeys struct {
	down map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func (f fakeKeys) Pressed(k ebiten.Key) bool     { return f.down[k] }
func (f fakeKeys) JustPressed(k ebiten.Key) bool { return f.just[k] }

func keys(down, just []ebiten.Key) fakeKeys {
	f := fakeKeys{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
	for _, k := range down {
		f.down[k] = true
	}
	for _, k := range just {
		f.just[k] = true
		f.down[k] = true
	}
	return f
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name string
		ks   fakeKeys
		want []core.Action
		not  []core.Action
	}{
		{
			name: "space pressed",
			ks:   keys(nil, []ebiten.Key{ebiten.KeySpace}),
			want: []core.Action{core.ActionJump, core.ActionFlip, core.ActionShoot},
		},
		{
			name: "space held",
			ks:   keys([]ebiten.Key{ebiten.KeySpace}, nil),
			want: []core.Action{core.ActionShoot},
			not:  []core.Action{core.ActionJump, core.ActionFlip},
		},
		{
			name: "duck held",
			ks:   keys([]ebiten.Key{ebiten.KeyArrowDown}, nil),
			want: []core.Action{core.ActionDuck, core.ActionDown},
		},
		{
			name: "steer",
			ks:   keys([]ebiten.Key{ebiten.KeyA, ebiten.KeyW}, nil),
			want: []core.Action{core.ActionLeft, core.ActionUp},
			not:  []core.Action{core.ActionJump},
		},
		{
			name: "menu keys",
			ks:   keys(nil, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyP, ebiten.KeyR}),
			want: []core.Action{core.ActionConfirm, core.ActionPause, core.ActionRestart},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, quit := readInput(tt.ks)
			if quit {
				t.Fatal("unexpected quit")
			}
			for _, a := range tt.want {
				if !f.Has(a) {
					t.Errorf("missing %v", a)
				}
			}
			for _, a := range tt.not {
				if f.Has(a) {
					t.Errorf("unexpected %v", a)
				}
			}
		})
	}
}

func TestReadInputQuit(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ, ebiten.KeyB} {
		if _, quit := readInput(keys(nil, []ebiten.Key{k, ebiten.KeySpace})); !quit {
			t.Errorf("%v should quit", k)
		}
	}
}

func TestViewport(t *testing.T) {
	scene := engine.Scene{Width: 800, Height: 400, HUD: []string{"score"}}
	v, ok := newViewport(scene, 1600, 820)
	if !ok {
		t.Fatal("viewport rejected a valid scene")
	}
	// One HUD line leaves 800 rows for 400 world units.
	x, y, w, h := v.rect(core.NewBox(100, 200, 50, 10))
	if x != 200 || y != 420 || w != 100 || h != 20 {
		t.Errorf("rect = %v %v %v %v, want 200 420 100 20", x, y, w, h)
	}

	_, _, w, h = v.rect(core.NewBox(0, 0, 0.1, 0.1))
	if w != 1 || h != 1 {
		t.Errorf("tiny boxes should stay visible, got %v x %v", w, h)
	}
}

func TestViewportRejectsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		scene engine.Scene
		w, h  int
	}{
		{"no world", engine.Scene{}, 100, 100},
		{"hud fills window", engine.Scene{Width: 10, Height: 10, HUD: make([]string, 10)}, 100, 100},
		{"zero window", engine.Scene{Width: 10, Height: 10}, 0, 0},
	}
	for _, tt := range tests {
		if _, ok := newViewport(tt.scene, tt.w, tt.h); ok {
			t.Errorf("%s: viewport accepted", tt.name)
		}
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorPurple; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("no RGBA for color %d", c)
		}
	}
	if rgba(core.Color(200)) != palette[core.ColorDefault] {
		t.Error("unknown colors should fall back to default")
	}
}
