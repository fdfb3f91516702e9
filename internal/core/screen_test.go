package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '#', ColorRed)
	if c := s.GetCell(3, 4); c.Rune != '#' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected red '#'", c)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(20, 2)
	s.DrawText(18, 0, "Hello")

	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi", ColorYellow)

	if s.Get(9, 1) != 'H' || s.Get(10, 1) != 'i' {
		t.Errorf("centered text misplaced: row = %q", s.Row(1))
	}
	if s.GetCell(9, 1).Color != ColorYellow {
		t.Error("centered text should keep its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content lost after shrink: %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content lost after grow: %q", s.Row(0))
	}
	if len(s.Row(7)) != 15 {
		t.Errorf("new row length = %d, expected 15", len(s.Row(7)))
	}
}
