package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	// Out of bounds is silently ignored
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 1, '#')
	s.Clear()
	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("after Clear, Get(1,1) = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place runes at expected cells")
	}

	// Clips at the right edge without panicking
	s.DrawText(8, 0, "long text")
	if s.Get(9, 0) != 'o' {
		t.Errorf("clipped text wrong: %q", s.Get(9, 0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("unexpected render: %q", out)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("Resize -> %dx%d", s.Width(), s.Height())
	}
	// Resizing to the same size is a no-op
	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Error("same-size Resize changed dimensions")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionTap)
	f.AddRune('7')

	if !f.Has(ActionTap) {
		t.Error("ActionTap not set")
	}
	if f.Has(ActionUp) {
		t.Error("ActionUp should not be set")
	}
	if len(f.Runes) != 1 || f.Runes[0] != '7' {
		t.Errorf("Runes = %v", f.Runes)
	}

	f.Clear()
	if f.Has(ActionTap) || len(f.Runes) != 0 {
		t.Error("Clear did not reset the frame")
	}
}
