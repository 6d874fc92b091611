package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", got)
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '#', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected {# red}", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 1, '#')
	if c := s.GetCell(2, 1).Color; c != ColorDefault {
		t.Errorf("Set should use default color, got %v", c)
	}

	// Clear resets colors
	s.Clear()
	if c := s.GetCell(1, 1).Color; c != ColorDefault {
		t.Errorf("Clear should reset color, got %v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if row := s.Row(1); !strings.Contains(row, "hello") {
		t.Errorf("Row(1) = %q, expected to contain 'hello'", row)
	}

	// Clipped text must not wrap
	s.DrawText(8, 0, "abc")
	if got := s.Get(8, 0); got != 'a' {
		t.Errorf("Get(8, 0) = %q, expected 'a'", got)
	}
	if got := s.Get(9, 0); got != 'b' {
		t.Errorf("Get(9, 0) = %q, expected 'b'", got)
	}
	if got := s.Get(0, 1); got == 'c' {
		t.Error("clipped text should not wrap to the next row")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if got := s.Get(1, 1); got != '┌' {
		t.Errorf("top-left corner = %q, expected '┌'", got)
	}
	if got := s.Get(5, 4); got != '┘' {
		t.Errorf("bottom-right corner = %q, expected '┘'", got)
	}
	if got := s.Get(3, 1); got != '─' {
		t.Errorf("top edge = %q, expected '─'", got)
	}
	if got := s.Get(1, 2); got != '│' {
		t.Errorf("left edge = %q, expected '│'", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("size after resize = %dx%d, expected 5x3", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("preserved cell = %q, expected 'A'", got)
	}

	// Growing back leaves new cells blank
	s.Resize(10, 5)
	if got := s.Get(9, 4); got != ' ' {
		t.Errorf("cell lost by shrink should be blank after grow, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	got := s.String()
	expected := "ab \ncd "
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionPress) {
		t.Error("new frame should have no actions")
	}
	if f.Pick != -1 {
		t.Errorf("new frame Pick = %d, expected -1", f.Pick)
	}

	f.Set(ActionPress)
	f.AddClick(4, 7)
	f.SetReply(99, 2)
	f.Pick = 1

	if !f.Has(ActionPress) {
		t.Error("ActionPress should be set")
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Click{X: 4, Y: 7}) {
		t.Errorf("Clicks = %v, expected one click at (4, 7)", f.Clicks)
	}
	if f.Reply == nil || f.Reply.PromptID != 99 || f.Reply.Index != 2 {
		t.Errorf("Reply = %+v, expected {99 2}", f.Reply)
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionPress) || len(f.Clicks) != 0 || f.Reply != nil || f.Pick != -1 {
		t.Error("Clear should reset all input")
	}
	if !clone.Has(ActionPress) || len(clone.Clicks) != 1 || clone.Reply == nil || clone.Pick != 1 {
		t.Error("Clone should be independent of Clear")
	}
}
