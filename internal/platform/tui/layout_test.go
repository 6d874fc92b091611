package tui

import "testing"

func TestLayoutRegionsDoNotOverlap(t *testing.T) {
	l := NewLayout(80, 24)

	play := l.PlayArea()
	panel := l.PromptPanel()

	if play.Y < hudRows {
		t.Errorf("Play area overlaps the HUD: starts at row %d", play.Y)
	}
	if play.Bottom() > panel.Y {
		t.Errorf("Play area (bottom %d) overlaps the prompt panel (top %d)", play.Bottom(), panel.Y)
	}
	if panel.Bottom() != 24 {
		t.Errorf("Prompt panel should end at the last row, ends at %d", panel.Bottom())
	}
}

func TestLayoutReplyOptionsCoverDistinctSlots(t *testing.T) {
	l := NewLayout(80, 24)

	a := l.ReplyOption(0, 2)
	b := l.ReplyOption(1, 2)

	if a.Y != b.Y {
		t.Error("Reply options should share a row")
	}
	if a.Right() > b.X {
		t.Errorf("Reply slots overlap: %v and %v", a, b)
	}
	if !a.Contains(a.X, a.Y) || !b.Contains(b.X, b.Y) {
		t.Error("Each slot should contain its own origin")
	}
}

func TestLayoutChallengeItemsInsideBox(t *testing.T) {
	l := NewLayout(80, 24)

	const items = 6
	box := l.ChallengeBox(items)
	for i := range items {
		item := l.ChallengeItem(items, i)
		if item.X < box.X || item.Right() > box.Right() || item.Y < box.Y || item.Bottom() > box.Bottom() {
			t.Errorf("Item %d (%v) leaves the box (%v)", i, item, box)
		}
	}

	btn := l.ChallengeButton()
	box = l.ChallengeBox(0)
	if !box.Contains(btn.X, btn.Y) {
		t.Errorf("Press button (%v) outside its box (%v)", btn, box)
	}
}

func TestLayoutSurvivesTinyTerminals(t *testing.T) {
	l := NewLayout(20, 6)

	if l.PlayArea().H < 1 {
		t.Error("Play area height must stay positive")
	}
	box := l.ChallengeBox(3)
	if box.W > 20 {
		t.Errorf("Challenge box wider than the terminal: %d", box.W)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{60, "1:00"},
		{95, "1:35"},
		{600, "10:00"},
	}

	for _, tc := range cases {
		if got := formatDuration(tc.seconds); got != tc.expected {
			t.Errorf("formatDuration(%d) = %q, expected %q", tc.seconds, got, tc.expected)
		}
	}
}
