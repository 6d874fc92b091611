package tui

import (
	"github.com/astelice/cling/internal/core"
)

// Screen region sizes in rows.
const (
	hudRows         = 1
	promptPanelRows = 4

	challengeBoxWidth  = 46
	challengeHeadRows  = 5 // border, title, instruction, countdown, gap
	challengeTailRows  = 2 // gap, border
	challengeButtonTxt = "[ PRESS ]"
)

// Layout computes screen regions for one terminal size. Rendering and
// mouse hit-testing share it, so what is drawn at a rect is exactly what
// a click on that rect means.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a layout for the given terminal size.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// PlayArea returns the region companions roam in: everything between the
// HUD line and the prompt panel.
func (l Layout) PlayArea() core.Rect {
	h := max(l.Height-hudRows-promptPanelRows, 1)
	return core.NewRect(0, hudRows, l.Width, h)
}

// PromptPanel returns the message panel at the bottom of the screen.
func (l Layout) PromptPanel() core.Rect {
	return core.NewRect(0, l.Height-promptPanelRows, l.Width, promptPanelRows)
}

// ReplyOption returns the clickable rect of reply i out of n.
// Options split the reply row into equal slots.
func (l Layout) ReplyOption(i, n int) core.Rect {
	if n <= 0 {
		return core.Rect{}
	}
	panel := l.PromptPanel()
	slot := l.Width / n
	return core.NewRect(i*slot, panel.Y+2, slot, 1)
}

// ChallengeBox returns the centered overlay box for a minigame with the
// given number of selectable items. Zero items still get one row for the
// press button.
func (l Layout) ChallengeBox(itemCount int) core.Rect {
	rows := max(itemCount, 1)
	w := min(challengeBoxWidth, l.Width-2)
	h := challengeHeadRows + rows + challengeTailRows
	x := (l.Width - w) / 2
	y := max((l.Height-h)/2, 0)
	return core.NewRect(x, y, w, h)
}

// ChallengeItem returns the clickable rect of item i inside the overlay.
func (l Layout) ChallengeItem(itemCount, i int) core.Rect {
	box := l.ChallengeBox(itemCount)
	return core.NewRect(box.X+2, box.Y+challengeHeadRows+i, box.W-4, 1)
}

// ChallengeButton returns the clickable press target for button minigames.
func (l Layout) ChallengeButton() core.Rect {
	box := l.ChallengeBox(0)
	w := len(challengeButtonTxt)
	x := box.X + (box.W-w)/2
	return core.NewRect(x, box.Y+challengeHeadRows, w, 1)
}
