package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/astelice/cling/internal/core"
	"github.com/astelice/cling/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// formatDuration renders seconds as m:ss.
func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// DrawSnapshot renders one engine snapshot into the screen buffer using
// the shared layout.
func DrawSnapshot(s *core.Screen, l Layout, snap engine.Snapshot) {
	s.Clear()

	drawHUD(s, l, snap)
	drawCompanions(s, snap)
	drawPromptPanel(s, l, snap)

	switch snap.Phase {
	case engine.PhaseIntro:
		drawIntro(s, l, snap)
	case engine.PhaseChallenge:
		drawChallenge(s, l, snap)
	case engine.PhaseGameOver:
		drawGameOver(s, l, snap)
	}
}

func drawHUD(s *core.Screen, l Layout, snap engine.Snapshot) {
	s.DrawTextColored(1, 0, "cling", core.ColorBrightMagenta)

	clock := formatDuration(snap.Survival)
	s.DrawTextColored((l.Width-len(clock))/2, 0, clock, core.ColorWhite)

	if n := len(snap.Companions); n > 0 {
		total := 0
		for _, c := range snap.Companions {
			total += c.Happiness
		}
		mood := fmt.Sprintf("mood %d%%", total/n)
		s.DrawTextColored(l.Width-len(mood)-1, 0, mood, moodColor(total/n))
	}
}

func moodColor(happiness int) core.Color {
	switch {
	case happiness >= 70:
		return core.ColorBrightGreen
	case happiness >= 40:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightRed
	}
}

func drawCompanions(s *core.Screen, snap engine.Snapshot) {
	for _, c := range snap.Companions {
		color := core.ColorMagenta
		if c.Distressed {
			color = core.ColorBrightRed
		}
		for i, line := range c.Sprite {
			s.DrawTextColored(c.X, c.Y+i, line, color)
		}
		label := fmt.Sprintf("%s %d", c.Name, c.Happiness)
		s.DrawTextColored(c.X, c.Y+len(c.Sprite), label, core.ColorGray)
	}
}

func drawPromptPanel(s *core.Screen, l Layout, snap engine.Snapshot) {
	panel := l.PromptPanel()
	s.DrawHLine(0, panel.Y, l.Width, '─')

	if snap.Prompt == nil {
		s.DrawTextColored(1, panel.Y+1, "no new messages", core.ColorGray)
		return
	}

	p := snap.Prompt
	msg := fmt.Sprintf("%s: %s", p.From, p.Text)
	s.DrawTextColored(1, panel.Y+1, msg, core.ColorBrightYellow)

	countdown := fmt.Sprintf("%.1fs", p.SecondsLeft)
	s.DrawTextColored(l.Width-len(countdown)-1, panel.Y+1, countdown, core.ColorBrightRed)

	for i, choice := range p.Choices {
		slot := l.ReplyOption(i, len(p.Choices))
		s.DrawTextColored(slot.X+1, slot.Y, fmt.Sprintf("[%d] %s", i+1, choice), core.ColorCyan)
	}
}

// drawOverlayBox blanks the region and draws a bordered box with a title row.
func drawOverlayBox(s *core.Screen, box core.Rect, title string, color core.Color) {
	s.DrawRect(box, ' ')
	s.DrawBox(box)
	x := box.X + (box.W-len(title))/2
	s.DrawTextColored(x, box.Y+1, title, color)
}

func drawIntro(s *core.Screen, l Layout, snap engine.Snapshot) {
	box := l.ChallengeBox(1)
	drawOverlayBox(s, box, "she needs your attention", core.ColorBrightMagenta)

	lines := []string{
		"keep everyone happy: pet them, answer",
		"their messages, win their little games.",
		"",
		fmt.Sprintf("starting in %d... (enter to skip)", snap.IntroSecondsLeft),
	}
	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		s.DrawTextColored(x, box.Y+3+i, line, core.ColorWhite)
	}
}

func drawChallenge(s *core.Screen, l Layout, snap engine.Snapshot) {
	if snap.Challenge == nil {
		return
	}
	v := snap.Challenge

	box := l.ChallengeBox(len(v.Items))
	drawOverlayBox(s, box, v.Title, core.ColorBrightYellow)

	instr := v.Instruction
	if len(instr) > box.W-4 {
		instr = instr[:box.W-4]
	}
	s.DrawTextColored(box.X+(box.W-len(instr))/2, box.Y+2, instr, core.ColorWhite)

	status := fmt.Sprintf("%ds", v.SecondsLeft)
	if v.Progress != "" {
		status = fmt.Sprintf("%s  -  %ds", v.Progress, v.SecondsLeft)
	}
	s.DrawTextColored(box.X+(box.W-len(status))/2, box.Y+3, status, core.ColorBrightRed)

	if len(v.Items) == 0 {
		btn := l.ChallengeButton()
		s.DrawTextColored(btn.X, btn.Y, challengeButtonTxt, core.ColorBrightGreen)
		return
	}
	for i, item := range v.Items {
		slot := l.ChallengeItem(len(v.Items), i)
		s.DrawTextColored(slot.X, slot.Y, fmt.Sprintf("[%d] %s", i+1, item), core.ColorCyan)
	}
}

func drawGameOver(s *core.Screen, l Layout, snap engine.Snapshot) {
	rows := min(len(snap.HighScores), 5)
	box := l.ChallengeBox(rows + 3)
	drawOverlayBox(s, box, "GAME OVER", core.ColorBrightRed)

	reason := snap.EndReason.String()
	s.DrawTextColored(box.X+(box.W-len(reason))/2, box.Y+2, reason, core.ColorWhite)

	lasted := fmt.Sprintf("you lasted %s", formatDuration(snap.Survival))
	s.DrawTextColored(box.X+(box.W-len(lasted))/2, box.Y+3, lasted, core.ColorBrightYellow)

	y := box.Y + 5
	if rows > 0 {
		s.DrawTextColored(box.X+2, y, "best times:", core.ColorGray)
		y++
		for i := 0; i < rows; i++ {
			line := fmt.Sprintf("#%d  %s", i+1, formatDuration(snap.HighScores[i]))
			s.DrawTextColored(box.X+4, y, line, core.ColorWhite)
			y++
		}
	}

	hint := "r: try again   q: quit"
	s.DrawTextColored(box.X+(box.W-len(hint))/2, box.Bottom()-2, hint, core.ColorGray)
}
