package minigames

import (
	"fmt"
	"math/rand"

	"github.com/astelice/cling/internal/config"
	"github.com/astelice/cling/internal/content"
	"github.com/astelice/cling/internal/core"
)

// Mash is the click-count challenge: land enough presses before the
// countdown runs out. Required presses scale with difficulty.
type Mash struct {
	cfg config.ChallengeConfig

	required  int
	presses   int
	ticksLeft int
	tickRate  int

	done    bool
	outcome Outcome
}

// NewMash creates a mash challenge.
func NewMash(cfg config.ChallengeConfig, _ *content.Library) Challenge {
	return &Mash{cfg: cfg}
}

func init() {
	Register("mash", 0, -1, NewMash)
}

// ID returns the variant identifier.
func (m *Mash) ID() string {
	return "mash"
}

// Title returns the display name.
func (m *Mash) Title() string {
	return "Click or Lose"
}

// Begin initializes one run.
func (m *Mash) Begin(_ *rand.Rand, tickRate, difficulty int) {
	m.required = m.cfg.MashBaseClicks + m.cfg.MashClicksPerLevel*difficulty
	m.presses = 0
	m.tickRate = tickRate
	m.ticksLeft = m.cfg.MashWindowSeconds * tickRate
	m.done = false
	m.outcome = ""
}

// Step advances the challenge by one tick.
// Input is handled before the countdown so a final press on the expiry
// tick still counts: first writer wins.
func (m *Mash) Step(in core.InputFrame) {
	if m.done {
		return
	}

	if in.Has(core.ActionPress) {
		m.presses++
		if m.presses >= m.required {
			m.finish(OutcomeSuccess)
			return
		}
	}

	m.ticksLeft--
	if m.ticksLeft <= 0 {
		m.finish(OutcomeFail)
	}
}

// finish records the outcome exactly once.
func (m *Mash) finish(o Outcome) {
	if m.done {
		return
	}
	m.done = true
	m.outcome = o
}

// Outcome returns the result once the challenge has finished.
func (m *Mash) Outcome() (Outcome, bool) {
	return m.outcome, m.done
}

// View returns the render model.
func (m *Mash) View() View {
	secondsLeft := (m.ticksLeft + m.tickRate - 1) / m.tickRate
	return View{
		ID:          m.ID(),
		Title:       m.Title(),
		Instruction: "Smash the button before time runs out!",
		SecondsLeft: secondsLeft,
		Progress:    fmt.Sprintf("%d / %d clicks", m.presses, m.required),
	}
}
