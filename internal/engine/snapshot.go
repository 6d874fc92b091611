package engine

import (
	"math"

	"github.com/astelice/cling/internal/minigames"
)

// CompanionView is the read-only render model for one companion.
type CompanionView struct {
	ID         int
	Name       string
	X, Y       int
	Sprite     []string
	Happiness  int
	Distressed bool
}

// PromptView is the read-only render model for the pending prompt.
type PromptView struct {
	ID          int64
	From        string
	Text        string
	Choices     []string
	SecondsLeft float64
}

// Snapshot is the full read-only render model for one tick. The platform
// renders from it and never reaches back into the session, so rendering
// can never mutate game state.
type Snapshot struct {
	Phase            Phase
	EndReason        EndReason
	Survival         int
	IntroSecondsLeft int
	Companions       []CompanionView
	Prompt           *PromptView
	Challenge        *minigames.View
	HighScores       []int
}

// Snapshot captures the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.phase,
		EndReason:  s.endReason,
		Survival:   s.survival,
		HighScores: s.HighScores(),
		Companions: make([]CompanionView, 0, len(s.roster)),
	}

	if s.phase == PhaseIntro && s.introDue > s.simTick {
		ticksLeft := int(s.introDue - s.simTick)
		snap.IntroSecondsLeft = (ticksLeft + s.rt.TickRate - 1) / s.rt.TickRate
	}

	for _, c := range s.roster {
		snap.Companions = append(snap.Companions, CompanionView{
			ID:         c.Def.ID,
			Name:       c.Def.Name,
			X:          int(math.Round(c.Pos.X)),
			Y:          int(math.Round(c.Pos.Y)),
			Sprite:     c.Sprite(s.cfg.Companions),
			Happiness:  c.Happiness,
			Distressed: c.Distressed(s.cfg.Companions),
		})
	}

	if s.prompt != nil {
		snap.Prompt = &PromptView{
			ID:          s.prompt.ID,
			From:        s.prompt.From,
			Text:        s.prompt.Text,
			Choices:     append([]string(nil), s.prompt.Choices...),
			SecondsLeft: s.prompt.SecondsLeft(s.simTick, s.rt.TickRate),
		}
	}

	if s.challenge != nil {
		v := s.challenge.View()
		snap.Challenge = &v
	}

	return snap
}
