package engine

import (
	"math/rand"

	"github.com/astelice/cling/internal/content"
)

// Prompt is one pending message a companion sent the player.
// It stays alive until the player replies or the fail deadline fires;
// exactly one of the two resolves it.
type Prompt struct {
	ID      int64
	From    string
	Text    string
	Choices []string
	Wrong   int // index into Choices; every other choice is safe

	failDue   uint64 // absolute simulation tick of the auto-fail
	failTimer int64  // scheduler deadline id, for cancellation on reply
}

// buildPrompt instantiates a prompt from a table entry: every correct reply
// plus the one wrong reply, uniformly shuffled so the unsafe answer is
// never in a fixed slot.
func buildPrompt(id int64, rng *rand.Rand, def content.Prompt, from string) *Prompt {
	choices := make([]string, 0, len(def.Correct)+1)
	choices = append(choices, def.Correct...)
	choices = append(choices, def.Wrong)

	wrong := len(choices) - 1
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
		switch wrong {
		case i:
			wrong = j
		case j:
			wrong = i
		}
	})

	return &Prompt{
		ID:      id,
		From:    from,
		Text:    def.Text,
		Choices: choices,
		Wrong:   wrong,
	}
}

// SecondsLeft returns the time remaining before auto-fail, in seconds.
func (p *Prompt) SecondsLeft(now uint64, tickRate int) float64 {
	if now >= p.failDue {
		return 0
	}
	return float64(p.failDue-now) / float64(tickRate)
}
