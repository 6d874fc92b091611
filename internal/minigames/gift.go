package minigames

import (
	"fmt"
	"math/rand"

	"github.com/astelice/cling/internal/config"
	"github.com/astelice/cling/internal/content"
	"github.com/astelice/cling/internal/core"
)

// Gift is the pick-the-right-item challenge: one good gift hides among
// decoys and a wrong pick fails immediately. Decoy count scales with
// difficulty.
type Gift struct {
	cfg config.ChallengeConfig
	lib *content.Library

	items     []string
	correct   int // index into items
	forName   string
	ticksLeft int
	tickRate  int

	done    bool
	outcome Outcome
}

// NewGift creates a gift challenge.
func NewGift(cfg config.ChallengeConfig, lib *content.Library) Challenge {
	return &Gift{cfg: cfg, lib: lib}
}

func init() {
	Register("gift", 0, -1, NewGift)
}

// ID returns the variant identifier.
func (g *Gift) ID() string {
	return "gift"
}

// Title returns the display name.
func (g *Gift) Title() string {
	return "Pick the Gift"
}

// Begin initializes one run: one good gift plus difficulty-scaled decoys,
// uniformly shuffled.
func (g *Gift) Begin(rng *rand.Rand, tickRate, difficulty int) {
	good := g.lib.Gifts.Good
	bad := g.lib.Gifts.Bad

	decoys := min(g.cfg.GiftBaseDecoys+difficulty, len(bad))
	badOrder := rng.Perm(len(bad))

	g.items = make([]string, 0, decoys+1)
	g.items = append(g.items, good[rng.Intn(len(good))])
	for _, i := range badOrder[:decoys] {
		g.items = append(g.items, bad[i])
	}
	rng.Shuffle(len(g.items), func(i, j int) {
		g.items[i], g.items[j] = g.items[j], g.items[i]
	})

	g.correct = 0
	for i, item := range g.items {
		for _, goodItem := range good {
			if item == goodItem {
				g.correct = i
			}
		}
	}

	comp := g.lib.Companions[rng.Intn(len(g.lib.Companions))]
	g.forName = comp.Name

	g.tickRate = tickRate
	g.ticksLeft = g.cfg.GiftWindowSeconds * tickRate
	g.done = false
	g.outcome = ""
}

// Step advances the challenge by one tick.
// A pick on the expiry tick wins over the timeout.
func (g *Gift) Step(in core.InputFrame) {
	if g.done {
		return
	}

	if in.Pick >= 0 && in.Pick < len(g.items) {
		if in.Pick == g.correct {
			g.finish(OutcomeSuccess)
		} else {
			g.finish(OutcomeFail)
		}
		return
	}

	g.ticksLeft--
	if g.ticksLeft <= 0 {
		g.finish(OutcomeFail)
	}
}

// finish records the outcome exactly once.
func (g *Gift) finish(o Outcome) {
	if g.done {
		return
	}
	g.done = true
	g.outcome = o
}

// Outcome returns the result once the challenge has finished.
func (g *Gift) Outcome() (Outcome, bool) {
	return g.outcome, g.done
}

// View returns the render model.
func (g *Gift) View() View {
	secondsLeft := (g.ticksLeft + g.tickRate - 1) / g.tickRate
	items := make([]string, len(g.items))
	copy(items, g.items)
	return View{
		ID:          g.ID(),
		Title:       g.Title(),
		Instruction: fmt.Sprintf("Help %s pick the right gift! Wrong picks end the run.", g.forName),
		SecondsLeft: secondsLeft,
		Progress:    "",
		Items:       items,
	}
}
