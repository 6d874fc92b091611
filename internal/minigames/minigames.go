// Package minigames provides the challenge variants that interrupt the main
// simulation, plus a registry so the engine can pick variants without
// hardcoded dependencies. Variants register themselves in init() functions.
package minigames

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/astelice/cling/internal/config"
	"github.com/astelice/cling/internal/content"
	"github.com/astelice/cling/internal/core"
)

// Outcome is the tagged result of a finished challenge.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFail      Outcome = "fail"
	OutcomeAbandoned Outcome = "abandoned"
)

// View is the read-only render model for an active challenge.
// The platform lays it out however it likes; item indices map back to
// InputFrame.Pick.
type View struct {
	ID          string
	Title       string
	Instruction string
	SecondsLeft int
	Progress    string   // Free-form progress line, e.g. "4 / 9 clicks"
	Items       []string // Selectable items, empty for button challenges
}

// Challenge is one timed minigame. While a challenge is active the engine
// freezes the main simulation and forwards every tick and input frame here.
// A challenge emits exactly one outcome; Step after completion is a no-op.
type Challenge interface {
	// ID returns a unique identifier for this variant (e.g. "mash").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Begin initializes the challenge for one run.
	// tickRate is simulation ticks per second; difficulty scales the task.
	Begin(rng *rand.Rand, tickRate, difficulty int)

	// Step advances the challenge by one tick with the given input.
	Step(in core.InputFrame)

	// Outcome returns the result and true once the challenge has finished.
	// Reading it does not consume it; the engine guards single application.
	Outcome() (Outcome, bool)

	// View returns the current render model.
	View() View
}

// Factory creates a new instance of a challenge variant.
type Factory func(cfg config.ChallengeConfig, lib *content.Library) Challenge

type registration struct {
	factory       Factory
	minDifficulty int
	maxDifficulty int // -1 means unbounded
}

var (
	mu        sync.RWMutex
	factories = make(map[string]registration)
)

// Register adds a challenge factory to the registry.
// maxDifficulty of -1 means the variant is eligible at any difficulty.
// Panics if a variant with the same id is already registered.
func Register(id string, minDifficulty, maxDifficulty int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("minigames: variant %q already registered", id))
	}
	factories[id] = registration{
		factory:       f,
		minDifficulty: minDifficulty,
		maxDifficulty: maxDifficulty,
	}
}

// Create instantiates a variant by id.
// Returns an error if the id is not registered.
func Create(id string, cfg config.ChallengeConfig, lib *content.Library) (Challenge, error) {
	mu.RLock()
	defer mu.RUnlock()

	reg, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("minigames: unknown variant %q", id)
	}
	return reg.factory(cfg, lib), nil
}

// Eligible returns the ids of all variants whose difficulty range admits
// the given difficulty, sorted for deterministic selection.
func Eligible(difficulty int) []string {
	mu.RLock()
	defer mu.RUnlock()

	var ids []string
	for id, reg := range factories {
		if difficulty < reg.minDifficulty {
			continue
		}
		if reg.maxDifficulty >= 0 && difficulty > reg.maxDifficulty {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Pick selects a uniformly random eligible variant and instantiates it.
// Returns nil if no variant is eligible.
func Pick(rng *rand.Rand, difficulty int, cfg config.ChallengeConfig, lib *content.Library) Challenge {
	ids := Eligible(difficulty)
	if len(ids) == 0 {
		return nil
	}
	id := ids[rng.Intn(len(ids))]
	c, err := Create(id, cfg, lib)
	if err != nil {
		return nil
	}
	return c
}
