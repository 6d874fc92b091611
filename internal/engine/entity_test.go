package engine

import (
	"math/rand"
	"testing"

	"github.com/astelice/cling/internal/config"
	"github.com/astelice/cling/internal/content"
	"github.com/astelice/cling/internal/core"
)

func testCompanionCfg() config.CompanionConfig {
	return config.Default().Companions
}

func testDef() content.Companion {
	return content.Companion{
		ID:         1,
		Name:       "Raven",
		Content:    []string{"(o.o)"},
		Distressed: []string{"(;_;)"},
	}
}

func TestSpawnCompanionInsideArea(t *testing.T) {
	cfg := testCompanionCfg()
	area := core.NewRect(2, 1, 60, 18)
	rng := rand.New(rand.NewSource(1))

	for range 50 {
		c := spawnCompanion(rng, testDef(), area, cfg)
		b := c.Bounds(cfg)
		if b.X < area.X || b.Right() > area.Right() || b.Y < area.Y || b.Bottom() > area.Bottom() {
			t.Fatalf("Spawned outside area: %+v in %+v", b, area)
		}
		if c.Happiness != 100 {
			t.Errorf("New companion should start at 100 happiness, got %d", c.Happiness)
		}
		if c.Vel.X == 0 || c.Vel.Y == 0 {
			t.Error("Spawn velocity must be nonzero on both axes")
		}
	}
}

func TestSpeedMultiplier(t *testing.T) {
	c := &Companion{Happiness: 100}
	if got := c.speedMultiplier(); got != 1.0 {
		t.Errorf("Multiplier at 100 happiness = %v, expected 1.0", got)
	}
	c.Happiness = 0
	if got := c.speedMultiplier(); got != 2.0 {
		t.Errorf("Multiplier at 0 happiness = %v, expected 2.0", got)
	}
	c.Happiness = 50
	if got := c.speedMultiplier(); got != 1.5 {
		t.Errorf("Multiplier at 50 happiness = %v, expected 1.5", got)
	}
}

func TestMoveBouncesInward(t *testing.T) {
	cfg := testCompanionCfg()
	area := core.NewRect(0, 0, 40, 20)
	rng := rand.New(rand.NewSource(1))

	c := spawnCompanion(rng, testDef(), area, cfg)
	c.Pos = core.Vec{X: 0.1, Y: 0.1}
	c.Vel = core.Vec{X: -cfg.MaxSpeed, Y: -cfg.MaxSpeed}
	c.Happiness = 0 // fastest, worst case for overshoot

	c.Move(rng, area, cfg)

	if c.Pos.X != 0 || c.Pos.Y != 0 {
		t.Errorf("Expected clamp onto the top-left corner, got %+v", c.Pos)
	}
	if c.Vel.X <= 0 || c.Vel.Y <= 0 {
		t.Errorf("Velocity must point inward after a bounce, got %+v", c.Vel)
	}
}

func TestMoveNeverLeavesArea(t *testing.T) {
	cfg := testCompanionCfg()
	area := core.NewRect(0, 0, 30, 12)
	rng := rand.New(rand.NewSource(7))

	c := spawnCompanion(rng, testDef(), area, cfg)
	c.Happiness = 0

	maxX := float64(area.Right() - cfg.SpriteWidth)
	maxY := float64(area.Bottom() - cfg.SpriteHeight)
	for i := range 2000 {
		c.Move(rng, area, cfg)
		if c.Pos.X < 0 || c.Pos.X > maxX || c.Pos.Y < 0 || c.Pos.Y > maxY {
			t.Fatalf("Left the area on tick %d: %+v", i, c.Pos)
		}
	}
}

func TestBoostAndDecayClamp(t *testing.T) {
	c := &Companion{Happiness: 95}

	c.Boost(20)
	if c.Happiness != 100 {
		t.Errorf("Boost should clamp at 100, got %d", c.Happiness)
	}

	c.Happiness = 4
	c.Decay(8)
	if c.Happiness != 0 {
		t.Errorf("Decay should clamp at 0, got %d", c.Happiness)
	}
	if !c.Depleted() {
		t.Error("Companion at 0 happiness should report depleted")
	}
}

func TestSpriteSwitchesWhenDistressed(t *testing.T) {
	cfg := testCompanionCfg()
	c := &Companion{Def: testDef(), Happiness: cfg.DistressedAt}

	if c.Distressed(cfg) {
		t.Errorf("Happiness %d should still be content", c.Happiness)
	}
	if c.Sprite(cfg)[0] != "(o.o)" {
		t.Error("Content sprite expected at threshold")
	}

	c.Happiness = cfg.DistressedAt - 1
	if !c.Distressed(cfg) {
		t.Errorf("Happiness %d should be distressed", c.Happiness)
	}
	if c.Sprite(cfg)[0] != "(;_;)" {
		t.Error("Distressed sprite expected below threshold")
	}
}

func TestContainsUsesSpriteHitbox(t *testing.T) {
	cfg := testCompanionCfg()
	c := &Companion{Def: testDef(), Pos: core.Vec{X: 10, Y: 5}}

	if !c.Contains(10, 5, cfg) {
		t.Error("Top-left corner should hit")
	}
	if !c.Contains(10+cfg.SpriteWidth-1, 5+cfg.SpriteHeight-1, cfg) {
		t.Error("Bottom-right cell should hit")
	}
	if c.Contains(10+cfg.SpriteWidth, 5, cfg) {
		t.Error("Cell past the right edge should miss")
	}
	if c.Contains(9, 5, cfg) {
		t.Error("Cell left of the sprite should miss")
	}
}

func TestBuildPromptLayout(t *testing.T) {
	def := content.Prompt{
		Text:    "do you still love me?",
		Correct: []string{"always", "of course"},
		Wrong:   "sure",
	}
	rng := rand.New(rand.NewSource(3))

	for range 20 {
		p := buildPrompt(1, rng, def, "Luna")
		if len(p.Choices) != 3 {
			t.Fatalf("Expected 3 choices, got %d", len(p.Choices))
		}
		if p.Choices[p.Wrong] != def.Wrong {
			t.Fatalf("Wrong index points at %q", p.Choices[p.Wrong])
		}
		seen := make(map[string]bool, len(p.Choices))
		for _, choice := range p.Choices {
			seen[choice] = true
		}
		for _, want := range def.Correct {
			if !seen[want] {
				t.Fatalf("Correct reply %q missing from %v", want, p.Choices)
			}
		}
	}
}

func TestPromptSecondsLeft(t *testing.T) {
	p := &Prompt{failDue: 300}

	if got := p.SecondsLeft(0, 60); got != 5.0 {
		t.Errorf("SecondsLeft at tick 0 = %v, expected 5.0", got)
	}
	if got := p.SecondsLeft(270, 60); got != 0.5 {
		t.Errorf("SecondsLeft at tick 270 = %v, expected 0.5", got)
	}
	if got := p.SecondsLeft(300, 60); got != 0 {
		t.Errorf("SecondsLeft at the deadline = %v, expected 0", got)
	}
	if got := p.SecondsLeft(400, 60); got != 0 {
		t.Errorf("SecondsLeft past the deadline = %v, expected 0", got)
	}
}
