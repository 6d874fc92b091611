package engine

import (
	"math"
	"math/rand"

	"github.com/astelice/cling/internal/config"
	"github.com/astelice/cling/internal/content"
	"github.com/astelice/cling/internal/core"
)

// Companion is one active entity on the play field.
// Position and velocity are in fractional cells so slow drift survives
// integer rendering; happiness drives both the sprite and the speed.
type Companion struct {
	Def       content.Companion
	Pos       core.Vec
	Vel       core.Vec
	Happiness int
}

// minSpeedFrac keeps a re-rolled velocity component away from zero so a
// companion never gets stuck sliding along one wall.
const minSpeedFrac = 0.3

func randSpeed(rng *rand.Rand, maxSpeed float64) float64 {
	return maxSpeed * (minSpeedFrac + (1-minSpeedFrac)*rng.Float64())
}

func randSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// spawnCompanion places a new companion at a random position inside the
// play area with full happiness and a random drift.
func spawnCompanion(rng *rand.Rand, def content.Companion, area core.Rect, cfg config.CompanionConfig) *Companion {
	spanX := max(area.W-cfg.SpriteWidth, 1)
	spanY := max(area.H-cfg.SpriteHeight, 1)
	return &Companion{
		Def: def,
		Pos: core.Vec{
			X: float64(area.X + rng.Intn(spanX)),
			Y: float64(area.Y + rng.Intn(spanY)),
		},
		Vel: core.Vec{
			X: randSign(rng) * randSpeed(rng, cfg.MaxSpeed),
			Y: randSign(rng) * randSpeed(rng, cfg.MaxSpeed),
		},
		Happiness: 100,
	}
}

// speedMultiplier grows as happiness drops: a content companion drifts at
// base speed, a miserable one darts at double.
func (c *Companion) speedMultiplier() float64 {
	return 1 + float64(100-c.Happiness)/100
}

// Move advances the companion one tick and keeps it inside the play area.
// A companion touching an edge is clamped onto it and gets a fresh inward
// velocity component, so it can never sit outside bounds on two
// consecutive ticks.
func (c *Companion) Move(rng *rand.Rand, area core.Rect, cfg config.CompanionConfig) {
	c.Pos = c.Pos.Add(c.Vel.Scale(c.speedMultiplier()))

	minX := float64(area.X)
	minY := float64(area.Y)
	maxX := float64(max(area.Right()-cfg.SpriteWidth, area.X))
	maxY := float64(max(area.Bottom()-cfg.SpriteHeight, area.Y))

	if c.Pos.X <= minX {
		c.Pos.X = minX
		c.Vel.X = randSpeed(rng, cfg.MaxSpeed)
	} else if c.Pos.X >= maxX {
		c.Pos.X = maxX
		c.Vel.X = -randSpeed(rng, cfg.MaxSpeed)
	}
	if c.Pos.Y <= minY {
		c.Pos.Y = minY
		c.Vel.Y = randSpeed(rng, cfg.MaxSpeed)
	} else if c.Pos.Y >= maxY {
		c.Pos.Y = maxY
		c.Vel.Y = -randSpeed(rng, cfg.MaxSpeed)
	}
}

// Boost raises happiness, clamped to 100.
func (c *Companion) Boost(amount int) {
	c.Happiness = core.Clamp(c.Happiness+amount, 0, 100)
}

// Decay lowers happiness, clamped to 0.
func (c *Companion) Decay(amount int) {
	c.Happiness = core.Clamp(c.Happiness-amount, 0, 100)
}

// Depleted reports whether happiness has hit zero.
func (c *Companion) Depleted() bool {
	return c.Happiness <= 0
}

// Distressed reports whether the distressed sprite should show.
func (c *Companion) Distressed(cfg config.CompanionConfig) bool {
	return c.Happiness < cfg.DistressedAt
}

// Sprite returns the lines to draw for the current happiness.
func (c *Companion) Sprite(cfg config.CompanionConfig) []string {
	if c.Distressed(cfg) {
		return c.Def.Distressed
	}
	return c.Def.Content
}

// Bounds returns the integer hitbox at the current position.
func (c *Companion) Bounds(cfg config.CompanionConfig) core.Rect {
	return core.NewRect(
		int(math.Round(c.Pos.X)),
		int(math.Round(c.Pos.Y)),
		cfg.SpriteWidth,
		cfg.SpriteHeight,
	)
}

// Contains reports whether a click at (x, y) lands on the companion.
func (c *Companion) Contains(x, y int, cfg config.CompanionConfig) bool {
	return c.Bounds(cfg).Contains(x, y)
}
