// Package config provides YAML-based tuning for the game engine.
// Every gameplay constant lives here rather than in code, so difficulty
// can be rebalanced without a rebuild.
package config

// Config contains all engine tuning parameters.
type Config struct {
	Session    SessionConfig   `yaml:"session"`
	Companions CompanionConfig `yaml:"companions"`
	Prompts    PromptConfig    `yaml:"prompts"`
	Challenges ChallengeConfig `yaml:"challenges"`
}

// SessionConfig defines session-level timing.
type SessionConfig struct {
	IntroSeconds  int `yaml:"intro_seconds"`  // Warning overlay duration before play starts
	InitialRoster int `yaml:"initial_roster"` // Companions active at session start
}

// CompanionConfig defines motion and happiness parameters.
type CompanionConfig struct {
	SpriteWidth  int     `yaml:"sprite_width"`  // Sprite hitbox width in cells
	SpriteHeight int     `yaml:"sprite_height"` // Sprite hitbox height in cells
	MaxSpeed     float64 `yaml:"max_speed"`     // Max velocity per axis, cells per tick
	DecayAmount  int     `yaml:"decay_amount"`  // Happiness lost per decay interval
	ClickBoost   int     `yaml:"click_boost"`   // Happiness gained by a direct click
	DistressedAt int     `yaml:"distressed_at"` // Happiness below which the distressed sprite shows
}

// PromptConfig defines the timed-prompt subsystem parameters.
type PromptConfig struct {
	WindowMS   int `yaml:"window_ms"`    // Time to answer before auto-fail
	MinDelayMS int `yaml:"min_delay_ms"` // Minimum inter-arrival delay
	MaxDelayMS int `yaml:"max_delay_ms"` // Maximum inter-arrival delay (exclusive)
	ReplyBoost int `yaml:"reply_boost"`  // Roster-wide boost for a correct reply
}

// ChallengeConfig defines minigame triggering and variant parameters.
type ChallengeConfig struct {
	MilestoneSeconds   int `yaml:"milestone_seconds"`     // Survival multiple that triggers a challenge
	SuccessBoost       int `yaml:"success_boost"`         // Roster-wide boost on challenge success
	MashWindowSeconds  int `yaml:"mash_window_seconds"`   // Click-count challenge duration
	MashBaseClicks     int `yaml:"mash_base_clicks"`      // Clicks required at difficulty 0
	MashClicksPerLevel int `yaml:"mash_clicks_per_level"` // Extra clicks per difficulty level
	GiftWindowSeconds  int `yaml:"gift_window_seconds"`   // Pick-the-gift challenge duration
	GiftBaseDecoys     int `yaml:"gift_base_decoys"`      // Decoy items at difficulty 0
}
