package config

import (
	_ "embed"
)

//go:embed defaults/cling.yaml
var defaultYAML []byte

// Default returns the default engine tuning.
// These match the embedded defaults/cling.yaml and act as a fallback
// if the embedded file fails to parse.
func Default() Config {
	return Config{
		Session: SessionConfig{
			IntroSeconds:  5,
			InitialRoster: 2,
		},
		Companions: CompanionConfig{
			SpriteWidth:  9,
			SpriteHeight: 4,
			MaxSpeed:     0.35,
			DecayAmount:  8,
			ClickBoost:   20,
			DistressedAt: 50,
		},
		Prompts: PromptConfig{
			WindowMS:   5000,
			MinDelayMS: 7500,
			MaxDelayMS: 22500,
			ReplyBoost: 10,
		},
		Challenges: ChallengeConfig{
			MilestoneSeconds:   30,
			SuccessBoost:       20,
			MashWindowSeconds:  5,
			MashBaseClicks:     3,
			MashClicksPerLevel: 2,
			GiftWindowSeconds:  10,
			GiftBaseDecoys:     5,
		},
	}
}
