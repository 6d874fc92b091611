// Package content supplies the game's data tables: the companion roster
// (names and terminal sprites) and the prompt table (prompt text with its
// correct and wrong replies). The engine consumes any non-empty library,
// so servers can ship their own content without touching engine code.
package content

import (
	"fmt"
)

// Companion is one roster template.
// Sprite lines are drawn verbatim; Content shows while happiness is at or
// above the configured distress threshold, Distressed below it.
type Companion struct {
	ID         int      `yaml:"id"`
	Name       string   `yaml:"name"`
	Content    []string `yaml:"content"`
	Distressed []string `yaml:"distressed"`
}

// Prompt is one entry of the prompt table: the text a companion sends,
// the replies that keep her happy, and the one that ends the run.
type Prompt struct {
	Text    string   `yaml:"text"`
	Correct []string `yaml:"correct"`
	Wrong   string   `yaml:"wrong"`
}

// GiftTable holds the items for the pick-the-gift challenge.
type GiftTable struct {
	Good []string `yaml:"good"`
	Bad  []string `yaml:"bad"`
}

// Library is the full content set for one game.
type Library struct {
	Companions []Companion `yaml:"companions"`
	Prompts    []Prompt    `yaml:"prompts"`
	Gifts      GiftTable   `yaml:"gifts"`
}

// Validate checks that the library is usable by the engine.
// Errors name the offending entry so content authors can fix their files.
func (l *Library) Validate() error {
	if len(l.Companions) == 0 {
		return fmt.Errorf("content: no companions defined")
	}
	seen := make(map[int]bool, len(l.Companions))
	for _, c := range l.Companions {
		if c.Name == "" {
			return fmt.Errorf("content: companion %d has no name", c.ID)
		}
		if seen[c.ID] {
			return fmt.Errorf("content: duplicate companion id %d (%s)", c.ID, c.Name)
		}
		seen[c.ID] = true
		if len(c.Content) == 0 || len(c.Distressed) == 0 {
			return fmt.Errorf("content: companion %q is missing a sprite", c.Name)
		}
	}

	if len(l.Prompts) == 0 {
		return fmt.Errorf("content: no prompts defined")
	}
	for _, p := range l.Prompts {
		if p.Text == "" {
			return fmt.Errorf("content: prompt with empty text")
		}
		if len(p.Correct) == 0 {
			return fmt.Errorf("content: prompt %q has no correct replies", p.Text)
		}
		if p.Wrong == "" {
			return fmt.Errorf("content: prompt %q has no wrong reply", p.Text)
		}
	}

	if len(l.Gifts.Good) == 0 || len(l.Gifts.Bad) == 0 {
		return fmt.Errorf("content: gift table needs both good and bad items")
	}

	return nil
}

// CompanionByID returns the template with the given id, or nil.
func (l *Library) CompanionByID(id int) *Companion {
	for i := range l.Companions {
		if l.Companions[i].ID == id {
			return &l.Companions[i]
		}
	}
	return nil
}
