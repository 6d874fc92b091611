package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLibraryValid(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if len(lib.Companions) != 5 {
		t.Errorf("Expected 5 companions, got %d", len(lib.Companions))
	}
	if len(lib.Prompts) == 0 {
		t.Error("Default library has no prompts")
	}

	for _, c := range lib.Companions {
		if len(c.Content) != len(c.Distressed) {
			t.Errorf("Companion %q sprites differ in height: %d vs %d",
				c.Name, len(c.Content), len(c.Distressed))
		}
	}
}

func TestValidateRejectsBrokenLibraries(t *testing.T) {
	sprite := []string{"x"}
	base := func() Library {
		return Library{
			Companions: []Companion{{ID: 1, Name: "A", Content: sprite, Distressed: sprite}},
			Prompts:    []Prompt{{Text: "hi", Correct: []string{"yes"}, Wrong: "no"}},
			Gifts:      GiftTable{Good: []string{"g"}, Bad: []string{"b"}},
		}
	}

	tests := []struct {
		name  string
		wreck func(*Library)
	}{
		{"no companions", func(l *Library) { l.Companions = nil }},
		{"unnamed companion", func(l *Library) { l.Companions[0].Name = "" }},
		{"duplicate ids", func(l *Library) {
			l.Companions = append(l.Companions, Companion{ID: 1, Name: "B", Content: sprite, Distressed: sprite})
		}},
		{"missing sprite", func(l *Library) { l.Companions[0].Distressed = nil }},
		{"no prompts", func(l *Library) { l.Prompts = nil }},
		{"prompt without correct reply", func(l *Library) { l.Prompts[0].Correct = nil }},
		{"prompt without wrong reply", func(l *Library) { l.Prompts[0].Wrong = "" }},
		{"empty gift table", func(l *Library) { l.Gifts.Good = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lib := base()
			tc.wreck(&lib)
			if err := lib.Validate(); err == nil {
				t.Error("Validate() should have failed")
			}
		})
	}

	valid := base()
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() failed on a valid library: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")

	custom := `
companions:
  - id: 7
    name: Wren
    content: ["(o_o)"]
    distressed: ["(;_;)"]
prompts:
  - text: "hey"
    correct: ["hey!"]
    wrong: "go away"
gifts:
  good: ["tea"]
  bad: ["decaf"]
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	lib, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got := lib.CompanionByID(7); got == nil || got.Name != "Wren" {
		t.Errorf("CompanionByID(7) = %+v, expected Wren", got)
	}
	if lib.CompanionByID(99) != nil {
		t.Error("CompanionByID(99) should be nil")
	}
}

func TestLoadRejectsInvalidCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")

	if err := os.WriteFile(path, []byte("companions: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an empty roster")
	}
}
