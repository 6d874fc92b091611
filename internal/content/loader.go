package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/content.yaml
var defaultYAML []byte

// Load loads the content library.
// Search order: customPath -> ~/.cling/configs/content.yaml -> ./configs/content.yaml -> embedded default
// The returned library is always validated.
func Load(customPath string) (*Library, error) {
	if customPath != "" {
		lib, err := loadFile(customPath)
		if err != nil {
			return nil, err
		}
		return lib, nil
	}

	if userPath := userContentPath(); userPath != "" {
		if lib, err := loadFile(userPath); err == nil {
			return lib, nil
		}
	}

	if lib, err := loadFile(filepath.Join("configs", "content.yaml")); err == nil {
		return lib, nil
	}

	return Default()
}

// Default returns the embedded content library.
func Default() (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(defaultYAML, &lib); err != nil {
		return nil, fmt.Errorf("content: embedded library is broken: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

func loadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: cannot read %s: %w", path, err)
	}
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("content: cannot parse %s: %w", path, err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// userContentPath returns the user content file path, or empty if home is unavailable.
func userContentPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cling", "configs", "content.yaml")
}
