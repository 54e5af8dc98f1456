package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SearchSettings holds tunables for the Edamam search call.
type SearchSettings struct {
	Endpoint   string `yaml:"endpoint"`
	MaxResults int    `yaml:"max_results"`
}

// ImageSettings holds tunables for image downloading and caching.
type ImageSettings struct {
	BaseName    string `yaml:"base_name"`
	Placeholder string `yaml:"placeholder"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// Settings is the top-level file-based configuration loaded from YAML.
type Settings struct {
	Search             SearchSettings `yaml:"search"`
	Images             ImageSettings  `yaml:"images"`
	DefaultIngredients []string       `yaml:"default_ingredients"`
}

// LoadSettings reads and parses a YAML settings file, filling in defaults
// for any value left unset.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	settings.applyDefaults()

	return &settings, nil
}

// DefaultSettings returns the settings used when no settings file is present.
func DefaultSettings() *Settings {
	var settings Settings
	settings.applyDefaults()
	return &settings
}

func (s *Settings) applyDefaults() {
	if s.Search.Endpoint == "" {
		s.Search.Endpoint = "https://api.edamam.com/search"
	}
	if s.Search.MaxResults <= 0 {
		s.Search.MaxResults = 3
	}
	if s.Images.BaseName == "" {
		s.Images.BaseName = "img"
	}
	if s.Images.Placeholder == "" {
		s.Images.Placeholder = "default_img.jpg"
	}
	if s.Images.MaxAttempts <= 0 {
		s.Images.MaxAttempts = 10000
	}
	if len(s.DefaultIngredients) == 0 {
		s.DefaultIngredients = []string{"apples", "butter", "cinnamon"}
	}
}
