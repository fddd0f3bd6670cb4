package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds the values that may be overridden from a YAML file.
// Keys missing from the file keep the compiled defaults.
type Settings struct {
	Seed          int64         `yaml:"seed"`
	StartOnMenu   bool          `yaml:"start_on_menu"`
	DatabasePath  string        `yaml:"database_path"`
	SoundDir      string        `yaml:"sound_dir"`
	BombDropDelay time.Duration `yaml:"bomb_drop_delay"`
	PauseDelay    time.Duration `yaml:"pause_delay"`
	Volume        float64       `yaml:"volume"`
	Muted         bool          `yaml:"muted"`
}

// DefaultSettings returns the compiled defaults.
func DefaultSettings() Settings {
	return Settings{
		DatabasePath:  "data/highscores.db",
		SoundDir:      "assets/sfx",
		BombDropDelay: time.Duration(BombDropDelay * float64(time.Second)),
		PauseDelay:    time.Duration(GamePauseDelay * float64(time.Second)),
		Volume:        0.6,
	}
}

// LoadSettings reads path over the defaults. An empty path returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	// Decoding over the defaults keeps missing keys and applies explicit zeroes.
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// Validate reports the first out-of-range value.
func (s Settings) Validate() error {
	if s.BombDropDelay <= 0 {
		return errors.New("bomb_drop_delay must be positive")
	}
	if s.PauseDelay <= 0 {
		return errors.New("pause_delay must be positive")
	}
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("volume %.2f out of range [0, 1]", s.Volume)
	}
	return nil
}
