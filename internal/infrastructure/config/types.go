package config

import (
	"fmt"

	"github.com/younwookim/hanoi/internal/domain/entity"
)

// GameConfig holds all loaded configuration
type GameConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Assets   AssetsConfig   `yaml:"assets"`
	Log      LogConfig      `yaml:"log"`
	Debug    DebugConfig    `yaml:"debug"`
	Settings SettingsConfig `yaml:"settings"`
}

// WindowConfig defines window and frame timing settings
type WindowConfig struct {
	Title string `yaml:"title"`
	TPS   int    `yaml:"tps"`
}

// AssetsConfig locates the image directory
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig defines logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// DebugConfig toggles developer aids
type DebugConfig struct {
	Overlay bool `yaml:"overlay"`
}

// SettingsConfig is the applied settings the menu starts with
type SettingsConfig struct {
	Theme      string `yaml:"theme"`
	Resolution string `yaml:"resolution"`
	Difficulty int    `yaml:"difficulty"`
}

// InitialSettings converts the settings section into validated domain settings
func (c *GameConfig) InitialSettings() (entity.Settings, error) {
	theme, err := entity.ParseTheme(c.Settings.Theme)
	if err != nil {
		return entity.Settings{}, err
	}
	res, err := entity.ParseResolution(c.Settings.Resolution)
	if err != nil {
		return entity.Settings{}, err
	}
	s := entity.Settings{Theme: theme, Resolution: res, Difficulty: c.Settings.Difficulty}
	if err := s.Validate(); err != nil {
		return entity.Settings{}, err
	}
	return s, nil
}

// Validate checks every section
func (c *GameConfig) Validate() error {
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Assets.Dir == "" {
		return fmt.Errorf("assets.dir must be set")
	}
	if _, err := c.InitialSettings(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}
