// Package config loads the game settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"activemessage/pkg/game/activemessage"
)

// Config holds the settings read from settings.yaml
type Config struct {
	Locale     string `yaml:"locale"`     // e.g. "en_GB"
	LocaleDir  string `yaml:"localeDir"`  // catalog root, default "locales"
	Renderer   string `yaml:"renderer"`   // "ebiten" or "tui"
	TileSize   int    `yaml:"tileSize"`   // pixels per tile in the window renderer
	FrameRate  int    `yaml:"frameRate"`  // TUI frames per second
	ScreenCols int    `yaml:"screenCols"` // window width in tiles
	ScreenRows int    `yaml:"screenRows"` // window height in tiles

	Messages activemessage.Settings `yaml:"messages"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Locale:     "en_GB",
		LocaleDir:  "locales",
		Renderer:   "ebiten",
		TileSize:   48,
		FrameRate:  60,
		ScreenCols: 17,
		ScreenRows: 13,
		Messages:   activemessage.DefaultSettings(),
	}
}

// Load reads settings from path on top of the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Renderer != "ebiten" && c.Renderer != "tui" {
		return fmt.Errorf("renderer must be ebiten or tui, got %q", c.Renderer)
	}
	if c.TileSize < 8 {
		return fmt.Errorf("tileSize must be at least 8, got %d", c.TileSize)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frameRate must be positive, got %d", c.FrameRate)
	}
	if c.ScreenCols <= 0 || c.ScreenRows <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenCols, c.ScreenRows)
	}
	if c.Messages.Threshold < 0 {
		return fmt.Errorf("messages.threshold cannot be negative")
	}
	l := c.Messages.Layout
	if l.MinWidth < 0 || l.Padding < 0 || l.Header < 0 || l.LineHeight < 0 || l.Margin < 0 {
		return fmt.Errorf("messages.layout values cannot be negative")
	}
	return nil
}
