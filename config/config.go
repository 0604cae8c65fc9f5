// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

// Package config loads demo and host-application settings from YAML.
package config

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"
)

// Window holds the main window settings.
type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Decorated *bool  `yaml:"decorated"` // nil means true
}

// Config is the full application configuration.
type Config struct {
	// Backend forces a windowing backend by registry name. Empty means
	// automatic selection by priority and availability.
	Backend string `yaml:"backend"`

	// Display is the X11 display string, empty for $DISPLAY.
	Display string `yaml:"display"`

	Window Window `yaml:"window"`

	// ClearColor is the frame clear color as "#rrggbb" or "#rrggbbaa".
	ClearColor string `yaml:"clear_color"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "viewports",
			Width:  1280,
			Height: 720,
		},
		ClearColor: "#1a334d",
		LogLevel:   "info",
	}
}

// Load reads the configuration at path. A missing file is not an
// error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values. Zero window dimensions are filled from
// defaults rather than rejected.
func (c *Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("negative window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Width == 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height == 0 {
		c.Window.Height = 720
	}
	if c.ClearColor != "" {
		if _, err := ParseColor(c.ClearColor); err != nil {
			return err
		}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// WindowSize returns the configured window client size.
func (c *Config) WindowSize() image.Point {
	return image.Point{X: c.Window.Width, Y: c.Window.Height}
}

// Decorated reports the effective window decoration flag.
func (c *Config) Decorated() bool {
	return c.Window.Decorated == nil || *c.Window.Decorated
}

// Clear returns the configured clear color.
func (c *Config) Clear() gputypes.Color {
	col, err := ParseColor(c.ClearColor)
	if err != nil {
		return gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}
	}
	return col
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (leading '#' optional).
func ParseColor(s string) (gputypes.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return gputypes.Color{}, fmt.Errorf("config: color %q: want rrggbb or rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return gputypes.Color{}, fmt.Errorf("config: color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return gputypes.Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
