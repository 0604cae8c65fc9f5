// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
			t.Fatalf("window = %dx%d", cfg.Window.Width, cfg.Window.Height)
		}
		if !cfg.Decorated() {
			t.Fatal("default not decorated")
		}
		if cfg.LogLevel != "info" {
			t.Fatalf("log level = %q", cfg.LogLevel)
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
backend: headless
window:
  title: editor
  width: 1600
  height: 900
  decorated: false
clear_color: "#000000"
log_level: debug
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Backend != "headless" {
			t.Fatalf("backend = %q", cfg.Backend)
		}
		if cfg.Window.Title != "editor" {
			t.Fatalf("title = %q", cfg.Window.Title)
		}
		if cfg.WindowSize().X != 1600 || cfg.WindowSize().Y != 900 {
			t.Fatalf("size = %v", cfg.WindowSize())
		}
		if cfg.Decorated() {
			t.Fatal("decorated = true, want false")
		}
	})

	t.Run("partial file keeps unset defaults", func(t *testing.T) {
		path := writeConfig(t, "window:\n  title: partial\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Window.Title != "partial" {
			t.Fatalf("title = %q", cfg.Window.Title)
		}
		if cfg.Window.Width != 1280 {
			t.Fatalf("width = %d, want default", cfg.Window.Width)
		}
	})

	t.Run("bad yaml rejected", func(t *testing.T) {
		path := writeConfig(t, "window: [not a map\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("bad values rejected", func(t *testing.T) {
		for name, content := range map[string]string{
			"negative size": "window:\n  width: -5\n",
			"bad color":     "clear_color: notacolor\n",
			"bad level":     "log_level: shout\n",
		} {
			path := writeConfig(t, content)
			if _, err := Load(path); err == nil {
				t.Errorf("%s accepted", name)
			}
		}
	})
}

func TestParseColor(t *testing.T) {
	approx := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	c, err := ParseColor("#ff8000")
	if err != nil {
		t.Fatal(err)
	}
	if !approx(c.R, 1) || !approx(c.G, 128.0/255) || !approx(c.B, 0) || !approx(c.A, 1) {
		t.Fatalf("color = %+v", c)
	}

	c, err = ParseColor("00000080")
	if err != nil {
		t.Fatal(err)
	}
	if !approx(c.A, 128.0/255) {
		t.Fatalf("alpha = %v", c.A)
	}

	for _, bad := range []string{"", "#fff", "zzzzzz", "#12345"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) accepted", bad)
		}
	}
}

func TestLevel(t *testing.T) {
	cfg := Default()
	for in, want := range map[string]string{
		"debug": "DEBUG",
		"":      "INFO",
		"warn":  "WARN",
		"error": "ERROR",
	} {
		cfg.LogLevel = in
		if got := cfg.Level().String(); got != want {
			t.Errorf("Level(%q) = %s, want %s", in, got, want)
		}
	}
}
