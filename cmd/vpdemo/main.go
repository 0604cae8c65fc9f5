// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

// vpdemo exercises the deferred viewport pipeline: it binds a main
// window, spawns tool windows through the proxy, drains the command
// queue, and draws every viewport with the software device. Run with
// -backend x11 to place real windows.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/qthree/viewports"
	"github.com/qthree/viewports/backend"
	"github.com/qthree/viewports/backend/headless"
	_ "github.com/qthree/viewports/backend/x11"
	"github.com/qthree/viewports/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vpdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "path to YAML config")
		backendName = flag.String("backend", "", "windowing backend (overrides config)")
		frames      = flag.Int("frames", 8, "number of frames to simulate")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}
	if *backendName != "" {
		cfg.Backend = *backendName
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	viewports.SetLogger(logger)

	platform, err := openPlatform(cfg)
	if err != nil {
		return err
	}
	defer platform.Close()

	device := headless.NewDevice()
	manager := viewports.NewManager(platform, device, viewports.WithClearColor(cfg.Clear()))
	proxy := viewports.NewProxy()

	mainID, err := manager.AddWindow(cfg.Decorated())
	if err != nil {
		return fmt.Errorf("create main window: %w", err)
	}
	if vp, ok := manager.Viewport(mainID); ok {
		vp.Window().SetTitle(cfg.Window.Title)
		vp.Window().SetInnerSize(cfg.WindowSize())
		vp.Window().SetVisible(true)
	}
	mainKey := proxy.BindMainWindow(mainID)

	// Spawn two tool windows the way a UI layout pass would: queue the
	// commands now, let Drain realize them.
	left := proxy.CreateWindow(true)
	proxy.SetTitle(left, "tools")
	proxy.SetPosition(left, viewports.Vec2{X: 40, Y: 40})
	proxy.SetSize(left, viewports.Vec2{X: 320, Y: 480})
	proxy.ShowWindow(left)

	right := proxy.CreateWindow(false)
	proxy.SetTitle(right, "palette")
	proxy.SetPosition(right, viewports.Vec2{X: 400, Y: 40})
	proxy.SetSize(right, viewports.Vec2{X: 240, Y: 360})
	proxy.ShowWindow(right)

	renderer := headless.Renderer{}
	for frame := 0; frame < *frames; frame++ {
		if err := proxy.Drain(manager); err != nil {
			return fmt.Errorf("drain frame %d: %w", frame, err)
		}

		manager.RequestRedraws()
		for id, vp := range manager.NeedingRedraw() {
			err := vp.Draw(device, renderer, nil)
			switch {
			case errors.Is(err, viewports.ErrFrameSkipped):
				logger.Debug("frame skipped", slog.Uint64("window", uint64(id)))
			case err != nil:
				return fmt.Errorf("draw window %d: %w", id, err)
			}
		}

		// Halfway through, tear one tool window down and nudge the other.
		if frame == *frames/2 {
			proxy.DestroyWindow(right)
			proxy.SetSize(left, viewports.Vec2{X: 360, Y: 520})
		}
	}

	if pos, err := proxy.GetPosition(mainKey); err == nil {
		logger.Info("main window", slog.Float64("x", float64(pos.X)), slog.Float64("y", float64(pos.Y)))
	}
	logger.Info("done",
		slog.Int("windows", manager.Len()),
		slog.Uint64("generation", proxy.Generation()),
		slog.Int("frames", *frames))
	return nil
}

func openPlatform(cfg *config.Config) (viewports.Platform, error) {
	opts := backend.Options{Display: cfg.Display}
	if cfg.Backend != "" {
		return backend.OpenByName(cfg.Backend, opts)
	}
	return backend.Open(opts)
}
