// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

// Package headless provides an in-memory windowing backend.
//
// Windows are plain geometry bookkeeping with no OS resources behind
// them, which makes the backend fully deterministic: it drives the
// package tests, CI, and the demo binary. It registers itself as
// "headless" at low priority so real backends win automatic selection.
package headless

import (
	"errors"
	"fmt"
	"image"

	"github.com/qthree/viewports"
	"github.com/qthree/viewports/backend"
)

// Name is the registry identifier of this backend.
const Name = "headless"

func init() {
	backend.Register(Name, 10, func(backend.Options) (viewports.Platform, error) {
		return New(), nil
	}, nil)
}

// Default geometry for windows created without an explicit size.
const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// ErrPlatformClosed is returned when creating windows on a closed
// platform.
var ErrPlatformClosed = errors.New("headless: platform closed")

// Platform is an in-memory windowing layer. The zero value is not
// usable; call [New].
type Platform struct {
	nextID   viewports.WindowID
	windows  map[viewports.WindowID]*Window
	monitors []viewports.Monitor
	focused  viewports.WindowID
	closed   bool
}

// Option configures the platform.
type Option func(*Platform)

// WithMonitors replaces the default single synthetic monitor.
func WithMonitors(monitors ...viewports.Monitor) Option {
	return func(p *Platform) {
		p.monitors = monitors
	}
}

// New returns an empty platform with one synthetic 1920x1080 monitor at
// the origin.
func New(opts ...Option) *Platform {
	p := &Platform{
		nextID:  1,
		windows: make(map[viewports.WindowID]*Window),
		monitors: []viewports.Monitor{{
			Size:     viewports.Vec2{X: 1920, Y: 1080},
			WorkSize: viewports.Vec2{X: 1920, Y: 1080},
			DPIScale: 1,
		}},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CreateWindow implements [viewports.Platform].
func (p *Platform) CreateWindow(opts viewports.WindowOptions) (viewports.NativeWindow, error) {
	if p.closed {
		return nil, ErrPlatformClosed
	}
	size := opts.Size
	if size.X <= 0 || size.Y <= 0 {
		size = image.Point{X: defaultWidth, Y: defaultHeight}
	}
	w := &Window{
		platform:  p,
		id:        p.nextID,
		pos:       opts.Position,
		size:      size,
		title:     opts.Title,
		decorated: opts.Decorated,
	}
	p.nextID++
	p.windows[w.id] = w
	return w, nil
}

// Monitors implements [viewports.Platform].
func (p *Platform) Monitors() ([]viewports.Monitor, error) {
	if p.closed {
		return nil, ErrPlatformClosed
	}
	out := make([]viewports.Monitor, len(p.monitors))
	copy(out, p.monitors)
	return out, nil
}

// Close implements [viewports.Platform].
func (p *Platform) Close() error {
	p.closed = true
	return nil
}

// Window looks up a live window. Test helper.
func (p *Platform) Window(id viewports.WindowID) (*Window, bool) {
	w, ok := p.windows[id]
	return w, ok
}

// Len returns the number of live windows. Test helper.
func (p *Platform) Len() int { return len(p.windows) }

// Focused returns the id of the window that last requested focus, or
// zero. Test helper.
func (p *Platform) Focused() viewports.WindowID { return p.focused }

// Window is one in-memory window.
type Window struct {
	platform  *Platform
	id        viewports.WindowID
	pos       image.Point
	size      image.Point
	title     string
	decorated bool
	visible   bool
	destroyed bool
}

var _ viewports.NativeWindow = (*Window)(nil)

// ID implements [viewports.NativeWindow].
func (w *Window) ID() viewports.WindowID { return w.id }

// SetVisible implements [viewports.NativeWindow].
func (w *Window) SetVisible(visible bool) { w.visible = visible }

// OuterPosition implements [viewports.NativeWindow].
func (w *Window) OuterPosition() (image.Point, error) {
	if w.destroyed {
		return image.Point{}, fmt.Errorf("headless: window %d destroyed", w.id)
	}
	return w.pos, nil
}

// SetOuterPosition implements [viewports.NativeWindow].
func (w *Window) SetOuterPosition(pos image.Point) { w.pos = pos }

// InnerSize implements [viewports.NativeWindow].
func (w *Window) InnerSize() (image.Point, error) {
	if w.destroyed {
		return image.Point{}, fmt.Errorf("headless: window %d destroyed", w.id)
	}
	return w.size, nil
}

// SetInnerSize implements [viewports.NativeWindow].
func (w *Window) SetInnerSize(size image.Point) { w.size = size }

// SetTitle implements [viewports.NativeWindow].
func (w *Window) SetTitle(title string) { w.title = title }

// Focus implements [viewports.NativeWindow].
func (w *Window) Focus() { w.platform.focused = w.id }

// Destroy implements [viewports.NativeWindow].
func (w *Window) Destroy() {
	w.destroyed = true
	delete(w.platform.windows, w.id)
}

// Accessors for tests.

// Title returns the current title.
func (w *Window) Title() string { return w.title }

// Visible reports whether the window is mapped.
func (w *Window) Visible() bool { return w.visible }

// Decorated reports whether OS decorations were requested.
func (w *Window) Decorated() bool { return w.decorated }

// Destroyed reports whether Destroy was called.
func (w *Window) Destroyed() bool { return w.destroyed }
