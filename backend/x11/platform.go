// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

package x11

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/qthree/viewports"
)

// Platform is an X11 windowing layer over one server connection.
type Platform struct {
	conn *connection
}

var _ viewports.Platform = (*Platform)(nil)

// Open connects to the X server named by display ("" means $DISPLAY).
func Open(display string) (*Platform, error) {
	conn, err := connect(display)
	if err != nil {
		return nil, err
	}
	return &Platform{conn: conn}, nil
}

// CreateWindow implements [viewports.Platform]. The window is created
// unmapped; callers map it through [viewports.NativeWindow.SetVisible].
func (p *Platform) CreateWindow(opts viewports.WindowOptions) (viewports.NativeWindow, error) {
	win, err := xwindow.Generate(p.conn.xu)
	if err != nil {
		return nil, fmt.Errorf("x11: generate window id: %w", err)
	}

	size := opts.Size
	if size.X <= 0 || size.Y <= 0 {
		size = image.Point{X: 800, Y: 600}
	}
	err = win.CreateChecked(p.conn.root, opts.Position.X, opts.Position.Y,
		size.X, size.Y, xproto.CwBackPixel, 0x000000)
	if err != nil {
		return nil, fmt.Errorf("x11: create window: %w", err)
	}

	if opts.Title != "" {
		if err := ewmh.WmNameSet(p.conn.xu, win.Id, opts.Title); err != nil {
			viewports.Logger().Debug("x11: set initial title failed",
				slog.Uint64("window", uint64(win.Id)), slog.Any("error", err))
		}
	}
	if !opts.Decorated {
		hints := &motif.Hints{
			Flags:      motif.HintDecorations,
			Decoration: motif.DecorationNone,
		}
		if err := motif.WmHintsSet(p.conn.xu, win.Id, hints); err != nil {
			viewports.Logger().Debug("x11: set motif hints failed",
				slog.Uint64("window", uint64(win.Id)), slog.Any("error", err))
		}
	}

	return &Window{conn: p.conn, win: win}, nil
}

// Monitors implements [viewports.Platform].
func (p *Platform) Monitors() ([]viewports.Monitor, error) {
	return p.conn.monitors()
}

// Close implements [viewports.Platform]. Windows still open become
// invalid once the connection drops.
func (p *Platform) Close() error {
	p.conn.close()
	return nil
}

// Window is one X11 window.
type Window struct {
	conn *connection
	win  *xwindow.Window
}

var _ viewports.NativeWindow = (*Window)(nil)

// ID implements [viewports.NativeWindow].
func (w *Window) ID() viewports.WindowID { return viewports.WindowID(w.win.Id) }

// SetVisible implements [viewports.NativeWindow].
func (w *Window) SetVisible(visible bool) {
	if visible {
		w.win.Map()
	} else {
		w.win.Unmap()
	}
}

// OuterPosition implements [viewports.NativeWindow]. The position
// includes WM decorations when frame geometry is available.
func (w *Window) OuterPosition() (image.Point, error) {
	geom, err := w.win.DecorGeometry()
	if err != nil {
		return image.Point{}, fmt.Errorf("x11: decor geometry of %d: %w", w.win.Id, err)
	}
	return image.Point{X: geom.X(), Y: geom.Y()}, nil
}

// SetOuterPosition implements [viewports.NativeWindow]. Uses the EWMH
// moveresize request for WM compatibility, falling back to a direct
// configure when the WM ignores it.
func (w *Window) SetOuterPosition(pos image.Point) {
	geom, err := w.win.Geometry()
	if err != nil {
		w.win.Move(pos.X, pos.Y)
		return
	}
	if err := ewmh.MoveresizeWindow(w.conn.xu, w.win.Id, pos.X, pos.Y, geom.Width(), geom.Height()); err != nil {
		w.win.Move(pos.X, pos.Y)
	}
}

// InnerSize implements [viewports.NativeWindow].
func (w *Window) InnerSize() (image.Point, error) {
	geom, err := w.win.Geometry()
	if err != nil {
		return image.Point{}, fmt.Errorf("x11: geometry of %d: %w", w.win.Id, err)
	}
	return image.Point{X: geom.Width(), Y: geom.Height()}, nil
}

// SetInnerSize implements [viewports.NativeWindow].
func (w *Window) SetInnerSize(size image.Point) {
	w.win.Resize(size.X, size.Y)
}

// SetTitle implements [viewports.NativeWindow].
func (w *Window) SetTitle(title string) {
	if err := ewmh.WmNameSet(w.conn.xu, w.win.Id, title); err != nil {
		viewports.Logger().Debug("x11: set title failed",
			slog.Uint64("window", uint64(w.win.Id)), slog.Any("error", err))
	}
}

// Focus implements [viewports.NativeWindow].
func (w *Window) Focus() {
	if err := w.conn.activateWindow(w.win.Id); err != nil {
		viewports.Logger().Debug("x11: activate failed",
			slog.Uint64("window", uint64(w.win.Id)), slog.Any("error", err))
	}
}

// Destroy implements [viewports.NativeWindow].
func (w *Window) Destroy() {
	w.win.Destroy()
}
