// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/qthree/viewports"
)

// Presenter delivers a finished frame to the window. Implementations
// typically blit or read back the texture view into an OS surface.
type Presenter interface {
	Present(win viewports.NativeWindow, view hal.TextureView, width, height uint32) error
}

// Option configures a [Device].
type Option func(*Device)

// WithFormat overrides the swap target color format. The default is
// BGRA8Unorm.
func WithFormat(format gputypes.TextureFormat) Option {
	return func(d *Device) { d.format = format }
}

// WithPresenter installs the presenter invoked by Frame.Present.
func WithPresenter(p Presenter) Option {
	return func(d *Device) { d.presenter = p }
}
