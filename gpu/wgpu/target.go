// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"errors"

	"github.com/gogpu/wgpu/hal"

	"github.com/qthree/viewports"
)

// ErrTargetReleased is returned when acquiring frames from a released
// swap target.
var ErrTargetReleased = errors.New("wgpu: swap target released")

// SwapTarget is a fixed-size HAL color texture a viewport renders into.
type SwapTarget struct {
	device  *Device
	surface *Surface
	tex     hal.Texture
	view    hal.TextureView
	width   uint32
	height  uint32

	released bool
}

var _ viewports.SwapTarget = (*SwapTarget)(nil)

// Acquire implements [viewports.SwapTarget].
func (t *SwapTarget) Acquire() (viewports.Frame, error) {
	if t.released {
		return nil, ErrTargetReleased
	}
	return &Frame{target: t}, nil
}

// Size implements [viewports.SwapTarget].
func (t *SwapTarget) Size() (uint32, uint32) { return t.width, t.height }

// Release implements [viewports.SwapTarget].
func (t *SwapTarget) Release() {
	if t.released {
		return
	}
	t.released = true
	if t.view != nil {
		t.device.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		t.device.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}

// Frame is one acquired image of a swap target.
type Frame struct {
	target *SwapTarget
}

var _ viewports.Frame = (*Frame)(nil)

// Target returns the hal.TextureView of the frame's color attachment.
func (f *Frame) Target() any { return f.target.view }

// Present implements [viewports.Frame]. Presentation is handed to the
// device's [Presenter]; without one the frame stays in the texture,
// which is the correct behavior for readback and test pipelines.
func (f *Frame) Present() error {
	p := f.target.device.presenter
	if p == nil {
		return nil
	}
	return p.Present(f.target.surface.Window(), f.target.view, f.target.width, f.target.height)
}
