// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/qthree/viewports"
)

type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// plainProvider implements gpucontext.DeviceProvider without exposing
// HAL handles.
type plainProvider struct{}

func (plainProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (plainProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (plainProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (plainProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

// badHalProvider exposes the HAL accessors but with foreign types.
type badHalProvider struct {
	plainProvider
}

func (badHalProvider) HalDevice() any { return "not a device" }
func (badHalProvider) HalQueue() any  { return "not a queue" }

func TestNewDeviceValidation(t *testing.T) {
	if _, err := NewDevice(nil); err == nil {
		t.Fatal("nil provider accepted")
	}
	if _, err := NewDevice(plainProvider{}); err == nil {
		t.Fatal("provider without HAL accessors accepted")
	}
	if _, err := NewDevice(badHalProvider{}); err == nil {
		t.Fatal("provider with foreign HAL types accepted")
	}
}

func TestOptions(t *testing.T) {
	d := &Device{format: gputypes.TextureFormatBGRA8Unorm}

	WithFormat(gputypes.TextureFormatRGBA8Unorm)(d)
	if d.format != gputypes.TextureFormatRGBA8Unorm {
		t.Fatalf("format = %v", d.format)
	}

	p := presenterFunc(func(viewports.NativeWindow, hal.TextureView, uint32, uint32) error { return nil })
	WithPresenter(p)(d)
	if d.presenter == nil {
		t.Fatal("presenter not installed")
	}
}

type presenterFunc func(viewports.NativeWindow, hal.TextureView, uint32, uint32) error

func (f presenterFunc) Present(w viewports.NativeWindow, v hal.TextureView, width, height uint32) error {
	return f(w, v, width, height)
}

func TestSurfaceHoldsWindow(t *testing.T) {
	d := &Device{}
	if _, err := d.CreateSurface(nil); err == nil {
		t.Fatal("nil window accepted")
	}
	win := stubWindow{}
	s, err := d.CreateSurface(win)
	if err != nil {
		t.Fatal(err)
	}
	surf := s.(*Surface)
	if surf.Window() != win {
		t.Fatal("window not retained")
	}
	surf.Release()
	if surf.Window() != nil {
		t.Fatal("window retained after release")
	}
}

type stubWindow struct{ viewports.NativeWindow }
