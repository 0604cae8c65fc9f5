// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

// Package wgpu presents viewport windows through gogpu/wgpu's HAL.
//
// Swap targets are HAL textures sized to the window's client area. Each
// frame records a clear pass (plus optional application draws) into a
// command encoder and submits it fenced; presentation to the OS surface
// is delegated to an optional [Presenter] so the package works the same
// against on-screen and readback pipelines.
package wgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/qthree/viewports"
)

// Device implements [viewports.Device] over a HAL device and queue.
type Device struct {
	instance hal.Instance // owned when brought up standalone
	device   hal.Device
	queue    hal.Queue
	owned    bool

	format    gputypes.TextureFormat
	presenter Presenter
}

var _ viewports.Device = (*Device)(nil)

// NewDevice wraps a shared HAL device from an external provider. The
// provider must additionally implement HalDevice() any and HalQueue()
// any returning hal.Device and hal.Queue.
func NewDevice(provider gpucontext.DeviceProvider, opts ...Option) (*Device, error) {
	if provider == nil {
		return nil, fmt.Errorf("wgpu: nil device provider")
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider %T does not expose HAL types", provider)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}
	d := &Device{device: device, queue: queue, format: gputypes.TextureFormatBGRA8Unorm}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Open brings up a standalone Vulkan device. This is the fallback path
// when no external device is shared; Close releases what Open created.
func Open(opts ...Option) (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrNoBackend
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open adapter %q: %w", selected.Info.Name, err)
	}

	d := &Device{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		owned:    true,
		format:   gputypes.TextureFormatBGRA8Unorm,
	}
	for _, opt := range opts {
		opt(d)
	}
	viewports.Logger().Info("wgpu: device opened", "adapter", selected.Info.Name)
	return d, nil
}

// Close releases the device and instance if this Device owns them.
// Shared devices from NewDevice are left untouched.
func (d *Device) Close() {
	if !d.owned {
		return
	}
	if d.device != nil {
		d.device.Destroy()
		d.device = nil
	}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
}

// Hal returns the underlying HAL device and queue for callers that
// record their own passes.
func (d *Device) Hal() (hal.Device, hal.Queue) { return d.device, d.queue }

// CreateSurface implements [viewports.Device].
func (d *Device) CreateSurface(win viewports.NativeWindow) (viewports.Surface, error) {
	if win == nil {
		return nil, fmt.Errorf("wgpu: nil window")
	}
	return &Surface{win: win}, nil
}

// CreateSwapTarget implements [viewports.Device]. The target is a
// render-attachment texture in the device's surface format; CopySrc is
// kept on so presenters can read the frame back.
func (d *Device) CreateSwapTarget(s viewports.Surface, width, height uint32) (viewports.SwapTarget, error) {
	surf, ok := s.(*Surface)
	if !ok {
		return nil, fmt.Errorf("wgpu: foreign surface %T", s)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("wgpu: zero-area swap target %dx%d", width, height)
	}

	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "viewport_color",
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        d.format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create color texture: %w", err)
	}
	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "viewport_color_view",
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("wgpu: create color view: %w", err)
	}

	return &SwapTarget{
		device:  d,
		surface: surf,
		tex:     tex,
		view:    view,
		width:   width,
		height:  height,
	}, nil
}

// Surface is the per-window presentation handle. It carries no GPU
// resources of its own; those live in the swap target.
type Surface struct {
	win viewports.NativeWindow
}

// Window returns the native window this surface presents to.
func (s *Surface) Window() viewports.NativeWindow { return s.win }

// Release implements [viewports.Surface].
func (s *Surface) Release() { s.win = nil }
