// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/qthree/viewports"
)

// ErrSurfaceReleased is returned when acquiring frames from a released
// swap target.
var ErrSurfaceReleased = errors.New("headless: swap target released")

// Device is a software presentation device. Swap targets are backed by
// an RGBA framebuffer, so rendered frames can be inspected in tests.
type Device struct {
	failSurface error
	failTarget  error
	failAcquire error
	failPresent error

	createdTargets  int
	releasedTargets int
	presented       int
}

var _ viewports.Device = (*Device)(nil)

// NewDevice returns a device with no failure injection armed.
func NewDevice() *Device { return &Device{} }

// CreateSurface implements [viewports.Device].
func (d *Device) CreateSurface(win viewports.NativeWindow) (viewports.Surface, error) {
	if err := d.failSurface; err != nil {
		d.failSurface = nil
		return nil, err
	}
	return &surface{win: win}, nil
}

// CreateSwapTarget implements [viewports.Device].
func (d *Device) CreateSwapTarget(s viewports.Surface, width, height uint32) (viewports.SwapTarget, error) {
	if err := d.failTarget; err != nil {
		d.failTarget = nil
		return nil, err
	}
	if _, ok := s.(*surface); !ok {
		return nil, fmt.Errorf("headless: foreign surface %T", s)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("headless: zero-area swap target %dx%d", width, height)
	}
	d.createdTargets++
	return &swapTarget{
		device: d,
		img:    image.NewRGBA(image.Rect(0, 0, int(width), int(height))),
		width:  width,
		height: height,
	}, nil
}

// Failure injection, one-shot. Test helpers.

// FailNextSurface makes the next CreateSurface return err.
func (d *Device) FailNextSurface(err error) { d.failSurface = err }

// FailNextSwapTarget makes the next CreateSwapTarget return err.
func (d *Device) FailNextSwapTarget(err error) { d.failTarget = err }

// FailNextAcquire makes the next frame acquisition return err.
func (d *Device) FailNextAcquire(err error) { d.failAcquire = err }

// FailNextPresent makes the next Present return err.
func (d *Device) FailNextPresent(err error) { d.failPresent = err }

// CreatedTargets returns how many swap targets were built.
func (d *Device) CreatedTargets() int { return d.createdTargets }

// ReleasedTargets returns how many swap targets were released.
func (d *Device) ReleasedTargets() int { return d.releasedTargets }

// Presented returns how many frames were presented.
func (d *Device) Presented() int { return d.presented }

type surface struct {
	win      viewports.NativeWindow
	released bool
}

func (s *surface) Release() { s.released = true }

type swapTarget struct {
	device   *Device
	img      *image.RGBA
	width    uint32
	height   uint32
	released bool
}

func (t *swapTarget) Acquire() (viewports.Frame, error) {
	if t.released {
		return nil, ErrSurfaceReleased
	}
	if err := t.device.failAcquire; err != nil {
		t.device.failAcquire = nil
		return nil, err
	}
	return &frame{device: t.device, img: t.img}, nil
}

func (t *swapTarget) Size() (uint32, uint32) { return t.width, t.height }

func (t *swapTarget) Release() {
	if !t.released {
		t.released = true
		t.device.releasedTargets++
	}
}

// Framebuffer exposes the backing image. Test helper.
func (t *swapTarget) Framebuffer() *image.RGBA { return t.img }

type frame struct {
	device *Device
	img    *image.RGBA
}

// Target returns the *image.RGBA framebuffer of the frame.
func (f *frame) Target() any { return f.img }

func (f *frame) Present() error {
	if err := f.device.failPresent; err != nil {
		f.device.failPresent = nil
		return err
	}
	f.device.presented++
	return nil
}

// Painter draws application content onto a software frame. Draw data
// passed to [viewports.Viewport.Draw] that implements Painter is
// invoked by [Renderer] after the clear.
type Painter interface {
	Paint(img *image.RGBA) error
}

// Renderer clears software frames and runs an optional [Painter].
type Renderer struct{}

var _ viewports.Renderer = Renderer{}

// Render implements [viewports.Renderer].
func (Renderer) Render(f viewports.Frame, clear gputypes.Color, draw viewports.DrawData) error {
	img, ok := f.Target().(*image.RGBA)
	if !ok {
		return fmt.Errorf("headless: foreign frame target %T", f.Target())
	}
	fill(img, clear)
	if p, ok := draw.(Painter); ok {
		if err := p.Paint(img); err != nil {
			return fmt.Errorf("headless: paint: %w", err)
		}
	}
	return nil
}

func fill(img *image.RGBA, c gputypes.Color) {
	rgba := color.RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, rgba)
		}
	}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
