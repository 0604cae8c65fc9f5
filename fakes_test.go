package viewports

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// In-memory windowing and GPU fakes with per-call failure injection.
// They live in-package so tests can reach unexported state; the headless
// backend provides the exported equivalent.

type fakePlatform struct {
	nextID    WindowID
	windows   map[WindowID]*fakeWindow
	monitors  []Monitor
	createErr error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		nextID:  1,
		windows: make(map[WindowID]*fakeWindow),
	}
}

func (p *fakePlatform) CreateWindow(opts WindowOptions) (NativeWindow, error) {
	if p.createErr != nil {
		err := p.createErr
		p.createErr = nil
		return nil, err
	}
	size := opts.Size
	if size.X <= 0 || size.Y <= 0 {
		size = image.Point{X: 640, Y: 480}
	}
	w := &fakeWindow{
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

func (p *fakePlatform) Monitors() ([]Monitor, error) {
	return p.monitors, nil
}

func (p *fakePlatform) Close() error { return nil }

type fakeWindow struct {
	platform  *fakePlatform
	id        WindowID
	pos       image.Point
	size      image.Point
	title     string
	decorated bool
	visible   bool
	focused   bool
	destroyed bool

	posErr  error
	sizeErr error
}

func (w *fakeWindow) ID() WindowID                   { return w.id }
func (w *fakeWindow) SetVisible(v bool)              { w.visible = v }
func (w *fakeWindow) SetOuterPosition(p image.Point) { w.pos = p }
func (w *fakeWindow) SetInnerSize(s image.Point)     { w.size = s }
func (w *fakeWindow) SetTitle(t string)              { w.title = t }
func (w *fakeWindow) Focus()                         { w.focused = true }

func (w *fakeWindow) OuterPosition() (image.Point, error) {
	if w.posErr != nil {
		return image.Point{}, w.posErr
	}
	return w.pos, nil
}

func (w *fakeWindow) InnerSize() (image.Point, error) {
	if w.sizeErr != nil {
		return image.Point{}, w.sizeErr
	}
	return w.size, nil
}

func (w *fakeWindow) Destroy() {
	w.destroyed = true
	delete(w.platform.windows, w.id)
}

type fakeDevice struct {
	surfaceErr error
	targetErr  error
	acquireErr error
	presentErr error

	createdTargets  int
	releasedTargets int
	presented       int
}

func (d *fakeDevice) CreateSurface(win NativeWindow) (Surface, error) {
	if d.surfaceErr != nil {
		err := d.surfaceErr
		d.surfaceErr = nil
		return nil, err
	}
	return &fakeSurface{}, nil
}

func (d *fakeDevice) CreateSwapTarget(s Surface, width, height uint32) (SwapTarget, error) {
	if d.targetErr != nil {
		err := d.targetErr
		d.targetErr = nil
		return nil, err
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("fake: zero-area target")
	}
	d.createdTargets++
	return &fakeTarget{device: d, width: width, height: height}, nil
}

type fakeSurface struct {
	released bool
}

func (s *fakeSurface) Release() { s.released = true }

type fakeTarget struct {
	device   *fakeDevice
	width    uint32
	height   uint32
	released bool
}

func (t *fakeTarget) Acquire() (Frame, error) {
	if t.device.acquireErr != nil {
		err := t.device.acquireErr
		t.device.acquireErr = nil
		return nil, err
	}
	return &fakeFrame{device: t.device}, nil
}

func (t *fakeTarget) Size() (uint32, uint32) { return t.width, t.height }

func (t *fakeTarget) Release() {
	if !t.released {
		t.released = true
		t.device.releasedTargets++
	}
}

type fakeFrame struct {
	device *fakeDevice
}

func (f *fakeFrame) Target() any { return f }

func (f *fakeFrame) Present() error {
	if f.device.presentErr != nil {
		err := f.device.presentErr
		f.device.presentErr = nil
		return err
	}
	f.device.presented++
	return nil
}

type fakeRenderer struct {
	renders   int
	lastClear gputypes.Color
	lastDraw  DrawData
	err       error
}

func (r *fakeRenderer) Render(f Frame, clear gputypes.Color, draw DrawData) error {
	if r.err != nil {
		err := r.err
		r.err = nil
		return err
	}
	r.renders++
	r.lastClear = clear
	r.lastDraw = draw
	return nil
}

// mustPanic fails the test unless fn panics.
func mustPanic(t interface {
	Helper()
	Fatalf(string, ...any)
}, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", what)
		}
	}()
	fn()
}
