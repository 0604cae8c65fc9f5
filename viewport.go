package viewports

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Viewport pairs one native window with one presentation [Outlet] and the
// per-window flags the drain snapshots into the proxy's cache. The
// manager exclusively owns all viewports; the proxy only ever holds key
// to window-id associations.
type Viewport struct {
	window        NativeWindow
	outlet        *Outlet
	clear         gputypes.Color
	focused       bool
	minimized     bool
	redrawPending bool
}

func newViewport(win NativeWindow, outlet *Outlet, clear gputypes.Color) *Viewport {
	return &Viewport{
		window: win,
		outlet: outlet,
		clear:  clear,
		// New windows come up focused; the event stream corrects this
		// as soon as the windowing layer reports otherwise.
		focused: true,
	}
}

// Window returns the native window handle.
func (v *Viewport) Window() NativeWindow { return v.window }

// Outlet returns the presentation surface state machine.
func (v *Viewport) Outlet() *Outlet { return v.outlet }

// Focused reports the last focus state fed by the event stream.
func (v *Viewport) Focused() bool { return v.focused }

// Minimized reports whether the window is minimized. Minimized viewports
// are skipped by Draw.
func (v *Viewport) Minimized() bool { return v.minimized }

// RedrawPending reports whether the viewport awaits a redraw.
func (v *Viewport) RedrawPending() bool { return v.redrawPending }

// OnResize invalidates the swap target so the next Draw rebuilds it at
// the window's new size. The surface is kept.
func (v *Viewport) OnResize() {
	v.outlet.OnResize()
}

// Draw produces one presented frame: acquire the current presentable
// image (building the swap target first if a resize invalidated it),
// record a pass that clears to the background color and overlays draw
// data if any was supplied, and present. A nil draw is valid and still
// clears and presents.
//
// Minimized and zero-area windows are "nothing to draw this frame" and
// return nil without touching the GPU. Transient acquisition failures
// return an error wrapping [ErrFrameSkipped]; the viewport stays valid
// and the host retries next iteration.
func (v *Viewport) Draw(dev Device, r Renderer, draw DrawData) error {
	v.redrawPending = false
	if v.minimized {
		return nil
	}
	size, err := v.window.InnerSize()
	if err != nil {
		return fmt.Errorf("viewports: query inner size of window %d: %w", v.window.ID(), err)
	}
	if size.X <= 0 || size.Y <= 0 {
		// Zero-area windows behave like minimized ones: the swap target
		// is only ever built with non-zero dimensions.
		return nil
	}
	target, err := v.outlet.ensureTarget(dev, uint32(size.X), uint32(size.Y))
	if err != nil {
		return fmt.Errorf("%w: build swap target for window %d: %w", ErrFrameSkipped, v.window.ID(), err)
	}
	frame, err := target.Acquire()
	if err != nil {
		return fmt.Errorf("%w: acquire frame for window %d: %w", ErrFrameSkipped, v.window.ID(), err)
	}
	if err := r.Render(frame, v.clear, draw); err != nil {
		return fmt.Errorf("viewports: render window %d: %w", v.window.ID(), err)
	}
	if err := frame.Present(); err != nil {
		return fmt.Errorf("%w: present window %d: %w", ErrFrameSkipped, v.window.ID(), err)
	}
	return nil
}
