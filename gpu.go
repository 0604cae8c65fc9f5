package viewports

import "github.com/gogpu/gputypes"

// DrawData is the GUI library's per-viewport draw-list output. The bridge
// routes it to the [Renderer] without interpreting it; nil means "no draw
// data this frame", which still clears and presents.
type DrawData = any

// Device is the GPU capability set this package consumes. One device is
// shared read-only by every viewport's presentation path; viewports own
// only their surface and swap target, never the device.
//
// The gpu/wgpu package implements Device over gogpu/wgpu's HAL. Tests use
// in-memory implementations.
type Device interface {
	// CreateSurface binds a presentable surface to a native window. Called
	// once per window, when the Manager inserts the viewport.
	CreateSurface(win NativeWindow) (Surface, error)

	// CreateSwapTarget builds a presentable swap target on the surface at
	// the given pixel size. Width and height are never zero. Failure is
	// transient: the caller drops the frame and retries next iteration.
	CreateSwapTarget(s Surface, width, height uint32) (SwapTarget, error)
}

// Surface is the platform handle to present onto. It outlives any number
// of swap targets and dies with its window.
type Surface interface {
	// Release frees the surface. Called once, on window destruction.
	Release()
}

// SwapTarget is a presentable chain of images sized to the window. It is
// torn down and rebuilt whenever the window's inner size changes.
type SwapTarget interface {
	// Acquire obtains the next presentable frame. Errors are transient
	// (the surface may be mid-reconfiguration); the caller skips the
	// frame and retries next iteration.
	Acquire() (Frame, error)

	// Size returns the pixel dimensions the target was built with.
	Size() (width, height uint32)

	// Release frees the swap target, keeping the underlying surface.
	Release()
}

// Frame is one acquired presentable image.
type Frame interface {
	// Target exposes the backend-specific render target (for gpu/wgpu, a
	// hal.TextureView) for the renderer to attach to.
	Target() any

	// Present submits the frame for display. The frame is consumed.
	Present() error
}

// Renderer records the one render pass that fills a frame: clear to the
// background color, then overlay the GUI draw data when non-nil. The
// draw-list interpretation itself is the host's concern; gpu/wgpu's
// Compositor delegates it through a painter hook.
type Renderer interface {
	Render(frame Frame, clear gputypes.Color, draw DrawData) error
}

// DefaultClearColor is the background every frame is cleared to before
// draw data is composited.
var DefaultClearColor = gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}
