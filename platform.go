package viewports

import "image"

// WindowID identifies one native window inside the windowing layer.
// The windowing layer guarantees ids are unique among live windows;
// X11 window ids fit in 32 bits and the headless backend issues its own
// counter. Zero is never a valid id.
type WindowID uint32

// WindowOptions configures native window creation.
type WindowOptions struct {
	// Decorated requests OS decorations (title bar, borders). The GUI
	// layer turns decorations off for tooltip- and popup-style viewports.
	Decorated bool

	// Title is the initial window title. May be empty; the GUI layer
	// normally sets it through the proxy right after creation.
	Title string

	// Size is the initial inner size in pixels. Zero means the backend's
	// default.
	Size image.Point

	// Position is the initial outer position. The zero value places the
	// window wherever the backend sees fit.
	Position image.Point
}

// Platform is the windowing-layer capability set this package consumes.
// Implementations live under backend/; all methods are called from the
// single control thread.
type Platform interface {
	// CreateWindow spawns a native window. Windows start hidden; the
	// proxy shows them through [NativeWindow.SetVisible] once the GUI
	// layer asks. Creation failure is fatal to the host (the windowing
	// layer is assumed healthy under normal operation).
	CreateWindow(opts WindowOptions) (NativeWindow, error)

	// Monitors returns the current monitor list for the GUI layer's
	// monitor refresh.
	Monitors() ([]Monitor, error)

	// Close disconnects from the windowing system. Live windows are
	// invalid afterwards.
	Close() error
}

// NativeWindow is one OS window as seen by this package. Geometry
// queries can fail on real windowing systems (the window may be gone at
// the protocol level); geometry mutations are fire-and-forget requests,
// matching how X11 and friends behave.
type NativeWindow interface {
	// ID returns the windowing-layer identifier, stable for the window's
	// lifetime.
	ID() WindowID

	// SetVisible maps or unmaps the window.
	SetVisible(visible bool)

	// OuterPosition returns the window's outer (decoration-inclusive)
	// position on the virtual screen.
	OuterPosition() (image.Point, error)

	// SetOuterPosition moves the window.
	SetOuterPosition(pos image.Point)

	// InnerSize returns the drawable client-area size in pixels.
	InnerSize() (image.Point, error)

	// SetInnerSize resizes the client area.
	SetInnerSize(size image.Point)

	// SetTitle replaces the window title.
	SetTitle(title string)

	// Focus asks the windowing system to give the window input focus.
	Focus()

	// Destroy releases the native window. The handle is dead afterwards.
	Destroy()
}
