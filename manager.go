package viewports

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/gogpu/gputypes"
)

// Manager exclusively owns the viewport collection, keyed by native
// window id. It spawns and destroys windows through the [Platform], binds
// a presentation [Surface] to each new window, and exposes the iteration
// the host's render step walks every frame.
//
// Manager is not safe for concurrent use; see the package documentation.
type Manager struct {
	platform  Platform
	device    Device
	viewports map[WindowID]*Viewport
	clear     gputypes.Color
}

// NewManager returns an empty manager drawing windows from platform and
// presentation surfaces from device.
func NewManager(platform Platform, device Device, opts ...ManagerOption) *Manager {
	o := managerOptions{clear: DefaultClearColor}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{
		platform:  platform,
		device:    device,
		viewports: make(map[WindowID]*Viewport),
		clear:     o.clear,
	}
}

// AddWindow spawns a native window and inserts a viewport for it. The
// returned id is the windowing layer's; the proxy owns the mapping from
// keys to it. Errors are fatal to the host.
func (m *Manager) AddWindow(decorated bool) (WindowID, error) {
	win, err := m.platform.CreateWindow(WindowOptions{Decorated: decorated})
	if err != nil {
		return 0, fmt.Errorf("viewports: create native window: %w", err)
	}
	return m.insert(win)
}

// Adopt inserts a viewport for a window the host created itself: the
// initial window, which exists before the manager does.
func (m *Manager) Adopt(win NativeWindow) (WindowID, error) {
	return m.insert(win)
}

func (m *Manager) insert(win NativeWindow) (WindowID, error) {
	id := win.ID()
	if _, dup := m.viewports[id]; dup {
		panic(fmt.Sprintf("viewports: window %d inserted twice", id))
	}
	surface, err := m.device.CreateSurface(win)
	if err != nil {
		return 0, fmt.Errorf("viewports: create surface for window %d: %w", id, err)
	}
	m.viewports[id] = newViewport(win, newOutlet(surface), m.clear)
	Logger().Debug("viewports: window added", slog.Uint64("window", uint64(id)))
	return id, nil
}

// Destroy removes the viewport, releasing its swap target and surface and
// destroying the native window. Destroy is only ever issued by the proxy
// for ids it created, so an unknown id is a programming error and panics.
func (m *Manager) Destroy(id WindowID) {
	vp, ok := m.viewports[id]
	if !ok {
		panic(fmt.Sprintf("viewports: destroy of unknown window %d", id))
	}
	delete(m.viewports, id)
	vp.outlet.Release()
	vp.window.Destroy()
	Logger().Debug("viewports: window destroyed", slog.Uint64("window", uint64(id)))
}

// Viewport looks up a viewport by window id.
func (m *Manager) Viewport(id WindowID) (*Viewport, bool) {
	vp, ok := m.viewports[id]
	return vp, ok
}

// Len returns the number of live viewports.
func (m *Manager) Len() int { return len(m.viewports) }

// MarkResized invalidates the window's swap target so the next draw
// rebuilds it at the new size. The surface itself is kept.
//
// Unlike Destroy, this is fed by the host event loop, and a resize event
// can legitimately race the drain that destroys its window; an unknown id
// is therefore ignored, not treated as a contract violation.
func (m *Manager) MarkResized(id WindowID) {
	vp, ok := m.viewports[id]
	if !ok {
		Logger().Debug("viewports: resize for unknown window", slog.Uint64("window", uint64(id)))
		return
	}
	vp.OnResize()
}

// SetFocus records the focus flag reported by the windowing layer's
// event stream. The value is served from the cache after the next drain.
func (m *Manager) SetFocus(id WindowID, focused bool) {
	if vp, ok := m.viewports[id]; ok {
		vp.focused = focused
	}
}

// SetMinimized records the minimized flag reported by the windowing
// layer's event stream (zero-size resize, iconify notification).
// Minimized viewports skip frame acquisition entirely.
func (m *Manager) SetMinimized(id WindowID, minimized bool) {
	if vp, ok := m.viewports[id]; ok {
		vp.minimized = minimized
	}
}

// RequestRedraws marks every viewport redraw-pending. Hosts call it when
// the whole frame is invalidated (a new GUI frame was produced).
func (m *Manager) RequestRedraws() {
	for _, vp := range m.viewports {
		vp.redrawPending = true
	}
}

// All iterates over every live viewport. Iteration order is unspecified.
func (m *Manager) All() iter.Seq2[WindowID, *Viewport] {
	return func(yield func(WindowID, *Viewport) bool) {
		for id, vp := range m.viewports {
			if !yield(id, vp) {
				return
			}
		}
	}
}

// NeedingRedraw iterates over the viewports marked redraw-pending.
func (m *Manager) NeedingRedraw() iter.Seq2[WindowID, *Viewport] {
	return func(yield func(WindowID, *Viewport) bool) {
		for id, vp := range m.viewports {
			if !vp.redrawPending {
				continue
			}
			if !yield(id, vp) {
				return
			}
		}
	}
}
