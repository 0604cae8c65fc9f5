// Package viewports bridges an immediate-mode GUI's platform-viewport
// callbacks to a native windowing layer and a GPU presentation target.
//
// # Overview
//
// Immediate-mode GUI libraries with multi-viewport support model every
// top-level panel as an independently creatable, movable, resizable,
// closable surface, and drive that lifecycle through synchronous callbacks
// invoked mid-layout. Native windowing layers, on the other hand, only
// allow window creation and destruction from the event loop's own control
// context. This package reconciles the two timing models with a
// deferred-command proxy:
//
//   - [Proxy] implements the GUI-facing callback surface ([PlatformHooks]).
//     Callbacks never touch native windows; they mint keys, enqueue
//     commands, and invalidate cached window state.
//   - [Proxy.Drain], called once per event-loop iteration after layout,
//     applies the queued commands against a [Manager] in FIFO order and
//     then refreshes the read cache from live window state.
//   - [Manager] owns the [Viewport] collection, one per native window.
//     Each viewport pairs a [NativeWindow] with an [Outlet], the GPU
//     presentation target whose swap target is rebuilt lazily after a
//     resize.
//
// # Quick Start
//
//	platform, _ := backend.Open(backend.Options{})
//	manager := viewports.NewManager(platform, device)
//	proxy := viewports.NewProxy()
//
//	// Bind the initial window before any GUI callback fires.
//	id, _ := manager.Adopt(mainWindow)
//	mainKey := proxy.BindMainWindow(id)
//
//	// Each frame: run GUI layout (which calls proxy methods), then:
//	if err := proxy.Drain(manager); err != nil {
//		log.Fatal(err)
//	}
//	for _, vp := range manager.NeedingRedraw() {
//		if err := vp.Draw(device, renderer, drawData); err != nil &&
//			!errors.Is(err, viewports.ErrFrameSkipped) {
//			log.Fatal(err)
//		}
//	}
//
// # Concurrency
//
// The whole package is single-threaded by design. All calls into Proxy,
// Manager, Viewport, and Outlet must happen on the one control thread that
// runs the host event loop. Multi-threaded hosts must serialize onto it.
//
// # Error taxonomy
//
// Programming errors (duplicate window ids, destroying an unknown window,
// operating on a destroyed key, observing an outlet mid-rebuild) panic:
// they mean the call-ordering contract between the GUI layer and this
// package is broken, and continuing would corrupt the key/window mapping.
// Transient per-frame failures (a swap target that cannot be built or
// acquired right now) are reported as errors wrapping [ErrFrameSkipped]
// and are safe to retry next frame. Minimized or zero-area windows are a
// plain "nothing to draw" and produce no error at all.
package viewports
