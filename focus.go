package viewports

import "iter"

// FocusEntry is one window in the GUI library's focus stack as seen by
// this package.
type FocusEntry interface {
	// Name is the window's display name.
	Name() string

	// OwnsViewport reports whether the window owns its own platform
	// viewport, as opposed to being a child panel hosted inside another
	// window's viewport.
	OwnsViewport() bool

	// ViewportKey is the key of the owned viewport. Only meaningful when
	// OwnsViewport reports true.
	ViewportKey() Key
}

// FocusStack is a read-only view over the GUI context's focus history
// for the current frame.
type FocusStack interface {
	Len() int
	Entry(i int) FocusEntry
}

// FocusOrder yields (display name, viewport key) for every focus-stack
// entry that owns its own viewport, in the stack's stored order. This is
// a direct pass-through, not a z-order sort. Windows without an owned
// viewport are skipped, never emitted as placeholders.
//
// The sequence is a snapshot view over the current frame's state: it is
// finite, lazy, and invalid once the next layout pass begins. Do not
// retain it across frames.
func FocusOrder(stack FocusStack) iter.Seq2[string, Key] {
	return func(yield func(string, Key) bool) {
		for i := 0; i < stack.Len(); i++ {
			entry := stack.Entry(i)
			if entry == nil || !entry.OwnsViewport() {
				continue
			}
			if !yield(entry.Name(), entry.ViewportKey()) {
				return
			}
		}
	}
}
