package viewports

import (
	"errors"
	"testing"
)

func TestManagerAddDestroy(t *testing.T) {
	t.Run("add assigns windowing layer ids", func(t *testing.T) {
		m, platform, _ := newTestManager(t)

		a, err := m.AddWindow(true)
		if err != nil {
			t.Fatal(err)
		}
		b, err := m.AddWindow(false)
		if err != nil {
			t.Fatal(err)
		}
		if a == b {
			t.Fatalf("duplicate ids: %d", a)
		}
		if m.Len() != 2 || len(platform.windows) != 2 {
			t.Fatalf("viewports %d, native %d, want 2/2", m.Len(), len(platform.windows))
		}
	})

	t.Run("create window failure propagates", func(t *testing.T) {
		m, platform, _ := newTestManager(t)
		platform.createErr = errors.New("connection refused")

		if _, err := m.AddWindow(true); err == nil {
			t.Fatal("AddWindow succeeded with failing platform")
		}
		if m.Len() != 0 {
			t.Fatalf("viewports = %d after failure", m.Len())
		}
	})

	t.Run("surface failure propagates and skips insertion", func(t *testing.T) {
		m, _, device := newTestManager(t)
		device.surfaceErr = errors.New("no suitable format")

		if _, err := m.AddWindow(true); err == nil {
			t.Fatal("AddWindow succeeded with failing device")
		}
		if m.Len() != 0 {
			t.Fatalf("viewports = %d after failure", m.Len())
		}
	})

	t.Run("adopt inserts a host-created window", func(t *testing.T) {
		m, platform, _ := newTestManager(t)

		win, err := platform.CreateWindow(WindowOptions{Decorated: true, Title: "main"})
		if err != nil {
			t.Fatal(err)
		}
		id, err := m.Adopt(win)
		if err != nil {
			t.Fatal(err)
		}
		if id != win.ID() {
			t.Fatalf("id = %d, want %d", id, win.ID())
		}
		mustPanic(t, "double adopt", func() { m.Adopt(win) })
	})

	t.Run("destroy of unknown id panics", func(t *testing.T) {
		m, _, _ := newTestManager(t)
		mustPanic(t, "Destroy", func() { m.Destroy(WindowID(99)) })
	})
}

func TestManagerEventFeeds(t *testing.T) {
	m, _, _ := newTestManager(t)
	vp := addTestViewport(t, m)
	id := vp.Window().ID()

	if !vp.Focused() {
		t.Fatal("new viewport not focused")
	}
	m.SetFocus(id, false)
	if vp.Focused() {
		t.Fatal("focus flag not cleared")
	}
	m.SetMinimized(id, true)
	if !vp.Minimized() {
		t.Fatal("minimized flag not set")
	}

	// Events for unknown windows are dropped, never fatal: they race the
	// drain that destroys their window.
	m.SetFocus(WindowID(99), true)
	m.SetMinimized(WindowID(99), true)
	m.MarkResized(WindowID(99))
}

func TestManagerIteration(t *testing.T) {
	m, _, device := newTestManager(t)
	first := addTestViewport(t, m)
	second := addTestViewport(t, m)

	count := 0
	for _, vp := range m.All() {
		if vp != first && vp != second {
			t.Fatal("unknown viewport yielded")
		}
		count++
	}
	if count != 2 {
		t.Fatalf("All yielded %d, want 2", count)
	}

	m.RequestRedraws()
	if err := first.Draw(device, &fakeRenderer{}, nil); err != nil {
		t.Fatal(err)
	}
	pending := 0
	for _, vp := range m.NeedingRedraw() {
		if vp != second {
			t.Fatal("drawn viewport still pending")
		}
		pending++
	}
	if pending != 1 {
		t.Fatalf("NeedingRedraw yielded %d, want 1", pending)
	}
}
