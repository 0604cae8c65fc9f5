package viewports

import (
	"errors"
	"testing"
)

func TestOutletStates(t *testing.T) {
	t.Run("starts with bare surface", func(t *testing.T) {
		o := newOutlet(&fakeSurface{})
		if o.HasSwapTarget() {
			t.Fatal("fresh outlet claims a swap target")
		}
	})

	t.Run("ensureTarget builds once and reuses", func(t *testing.T) {
		device := &fakeDevice{}
		o := newOutlet(&fakeSurface{})

		first, err := o.ensureTarget(device, 640, 480)
		if err != nil {
			t.Fatal(err)
		}
		second, err := o.ensureTarget(device, 640, 480)
		if err != nil {
			t.Fatal(err)
		}
		if first != second {
			t.Fatal("swap target rebuilt without invalidation")
		}
		if device.createdTargets != 1 {
			t.Fatalf("targets created = %d, want 1", device.createdTargets)
		}
	})

	t.Run("build failure reverts to surface", func(t *testing.T) {
		device := &fakeDevice{targetErr: errors.New("device lost")}
		o := newOutlet(&fakeSurface{})

		if _, err := o.ensureTarget(device, 640, 480); err == nil {
			t.Fatal("build succeeded unexpectedly")
		}
		if o.HasSwapTarget() {
			t.Fatal("failed build left a swap target bound")
		}
		// Next attempt works: the surface survived.
		if _, err := o.ensureTarget(device, 640, 480); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("resize tears down target and keeps surface", func(t *testing.T) {
		device := &fakeDevice{}
		surface := &fakeSurface{}
		o := newOutlet(surface)

		if _, err := o.ensureTarget(device, 640, 480); err != nil {
			t.Fatal(err)
		}
		o.OnResize()
		if o.HasSwapTarget() {
			t.Fatal("swap target survived resize")
		}
		if surface.released {
			t.Fatal("resize released the surface")
		}
		if device.releasedTargets != 1 {
			t.Fatalf("targets released = %d, want 1", device.releasedTargets)
		}
	})

	t.Run("resize without target is a no-op", func(t *testing.T) {
		o := newOutlet(&fakeSurface{})
		o.OnResize()
		o.OnResize()
		if o.HasSwapTarget() {
			t.Fatal("no-op resize bound a target")
		}
	})

	t.Run("release frees target and surface", func(t *testing.T) {
		device := &fakeDevice{}
		surface := &fakeSurface{}
		o := newOutlet(surface)

		if _, err := o.ensureTarget(device, 640, 480); err != nil {
			t.Fatal(err)
		}
		o.Release()
		if !surface.released {
			t.Fatal("surface not released")
		}
		if device.releasedTargets != 1 {
			t.Fatalf("targets released = %d, want 1", device.releasedTargets)
		}
	})

	t.Run("use after release panics", func(t *testing.T) {
		o := newOutlet(&fakeSurface{})
		o.Release()

		mustPanic(t, "HasSwapTarget", func() { o.HasSwapTarget() })
		mustPanic(t, "OnResize", func() { o.OnResize() })
		mustPanic(t, "Release", func() { o.Release() })
		mustPanic(t, "ensureTarget", func() { o.ensureTarget(&fakeDevice{}, 1, 1) })
	})
}
