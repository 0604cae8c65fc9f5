package viewports

// outletState is the presentation surface's lifecycle position. The
// transitions are:
//
//	surface -> swap target    (first draw after creation or invalidation)
//	swap target -> surface    (resize invalidation; target torn down)
//	any -> released           (window destruction)
//
// invalid exists only transiently while a transition is in flight. It
// must never be the state another operation observes; seeing it means a
// reentrancy bug, which is fatal.
type outletState uint8

const (
	outletSurface outletState = iota
	outletSwapTarget
	outletInvalid
	outletReleased
)

func (s outletState) String() string {
	switch s {
	case outletSurface:
		return "surface"
	case outletSwapTarget:
		return "swap-target"
	case outletInvalid:
		return "invalid"
	case outletReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Outlet owns the GPU presentation surface and swap target for one
// window. The surface is created once per window and persists until the
// window is destroyed; the swap target alone is torn down and rebuilt on
// resize or loss.
type Outlet struct {
	state   outletState
	surface Surface
	target  SwapTarget
}

func newOutlet(surface Surface) *Outlet {
	return &Outlet{state: outletSurface, surface: surface}
}

// HasSwapTarget reports whether a presentable swap target is currently
// bound. Mostly useful for the host's diagnostics.
func (o *Outlet) HasSwapTarget() bool {
	o.check("HasSwapTarget")
	return o.state == outletSwapTarget
}

// ensureTarget returns the bound swap target, building one at the given
// size when the outlet holds only the bare surface. Width and height must
// be non-zero (the caller filters minimized and zero-area windows).
//
// A build failure is transient: the outlet stays in the surface state and
// the next frame retries.
func (o *Outlet) ensureTarget(dev Device, width, height uint32) (SwapTarget, error) {
	switch o.state {
	case outletSwapTarget:
		return o.target, nil
	case outletSurface:
		// Park in the transient state while the device call is in
		// flight so reentrant use trips the check below instead of
		// corrupting the transition.
		o.state = outletInvalid
		target, err := dev.CreateSwapTarget(o.surface, width, height)
		if err != nil {
			o.state = outletSurface
			return nil, err
		}
		o.target = target
		o.state = outletSwapTarget
		return target, nil
	default:
		o.fail("ensureTarget")
		return nil, nil // unreachable
	}
}

// OnResize tears down the swap target only, keeping the underlying
// surface, so the next draw rebuilds at the new size. A no-op when no
// target is bound.
func (o *Outlet) OnResize() {
	switch o.state {
	case outletSurface:
		return
	case outletSwapTarget:
		target := o.target
		o.target = nil
		o.state = outletInvalid
		target.Release()
		o.state = outletSurface
	default:
		o.fail("OnResize")
	}
}

// Release frees the swap target and surface. Called once, when the
// window is destroyed; every later operation panics.
func (o *Outlet) Release() {
	switch o.state {
	case outletSurface, outletSwapTarget:
		if o.target != nil {
			o.target.Release()
			o.target = nil
		}
		o.surface.Release()
		o.surface = nil
		o.state = outletReleased
	default:
		o.fail("Release")
	}
}

func (o *Outlet) check(op string) {
	if o.state == outletInvalid || o.state == outletReleased {
		o.fail(op)
	}
}

func (o *Outlet) fail(op string) {
	panic("viewports: " + op + " on outlet in state " + o.state.String())
}
