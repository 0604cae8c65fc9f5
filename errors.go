package viewports

import "errors"

// Package errors. Invariant violations are not represented here; they
// panic (see the package documentation's error taxonomy).
var (
	// ErrStaleRead is returned by the proxy's read accessors when the
	// cache entry for a key is absent: a mutation was queued for that key
	// and no drain has run since. The GUI layer's contract is to only
	// read windows it did not mutate in the same pass, so a stale read
	// indicates a caller-ordering bug rather than a race to paper over.
	ErrStaleRead = errors.New("viewports: stale read: cache entry absent until next drain")

	// ErrFrameSkipped wraps transient presentation failures: a swap
	// target that cannot be built or a frame that cannot be acquired
	// right now. Callers skip the viewport for this frame and retry on
	// the next iteration; the viewport itself stays valid.
	ErrFrameSkipped = errors.New("viewports: frame skipped")
)
