package viewports

import "math"

// Key identifies one GUI viewport across the proxy/manager boundary.
//
// Keys are minted by [Proxy] in a monotonically increasing sequence
// starting at 1 and are never reused. They live in a key space disjoint
// from [WindowID]: a key exists from the moment the GUI layer's
// create-viewport hook fires, while the native window it maps to only
// materializes on the next drain.
type Key uint64

// KeyNone is the reserved "no viewport assigned" sentinel. The proxy
// never issues it.
const KeyNone Key = 0

// IsNone reports whether the key is the reserved zero sentinel.
func (k Key) IsNone() bool { return k == KeyNone }

// maxKey is the last key the proxy can mint. Running out of keys means
// the process has created ~1.8e19 viewports; treat it as unrecoverable.
const maxKey = Key(math.MaxUint64)
