package viewports

// PlatformHooks is the capability set the GUI library's viewport
// callbacks consume, implemented by [Proxy]. Hosts hand the proxy to the
// GUI layer's platform binding as an ordinary shared handle; no opaque
// user-data round-tripping is involved.
//
// All methods execute synchronously on the control thread and none
// block: mutations only record commands for the next drain, reads only
// consult the cache.
type PlatformHooks interface {
	// BindMainWindow associates the initial native window with a fresh
	// key before any callback fires.
	BindMainWindow(id WindowID) Key

	CreateWindow(decorated bool) Key
	DestroyWindow(key Key)
	ShowWindow(key Key)
	SetPosition(key Key, pos Vec2)
	SetSize(key Key, size Vec2)
	SetFocus(key Key)
	SetTitle(key Key, title string)

	GetPosition(key Key) (Vec2, error)
	GetSize(key Key) (Vec2, error)
	GetFocus(key Key) (bool, error)
	GetMinimized(key Key) (bool, error)
}
