package viewports

import "github.com/gogpu/gputypes"

// ManagerOption configures a Manager during creation.
//
// Example:
//
//	m := viewports.NewManager(platform, device,
//		viewports.WithClearColor(gputypes.Color{R: 0, G: 0, B: 0, A: 1}))
type ManagerOption func(*managerOptions)

type managerOptions struct {
	clear gputypes.Color
}

// WithClearColor sets the background color every frame clears to before
// draw data is composited. Defaults to [DefaultClearColor].
func WithClearColor(c gputypes.Color) ManagerOption {
	return func(o *managerOptions) {
		o.clear = c
	}
}
