package viewports

import (
	"fmt"
	"log/slog"
)

// Monitor describes one physical display for the GUI layer's monitor
// list. Work geometry excludes panels and docks; backends that cannot
// distinguish it report the full geometry twice.
type Monitor struct {
	Pos      Vec2
	Size     Vec2
	WorkPos  Vec2
	WorkSize Vec2
	DPIScale float32
}

// MonitorSink receives the refreshed monitor list, in practice the GUI
// library's platform-IO monitor array.
type MonitorSink interface {
	SetMonitors([]Monitor)
}

// MaxMonitors caps the list handed to the sink. GUI layers keep the
// monitor array in a fixed-capacity frame structure; 32 is far beyond
// any real topology.
const MaxMonitors = 32

// RefreshMonitors queries the windowing layer's current monitor topology
// and pushes it to the GUI layer. Hosts call it once at startup and again
// whenever the GUI layer requests a refresh.
func RefreshMonitors(p Platform, sink MonitorSink) error {
	monitors, err := p.Monitors()
	if err != nil {
		return fmt.Errorf("viewports: query monitors: %w", err)
	}
	if len(monitors) > MaxMonitors {
		monitors = monitors[:MaxMonitors]
	}
	sink.SetMonitors(monitors)
	Logger().Debug("viewports: monitors refreshed", slog.Int("count", len(monitors)))
	return nil
}
