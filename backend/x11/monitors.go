// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/qthree/viewports"
)

// monitors enumerates active CRTCs via XRandR. The work area of each
// monitor is its geometry clipped against the EWMH _NET_WORKAREA of the
// current desktop, so panels and docks are excluded where the WM
// reports them.
func (c *connection) monitors() ([]viewports.Monitor, error) {
	if err := randr.Init(c.xu.Conn()); err != nil {
		return nil, fmt.Errorf("x11: randr init: %w", err)
	}

	resources, err := randr.GetScreenResources(c.xu.Conn(), c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("x11: screen resources: %w", err)
	}

	var out []viewports.Monitor
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Skip disabled CRTCs.
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		mon := viewports.Monitor{
			Pos:      viewports.Vec2{X: float32(info.X), Y: float32(info.Y)},
			Size:     viewports.Vec2{X: float32(info.Width), Y: float32(info.Height)},
			DPIScale: 1,
		}
		mon.WorkPos, mon.WorkSize = c.workArea(mon)
		out = append(out, mon)
	}
	return out, nil
}

// workArea clips a monitor's geometry against _NET_WORKAREA. Falls back
// to the full geometry when the WM does not publish a work area or it
// does not intersect the monitor.
func (c *connection) workArea(mon viewports.Monitor) (viewports.Vec2, viewports.Vec2) {
	areas, err := ewmh.WorkareaGet(c.xu)
	if err != nil || len(areas) == 0 {
		return mon.Pos, mon.Size
	}

	idx := 0
	if desktop, err := ewmh.CurrentDesktopGet(c.xu); err == nil && int(desktop) < len(areas) {
		idx = int(desktop)
	}
	wa := areas[idx]

	x1 := max(mon.Pos.X, float32(wa.X))
	y1 := max(mon.Pos.Y, float32(wa.Y))
	x2 := min(mon.Pos.X+mon.Size.X, float32(wa.X)+float32(wa.Width))
	y2 := min(mon.Pos.Y+mon.Size.Y, float32(wa.Y)+float32(wa.Height))

	if x2 <= x1 || y2 <= y1 {
		return mon.Pos, mon.Size
	}
	return viewports.Vec2{X: x1, Y: y1}, viewports.Vec2{X: x2 - x1, Y: y2 - y1}
}
