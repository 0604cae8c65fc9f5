// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

// Package x11 provides a windowing backend for X11 servers, built on
// xgb/xgbutil. It registers itself as "x11" at high priority; the
// availability probe checks for a DISPLAY to connect to.
package x11

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/qthree/viewports"
	"github.com/qthree/viewports/backend"
)

// Name is the registry identifier of this backend.
const Name = "x11"

func init() {
	backend.Register(Name, 100, func(opts backend.Options) (viewports.Platform, error) {
		return Open(opts.Display)
	}, func() bool {
		return os.Getenv("DISPLAY") != ""
	})
}

// connection holds the X server connection and core resources shared by
// all windows of a platform.
type connection struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

func connect(display string) (*connection, error) {
	var (
		xu  *xgbutil.XUtil
		err error
	)
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	return &connection{xu: xu, root: xu.RootWin()}, nil
}

func (c *connection) close() {
	c.xu.Conn().Close()
}

// activateWindow raises and focuses a window with a _NET_ACTIVE_WINDOW
// client message to the root window. The message is built manually
// because the xgbutil ewmh helper panics on this library version
// (uint vs int type assertion).
func (c *connection) activateWindow(id xproto.Window) error {
	atomReply, err := xproto.InternAtom(c.xu.Conn(), false,
		uint16(len("_NET_ACTIVE_WINDOW")), "_NET_ACTIVE_WINDOW").Reply()
	if err != nil {
		return fmt.Errorf("x11: intern _NET_ACTIVE_WINDOW: %w", err)
	}

	const sourceIndication = 2 // pager/direct action
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: id,
		Type:   atomReply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourceIndication, 0, 0, 0, 0}),
	}

	return xproto.SendEventChecked(
		c.xu.Conn(),
		false,
		c.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}
