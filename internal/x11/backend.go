// Package x11 implements the platform capability set on X11 using xgb and
// xgbutil. It is the only package that talks to the display server.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/MisterMaroki/swipey-sub000/internal/platform"
)

// Backend holds the X11 connection and implements platform.Backend.
type Backend struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

var _ platform.Backend = (*Backend)(nil)

// NewBackend connects to the X server and initializes the keybind module,
// which the hotkey layer requires for global grabs.
func NewBackend() (*Backend, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	keybind.Initialize(xu)

	return &Backend{
		xu:   xu,
		root: xu.RootWin(),
	}, nil
}

// XUtil exposes the underlying xgbutil connection for the hotkey layer.
func (b *Backend) XUtil() *xgbutil.XUtil { return b.xu }

// Root returns the root window.
func (b *Backend) Root() xproto.Window { return b.root }

// EventLoop runs the X11 event loop. Blocks until Quit.
func (b *Backend) EventLoop() {
	xevent.Main(b.xu)
}

// Quit stops the event loop.
func (b *Backend) Quit() {
	xevent.Quit(b.xu)
}

// Close disconnects from the X server.
func (b *Backend) Close() {
	b.xu.Conn().Close()
}
