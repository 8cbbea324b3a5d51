package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
	"github.com/MisterMaroki/swipey-sub000/internal/platform"
)

const (
	stateMaxHorz    = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateMaxVert    = "_NET_WM_STATE_MAXIMIZED_VERT"
	stateFullscreen = "_NET_WM_STATE_FULLSCREEN"
	stateHidden     = "_NET_WM_STATE_HIDDEN"
)

// ActiveWindow returns the focused window via _NET_ACTIVE_WINDOW.
func (b *Backend) ActiveWindow() (platform.WindowHandle, error) {
	win, err := ewmh.ActiveWindowGet(b.xu)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	return platform.WindowHandle(win), nil
}

// WindowUnderPoint walks the client stacking order from topmost down and
// returns the first normal window whose frame contains the point.
func (b *Backend) WindowUnderPoint(x, y float64) (platform.WindowHandle, bool, error) {
	clients, err := ewmh.ClientListStackingGet(b.xu)
	if err != nil {
		return 0, false, fmt.Errorf("failed to get client stacking list: %w", err)
	}

	// _NET_CLIENT_LIST_STACKING is bottom-to-top.
	for i := len(clients) - 1; i >= 0; i-- {
		win := clients[i]
		if !b.isNormalWindow(win) {
			continue
		}
		rect, ok := b.windowRect(win)
		if !ok {
			continue
		}
		if rect.Contains(x, y) {
			return platform.WindowHandle(win), true, nil
		}
	}
	return 0, false, nil
}

// Frame reads a window's geometry in root coordinates.
func (b *Backend) Frame(handle platform.WindowHandle) (geometry.Rect, error) {
	rect, ok := b.windowRect(xproto.Window(handle))
	if !ok {
		return geometry.Rect{}, fmt.Errorf("window %d has no readable geometry", handle)
	}
	return rect, nil
}

// SetFrame moves and resizes a window. A maximized window is unmaximized
// first, otherwise many window managers ignore the request.
func (b *Backend) SetFrame(handle platform.WindowHandle, frame geometry.Rect) error {
	win := xproto.Window(handle)
	b.unmaximize(win)

	x, y := int(frame.X), int(frame.Y)
	w, h := int(frame.Width), int(frame.Height)

	if err := ewmh.MoveresizeWindow(b.xu, win, x, y, w, h); err != nil {
		// Fallback for window managers without _NET_MOVERESIZE_WINDOW.
		xwindow.New(b.xu, win).MoveResize(x, y, w, h)
	}
	return nil
}

// IsFullscreen reports whether _NET_WM_STATE_FULLSCREEN is present.
func (b *Backend) IsFullscreen(handle platform.WindowHandle) (bool, error) {
	states, err := ewmh.WmStateGet(b.xu, xproto.Window(handle))
	if err != nil {
		return false, fmt.Errorf("failed to get window state: %w", err)
	}
	for _, state := range states {
		if state == stateFullscreen {
			return true, nil
		}
	}
	return false, nil
}

// SetFullscreen adds or removes _NET_WM_STATE_FULLSCREEN.
func (b *Backend) SetFullscreen(handle platform.WindowHandle, fullscreen bool) error {
	action := 0 // remove
	if fullscreen {
		action = 1 // add
	}
	if err := ewmh.WmStateReq(b.xu, xproto.Window(handle), action, stateFullscreen); err != nil {
		return fmt.Errorf("failed to change fullscreen state: %w", err)
	}
	return nil
}

// ListWindows enumerates normal, visible windows on the current desktop.
func (b *Backend) ListWindows() ([]platform.Window, error) {
	clients, err := ewmh.ClientListGet(b.xu)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	currentDesktop, desktopErr := ewmh.CurrentDesktopGet(b.xu)
	hasCurrentDesktop := desktopErr == nil

	windows := make([]platform.Window, 0, len(clients))
	for _, win := range clients {
		if !b.isNormalWindow(win) {
			continue
		}
		if hasCurrentDesktop {
			desktop, err := ewmh.WmDesktopGet(b.xu, win)
			// 0xFFFFFFFF marks a sticky window, visible everywhere.
			if err == nil && desktop != 0xFFFFFFFF && desktop != currentDesktop {
				continue
			}
		}
		if b.hasState(win, stateHidden) || b.hasState(win, stateFullscreen) {
			continue
		}
		rect, ok := b.windowRect(win)
		if !ok {
			continue
		}
		windows = append(windows, platform.Window{
			Handle: platform.WindowHandle(win),
			Title:  b.windowTitle(win),
			Class:  b.windowClass(win),
			Frame:  rect,
		})
	}
	return windows, nil
}

func (b *Backend) windowRect(win xproto.Window) (geometry.Rect, bool) {
	conn := b.xu.Conn()

	geom, err := xproto.GetGeometry(conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return geometry.Rect{}, false
	}
	translate, err := xproto.TranslateCoordinates(conn, win, b.root, 0, 0).Reply()
	if err != nil {
		return geometry.Rect{}, false
	}

	return geometry.Rect{
		X:      float64(translate.DstX),
		Y:      float64(translate.DstY),
		Width:  float64(geom.Width),
		Height: float64(geom.Height),
	}, true
}

func (b *Backend) unmaximize(win xproto.Window) {
	states, err := ewmh.WmStateGet(b.xu, win)
	if err != nil {
		return
	}
	for _, state := range states {
		if state == stateMaxHorz || state == stateMaxVert {
			ewmh.WmStateReq(b.xu, win, 0, state)
		}
	}
}

func (b *Backend) hasState(win xproto.Window, wanted string) bool {
	states, err := ewmh.WmStateGet(b.xu, win)
	if err != nil {
		return false
	}
	for _, state := range states {
		if state == wanted {
			return true
		}
	}
	return false
}

// isNormalWindow rejects docks, desktops, splash screens and notifications.
func (b *Backend) isNormalWindow(win xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(b.xu, win)
	if err != nil {
		return true
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}
	return len(types) == 0
}

func (b *Backend) windowTitle(win xproto.Window) string {
	if title, err := ewmh.WmNameGet(b.xu, win); err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	if title, err := icccm.WmNameGet(b.xu, win); err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}

func (b *Backend) windowClass(win xproto.Window) string {
	wmClass, err := icccm.WmClassGet(b.xu, win)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(wmClass.Class)
}
