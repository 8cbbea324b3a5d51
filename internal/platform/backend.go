// Package platform abstracts the window-system operations the tiling engine
// consumes. Implementations live in platform-specific packages; the engine
// itself only ever holds rectangles and opaque handles.
package platform

import "github.com/MisterMaroki/swipey-sub000/internal/geometry"

// WindowHandle is an opaque platform window identifier.
type WindowHandle uint32

// Window is a top-level window with its current geometry.
type Window struct {
	Handle WindowHandle
	Title  string
	Class  string
	Frame  geometry.Rect
}

// Screen describes one display's usable work area.
type Screen struct {
	ID           int
	Name         string
	VisibleFrame geometry.Rect
}

// Backend is the capability set the engine consumes. All calls are
// synchronous. Absence (no window under a point, a handle gone stale) is
// reported through the bool/error returns; the engine treats it as stale
// state and degrades to a no-op.
type Backend interface {
	// WindowUnderPoint hit-tests the screen for a gesture start point.
	WindowUnderPoint(x, y float64) (WindowHandle, bool, error)

	// ActiveWindow returns the currently focused window.
	ActiveWindow() (WindowHandle, error)

	// Frame reads a window's current geometry in screen coordinates.
	Frame(handle WindowHandle) (geometry.Rect, error)

	// SetFrame moves and resizes a window.
	SetFrame(handle WindowHandle, frame geometry.Rect) error

	// IsFullscreen reports whether the window is fullscreen.
	IsFullscreen(handle WindowHandle) (bool, error)

	// SetFullscreen enters or exits fullscreen for a window.
	SetFullscreen(handle WindowHandle, fullscreen bool) error

	// VisibleFrameAt returns the usable area of the screen containing the
	// point.
	VisibleFrameAt(x, y float64) (geometry.Rect, error)

	// VisibleFrameFor returns the usable area of the screen containing
	// the window.
	VisibleFrameFor(handle WindowHandle) (geometry.Rect, error)

	// ListWindows enumerates on-screen windows for grid discovery.
	ListWindows() ([]Window, error)
}
