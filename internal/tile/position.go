package tile

import (
	"fmt"

	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
)

// Position is a canonical screen-region layout a window can snap to.
type Position int

const (
	// PositionNone is the zero value and means "untiled".
	PositionNone Position = iota
	Maximize
	LeftHalf
	RightHalf
	TopHalf
	BottomHalf
	TopLeftQuarter
	TopRightQuarter
	BottomLeftQuarter
	BottomRightQuarter
	// Fullscreen and Restore are actions, not frame-bearing states.
	Fullscreen
	Restore
)

// String returns the position name used by the CLI, IPC and config layers.
func (p Position) String() string {
	switch p {
	case PositionNone:
		return "none"
	case Maximize:
		return "maximize"
	case LeftHalf:
		return "left-half"
	case RightHalf:
		return "right-half"
	case TopHalf:
		return "top-half"
	case BottomHalf:
		return "bottom-half"
	case TopLeftQuarter:
		return "top-left-quarter"
	case TopRightQuarter:
		return "top-right-quarter"
	case BottomLeftQuarter:
		return "bottom-left-quarter"
	case BottomRightQuarter:
		return "bottom-right-quarter"
	case Fullscreen:
		return "fullscreen"
	case Restore:
		return "restore"
	default:
		return "unknown"
	}
}

// ParsePosition converts a position name back to a Position.
func ParsePosition(name string) (Position, error) {
	switch name {
	case "maximize":
		return Maximize, nil
	case "left-half":
		return LeftHalf, nil
	case "right-half":
		return RightHalf, nil
	case "top-half":
		return TopHalf, nil
	case "bottom-half":
		return BottomHalf, nil
	case "top-left-quarter":
		return TopLeftQuarter, nil
	case "top-right-quarter":
		return TopRightQuarter, nil
	case "bottom-left-quarter":
		return BottomLeftQuarter, nil
	case "bottom-right-quarter":
		return BottomRightQuarter, nil
	case "fullscreen":
		return Fullscreen, nil
	case "restore":
		return Restore, nil
	default:
		return PositionNone, fmt.Errorf("unknown tile position %q", name)
	}
}

// NeedsFrame reports whether the position maps to a target rectangle.
// Fullscreen and Restore are handled by the orchestration layer and carry
// no frame of their own; callers must branch on this before calling Frame.
func (p Position) NeedsFrame() bool {
	switch p {
	case PositionNone, Fullscreen, Restore:
		return false
	default:
		return true
	}
}

// Frame computes the target rectangle for the position within visible,
// leaving margin around the outside and gap between adjacent tiles. The gap
// is centered on each seam: two tiles sharing a seam end up exactly gap
// apart. Pure function; positions without a frame return the zero Rect.
func (p Position) Frame(visible geometry.Rect, margin, gap float64) geometry.Rect {
	if !p.NeedsFrame() {
		return geometry.Rect{}
	}

	full := geometry.Rect{
		X:      visible.X + margin,
		Y:      visible.Y + margin,
		Width:  visible.Width - 2*margin,
		Height: visible.Height - 2*margin,
	}

	halfW := (visible.Width - 2*margin - gap) / 2
	halfH := (visible.Height - 2*margin - gap) / 2
	rightX := full.X + halfW + gap
	bottomY := full.Y + halfH + gap

	switch p {
	case Maximize:
		return full
	case LeftHalf:
		return geometry.Rect{X: full.X, Y: full.Y, Width: halfW, Height: full.Height}
	case RightHalf:
		return geometry.Rect{X: rightX, Y: full.Y, Width: halfW, Height: full.Height}
	case TopHalf:
		return geometry.Rect{X: full.X, Y: full.Y, Width: full.Width, Height: halfH}
	case BottomHalf:
		return geometry.Rect{X: full.X, Y: bottomY, Width: full.Width, Height: halfH}
	case TopLeftQuarter:
		return geometry.Rect{X: full.X, Y: full.Y, Width: halfW, Height: halfH}
	case TopRightQuarter:
		return geometry.Rect{X: rightX, Y: full.Y, Width: halfW, Height: halfH}
	case BottomLeftQuarter:
		return geometry.Rect{X: full.X, Y: bottomY, Width: halfW, Height: halfH}
	case BottomRightQuarter:
		return geometry.Rect{X: rightX, Y: bottomY, Width: halfW, Height: halfH}
	}
	return geometry.Rect{}
}
