package tile

import "github.com/MisterMaroki/swipey-sub000/internal/geometry"

// ZoomGrowthFactor is how much each dimension of a tiled frame grows when
// the window is zoomed, before clamping to the visible frame.
const ZoomGrowthFactor = 1.5

// ExpandedFrame computes the anchored, screen-clamped zoomed rectangle for a
// tiled window. Each dimension grows by ZoomGrowthFactor capped at the
// visible frame, then the result is anchored to the corner or edge implied
// by the tile position: quarters keep their outer corner fixed, halves keep
// their outer edge fixed and re-center on the perpendicular axis. Maximize,
// Fullscreen and Restore return the tile frame unchanged.
func ExpandedFrame(tileFrame geometry.Rect, pos Position, visible geometry.Rect) geometry.Rect {
	switch pos {
	case Maximize, Fullscreen, Restore, PositionNone:
		return tileFrame
	}

	w := tileFrame.Width * ZoomGrowthFactor
	if w > visible.Width {
		w = visible.Width
	}
	h := tileFrame.Height * ZoomGrowthFactor
	if h > visible.Height {
		h = visible.Height
	}

	out := geometry.Rect{Width: w, Height: h}

	// Horizontal anchor.
	switch pos {
	case LeftHalf, TopLeftQuarter, BottomLeftQuarter:
		out.X = tileFrame.MinX()
	case RightHalf, TopRightQuarter, BottomRightQuarter:
		out.X = tileFrame.MaxX() - w
	case TopHalf, BottomHalf:
		out.X = tileFrame.X + (tileFrame.Width-w)/2
	}

	// Vertical anchor.
	switch pos {
	case TopHalf, TopLeftQuarter, TopRightQuarter:
		out.Y = tileFrame.MinY()
	case BottomHalf, BottomLeftQuarter, BottomRightQuarter:
		out.Y = tileFrame.MaxY() - h
	case LeftHalf, RightHalf:
		out.Y = tileFrame.Y + (tileFrame.Height-h)/2
	}

	return clampInto(out, visible)
}

// clampInto translates r so it lies fully inside bounds. Translation only;
// the rect is never shrunk (callers cap dimensions beforehand).
func clampInto(r, bounds geometry.Rect) geometry.Rect {
	if r.MinX() < bounds.MinX() {
		r.X = bounds.MinX()
	}
	if r.MaxX() > bounds.MaxX() {
		r.X = bounds.MaxX() - r.Width
	}
	if r.MinY() < bounds.MinY() {
		r.Y = bounds.MinY()
	}
	if r.MaxY() > bounds.MaxY() {
		r.Y = bounds.MaxY() - r.Height
	}
	return r
}
