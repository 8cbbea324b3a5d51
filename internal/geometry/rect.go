package geometry

import "math"

// Rect describes a rectangular screen region. Coordinates use a top-left
// origin with Y growing downward, matching X11 screen coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MinX returns the left edge coordinate.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge coordinate.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MinY returns the top edge coordinate.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge coordinate.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Empty reports whether the rect has no usable area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX() && x < r.MaxX() && y >= r.MinY() && y < r.MaxY()
}

// OverlapX returns the length of the horizontal span shared by r and other.
// Zero or negative means the rects do not overlap on the X axis.
func (r Rect) OverlapX(other Rect) float64 {
	return math.Min(r.MaxX(), other.MaxX()) - math.Max(r.MinX(), other.MinX())
}

// OverlapY returns the length of the vertical span shared by r and other.
func (r Rect) OverlapY(other Rect) float64 {
	return math.Min(r.MaxY(), other.MaxY()) - math.Max(r.MinY(), other.MinY())
}

// ApproxEqual reports whether both rects match within tol on every edge.
func (r Rect) ApproxEqual(other Rect, tol float64) bool {
	return math.Abs(r.X-other.X) <= tol &&
		math.Abs(r.Y-other.Y) <= tol &&
		math.Abs(r.Width-other.Width) <= tol &&
		math.Abs(r.Height-other.Height) <= tol
}
