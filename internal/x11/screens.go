package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
	"github.com/MisterMaroki/swipey-sub000/internal/platform"
)

// Screens enumerates active monitors via XRandR, with each monitor's bounds
// intersected with the EWMH work area so panels and docks are excluded.
func (b *Backend) Screens() ([]platform.Screen, error) {
	if err := randr.Init(b.xu.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var screens []platform.Screen
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(b.xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("screen%d", i)
		if out, err := randr.GetOutputInfo(b.xu.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		bounds := geometry.Rect{
			X:      float64(info.X),
			Y:      float64(info.Y),
			Width:  float64(info.Width),
			Height: float64(info.Height),
		}

		screens = append(screens, platform.Screen{
			ID:           i,
			Name:         name,
			VisibleFrame: b.applyWorkArea(bounds),
		})
	}

	if len(screens) == 0 {
		return nil, fmt.Errorf("no active screens found")
	}
	return screens, nil
}

// VisibleFrameAt returns the visible area of the screen containing (x, y).
func (b *Backend) VisibleFrameAt(x, y float64) (geometry.Rect, error) {
	screens, err := b.Screens()
	if err != nil {
		return geometry.Rect{}, err
	}
	for _, s := range screens {
		if s.VisibleFrame.Contains(x, y) {
			return s.VisibleFrame, nil
		}
	}
	// Points in panel areas or between monitors fall back to the first
	// screen rather than failing the whole operation.
	return screens[0].VisibleFrame, nil
}

// VisibleFrameFor returns the visible area of the screen containing the
// window's center.
func (b *Backend) VisibleFrameFor(handle platform.WindowHandle) (geometry.Rect, error) {
	frame, err := b.Frame(handle)
	if err != nil {
		return geometry.Rect{}, err
	}
	cx := frame.X + frame.Width/2
	cy := frame.Y + frame.Height/2
	return b.VisibleFrameAt(cx, cy)
}

// applyWorkArea shrinks monitor bounds to the current desktop's work area
// when the two intersect; panels and docks reserve space there.
func (b *Backend) applyWorkArea(bounds geometry.Rect) geometry.Rect {
	workAreas, err := ewmh.WorkareaGet(b.xu)
	if err != nil || len(workAreas) == 0 {
		return bounds
	}

	idx := 0
	if current, err := ewmh.CurrentDesktopGet(b.xu); err == nil && int(current) < len(workAreas) {
		idx = int(current)
	}
	wa := workAreas[idx]

	work := geometry.Rect{
		X:      float64(wa.X),
		Y:      float64(wa.Y),
		Width:  float64(wa.Width),
		Height: float64(wa.Height),
	}

	// Intersect; an empty intersection means the work area belongs to a
	// different monitor, so keep the raw bounds.
	x0 := maxf(bounds.MinX(), work.MinX())
	y0 := maxf(bounds.MinY(), work.MinY())
	x1 := minf(bounds.MaxX(), work.MaxX())
	y1 := minf(bounds.MaxY(), work.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return bounds
	}
	return geometry.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
