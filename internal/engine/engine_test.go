package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/MisterMaroki/swipey-sub000/internal/config"
	"github.com/MisterMaroki/swipey-sub000/internal/doubletap"
	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
	"github.com/MisterMaroki/swipey-sub000/internal/platform"
	"github.com/MisterMaroki/swipey-sub000/internal/tile"
)

// fakeBackend is an in-memory platform.Backend for engine tests.
type fakeBackend struct {
	screen     geometry.Rect
	active     platform.WindowHandle
	frames     map[platform.WindowHandle]geometry.Rect
	fullscreen map[platform.WindowHandle]bool
	windows    []platform.Window
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		screen:     geometry.Rect{X: 0, Y: 0, Width: 1000, Height: 800},
		frames:     make(map[platform.WindowHandle]geometry.Rect),
		fullscreen: make(map[platform.WindowHandle]bool),
	}
}

func (b *fakeBackend) addWindow(h platform.WindowHandle, frame geometry.Rect) {
	b.frames[h] = frame
	b.windows = append(b.windows, platform.Window{Handle: h, Frame: frame})
}

func (b *fakeBackend) WindowUnderPoint(x, y float64) (platform.WindowHandle, bool, error) {
	for h, f := range b.frames {
		if f.Contains(x, y) {
			return h, true, nil
		}
	}
	return 0, false, nil
}

func (b *fakeBackend) ActiveWindow() (platform.WindowHandle, error) {
	if b.active == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return b.active, nil
}

func (b *fakeBackend) Frame(h platform.WindowHandle) (geometry.Rect, error) {
	f, ok := b.frames[h]
	if !ok {
		return geometry.Rect{}, fmt.Errorf("unknown window %d", h)
	}
	return f, nil
}

func (b *fakeBackend) SetFrame(h platform.WindowHandle, frame geometry.Rect) error {
	if _, ok := b.frames[h]; !ok {
		return fmt.Errorf("unknown window %d", h)
	}
	b.frames[h] = frame
	return nil
}

func (b *fakeBackend) IsFullscreen(h platform.WindowHandle) (bool, error) {
	return b.fullscreen[h], nil
}

func (b *fakeBackend) SetFullscreen(h platform.WindowHandle, fs bool) error {
	b.fullscreen[h] = fs
	return nil
}

func (b *fakeBackend) VisibleFrameAt(x, y float64) (geometry.Rect, error) {
	return b.screen, nil
}

func (b *fakeBackend) VisibleFrameFor(h platform.WindowHandle) (geometry.Rect, error) {
	return b.screen, nil
}

func (b *fakeBackend) ListWindows() ([]platform.Window, error) {
	out := make([]platform.Window, len(b.windows))
	for i, w := range b.windows {
		w.Frame = b.frames[w.Handle]
		out[i] = w
	}
	return out, nil
}

func newTestEngine(t *testing.T) (*Engine, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	return New(backend, config.DefaultConfig(), nil), backend
}

func TestHandleArrow_TilesUntiledWindow(t *testing.T) {
	eng, backend := newTestEngine(t)
	backend.addWindow(1, geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300})
	backend.active = 1

	eng.HandleArrow(tile.DirLeft)

	want := tile.LeftHalf.Frame(backend.screen, 8, 8)
	if got := backend.frames[1]; got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestHandleArrow_WalksTransitionTable(t *testing.T) {
	eng, backend := newTestEngine(t)
	backend.addWindow(1, geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300})
	backend.active = 1

	eng.HandleArrow(tile.DirLeft) // left-half
	eng.HandleArrow(tile.DirUp)   // top-left-quarter

	want := tile.TopLeftQuarter.Frame(backend.screen, 8, 8)
	if got := backend.frames[1]; got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestHandleArrow_UnmappedIsNoOp(t *testing.T) {
	eng, backend := newTestEngine(t)
	original := geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300}
	backend.addWindow(1, original)
	backend.active = 1

	// Down on an untiled window has no transition.
	eng.HandleArrow(tile.DirDown)
	if got := backend.frames[1]; got != original {
		t.Fatalf("expected untouched frame, got %+v", got)
	}
}

func TestRestore_ReturnsToPreTilingFrame(t *testing.T) {
	eng, backend := newTestEngine(t)
	original := geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300}
	backend.addWindow(1, original)
	backend.active = 1

	eng.HandleArrow(tile.DirUp)   // maximize
	eng.HandleArrow(tile.DirDown) // restore

	if got := backend.frames[1]; got != original {
		t.Fatalf("expected restore to %+v, got %+v", original, got)
	}
	if eng.TiledCount() != 0 {
		t.Fatalf("expected record dropped after restore")
	}
}

func TestFullscreenTransitions(t *testing.T) {
	eng, backend := newTestEngine(t)
	backend.addWindow(1, geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300})
	backend.active = 1

	eng.HandleArrow(tile.DirUp) // maximize
	eng.HandleArrow(tile.DirUp) // fullscreen
	if !backend.fullscreen[1] {
		t.Fatalf("expected window fullscreen")
	}

	eng.HandleArrow(tile.DirDown) // restore
	if backend.fullscreen[1] {
		t.Fatalf("expected fullscreen exited on restore")
	}
}

func TestGesture_ResolvesAndApplies(t *testing.T) {
	eng, backend := newTestEngine(t)
	backend.addWindow(1, geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300})

	if !eng.BeginGesture(200, 200) {
		t.Fatalf("expected a window under the point")
	}
	eng.FeedGesture(-40, 0)
	eng.EndGesture()

	want := tile.LeftHalf.Frame(backend.screen, 8, 8)
	if got := backend.frames[1]; got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestGesture_NoWindowUnderPoint(t *testing.T) {
	eng, _ := newTestEngine(t)
	if eng.BeginGesture(5000, 5000) {
		t.Fatalf("expected no window under the point")
	}
	if eng.GestureActive() {
		t.Fatalf("expected no live session")
	}
}

func TestGesture_DownSwipeRestoresTiledWindow(t *testing.T) {
	eng, backend := newTestEngine(t)
	original := geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300}
	backend.addWindow(1, original)
	backend.active = 1

	eng.HandleArrow(tile.DirLeft) // tile it first

	if !eng.BeginGesture(50, 200) {
		t.Fatalf("expected tiled window under the point")
	}
	eng.FeedGesture(0, 60)
	eng.EndGesture()

	if got := backend.frames[1]; got != original {
		t.Fatalf("expected down-swipe restore to %+v, got %+v", original, got)
	}
}

func TestGesture_DownSwipeOnUntiledWindowIsNoOp(t *testing.T) {
	eng, backend := newTestEngine(t)
	original := geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300}
	backend.addWindow(1, original)

	eng.BeginGesture(200, 200)
	eng.FeedGesture(0, 60)
	eng.EndGesture()

	if got := backend.frames[1]; got != original {
		t.Fatalf("expected untouched frame, got %+v", got)
	}
}

func TestZoomToggle_ExpandAndCollapse(t *testing.T) {
	eng, backend := newTestEngine(t)
	backend.addWindow(1, geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300})
	backend.active = 1

	eng.HandleArrow(tile.DirLeft)
	tiled := backend.frames[1]

	// Cross-side double-tap activates and expands.
	base := time.Now()
	eng.ModifierDown(doubletap.SideLeft, base)
	eng.ModifierUp(doubletap.SideLeft, base.Add(50*time.Millisecond))
	eng.ModifierDown(doubletap.SideRight, base.Add(200*time.Millisecond))

	expanded := backend.frames[1]
	if expanded == tiled {
		t.Fatalf("expected expansion to change the frame")
	}
	if expanded.Width <= tiled.Width {
		t.Fatalf("expected wider frame, got %v <= %v", expanded.Width, tiled.Width)
	}
	if expanded.MinX() != tiled.MinX() {
		t.Fatalf("left-half zoom must pin the left edge")
	}

	// Quick release collapses back to the tile frame.
	eng.ModifierUp(doubletap.SideRight, base.Add(400*time.Millisecond))
	if got := backend.frames[1]; got != tiled {
		t.Fatalf("expected collapse to %+v, got %+v", tiled, got)
	}
}

func TestZoomToggle_LongHoldStaysExpanded(t *testing.T) {
	eng, backend := newTestEngine(t)
	backend.addWindow(1, geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300})
	backend.active = 1

	eng.HandleArrow(tile.DirLeft)

	base := time.Now()
	eng.ModifierDown(doubletap.SideLeft, base)
	eng.ModifierUp(doubletap.SideLeft, base.Add(50*time.Millisecond))
	eng.ModifierDown(doubletap.SideRight, base.Add(200*time.Millisecond))
	expanded := backend.frames[1]

	// Released past the hold threshold: the window stays expanded.
	eng.ModifierUp(doubletap.SideRight, base.Add(900*time.Millisecond))
	if got := backend.frames[1]; got != expanded {
		t.Fatalf("expected frame to stay expanded, got %+v", got)
	}

	// A second double-tap toggles it back.
	eng.ModifierDown(doubletap.SideLeft, base.Add(1000*time.Millisecond))
	eng.ModifierUp(doubletap.SideLeft, base.Add(1050*time.Millisecond))
	eng.ModifierDown(doubletap.SideRight, base.Add(1200*time.Millisecond))
	want := tile.LeftHalf.Frame(backend.screen, 8, 8)
	if got := backend.frames[1]; got != want {
		t.Fatalf("expected collapse on second toggle, got %+v", got)
	}
}

func TestZoomToggle_IgnoresUntiledWindow(t *testing.T) {
	eng, backend := newTestEngine(t)
	original := geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300}
	backend.addWindow(1, original)
	backend.active = 1

	base := time.Now()
	eng.ModifierDown(doubletap.SideLeft, base)
	eng.ModifierUp(doubletap.SideLeft, base.Add(50*time.Millisecond))
	eng.ModifierDown(doubletap.SideRight, base.Add(200*time.Millisecond))

	if got := backend.frames[1]; got != original {
		t.Fatalf("zoom must not touch untiled windows, got %+v", got)
	}
}

func TestStatus_ReportsTiledWindows(t *testing.T) {
	eng, backend := newTestEngine(t)
	backend.addWindow(1, geometry.Rect{X: 100, Y: 100, Width: 400, Height: 300})
	backend.active = 1

	eng.HandleArrow(tile.DirLeft)

	st := eng.Status()
	if st.TiledWindows != 1 {
		t.Fatalf("expected 1 tiled window, got %d", st.TiledWindows)
	}
	if st.GridActive || st.GestureActive {
		t.Fatalf("expected no active sessions, got %+v", st)
	}
}
