package tile

import (
	"testing"

	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
)

var zoomScreen = geometry.Rect{X: 0, Y: 0, Width: 1000, Height: 800}

func TestExpandedFrame_LeftHalfPinsLeftEdge(t *testing.T) {
	tileFrame := LeftHalf.Frame(zoomScreen, 0, 0) // 500x800 at (0,0)

	got := ExpandedFrame(tileFrame, LeftHalf, zoomScreen)

	// Width grows 500*1.5=750; height 800*1.5 caps at 800.
	if got.Width != 750 {
		t.Fatalf("expected width 750, got %v", got.Width)
	}
	if got.Height != 800 {
		t.Fatalf("expected height capped at 800, got %v", got.Height)
	}
	if got.MinX() != tileFrame.MinX() {
		t.Fatalf("left edge must stay pinned: expected %v, got %v", tileFrame.MinX(), got.MinX())
	}
}

func TestExpandedFrame_BottomRightQuarterPinsOuterCorner(t *testing.T) {
	tileFrame := BottomRightQuarter.Frame(zoomScreen, 0, 0) // 500x400 at (500,400)

	got := ExpandedFrame(tileFrame, BottomRightQuarter, zoomScreen)

	if got.Width != 750 || got.Height != 600 {
		t.Fatalf("expected 750x600, got %vx%v", got.Width, got.Height)
	}
	if got.MaxX() != tileFrame.MaxX() || got.MaxY() != tileFrame.MaxY() {
		t.Fatalf("bottom-right corner must stay pinned: got max (%v, %v)", got.MaxX(), got.MaxY())
	}
}

func TestExpandedFrame_TopHalfCentersHorizontally(t *testing.T) {
	tileFrame := TopHalf.Frame(zoomScreen, 0, 0) // 1000x400 at (0,0)

	got := ExpandedFrame(tileFrame, TopHalf, zoomScreen)

	// Width caps at 1000, height grows to 600. Top edge pinned.
	if got.Width != 1000 || got.Height != 600 {
		t.Fatalf("expected 1000x600, got %vx%v", got.Width, got.Height)
	}
	if got.MinY() != 0 {
		t.Fatalf("top edge must stay pinned, got %v", got.MinY())
	}
	if got.MinX() != 0 {
		t.Fatalf("capped width must stay on screen, got x=%v", got.MinX())
	}
}

func TestExpandedFrame_StaysWithinScreen(t *testing.T) {
	// A quarter near the screen edge: the expanded frame must be translated
	// back inside, never overflow.
	screen := geometry.Rect{X: 0, Y: 0, Width: 1200, Height: 900}
	for _, pos := range []Position{
		LeftHalf, RightHalf, TopHalf, BottomHalf,
		TopLeftQuarter, TopRightQuarter, BottomLeftQuarter, BottomRightQuarter,
	} {
		frame := pos.Frame(screen, 8, 8)
		got := ExpandedFrame(frame, pos, screen)
		if got.MinX() < screen.MinX() || got.MaxX() > screen.MaxX() ||
			got.MinY() < screen.MinY() || got.MaxY() > screen.MaxY() {
			t.Fatalf("%s: expanded frame %+v escapes screen %+v", pos, got, screen)
		}
	}
}

func TestExpandedFrame_IdentityForFramelessPositions(t *testing.T) {
	frame := geometry.Rect{X: 10, Y: 10, Width: 100, Height: 100}
	for _, pos := range []Position{Maximize, Fullscreen, Restore, PositionNone} {
		if got := ExpandedFrame(frame, pos, zoomScreen); got != frame {
			t.Fatalf("%s: expected identity, got %+v", pos, got)
		}
	}
}
