package grid

import (
	"testing"

	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
)

var dragScreen = geometry.Rect{X: 0, Y: 0, Width: 1200, Height: 900}

func twoColumns(t *testing.T) *Snapshot {
	t.Helper()
	return NewSnapshot([]WindowEntry{
		mkEntry(1, 0, 0, 600, 900),
		mkEntry(2, 600, 0, 600, 900),
	}, DefaultParams())
}

func TestDragEdge_MovesBothSides(t *testing.T) {
	s := twoColumns(t)
	edge := s.Edges()[0]

	// Move the seam from 600 to 570: off every detent (1/3=400, 1/2=600,
	// 2/3=800 are all further than the 10pt capture radius).
	res := s.DragEdge(edge, -30, dragScreen)
	if len(res.Adjustments) != 2 {
		t.Fatalf("expected 2 adjustments, got %d: %+v", len(res.Adjustments), res.Adjustments)
	}
	if res.Snapped {
		t.Fatalf("expected no snap at 570")
	}

	wantA := geometry.Rect{X: 0, Y: 0, Width: 570, Height: 900}
	wantB := geometry.Rect{X: 570, Y: 0, Width: 630, Height: 900}
	if res.Adjustments[0].Frame != wantA || res.Adjustments[1].Frame != wantB {
		t.Fatalf("unexpected frames: %+v", res.Adjustments)
	}
}

func TestDragEdge_SnapsToScreenFractions(t *testing.T) {
	s := twoColumns(t)
	edge := s.Edges()[0]

	// Target 594 is within the 10pt detent radius of 1/2 (600): the edge
	// snaps back to exactly 600, producing no movement but arming the detent.
	res := s.DragEdge(edge, -6, dragScreen)
	if !res.Snapped {
		t.Fatalf("expected snap signal on first capture")
	}
	if len(res.Adjustments) != 0 {
		t.Fatalf("snapping back to the current seam must not move windows, got %+v", res.Adjustments)
	}
}

func TestDragEdge_SnapSignalsOncePerDetent(t *testing.T) {
	s := twoColumns(t)
	edge := s.Edges()[0]

	if res := s.DragEdge(edge, -6, dragScreen); !res.Snapped {
		t.Fatalf("first capture must signal")
	}
	// Still inside the same detent: no second signal.
	if res := s.DragEdge(edge, 3, dragScreen); res.Snapped {
		t.Fatalf("repeat capture of the same detent must not signal")
	}

	// Leave the detent, then come back: signals again.
	s.Apply(s.DragEdge(edge, -50, dragScreen).Adjustments)
	if res := s.DragEdge(edge, 45, dragScreen); !res.Snapped {
		t.Fatalf("recapture after leaving the detent must signal")
	}
}

func TestDragEdge_RejectsBelowMinimumDimension(t *testing.T) {
	s := twoColumns(t)
	edge := s.Edges()[0]

	// Dragging the seam to 150 would leave window 1 at 150 wide, below the
	// 200 minimum: the whole edge is skipped.
	res := s.DragEdge(edge, -450, dragScreen)
	if len(res.Adjustments) != 0 {
		t.Fatalf("expected drag below minimum to be rejected, got %+v", res.Adjustments)
	}
}

func TestDragEdge_MovesColinearEdgesTogether(t *testing.T) {
	// 2x2 grid: dragging one vertical edge resizes all four quadrants.
	s := NewSnapshot([]WindowEntry{
		mkEntry(1, 0, 0, 600, 450),
		mkEntry(2, 600, 0, 600, 450),
		mkEntry(3, 0, 450, 600, 450),
		mkEntry(4, 600, 450, 600, 450),
	}, DefaultParams())

	var vertical SharedEdge
	found := false
	for _, e := range s.Edges() {
		if e.Axis == AxisVertical {
			vertical = e
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a vertical edge in the quadrant grid")
	}

	res := s.DragEdge(vertical, -30, dragScreen)
	if len(res.Adjustments) != 4 {
		t.Fatalf("expected all 4 quadrants adjusted, got %d: %+v", len(res.Adjustments), res.Adjustments)
	}
	for _, adj := range res.Adjustments {
		switch adj.ID {
		case 1, 3:
			if adj.Frame.Width != 570 {
				t.Fatalf("left window %d: expected width 570, got %v", adj.ID, adj.Frame.Width)
			}
		case 2, 4:
			if adj.Frame.X != 570 || adj.Frame.Width != 630 {
				t.Fatalf("right window %d: expected x=570 width=630, got %+v", adj.ID, adj.Frame)
			}
		}
	}
}

func TestDragEdge_SuccessiveDragsTrackTheLiveSeam(t *testing.T) {
	s := twoColumns(t)
	edge := s.Edges()[0]

	first := s.DragEdge(edge, -30, dragScreen)
	s.Apply(first.Adjustments)

	// The second drag is relative to the moved seam (570), not the captured
	// coordinate (600).
	second := s.DragEdge(edge, -20, dragScreen)
	if len(second.Adjustments) != 2 {
		t.Fatalf("expected 2 adjustments, got %d", len(second.Adjustments))
	}
	if w := second.Adjustments[0].Frame.Width; w != 550 {
		t.Fatalf("expected left width 550 after successive drags, got %v", w)
	}
}
