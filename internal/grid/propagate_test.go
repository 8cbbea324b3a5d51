package grid

import (
	"testing"

	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
)

func TestComputePropagation_RightEdgeMovesNeighborLeftEdge(t *testing.T) {
	s := NewSnapshot([]WindowEntry{
		mkEntry(1, 0, 0, 500, 800),
		mkEntry(2, 500, 0, 500, 800),
	}, DefaultParams())

	oldFrame := geometry.Rect{X: 0, Y: 0, Width: 500, Height: 800}
	newFrame := geometry.Rect{X: 0, Y: 0, Width: 560, Height: 800}

	adjs := s.ComputePropagation(1, oldFrame, newFrame)
	if len(adjs) != 1 {
		t.Fatalf("expected 1 adjustment, got %d: %+v", len(adjs), adjs)
	}
	got := adjs[0]
	if got.ID != 2 {
		t.Fatalf("expected neighbor 2, got %d", got.ID)
	}
	// Neighbor's left edge follows the seam, far edge stays at 1000.
	want := geometry.Rect{X: 560, Y: 0, Width: 440, Height: 800}
	if got.Frame != want {
		t.Fatalf("expected %+v, got %+v", want, got.Frame)
	}
}

func TestComputePropagation_LeftEdgeMovesNeighborRightEdge(t *testing.T) {
	s := NewSnapshot([]WindowEntry{
		mkEntry(1, 0, 0, 500, 800),
		mkEntry(2, 500, 0, 500, 800),
	}, DefaultParams())

	// Window 2's left edge moves right by 40; window 1's width follows.
	oldFrame := geometry.Rect{X: 500, Y: 0, Width: 500, Height: 800}
	newFrame := geometry.Rect{X: 540, Y: 0, Width: 460, Height: 800}

	adjs := s.ComputePropagation(2, oldFrame, newFrame)
	if len(adjs) != 1 {
		t.Fatalf("expected 1 adjustment, got %d", len(adjs))
	}
	want := geometry.Rect{X: 0, Y: 0, Width: 540, Height: 800}
	if adjs[0].ID != 1 || adjs[0].Frame != want {
		t.Fatalf("expected window 1 -> %+v, got %d -> %+v", want, adjs[0].ID, adjs[0].Frame)
	}
}

func TestComputePropagation_HorizontalSeam(t *testing.T) {
	s := NewSnapshot([]WindowEntry{
		mkEntry(1, 0, 0, 800, 400),
		mkEntry(2, 0, 400, 800, 400),
	}, DefaultParams())

	// Upper window's bottom edge moves down 30.
	oldFrame := geometry.Rect{X: 0, Y: 0, Width: 800, Height: 400}
	newFrame := geometry.Rect{X: 0, Y: 0, Width: 800, Height: 430}

	adjs := s.ComputePropagation(1, oldFrame, newFrame)
	if len(adjs) != 1 {
		t.Fatalf("expected 1 adjustment, got %d", len(adjs))
	}
	want := geometry.Rect{X: 0, Y: 430, Width: 800, Height: 370}
	if adjs[0].ID != 2 || adjs[0].Frame != want {
		t.Fatalf("expected window 2 -> %+v, got %d -> %+v", want, adjs[0].ID, adjs[0].Frame)
	}
}

func TestComputePropagation_AdjustingWindowIsSuppressed(t *testing.T) {
	s := NewSnapshot([]WindowEntry{
		mkEntry(1, 0, 0, 500, 800),
		mkEntry(2, 500, 0, 500, 800),
	}, DefaultParams())

	s.MarkAdjusting(1)

	oldFrame := geometry.Rect{X: 0, Y: 0, Width: 500, Height: 800}
	newFrame := geometry.Rect{X: 0, Y: 0, Width: 560, Height: 800}
	if adjs := s.ComputePropagation(1, oldFrame, newFrame); adjs != nil {
		t.Fatalf("flagged window must not propagate, got %+v", adjs)
	}
}

func TestComputePropagation_SubPixelJitterIgnored(t *testing.T) {
	s := NewSnapshot([]WindowEntry{
		mkEntry(1, 0, 0, 500, 800),
		mkEntry(2, 500, 0, 500, 800),
	}, DefaultParams())

	oldFrame := geometry.Rect{X: 0, Y: 0, Width: 500, Height: 800}
	newFrame := geometry.Rect{X: 0, Y: 0, Width: 500.4, Height: 800}
	if adjs := s.ComputePropagation(1, oldFrame, newFrame); adjs != nil {
		t.Fatalf("sub-pixel change must not propagate, got %+v", adjs)
	}
}

func TestComputePropagation_MultipleBordersAccumulatePerNeighbor(t *testing.T) {
	// Three-row stack; the middle window grows on both ends.
	s := NewSnapshot([]WindowEntry{
		mkEntry(1, 0, 0, 800, 300),
		mkEntry(2, 0, 300, 800, 300),
		mkEntry(3, 0, 600, 800, 300),
	}, DefaultParams())

	oldFrame := geometry.Rect{X: 0, Y: 300, Width: 800, Height: 300}
	newFrame := geometry.Rect{X: 0, Y: 280, Width: 800, Height: 340} // top -20, bottom +20

	adjs := s.ComputePropagation(2, oldFrame, newFrame)
	if len(adjs) != 2 {
		t.Fatalf("expected 2 adjustments, got %d: %+v", len(adjs), adjs)
	}

	// Deterministic construction order: window 1 then window 3.
	wantTop := geometry.Rect{X: 0, Y: 0, Width: 800, Height: 280}
	wantBottom := geometry.Rect{X: 0, Y: 620, Width: 800, Height: 280}
	if adjs[0].ID != 1 || adjs[0].Frame != wantTop {
		t.Fatalf("expected window 1 -> %+v, got %d -> %+v", wantTop, adjs[0].ID, adjs[0].Frame)
	}
	if adjs[1].ID != 3 || adjs[1].Frame != wantBottom {
		t.Fatalf("expected window 3 -> %+v, got %d -> %+v", wantBottom, adjs[1].ID, adjs[1].Frame)
	}
}

func TestComputePropagation_DropsAdjustmentBelowMinimumDimension(t *testing.T) {
	s := NewSnapshot([]WindowEntry{
		mkEntry(1, 0, 0, 500, 800),
		mkEntry(2, 500, 0, 500, 800),
	}, DefaultParams())

	// Growing the left window to 1100 would leave the neighbor at -100.
	oldFrame := geometry.Rect{X: 0, Y: 0, Width: 500, Height: 800}
	newFrame := geometry.Rect{X: 0, Y: 0, Width: 1100, Height: 800}
	if adjs := s.ComputePropagation(1, oldFrame, newFrame); adjs != nil {
		t.Fatalf("adjustment below minimum dimension must be dropped, got %+v", adjs)
	}

	// Shrinking the neighbor to exactly the minimum is still allowed.
	newFrame = geometry.Rect{X: 0, Y: 0, Width: 800, Height: 800}
	adjs := s.ComputePropagation(1, oldFrame, newFrame)
	if len(adjs) != 1 {
		t.Fatalf("expected 1 adjustment at the minimum, got %d", len(adjs))
	}
	want := geometry.Rect{X: 800, Y: 0, Width: 200, Height: 800}
	if adjs[0].Frame != want {
		t.Fatalf("expected %+v, got %+v", want, adjs[0].Frame)
	}
}

func TestComputePropagation_MinimumDimensionDropsPerEdge(t *testing.T) {
	// Three-row stack with a short middle neighbor: the middle window's
	// bottom border can move but its top border would crush window 1.
	s := NewSnapshot([]WindowEntry{
		mkEntry(1, 0, 0, 800, 210),
		mkEntry(2, 0, 210, 800, 390),
		mkEntry(3, 0, 600, 800, 300),
	}, DefaultParams())

	oldFrame := geometry.Rect{X: 0, Y: 210, Width: 800, Height: 390}
	newFrame := geometry.Rect{X: 0, Y: 160, Width: 800, Height: 460} // top -50, bottom +20

	adjs := s.ComputePropagation(2, oldFrame, newFrame)
	if len(adjs) != 1 {
		t.Fatalf("expected only the valid edge to propagate, got %d: %+v", len(adjs), adjs)
	}
	want := geometry.Rect{X: 0, Y: 620, Width: 800, Height: 280}
	if adjs[0].ID != 3 || adjs[0].Frame != want {
		t.Fatalf("expected window 3 -> %+v, got %d -> %+v", want, adjs[0].ID, adjs[0].Frame)
	}
}

func TestApply_WritesFramesAndFlags(t *testing.T) {
	s := NewSnapshot([]WindowEntry{
		mkEntry(1, 0, 0, 500, 800),
		mkEntry(2, 500, 0, 500, 800),
	}, DefaultParams())

	want := geometry.Rect{X: 560, Y: 0, Width: 440, Height: 800}
	s.Apply([]Adjustment{{ID: 2, Frame: want}})

	got, _ := s.Frame(2)
	if got != want {
		t.Fatalf("expected frame %+v, got %+v", want, got)
	}
	if !s.IsAdjusting(2) {
		t.Fatalf("applied window must be flagged adjusting")
	}
}
