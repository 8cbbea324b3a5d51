package grid

import (
	"math"

	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
)

// edgeMoveEpsilon is the minimum distance one of a window's edges must move
// for the change to propagate; it filters sub-pixel jitter from frame reads.
const edgeMoveEpsilon = 0.5

// Adjustment is one neighbor rectangle recomputed by propagation.
type Adjustment struct {
	ID    WindowID
	Frame geometry.Rect
}

// ComputePropagation computes the neighbor adjustments required after the
// given window's frame changed from oldFrame to newFrame. A window flagged
// as adjusting produces no output: the change was the engine's own write
// being read back, not an external move.
//
// For each moved border, the shared seam moves with it and the neighbor's
// far edge stays fixed. Multiple moved borders accumulate into a single
// adjustment per neighbor. An adjustment that would shrink the neighbor
// below MinWindowDimension is dropped for that edge.
func (s *Snapshot) ComputePropagation(id WindowID, oldFrame, newFrame geometry.Rect) []Adjustment {
	if s.IsAdjusting(id) {
		return nil
	}
	if _, ok := s.entries[id]; !ok {
		return nil
	}

	dLeft := newFrame.MinX() - oldFrame.MinX()
	dRight := newFrame.MaxX() - oldFrame.MaxX()
	dTop := newFrame.MinY() - oldFrame.MinY()
	dBottom := newFrame.MaxY() - oldFrame.MaxY()

	pending := make(map[WindowID]geometry.Rect)
	frameOf := func(wid WindowID) (geometry.Rect, bool) {
		if f, ok := pending[wid]; ok {
			return f, true
		}
		return s.Frame(wid)
	}

	for _, e := range s.edges {
		switch {
		case e.Axis == AxisVertical && e.A == id && math.Abs(dRight) > edgeMoveEpsilon:
			// Changed window's right edge moved; its right neighbor's
			// left edge follows, right edge stays.
			if f, ok := frameOf(e.B); ok && f.Width-dRight >= s.params.MinWindowDimension {
				f.X += dRight
				f.Width -= dRight
				pending[e.B] = f
			}

		case e.Axis == AxisVertical && e.B == id && math.Abs(dLeft) > edgeMoveEpsilon:
			// Changed window's left edge moved; its left neighbor's
			// right edge follows, left edge stays.
			if f, ok := frameOf(e.A); ok && f.Width+dLeft >= s.params.MinWindowDimension {
				f.Width += dLeft
				pending[e.A] = f
			}

		case e.Axis == AxisHorizontal && e.A == id && math.Abs(dBottom) > edgeMoveEpsilon:
			if f, ok := frameOf(e.B); ok && f.Height-dBottom >= s.params.MinWindowDimension {
				f.Y += dBottom
				f.Height -= dBottom
				pending[e.B] = f
			}

		case e.Axis == AxisHorizontal && e.B == id && math.Abs(dTop) > edgeMoveEpsilon:
			if f, ok := frameOf(e.A); ok && f.Height+dTop >= s.params.MinWindowDimension {
				f.Height += dTop
				pending[e.A] = f
			}
		}
	}

	if len(pending) == 0 {
		return nil
	}

	// Deterministic order for callers and tests.
	out := make([]Adjustment, 0, len(pending))
	for _, wid := range s.order {
		if f, ok := pending[wid]; ok {
			out = append(out, Adjustment{ID: wid, Frame: f})
		}
	}
	return out
}

// Apply writes the adjustments into the snapshot and flags each adjusted
// window, so the next poll diff does not echo the engine's own writes back
// through propagation.
func (s *Snapshot) Apply(adjustments []Adjustment) {
	for _, adj := range adjustments {
		s.SetFrame(adj.ID, adj.Frame)
		s.MarkAdjusting(adj.ID)
	}
}
