package grid

import (
	"math"

	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
)

// snapFractions are the screen-dimension fractions a dragged edge snaps to.
var snapFractions = [...]float64{1.0 / 3.0, 1.0 / 2.0, 2.0 / 3.0}

// DragResult is the outcome of one interactive drag step.
type DragResult struct {
	Adjustments []Adjustment
	// Snapped is true exactly once per snap target: the first drag step
	// that captures a new detent. Callers use it for a haptic-style cue.
	Snapped bool
}

// DragEdge applies an interactive drag of delta units to a shared edge.
// The delta is first snapped to the nearest of the 1/3, 1/2 and 2/3
// fractions of the screen dimension when within the snap detent radius,
// then applied to both sides of the active edge and to every other edge
// lying on the same coordinate within tolerance, so one shared border can
// resize all four quadrants at once. An adjustment that would shrink either
// window below the minimum dimension on the resized axis is skipped for
// that edge; other edges still propagate.
func (s *Snapshot) DragEdge(edge SharedEdge, delta float64, screen geometry.Rect) DragResult {
	live := s.liveCoordinate(edge)
	target := live + delta

	var screenStart, screenDim float64
	if edge.Axis == AxisVertical {
		screenStart, screenDim = screen.MinX(), screen.Width
	} else {
		screenStart, screenDim = screen.MinY(), screen.Height
	}

	snapped := false
	if screenDim > 0 {
		bestDist := math.Inf(1)
		bestDetent := 0.0
		for _, f := range snapFractions {
			detent := screenStart + screenDim*f
			if d := math.Abs(target - detent); d < bestDist {
				bestDist = d
				bestDetent = detent
			}
		}
		if bestDist <= s.params.SnapDetent {
			target = bestDetent
			if !s.snapArmed || s.snapTarget != bestDetent {
				snapped = true
			}
			s.snapArmed = true
			s.snapTarget = bestDetent
		} else {
			s.snapArmed = false
		}
	}

	delta = target - live
	if math.Abs(delta) <= 0 {
		return DragResult{Snapped: snapped}
	}

	pending := make(map[WindowID]geometry.Rect)
	var ordered []WindowID
	record := func(id WindowID, f geometry.Rect) {
		if _, dup := pending[id]; !dup {
			ordered = append(ordered, id)
		}
		pending[id] = f
	}

	for _, e := range s.edges {
		if e.Axis != edge.Axis {
			continue
		}
		if math.Abs(s.liveCoordinate(e)-live) > s.params.EdgeTolerance {
			continue
		}

		a, okA := s.entries[e.A]
		b, okB := s.entries[e.B]
		if !okA || !okB {
			continue
		}

		// Every co-linear edge carries the same delta, so each window's
		// target frame is its original frame moved once. A window that
		// borders two co-linear edges must not accumulate the delta twice.
		fa, fb := a.Frame, b.Frame
		if e.Axis == AxisVertical {
			if fa.Width+delta < s.params.MinWindowDimension ||
				fb.Width-delta < s.params.MinWindowDimension {
				continue
			}
			fa.Width += delta
			fb.X += delta
			fb.Width -= delta
		} else {
			if fa.Height+delta < s.params.MinWindowDimension ||
				fb.Height-delta < s.params.MinWindowDimension {
				continue
			}
			fa.Height += delta
			fb.Y += delta
			fb.Height -= delta
		}
		record(e.A, fa)
		record(e.B, fb)
	}

	out := make([]Adjustment, 0, len(ordered))
	for _, id := range ordered {
		out = append(out, Adjustment{ID: id, Frame: pending[id]})
	}
	return DragResult{Adjustments: out, Snapped: snapped}
}
