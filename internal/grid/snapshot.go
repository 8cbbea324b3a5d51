// Package grid models a session of tiled windows, detects shared borders
// between them, and propagates resize operations across those borders.
package grid

import (
	"math"

	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
)

// WindowID is a stable identifier for a window for the lifetime of one grid
// session. It is a weak back-reference derived from an opaque platform
// handle; the snapshot never assumes it outlives the session.
type WindowID uint64

// Axis identifies the orientation of a shared edge.
type Axis int

const (
	// AxisVertical is an edge where a left window meets a right window.
	AxisVertical Axis = iota
	// AxisHorizontal is an edge where an upper window meets a lower one.
	AxisHorizontal
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// SharedEdge is a detected border where two windows meet within tolerance.
// The A/B convention is directional and load-bearing for propagation: for a
// vertical edge A is the window on the left (A's right edge meets B's left);
// for a horizontal edge A is above B (A's bottom meets B's top).
type SharedEdge struct {
	A          WindowID
	B          WindowID
	Axis       Axis
	Coordinate float64
	SpanStart  float64
	SpanEnd    float64
}

// WindowEntry is one window participating in a grid session.
type WindowEntry struct {
	ID    WindowID
	Frame geometry.Rect

	// adjusting flags a frame change originated by the engine itself, so
	// the next poll diff does not re-interpret it as an external move.
	adjusting bool
}

// Params tunes adjacency detection and drag behavior.
type Params struct {
	// EdgeTolerance is the maximum distance between two window edges for
	// them to count as one shared border.
	EdgeTolerance float64
	// OverlapThreshold is the minimum span the two windows must share on
	// the perpendicular axis; it rejects windows that merely touch at a
	// corner.
	OverlapThreshold float64
	// MinWindowDimension is the smallest width/height a drag may shrink a
	// window to on the resized axis.
	MinWindowDimension float64
	// SnapDetent is the capture radius around the 1/3, 1/2 and 2/3 screen
	// fractions when dragging a shared edge.
	SnapDetent float64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		EdgeTolerance:      6,
		OverlapThreshold:   10,
		MinWindowDimension: 200,
		SnapDetent:         10,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.EdgeTolerance <= 0 {
		p.EdgeTolerance = d.EdgeTolerance
	}
	if p.OverlapThreshold <= 0 {
		p.OverlapThreshold = d.OverlapThreshold
	}
	if p.MinWindowDimension <= 0 {
		p.MinWindowDimension = d.MinWindowDimension
	}
	if p.SnapDetent <= 0 {
		p.SnapDetent = d.SnapDetent
	}
	return p
}

// Snapshot owns the window set of one grid session and the shared edges
// derived from it at construction. It is mutated by a single session owner
// at a time; callers own serialization.
type Snapshot struct {
	params  Params
	order   []WindowID
	entries map[WindowID]*WindowEntry
	edges   []SharedEdge

	// One-shot snap signal state for interactive drags.
	snapArmed  bool
	snapTarget float64
}

// NewSnapshot builds a snapshot from the given window rectangles and runs
// pairwise adjacency detection. Window order is preserved for deterministic
// edge ordering. O(N²) pairs; grid sessions are bounded by on-screen window
// count.
func NewSnapshot(windows []WindowEntry, params Params) *Snapshot {
	s := &Snapshot{
		params:  params.withDefaults(),
		entries: make(map[WindowID]*WindowEntry, len(windows)),
	}
	for i := range windows {
		w := windows[i]
		if _, dup := s.entries[w.ID]; dup {
			continue
		}
		s.order = append(s.order, w.ID)
		s.entries[w.ID] = &WindowEntry{ID: w.ID, Frame: w.Frame}
	}
	s.detectEdges()
	return s
}

// detectEdges tests every unordered pair in both orientations per axis.
func (s *Snapshot) detectEdges() {
	for i := 0; i < len(s.order); i++ {
		for j := i + 1; j < len(s.order); j++ {
			a := s.entries[s.order[i]]
			b := s.entries[s.order[j]]

			if e, ok := s.verticalEdge(a, b); ok {
				s.edges = append(s.edges, e)
			} else if e, ok := s.verticalEdge(b, a); ok {
				s.edges = append(s.edges, e)
			}

			if e, ok := s.horizontalEdge(a, b); ok {
				s.edges = append(s.edges, e)
			} else if e, ok := s.horizontalEdge(b, a); ok {
				s.edges = append(s.edges, e)
			}
		}
	}
}

// verticalEdge tests whether left's right edge meets right's left edge.
func (s *Snapshot) verticalEdge(left, right *WindowEntry) (SharedEdge, bool) {
	if math.Abs(left.Frame.MaxX()-right.Frame.MinX()) > s.params.EdgeTolerance {
		return SharedEdge{}, false
	}
	overlap := left.Frame.OverlapY(right.Frame)
	if overlap < s.params.OverlapThreshold {
		return SharedEdge{}, false
	}
	return SharedEdge{
		A:          left.ID,
		B:          right.ID,
		Axis:       AxisVertical,
		Coordinate: (left.Frame.MaxX() + right.Frame.MinX()) / 2,
		SpanStart:  math.Max(left.Frame.MinY(), right.Frame.MinY()),
		SpanEnd:    math.Min(left.Frame.MaxY(), right.Frame.MaxY()),
	}, true
}

// horizontalEdge tests whether upper's bottom edge meets lower's top edge.
func (s *Snapshot) horizontalEdge(upper, lower *WindowEntry) (SharedEdge, bool) {
	if math.Abs(upper.Frame.MaxY()-lower.Frame.MinY()) > s.params.EdgeTolerance {
		return SharedEdge{}, false
	}
	overlap := upper.Frame.OverlapX(lower.Frame)
	if overlap < s.params.OverlapThreshold {
		return SharedEdge{}, false
	}
	return SharedEdge{
		A:          upper.ID,
		B:          lower.ID,
		Axis:       AxisHorizontal,
		Coordinate: (upper.Frame.MaxY() + lower.Frame.MinY()) / 2,
		SpanStart:  math.Max(upper.Frame.MinX(), lower.Frame.MinX()),
		SpanEnd:    math.Min(upper.Frame.MaxX(), lower.Frame.MaxX()),
	}, true
}

// Edges returns the shared edges detected at construction.
func (s *Snapshot) Edges() []SharedEdge {
	out := make([]SharedEdge, len(s.edges))
	copy(out, s.edges)
	return out
}

// Windows returns the current window entries in construction order.
func (s *Snapshot) Windows() []WindowEntry {
	out := make([]WindowEntry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.entries[id])
	}
	return out
}

// Frame returns a window's current frame. ok is false for unknown ids, so
// stale collaborator state degrades to a no-op rather than an error.
func (s *Snapshot) Frame(id WindowID) (geometry.Rect, bool) {
	e, ok := s.entries[id]
	if !ok {
		return geometry.Rect{}, false
	}
	return e.Frame, true
}

// SetFrame records a window's new frame in place. Unknown ids are ignored.
func (s *Snapshot) SetFrame(id WindowID, frame geometry.Rect) {
	if e, ok := s.entries[id]; ok {
		e.Frame = frame
	}
}

// MarkAdjusting flags windows whose frames the engine just wrote, so the
// next poll diff suppresses them.
func (s *Snapshot) MarkAdjusting(ids ...WindowID) {
	for _, id := range ids {
		if e, ok := s.entries[id]; ok {
			e.adjusting = true
		}
	}
}

// IsAdjusting reports whether the window is flagged as engine-adjusted.
func (s *Snapshot) IsAdjusting(id WindowID) bool {
	e, ok := s.entries[id]
	return ok && e.adjusting
}

// ClearAdjusting clears every adjustment flag. The poll loop calls this
// exactly once per tick, after the diff has consumed the flags and before
// new adjustments are applied, so each flag suppresses exactly one diff.
func (s *Snapshot) ClearAdjusting() {
	for _, e := range s.entries {
		e.adjusting = false
	}
}

// liveCoordinate returns the seam's current position from the live frames
// rather than the coordinate captured at construction, so successive drags
// track the seam as it moves.
func (s *Snapshot) liveCoordinate(e SharedEdge) float64 {
	a, okA := s.entries[e.A]
	b, okB := s.entries[e.B]
	if !okA || !okB {
		return e.Coordinate
	}
	if e.Axis == AxisVertical {
		return (a.Frame.MaxX() + b.Frame.MinX()) / 2
	}
	return (a.Frame.MaxY() + b.Frame.MinY()) / 2
}
