// Package gesture interprets a stream of two-axis scroll deltas as a tile
// position using dead-zone plus dominant-axis classification.
package gesture

import (
	"math"

	"github.com/MisterMaroki/swipey-sub000/internal/tile"
)

// DefaultDeadZone is the accumulated distance a swipe must exceed before it
// can resolve to a position.
const DefaultDeadZone = 30

// State identifies where the machine is within one gesture.
type State int

const (
	StateIdle State = iota
	StateTracking
	StateResolved
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Machine converts scroll deltas into a resolved tile position. Callers own
// serialization: the machine is single-threaded and never blocks.
type Machine struct {
	state    State
	deadZone float64
	sumX     float64
	sumY     float64
	resolved tile.Position
}

// NewMachine creates a machine with the given dead zone. A zero or negative
// dead zone falls back to DefaultDeadZone.
func NewMachine(deadZone float64) *Machine {
	if deadZone <= 0 {
		deadZone = DefaultDeadZone
	}
	return &Machine{state: StateIdle, deadZone: deadZone}
}

// State returns the current machine state.
func (m *Machine) State() State { return m.state }

// Resolved returns the resolved position. The bool is false until the
// gesture has resolved.
func (m *Machine) Resolved() (tile.Position, bool) {
	if m.state != StateResolved {
		return tile.PositionNone, false
	}
	return m.resolved, true
}

// Begin starts tracking a new gesture, discarding any prior accumulation.
func (m *Machine) Begin() {
	m.state = StateTracking
	m.sumX = 0
	m.sumY = 0
	m.resolved = tile.PositionNone
}

// Feed accumulates one scroll delta. It only has effect while tracking:
// feeding before Begin or after resolution is a no-op. Resolution is sticky
// until Reset.
func (m *Machine) Feed(dx, dy float64) {
	if m.state != StateTracking {
		return
	}

	m.sumX += dx
	m.sumY += dy

	magnitude := math.Max(math.Abs(m.sumX), math.Abs(m.sumY))
	if magnitude <= m.deadZone {
		return
	}

	if math.Abs(m.sumY) > math.Abs(m.sumX) {
		// Vertical dominant. Only upward swipes resolve; downward is
		// reserved for the caller's restore handling and never resolves
		// from this machine.
		if m.sumY < 0 {
			m.resolve(tile.Maximize)
		}
		return
	}

	if m.sumX < 0 {
		m.resolve(tile.LeftHalf)
	} else if m.sumX > 0 {
		m.resolve(tile.RightHalf)
	}
}

// Reset returns the machine to idle and zeroes the accumulators.
func (m *Machine) Reset() {
	m.state = StateIdle
	m.sumX = 0
	m.sumY = 0
	m.resolved = tile.PositionNone
}

func (m *Machine) resolve(pos tile.Position) {
	m.state = StateResolved
	m.resolved = pos
}
