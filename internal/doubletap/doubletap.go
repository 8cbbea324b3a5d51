// Package doubletap distinguishes a fast double-tap-and-hold of a modifier
// key from a toggle tap, using only caller-supplied timestamps.
package doubletap

import "time"

// Timing defaults. SequenceTimeout bounds the gap between the first release
// and the second press; HoldThreshold bounds how long the second press may
// be held for its release to still count as "hold released" (longer holds
// behave as a toggle and emit nothing on release).
const (
	DefaultSequenceTimeout = 400 * time.Millisecond
	DefaultHoldThreshold   = 500 * time.Millisecond
)

// Side identifies which physical instance of the trigger key was pressed.
// The two sides are equivalent triggers but tracked separately so cross-side
// double-taps can be told apart from same-side re-presses.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

func (s Side) opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Action is the machine's output for one input event.
type Action int

const (
	// ActionNone means the event produced no user-visible effect.
	ActionNone Action = iota
	// ActionActivated fires when a cross-side double-tap completes.
	ActionActivated
	// ActionHoldReleased fires when the activating key is released within
	// the hold threshold: a momentary peek that should snap back.
	ActionHoldReleased
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionActivated:
		return "activated"
	case ActionHoldReleased:
		return "hold-released"
	default:
		return "none"
	}
}

type state int

const (
	stateIdle state = iota
	stateFirstKeyDown
	stateWaitingForSecond
	stateActivated
)

// Machine tracks asynchronous modifier key up/down ordering. All methods
// take the event timestamp; the machine never reads the wall clock, which
// keeps it deterministic under timing jitter and trivially testable.
type Machine struct {
	sequenceTimeout time.Duration
	holdThreshold   time.Duration

	state       state
	side        Side
	releaseTime time.Time
	activatedAt time.Time
}

// NewMachine creates a machine with the given timings. Non-positive values
// fall back to the defaults.
func NewMachine(sequenceTimeout, holdThreshold time.Duration) *Machine {
	if sequenceTimeout <= 0 {
		sequenceTimeout = DefaultSequenceTimeout
	}
	if holdThreshold <= 0 {
		holdThreshold = DefaultHoldThreshold
	}
	return &Machine{sequenceTimeout: sequenceTimeout, holdThreshold: holdThreshold}
}

// Active reports whether the machine is in the activated state, and for
// which side.
func (m *Machine) Active() (Side, bool) {
	return m.side, m.state == stateActivated
}

// KeyDown processes a press of the trigger key on the given side.
func (m *Machine) KeyDown(side Side, at time.Time) Action {
	switch m.state {
	case stateIdle:
		m.state = stateFirstKeyDown
		m.side = side
		return ActionNone

	case stateFirstKeyDown:
		// A second key going down while the first is still held is a
		// chord, not a tap sequence; cancel it. A same-side repeat is
		// the held key's autorepeat and changes nothing.
		if side != m.side {
			m.reset()
		}
		return ActionNone

	case stateWaitingForSecond:
		if side == m.side.opposite() && at.Sub(m.releaseTime) <= m.sequenceTimeout {
			m.state = stateActivated
			m.side = side
			m.activatedAt = at
			return ActionActivated
		}
		// Same-side redown, or opposite side past the timeout: a fresh
		// first press, never an activation.
		m.state = stateFirstKeyDown
		m.side = side
		return ActionNone

	case stateActivated:
		return ActionNone
	}
	return ActionNone
}

// KeyUp processes a release of the trigger key on the given side.
func (m *Machine) KeyUp(side Side, at time.Time) Action {
	switch m.state {
	case stateFirstKeyDown:
		if side != m.side {
			m.reset()
			return ActionNone
		}
		m.state = stateWaitingForSecond
		m.releaseTime = at
		return ActionNone

	case stateActivated:
		if side != m.side {
			return ActionNone
		}
		held := at.Sub(m.activatedAt)
		m.reset()
		if held <= m.holdThreshold {
			return ActionHoldReleased
		}
		// Toggle semantics: a long hold leaves the window expanded.
		return ActionNone
	}
	return ActionNone
}

// OtherKey processes any non-trigger key press, which cancels an in-flight
// tap sequence. An already-activated hold is not cancelled by typing.
func (m *Machine) OtherKey(time.Time) Action {
	if m.state == stateFirstKeyDown || m.state == stateWaitingForSecond {
		m.reset()
	}
	return ActionNone
}

// Reset returns the machine to idle, cancelling any in-flight sequence.
func (m *Machine) Reset() { m.reset() }

func (m *Machine) reset() {
	m.state = stateIdle
}
