package doubletap

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

func newTestMachine() *Machine {
	return NewMachine(400*time.Millisecond, 500*time.Millisecond)
}

func TestCrossSideDoubleTapActivates(t *testing.T) {
	m := newTestMachine()

	if got := m.KeyDown(SideLeft, at(0)); got != ActionNone {
		t.Fatalf("first press: expected none, got %v", got)
	}
	if got := m.KeyUp(SideLeft, at(50)); got != ActionNone {
		t.Fatalf("first release: expected none, got %v", got)
	}
	if got := m.KeyDown(SideRight, at(200)); got != ActionActivated {
		t.Fatalf("opposite press within timeout: expected activated, got %v", got)
	}
	if side, active := m.Active(); !active || side != SideRight {
		t.Fatalf("expected active on right side, got side=%v active=%v", side, active)
	}
}

func TestSameSideRedownRestartsSequence(t *testing.T) {
	m := newTestMachine()

	m.KeyDown(SideLeft, at(0))
	m.KeyUp(SideLeft, at(50))
	if got := m.KeyDown(SideLeft, at(100)); got != ActionActivated {
		// Same side never activates; it becomes a fresh first press.
		if got != ActionNone {
			t.Fatalf("expected none, got %v", got)
		}
	} else {
		t.Fatalf("same-side redown must not activate")
	}

	// The restarted sequence can still complete on the opposite side.
	m.KeyUp(SideLeft, at(150))
	if got := m.KeyDown(SideRight, at(300)); got != ActionActivated {
		t.Fatalf("expected activation after restart, got %v", got)
	}
}

func TestOverlappingChordCancelsSequence(t *testing.T) {
	m := newTestMachine()

	// The right key goes down while the left is still held: a chord.
	m.KeyDown(SideLeft, at(0))
	if got := m.KeyDown(SideRight, at(50)); got != ActionNone {
		t.Fatalf("chord press: expected none, got %v", got)
	}
	if got := m.KeyUp(SideRight, at(100)); got != ActionNone {
		t.Fatalf("chord release: expected none, got %v", got)
	}

	// The cancelled sequence must not resurrect into an activation.
	if got := m.KeyDown(SideLeft, at(150)); got != ActionNone {
		t.Fatalf("press after cancelled chord: expected none, got %v", got)
	}
	if _, active := m.Active(); active {
		t.Fatalf("expected machine inactive after chord")
	}
}

func TestSameSideRepeatWhileHeldIsIgnored(t *testing.T) {
	m := newTestMachine()

	// Key autorepeat while held does not disturb the sequence.
	m.KeyDown(SideLeft, at(0))
	m.KeyDown(SideLeft, at(30))
	m.KeyUp(SideLeft, at(60))
	if got := m.KeyDown(SideRight, at(200)); got != ActionActivated {
		t.Fatalf("expected activation after autorepeat, got %v", got)
	}
}

func TestSecondPressPastTimeoutDoesNotActivate(t *testing.T) {
	m := newTestMachine()

	m.KeyDown(SideLeft, at(0))
	m.KeyUp(SideLeft, at(50))
	if got := m.KeyDown(SideRight, at(451)); got != ActionNone {
		t.Fatalf("expected no activation past the sequence timeout, got %v", got)
	}

	// But the late press is itself a valid first press.
	m.KeyUp(SideRight, at(500))
	if got := m.KeyDown(SideLeft, at(600)); got != ActionActivated {
		t.Fatalf("expected the late press to seed a new sequence, got %v", got)
	}
}

func TestQuickReleaseEmitsHoldReleased(t *testing.T) {
	m := newTestMachine()

	m.KeyDown(SideLeft, at(0))
	m.KeyUp(SideLeft, at(50))
	m.KeyDown(SideRight, at(200)) // activated at 200

	if got := m.KeyUp(SideRight, at(600)); got != ActionHoldReleased {
		t.Fatalf("release within hold threshold: expected hold-released, got %v", got)
	}
	if _, active := m.Active(); active {
		t.Fatalf("expected machine idle after release")
	}
}

func TestLongHoldReleaseIsToggle(t *testing.T) {
	m := newTestMachine()

	m.KeyDown(SideLeft, at(0))
	m.KeyUp(SideLeft, at(50))
	m.KeyDown(SideRight, at(200))

	// Held for 501ms past activation: toggle semantics, release emits nothing.
	if got := m.KeyUp(SideRight, at(701)); got != ActionNone {
		t.Fatalf("long hold release: expected none, got %v", got)
	}
}

func TestOtherKeyCancelsPendingSequenceOnly(t *testing.T) {
	m := newTestMachine()

	m.KeyDown(SideLeft, at(0))
	m.KeyUp(SideLeft, at(50))
	m.OtherKey(at(100))
	if got := m.KeyDown(SideRight, at(150)); got != ActionNone {
		t.Fatalf("expected cancelled sequence not to activate, got %v", got)
	}

	// An activated hold survives typing.
	m = newTestMachine()
	m.KeyDown(SideLeft, at(0))
	m.KeyUp(SideLeft, at(50))
	m.KeyDown(SideRight, at(200))
	m.OtherKey(at(300))
	if _, active := m.Active(); !active {
		t.Fatalf("typing must not cancel an activated hold")
	}
}

func TestReleaseOfOtherSideWhileActivatedIsIgnored(t *testing.T) {
	m := newTestMachine()

	m.KeyDown(SideLeft, at(0))
	m.KeyUp(SideLeft, at(50))
	m.KeyDown(SideRight, at(200))

	// The first key's release (left) arrives late; the hold continues.
	if got := m.KeyUp(SideLeft, at(250)); got != ActionNone {
		t.Fatalf("expected none for non-activating side release, got %v", got)
	}
	if _, active := m.Active(); !active {
		t.Fatalf("expected hold to continue")
	}
}
