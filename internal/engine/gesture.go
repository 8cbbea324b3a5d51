package engine

import (
	"github.com/MisterMaroki/swipey-sub000/internal/gesture"
)

// BeginGesture starts a swipe session over the window under the pointer.
// Returns false when no tileable window sits under the point.
func (e *Engine) BeginGesture(x, y float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	handle, ok, err := e.backend.WindowUnderPoint(x, y)
	if err != nil || !ok {
		e.logger.Debug("gesture: no window under point", "x", x, "y", y, "error", err)
		return false
	}

	e.gestureTarget = handle
	e.gestureLive = true
	e.gestureSumX = 0
	e.gestureSumY = 0
	e.swipe.Begin()
	return true
}

// FeedGesture accumulates one movement delta. The first resolution applies
// the tile immediately; later deltas in the same session are ignored.
func (e *Engine) FeedGesture(dx, dy float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gestureLive {
		return
	}

	wasResolved := e.swipe.State() == gesture.StateResolved
	e.swipe.Feed(dx, dy)
	e.gestureSumX += dx
	e.gestureSumY += dy

	if wasResolved {
		return
	}
	pos, ok := e.swipe.Resolved()
	if !ok {
		return
	}
	e.logger.Debug("gesture resolved", "window", e.gestureTarget, "position", pos)
	e.applyPositionLocked(e.gestureTarget, pos)
}

// EndGesture closes the session. A dominant downward drag that the swipe
// machine left unresolved restores the target window instead.
func (e *Engine) EndGesture() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gestureLive {
		return
	}
	e.gestureLive = false

	unresolved := e.swipe.State() != gesture.StateResolved
	downDominant := e.gestureSumY > e.cfg.DeadZone && e.gestureSumY > abs(e.gestureSumX)
	if unresolved && downDominant {
		if rec, ok := e.records[e.gestureTarget]; ok {
			e.logger.Debug("gesture down-swipe restore", "window", e.gestureTarget)
			e.restoreLocked(e.gestureTarget, rec)
		}
	}

	e.swipe.Reset()
	e.gestureTarget = 0
	e.gestureSumX = 0
	e.gestureSumY = 0
}

// GestureActive reports whether a swipe session is in flight.
func (e *Engine) GestureActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gestureLive
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
