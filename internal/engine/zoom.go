package engine

import (
	"time"

	"github.com/MisterMaroki/swipey-sub000/internal/doubletap"
	"github.com/MisterMaroki/swipey-sub000/internal/tile"
)

// ModifierDown feeds a modifier key press into the double-tap machine.
// Activation toggles the zoom state of the focused tiled window.
func (e *Engine) ModifierDown(side doubletap.Side, at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.toggle.KeyDown(side, at) == doubletap.ActionActivated {
		e.toggleZoomLocked()
	}
}

// ModifierUp feeds a modifier key release. A release inside the hold
// threshold collapses the zoom again, giving the quick-peek behavior.
func (e *Engine) ModifierUp(side doubletap.Side, at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.toggle.KeyUp(side, at) == doubletap.ActionHoldReleased {
		e.collapseZoomLocked()
	}
}

// OtherKey cancels a pending double-tap sequence. Activated holds survive
// ordinary typing.
func (e *Engine) OtherKey(at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.toggle.OtherKey(at)
}

func (e *Engine) toggleZoomLocked() {
	handle, err := e.backend.ActiveWindow()
	if err != nil || handle == 0 {
		return
	}
	rec, ok := e.records[handle]
	if !ok || !rec.position.NeedsFrame() {
		// Zoom only applies to windows resting in a tiled position.
		return
	}

	if rec.zoomed {
		e.collapseZoomLocked()
		return
	}

	visible, err := e.backend.VisibleFrameFor(handle)
	if err != nil {
		e.logger.Warn("zoom: failed to resolve screen", "window", handle, "error", err)
		return
	}
	expanded := tile.ExpandedFrame(rec.tileFrame, rec.position, visible)
	if err := e.backend.SetFrame(handle, expanded); err != nil {
		e.logger.Warn("zoom: failed to expand", "window", handle, "error", err)
		return
	}
	rec.zoomed = true
	e.logger.Debug("zoom expanded", "window", handle, "position", rec.position)
}

func (e *Engine) collapseZoomLocked() {
	handle, err := e.backend.ActiveWindow()
	if err != nil || handle == 0 {
		return
	}
	rec, ok := e.records[handle]
	if !ok || !rec.zoomed {
		return
	}
	if err := e.backend.SetFrame(handle, rec.tileFrame); err != nil {
		e.logger.Warn("zoom: failed to collapse", "window", handle, "error", err)
		return
	}
	rec.zoomed = false
	e.logger.Debug("zoom collapsed", "window", handle)
}
