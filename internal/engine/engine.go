// Package engine wires raw input events to the tiling state machines and
// geometry, and issues move/resize calls to the platform backend.
package engine

import (
	"log/slog"
	"sync"

	"github.com/MisterMaroki/swipey-sub000/internal/config"
	"github.com/MisterMaroki/swipey-sub000/internal/doubletap"
	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
	"github.com/MisterMaroki/swipey-sub000/internal/gesture"
	"github.com/MisterMaroki/swipey-sub000/internal/platform"
	"github.com/MisterMaroki/swipey-sub000/internal/tile"
)

// windowRecord tracks a window's tiling state for the current session.
type windowRecord struct {
	position    tile.Position
	tileFrame   geometry.Rect
	original    geometry.Rect
	hasOriginal bool
	zoomed      bool
}

// Engine is the orchestration controller. All entry points lock; the state
// machines themselves are single-threaded and never block.
type Engine struct {
	mu      sync.Mutex
	backend platform.Backend
	cfg     *config.Config
	logger  *slog.Logger

	swipe  *gesture.Machine
	toggle *doubletap.Machine

	records map[platform.WindowHandle]*windowRecord

	// Gesture session state.
	gestureTarget platform.WindowHandle
	gestureLive   bool
	gestureSumX   float64
	gestureSumY   float64

	// Grid session state, nil when no session is active.
	session *gridSession
}

// New creates an engine over the given backend and configuration.
func New(backend platform.Backend, cfg *config.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		backend: backend,
		cfg:     cfg,
		logger:  logger,
		swipe:   gesture.NewMachine(cfg.DeadZone),
		toggle:  doubletap.NewMachine(cfg.SequenceTimeout(), cfg.HoldThreshold()),
		records: make(map[platform.WindowHandle]*windowRecord),
	}
}

// UpdateConfig swaps the configuration, rebuilding the state machines with
// the new timings. In-flight gesture and tap sequences are cancelled.
func (e *Engine) UpdateConfig(cfg *config.Config) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg
	e.swipe = gesture.NewMachine(cfg.DeadZone)
	e.toggle = doubletap.NewMachine(cfg.SequenceTimeout(), cfg.HoldThreshold())
	e.gestureLive = false
}

// HandleArrow advances the active window one step through the keyboard
// tiling table. Unmapped transitions are silent no-ops.
func (e *Engine) HandleArrow(dir tile.Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	handle, err := e.backend.ActiveWindow()
	if err != nil || handle == 0 {
		e.logger.Debug("keyboard tile: no active window", "error", err)
		return
	}

	current := tile.PositionNone
	if rec, ok := e.records[handle]; ok {
		current = rec.position
	}

	next, ok := tile.Transition(current, dir)
	if !ok {
		return
	}

	e.logger.Debug("keyboard tile",
		"window", handle, "from", current, "dir", dir, "to", next)
	e.applyPositionLocked(handle, next)
}

// TileActiveWindow applies a tile position to the focused window. Used by
// the IPC and MCP surfaces.
func (e *Engine) TileActiveWindow(pos tile.Position) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	handle, err := e.backend.ActiveWindow()
	if err != nil {
		return err
	}
	e.applyPositionLocked(handle, pos)
	return nil
}

// applyPositionLocked computes and applies the frame for a position,
// handling the frameless Fullscreen and Restore actions.
func (e *Engine) applyPositionLocked(handle platform.WindowHandle, pos tile.Position) {
	rec := e.recordFor(handle)

	switch pos {
	case tile.Fullscreen:
		if err := e.backend.SetFullscreen(handle, true); err != nil {
			e.logger.Warn("failed to enter fullscreen", "window", handle, "error", err)
			return
		}
		rec.position = tile.Fullscreen
		return

	case tile.Restore:
		e.restoreLocked(handle, rec)
		return
	}

	if !pos.NeedsFrame() {
		return
	}

	visible, err := e.backend.VisibleFrameFor(handle)
	if err != nil {
		e.logger.Warn("failed to resolve screen for window", "window", handle, "error", err)
		return
	}

	if rec.position == tile.Fullscreen {
		if err := e.backend.SetFullscreen(handle, false); err != nil {
			e.logger.Warn("failed to exit fullscreen", "window", handle, "error", err)
		}
	}

	// Record the pre-tiling frame once so Restore can return to it.
	if !rec.hasOriginal {
		if frame, err := e.backend.Frame(handle); err == nil {
			rec.original = frame
			rec.hasOriginal = true
		}
	}

	frame := pos.Frame(visible, e.cfg.Margin, e.cfg.Gap)
	if err := e.backend.SetFrame(handle, frame); err != nil {
		e.logger.Warn("failed to set frame", "window", handle, "error", err)
		return
	}

	rec.position = pos
	rec.tileFrame = frame
	rec.zoomed = false
}

// restoreLocked puts a window back to its pre-tiling frame, exiting
// fullscreen first if needed. The record is dropped: restore is transient,
// not a resting state.
func (e *Engine) restoreLocked(handle platform.WindowHandle, rec *windowRecord) {
	if rec.position == tile.Fullscreen {
		if err := e.backend.SetFullscreen(handle, false); err != nil {
			e.logger.Warn("failed to exit fullscreen", "window", handle, "error", err)
		}
	}
	if rec.hasOriginal {
		if err := e.backend.SetFrame(handle, rec.original); err != nil {
			e.logger.Warn("failed to restore frame", "window", handle, "error", err)
		}
	}
	delete(e.records, handle)
}

func (e *Engine) recordFor(handle platform.WindowHandle) *windowRecord {
	rec, ok := e.records[handle]
	if !ok {
		rec = &windowRecord{position: tile.PositionNone}
		e.records[handle] = rec
	}
	return rec
}

// TiledCount returns how many windows currently hold a tiling record.
func (e *Engine) TiledCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.records)
}
