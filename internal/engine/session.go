package engine

import (
	"context"
	"encoding/binary"
	"errors"
	"hash/fnv"
	"time"

	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
	"github.com/MisterMaroki/swipey-sub000/internal/grid"
	"github.com/MisterMaroki/swipey-sub000/internal/platform"
)

// gridSession holds a live snapshot of on-screen windows plus the poll
// loop keeping it reconciled against real frames.
type gridSession struct {
	snapshot *grid.Snapshot
	handles  map[grid.WindowID]platform.WindowHandle
	screen   geometry.Rect
	cancel   context.CancelFunc
	done     chan struct{}
}

// windowID derives a stable snapshot id from a backend handle.
func windowID(handle platform.WindowHandle) grid.WindowID {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(handle))
	h := fnv.New64a()
	h.Write(buf[:])
	return grid.WindowID(h.Sum64())
}

// StartGridSession captures the current window layout and begins the
// reconcile loop that propagates resizes across shared edges.
func (e *Engine) StartGridSession(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil {
		return errors.New("grid session already active")
	}

	windows, err := e.backend.ListWindows()
	if err != nil {
		return err
	}
	// A lone window has no shared edges to reconcile.
	if len(windows) < 2 {
		return errors.New("need at least two windows to track")
	}

	entries := make([]grid.WindowEntry, 0, len(windows))
	handles := make(map[grid.WindowID]platform.WindowHandle, len(windows))
	for _, w := range windows {
		id := windowID(w.Handle)
		entries = append(entries, grid.WindowEntry{ID: id, Frame: w.Frame})
		handles[id] = w.Handle
	}

	screen, err := e.backend.VisibleFrameFor(windows[0].Handle)
	if err != nil {
		screen = geometry.Rect{}
	}

	snap := grid.NewSnapshot(entries, grid.Params{
		EdgeTolerance:      e.cfg.EdgeTolerance,
		OverlapThreshold:   e.cfg.OverlapThreshold,
		MinWindowDimension: e.cfg.MinWindowDimension,
		SnapDetent:         e.cfg.SnapDetent,
	})

	loopCtx, cancel := context.WithCancel(ctx)
	sess := &gridSession{
		snapshot: snap,
		handles:  handles,
		screen:   screen,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	e.session = sess

	e.logger.Info("grid session started",
		"windows", len(entries), "edges", len(snap.Edges()))

	go e.pollLoop(loopCtx, sess)
	return nil
}

// StopGridSession tears down the active session. Safe to call when none
// is running.
func (e *Engine) StopGridSession() {
	e.mu.Lock()
	sess := e.session
	e.session = nil
	e.mu.Unlock()

	if sess == nil {
		return
	}
	sess.cancel()
	<-sess.done
	e.logger.Info("grid session stopped")
}

// GridActive reports whether a grid session is running.
func (e *Engine) GridActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session != nil
}

// GridEdges returns the shared edges of the active session, or nil.
func (e *Engine) GridEdges() []grid.SharedEdge {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return nil
	}
	return e.session.snapshot.Edges()
}

// DragGridEdge moves one shared edge of the active session by delta,
// applying the resulting frames to every window on the seam.
func (e *Engine) DragGridEdge(index int, delta float64) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return false, errors.New("no grid session active")
	}
	edges := e.session.snapshot.Edges()
	if index < 0 || index >= len(edges) {
		return false, errors.New("edge index out of range")
	}

	result := e.session.snapshot.DragEdge(edges[index], delta, e.session.screen)
	e.session.snapshot.Apply(result.Adjustments)
	for _, adj := range result.Adjustments {
		handle, ok := e.session.handles[adj.ID]
		if !ok {
			continue
		}
		if err := e.backend.SetFrame(handle, adj.Frame); err != nil {
			e.logger.Warn("drag: failed to set frame", "window", handle, "error", err)
		}
	}
	return result.Snapped, nil
}

func (e *Engine) pollLoop(ctx context.Context, sess *gridSession) {
	defer close(sess.done)

	ticker := time.NewTicker(e.cfg.PollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.pollTick(sess)
		}
	}
}

// pollTick reconciles the snapshot against real frames. Diffing consults
// the adjustment flags set by the previous tick; the flags are then cleared
// once, and this tick's propagation marks its own targets for the next one.
func (e *Engine) pollTick(sess *gridSession) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != sess {
		return
	}

	var pending []grid.Adjustment
	for _, entry := range sess.snapshot.Windows() {
		handle := sess.handles[entry.ID]
		live, err := e.backend.Frame(handle)
		if err != nil {
			continue
		}
		if live.ApproxEqual(entry.Frame, 1.0) {
			continue
		}
		adjs := sess.snapshot.ComputePropagation(entry.ID, entry.Frame, live)
		sess.snapshot.SetFrame(entry.ID, live)
		pending = append(pending, adjs...)
	}

	sess.snapshot.ClearAdjusting()

	if len(pending) == 0 {
		return
	}
	sess.snapshot.Apply(pending)
	for _, adj := range pending {
		handle, ok := sess.handles[adj.ID]
		if !ok {
			continue
		}
		if err := e.backend.SetFrame(handle, adj.Frame); err != nil {
			e.logger.Warn("propagate: failed to set frame", "window", handle, "error", err)
		}
	}
}
