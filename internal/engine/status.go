package engine

// Status is a point-in-time summary of the engine, served over IPC.
type Status struct {
	GestureActive bool `json:"gesture_active"`
	GridActive    bool `json:"grid_active"`
	GridWindows   int  `json:"grid_windows"`
	GridEdges     int  `json:"grid_edges"`
	TiledWindows  int  `json:"tiled_windows"`
	ZoomHeld      bool `json:"zoom_held"`
}

// Status snapshots the engine state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, held := e.toggle.Active()
	st := Status{
		GestureActive: e.gestureLive,
		TiledWindows:  len(e.records),
		ZoomHeld:      held,
	}
	if e.session != nil {
		st.GridActive = true
		st.GridWindows = len(e.session.snapshot.Windows())
		st.GridEdges = len(e.session.snapshot.Edges())
	}
	return st
}
