package mcp

// TileWindowInput is the input for the tile_window tool.
type TileWindowInput struct {
	Position string `json:"position" jsonschema:"required,Position name: maximize, fullscreen, restore, left-half, right-half, top-half, bottom-half, top-left-quarter, top-right-quarter, bottom-left-quarter, bottom-right-quarter"`
}

// TileWindowOutput is the output for the tile_window tool.
type TileWindowOutput struct {
	Position string `json:"position"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes one manageable window.
type WindowInfo struct {
	Handle uint32  `json:"handle"`
	Title  string  `json:"title"`
	Class  string  `json:"class"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// GetStatusInput is the input for the get_status tool.
type GetStatusInput struct{}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	GestureActive bool  `json:"gesture_active"`
	GridActive    bool  `json:"grid_active"`
	GridWindows   int   `json:"grid_windows"`
	GridEdges     int   `json:"grid_edges"`
	TiledWindows  int   `json:"tiled_windows"`
	UptimeSeconds int64 `json:"uptime_seconds"`
}

// GridSessionInput is the input for the grid session tools.
type GridSessionInput struct{}

// GridSessionOutput is the output for the grid session tools.
type GridSessionOutput struct {
	Active bool `json:"active"`
}
