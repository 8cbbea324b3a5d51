// Package ipc implements the unix-socket protocol between the swipey
// daemon and its CLI clients. Requests and responses are single-line JSON.
package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType identifies an IPC command.
type CommandType string

const (
	CommandPing      CommandType = "PING"
	CommandStatus    CommandType = "STATUS"
	CommandTile      CommandType = "TILE"
	CommandGesture   CommandType = "GESTURE"
	CommandGridStart CommandType = "GRID_START"
	CommandGridStop  CommandType = "GRID_STOP"
	CommandGridDrag  CommandType = "GRID_DRAG"
	CommandReload    CommandType = "RELOAD"
)

// Request is an IPC request from client to daemon.
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is an IPC response from daemon to client.
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData is the STATUS response body.
type StatusData struct {
	GestureActive bool  `json:"gesture_active"`
	GridActive    bool  `json:"grid_active"`
	GridWindows   int   `json:"grid_windows"`
	GridEdges     int   `json:"grid_edges"`
	TiledWindows  int   `json:"tiled_windows"`
	ZoomHeld      bool  `json:"zoom_held"`
	UptimeSeconds int64 `json:"uptime_seconds"`
}

// TilePayload names the position to apply to the focused window.
type TilePayload struct {
	Position string `json:"position"`
}

// GesturePayload replays a synthetic swipe: begin at (X, Y), accumulate
// (DX, DY), end.
type GesturePayload struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// GridDragPayload moves one shared edge of the active grid session.
type GridDragPayload struct {
	Edge  int     `json:"edge"`
	Delta float64 `json:"delta"`
}

// GridDragData reports whether the drag landed on a snap detent.
type GridDragData struct {
	Snapped bool `json:"snapped"`
}

// NewOKResponse creates a successful response with optional data.
func NewOKResponse(data interface{}) (*Response, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		raw = b
	}
	return &Response{Status: "OK", Data: raw}, nil
}

// NewErrorResponse creates an error response with a message.
func NewErrorResponse(errMsg string) *Response {
	return &Response{Status: "ERROR", Error: errMsg}
}

// ParseRequest parses a request from JSON bytes.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes.
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
