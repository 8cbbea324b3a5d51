package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/MisterMaroki/swipey-sub000/internal/runtimepath"
)

// Client talks to the daemon over its unix socket.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates an IPC client.
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}
	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}
	return &resp, nil
}

// Ping checks if the daemon is responding.
func (c *Client) Ping() error {
	_, err := c.sendRequest(&Request{Command: CommandPing})
	return err
}

// GetStatus retrieves daemon status.
func (c *Client) GetStatus() (*StatusData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandStatus})
	if err != nil {
		return nil, err
	}
	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}
	return &status, nil
}

// Tile applies a named position to the focused window.
func (c *Client) Tile(position string) error {
	payload, err := json.Marshal(TilePayload{Position: position})
	if err != nil {
		return fmt.Errorf("failed to marshal tile payload: %w", err)
	}
	_, err = c.sendRequest(&Request{Command: CommandTile, Payload: payload})
	return err
}

// Gesture replays a synthetic swipe over the point (x, y).
func (c *Client) Gesture(x, y, dx, dy float64) error {
	payload, err := json.Marshal(GesturePayload{X: x, Y: y, DX: dx, DY: dy})
	if err != nil {
		return fmt.Errorf("failed to marshal gesture payload: %w", err)
	}
	_, err = c.sendRequest(&Request{Command: CommandGesture, Payload: payload})
	return err
}

// GridStart begins a grid resize session.
func (c *Client) GridStart() error {
	_, err := c.sendRequest(&Request{Command: CommandGridStart})
	return err
}

// GridStop ends the grid resize session.
func (c *Client) GridStop() error {
	_, err := c.sendRequest(&Request{Command: CommandGridStop})
	return err
}

// GridDrag moves shared edge at index by delta points. Reports whether the
// edge snapped to a detent.
func (c *Client) GridDrag(edge int, delta float64) (bool, error) {
	payload, err := json.Marshal(GridDragPayload{Edge: edge, Delta: delta})
	if err != nil {
		return false, fmt.Errorf("failed to marshal drag payload: %w", err)
	}
	resp, err := c.sendRequest(&Request{Command: CommandGridDrag, Payload: payload})
	if err != nil {
		return false, err
	}
	var data GridDragData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return false, fmt.Errorf("failed to parse drag data: %w", err)
	}
	return data.Snapped, nil
}

// Reload asks the daemon to reload its configuration.
func (c *Client) Reload() error {
	_, err := c.sendRequest(&Request{Command: CommandReload})
	return err
}
