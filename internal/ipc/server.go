package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/MisterMaroki/swipey-sub000/internal/engine"
	"github.com/MisterMaroki/swipey-sub000/internal/runtimepath"
	"github.com/MisterMaroki/swipey-sub000/internal/tile"
)

// Server handles IPC requests from clients.
type Server struct {
	socketPath   string
	listener     net.Listener
	engine       *engine.Engine
	logger       *slog.Logger
	startTime    time.Time
	reloadChan   chan struct{}
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates an IPC server over the given engine. Reload requests
// are signalled on reloadChan without blocking.
func NewServer(eng *engine.Engine, reloadChan chan struct{}, logger *slog.Logger) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}

	// Remove a stale socket from a previous run.
	os.Remove(socketPath)

	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		socketPath: socketPath,
		engine:     eng,
		logger:     logger,
		startTime:  time.Now(),
		reloadChan: reloadChan,
	}, nil
}

// Start begins listening for IPC connections.
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	s.logger.Info("IPC server listening", "socket", s.socketPath)
	go s.acceptLoop()
	return nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			done := s.shuttingDown
			s.shutdownMu.Unlock()
			if done {
				return
			}
			s.logger.Warn("IPC accept error", "error", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		s.logger.Warn("IPC read error", "error", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendResponse(conn, NewErrorResponse(fmt.Sprintf("invalid request: %v", err)))
		return
	}

	s.sendResponse(conn, s.handleCommand(req))
}

func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandPing:
		resp, _ := NewOKResponse(nil)
		return resp
	case CommandStatus:
		return s.handleStatus()
	case CommandTile:
		return s.handleTile(req.Payload)
	case CommandGesture:
		return s.handleGesture(req.Payload)
	case CommandGridStart:
		return s.handleGridStart()
	case CommandGridStop:
		s.engine.StopGridSession()
		resp, _ := NewOKResponse(nil)
		return resp
	case CommandGridDrag:
		return s.handleGridDrag(req.Payload)
	case CommandReload:
		return s.handleReload()
	default:
		return NewErrorResponse(fmt.Sprintf("unknown command: %s", req.Command))
	}
}

func (s *Server) handleStatus() *Response {
	st := s.engine.Status()
	data := StatusData{
		GestureActive: st.GestureActive,
		GridActive:    st.GridActive,
		GridWindows:   st.GridWindows,
		GridEdges:     st.GridEdges,
		TiledWindows:  st.TiledWindows,
		ZoomHeld:      st.ZoomHeld,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
	}
	resp, _ := NewOKResponse(data)
	return resp
}

func (s *Server) handleTile(payload json.RawMessage) *Response {
	var p TilePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return NewErrorResponse(fmt.Sprintf("invalid tile payload: %v", err))
	}
	pos, err := tile.ParsePosition(p.Position)
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	if err := s.engine.TileActiveWindow(pos); err != nil {
		return NewErrorResponse(fmt.Sprintf("failed to tile: %v", err))
	}
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleGesture(payload json.RawMessage) *Response {
	var p GesturePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return NewErrorResponse(fmt.Sprintf("invalid gesture payload: %v", err))
	}
	if !s.engine.BeginGesture(p.X, p.Y) {
		return NewErrorResponse("no window under point")
	}
	s.engine.FeedGesture(p.DX, p.DY)
	s.engine.EndGesture()
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleGridStart() *Response {
	if err := s.engine.StartGridSession(context.Background()); err != nil {
		return NewErrorResponse(fmt.Sprintf("failed to start grid session: %v", err))
	}
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleGridDrag(payload json.RawMessage) *Response {
	var p GridDragPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return NewErrorResponse(fmt.Sprintf("invalid drag payload: %v", err))
	}
	snapped, err := s.engine.DragGridEdge(p.Edge, p.Delta)
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("failed to drag edge: %v", err))
	}
	resp, _ := NewOKResponse(GridDragData{Snapped: snapped})
	return resp
}

func (s *Server) handleReload() *Response {
	select {
	case s.reloadChan <- struct{}{}:
	default:
	}
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) sendResponse(conn net.Conn, resp *Response) {
	data, err := resp.Marshal()
	if err != nil {
		s.logger.Warn("failed to marshal response", "error", err)
		return
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		s.logger.Warn("failed to send response", "error", err)
	}
}

// Stop gracefully shuts down the IPC server.
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}
