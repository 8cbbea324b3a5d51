package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/MisterMaroki/swipey-sub000/internal/tile"
)

func (s *Server) handleTileWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args TileWindowInput) (*mcpsdk.CallToolResult, TileWindowOutput, error) {
	pos, err := tile.ParsePosition(args.Position)
	if err != nil {
		return nil, TileWindowOutput{}, err
	}
	if err := s.client.Tile(pos.String()); err != nil {
		return nil, TileWindowOutput{}, err
	}
	return nil, TileWindowOutput{Position: pos.String()}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	if s.backend == nil {
		return nil, ListWindowsOutput{}, fmt.Errorf("no display connection available")
	}
	windows, err := s.backend.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, fmt.Errorf("failed to list windows: %w", err)
	}

	infos := make([]WindowInfo, len(windows))
	for i, w := range windows {
		infos[i] = WindowInfo{
			Handle: uint32(w.Handle),
			Title:  w.Title,
			Class:  w.Class,
			X:      w.Frame.X,
			Y:      w.Frame.Y,
			Width:  w.Frame.Width,
			Height: w.Frame.Height,
		}
	}
	return nil, ListWindowsOutput{Windows: infos}, nil
}

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	status, err := s.client.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, err
	}
	return nil, GetStatusOutput{
		GestureActive: status.GestureActive,
		GridActive:    status.GridActive,
		GridWindows:   status.GridWindows,
		GridEdges:     status.GridEdges,
		TiledWindows:  status.TiledWindows,
		UptimeSeconds: status.UptimeSeconds,
	}, nil
}

func (s *Server) handleStartGrid(_ context.Context, _ *mcpsdk.CallToolRequest, _ GridSessionInput) (*mcpsdk.CallToolResult, GridSessionOutput, error) {
	if err := s.client.GridStart(); err != nil {
		return nil, GridSessionOutput{}, err
	}
	return nil, GridSessionOutput{Active: true}, nil
}

func (s *Server) handleStopGrid(_ context.Context, _ *mcpsdk.CallToolRequest, _ GridSessionInput) (*mcpsdk.CallToolResult, GridSessionOutput, error) {
	if err := s.client.GridStop(); err != nil {
		return nil, GridSessionOutput{}, err
	}
	return nil, GridSessionOutput{Active: false}, nil
}
