package tui

import (
	"fmt"
	"strings"

	"github.com/MisterMaroki/swipey-sub000/internal/geometry"
	"github.com/MisterMaroki/swipey-sub000/internal/tile"
)

// previewScreen is the simulated display the frames are computed against.
var previewScreen = geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

// previewFrame computes the frame to draw for the selected position,
// applying the zoom expansion when toggled on.
func (t *TUI) previewFrame() geometry.Rect {
	pos := t.selectedPosition()
	margin, gap := 8.0, 8.0
	if t.cfg != nil {
		margin, gap = t.cfg.Margin, t.cfg.Gap
	}
	frame := pos.Frame(previewScreen, margin, gap)
	if t.showZoom {
		frame = tile.ExpandedFrame(frame, pos, previewScreen)
	}
	return frame
}

func summarizeFrame(frame geometry.Rect, zoomed bool) string {
	suffix := ""
	if zoomed {
		suffix = " (zoomed)"
	}
	return fmt.Sprintf("%.0f×%.0f at (%.0f, %.0f)%s",
		frame.Width, frame.Height, frame.X, frame.Y, suffix)
}

// renderASCIIPreview draws the frame inside a bordered canvas representing
// the screen.
func renderASCIIPreview(frame geometry.Rect, width, height int) []string {
	if width < 5 || height < 3 {
		return emptyCanvas(width, height)
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	drawFrame(canvas, frame, width, height)
	drawBorder(canvas, width, height)

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return lines
}

func drawFrame(canvas [][]rune, frame geometry.Rect, canvasW, canvasH int) {
	x1 := int(frame.X / previewScreen.Width * float64(canvasW))
	y1 := int(frame.Y / previewScreen.Height * float64(canvasH))
	x2 := int(frame.MaxX() / previewScreen.Width * float64(canvasW))
	y2 := int(frame.MaxY() / previewScreen.Height * float64(canvasH))

	if x1 < 1 {
		x1 = 1
	}
	if y1 < 1 {
		y1 = 1
	}
	if x2 >= canvasW-1 {
		x2 = canvasW - 2
	}
	if y2 >= canvasH-1 {
		y2 = canvasH - 2
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x <= x2; x++ {
		canvas[y1][x] = '─'
		canvas[y2][x] = '─'
	}
	for y := y1; y <= y2; y++ {
		canvas[y][x1] = '│'
		canvas[y][x2] = '│'
	}
	canvas[y1][x1] = '┌'
	canvas[y1][x2] = '┐'
	canvas[y2][x1] = '└'
	canvas[y2][x2] = '┘'
}

func drawBorder(canvas [][]rune, width, height int) {
	for x := 0; x < width; x++ {
		canvas[0][x] = '═'
		canvas[height-1][x] = '═'
	}
	for y := 0; y < height; y++ {
		canvas[y][0] = '║'
		canvas[y][width-1] = '║'
	}
	canvas[0][0] = '╔'
	canvas[0][width-1] = '╗'
	canvas[height-1][0] = '╚'
	canvas[height-1][width-1] = '╝'
}

func emptyCanvas(width, height int) []string {
	lines := make([]string, height)
	empty := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = empty
	}
	return lines
}
