package tui

import (
	"fmt"
	"strings"
)

func (t *TUI) render() {
	var b strings.Builder
	b.WriteString("\x1b[2J\x1b[H\x1b[?25l")

	b.WriteString("swipey position preview\r\n")
	b.WriteString(strings.Repeat("-", min(t.width, 60)) + "\r\n")

	listWidth := 24
	previewW := t.width - listWidth - 4
	previewH := t.height - 6
	if previewW < 10 {
		previewW = 10
	}
	if previewH < 5 {
		previewH = 5
	}

	frame := t.previewFrame()
	preview := renderASCIIPreview(frame, previewW, previewH)

	for row := 0; row < previewH; row++ {
		var left string
		if row < len(positions) {
			marker := "  "
			if row == t.selectedIndex {
				marker = "> "
			}
			left = marker + positions[row].String()
		}
		b.WriteString(fmt.Sprintf("%-*s  %s\r\n", listWidth, left, preview[row]))
	}

	b.WriteString("\r\n")
	b.WriteString(summarizeFrame(frame, t.showZoom))
	b.WriteString("\r\n")
	if t.lastError != "" {
		b.WriteString("error: " + t.lastError + "\r\n")
	}
	b.WriteString("[j/k] select  [z] zoom  [e] edit config  [r] reload  [q] quit")

	fmt.Print(b.String())
}
