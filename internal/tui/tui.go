// Package tui is an interactive terminal preview of the tile positions.
// It renders each position's frame on an ASCII screen so margins, gaps and
// zoom growth can be inspected without touching real windows.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"

	"github.com/MisterMaroki/swipey-sub000/internal/config"
	"github.com/MisterMaroki/swipey-sub000/internal/tile"
)

// positions lists the browsable tile positions in display order.
var positions = []tile.Position{
	tile.Maximize,
	tile.LeftHalf,
	tile.RightHalf,
	tile.TopHalf,
	tile.BottomHalf,
	tile.TopLeftQuarter,
	tile.TopRightQuarter,
	tile.BottomLeftQuarter,
	tile.BottomRightQuarter,
}

// TUI holds the terminal preview state.
type TUI struct {
	configPath string
	cfg        *config.Config

	selectedIndex int
	showZoom      bool
	lastError     string
	fatalErr      error

	oldState *term.State
	width    int
	height   int
}

// New creates a TUI instance. An empty configPath uses the default path.
func New(configPath string) *TUI {
	return &TUI{configPath: configPath}
}

// Run starts the main loop, blocking until the user quits.
func (t *TUI) Run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.oldState = oldState
	defer t.restore()

	t.updateSize()
	_ = t.loadConfig()
	t.render()

	buf := make([]byte, 32)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return err
		}
		if t.handleInput(buf[:n]) {
			break
		}
		t.render()
	}

	if t.fatalErr != nil {
		return t.fatalErr
	}
	return nil
}

func (t *TUI) restore() {
	if t.oldState != nil {
		term.Restore(int(os.Stdin.Fd()), t.oldState)
	}
	fmt.Print("\x1b[0m")
	fmt.Print("\x1b[?25h")
	fmt.Print("\x1b[2J")
	fmt.Print("\x1b[H")
}

func (t *TUI) updateSize() {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		t.width = 80
		t.height = 24
		return
	}
	t.width = w
	t.height = h
}

func (t *TUI) loadConfig() error {
	var cfg *config.Config
	var err error
	if t.configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFromPath(t.configPath)
	}
	if err != nil {
		t.lastError = err.Error()
		if t.cfg != nil {
			return nil
		}
		return err
	}
	t.cfg = cfg
	t.lastError = ""
	return nil
}

func (t *TUI) handleInput(input []byte) bool {
	for len(input) > 0 {
		if len(input) >= 3 && input[0] == 0x1b && input[1] == '[' {
			switch input[2] {
			case 'A': // Up arrow
				t.moveSelection(-1)
			case 'B': // Down arrow
				t.moveSelection(1)
			}
			input = input[3:]
			continue
		}

		switch input[0] {
		case 'q', 0x1b: // q or Escape
			return true
		case 0x03: // Ctrl+C
			return true
		case 'j':
			t.moveSelection(1)
		case 'k':
			t.moveSelection(-1)
		case 'z':
			t.showZoom = !t.showZoom
		case 'e':
			if err := t.editConfig(); err != nil {
				t.fatalErr = err
				return true
			}
		case 'r':
			_ = t.loadConfig()
		}
		input = input[1:]
	}
	return false
}

func (t *TUI) moveSelection(delta int) {
	t.selectedIndex += delta
	if t.selectedIndex < 0 {
		t.selectedIndex = len(positions) - 1
	} else if t.selectedIndex >= len(positions) {
		t.selectedIndex = 0
	}
}

func (t *TUI) editConfig() error {
	t.restore()

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}

	configPath := t.configPath
	if configPath == "" {
		path, err := config.DefaultConfigPath()
		if err != nil {
			t.lastError = err.Error()
			return t.reenterRawMode()
		}
		configPath = path
	}

	editorParts := strings.Fields(editor)
	if len(editorParts) == 0 {
		editorParts = []string{"vi"}
	}

	cmd := exec.Command(editorParts[0], append(editorParts[1:], configPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.lastError = fmt.Sprintf("editor failed: %v", err)
	}

	if err := t.reenterRawMode(); err != nil {
		return err
	}
	_ = t.loadConfig()
	t.updateSize()
	return nil
}

func (t *TUI) reenterRawMode() error {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to re-enter raw mode: %w", err)
	}
	t.oldState = oldState
	return nil
}

func (t *TUI) selectedPosition() tile.Position {
	return positions[t.selectedIndex]
}
