package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/MisterMaroki/swipey-sub000/internal/config"
	"github.com/MisterMaroki/swipey-sub000/internal/ipc"
	"github.com/MisterMaroki/swipey-sub000/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		os.Exit(runDaemon(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "tile":
		os.Exit(runTile(os.Args[2:]))
	case "gesture":
		os.Exit(runGesture(os.Args[2:]))
	case "grid":
		os.Exit(runGrid(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "tui":
		os.Exit(runTUI(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: swipey <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Start the swipey daemon (foreground)")
	fmt.Fprintln(w, "  status              Show daemon status")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  tile <position>     Tile the focused window (left-half, maximize, ...)")
	fmt.Fprintln(w, "  gesture             Replay a synthetic swipe over a point")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  grid start          Start a grid resize session")
	fmt.Fprintln(w, "  grid stop           Stop the grid resize session")
	fmt.Fprintln(w, "  grid drag           Drag a shared edge by a delta")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  reload              Reload daemon configuration")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  tui                 Open the interactive position preview")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'swipey <command> --help' for command-specific options.")
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: swipey status")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show daemon status via IPC.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "status takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Aligned output for humans, key=value for pipes.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("gesture_active: %v\n", status.GestureActive)
		fmt.Printf("grid_active:    %v\n", status.GridActive)
		fmt.Printf("grid_windows:   %d\n", status.GridWindows)
		fmt.Printf("grid_edges:     %d\n", status.GridEdges)
		fmt.Printf("tiled_windows:  %d\n", status.TiledWindows)
		fmt.Printf("zoom_held:      %v\n", status.ZoomHeld)
		fmt.Printf("uptime_seconds: %d\n", status.UptimeSeconds)
	} else {
		fmt.Printf("gesture_active=%v grid_active=%v grid_windows=%d grid_edges=%d tiled_windows=%d zoom_held=%v uptime_seconds=%d\n",
			status.GestureActive, status.GridActive, status.GridWindows,
			status.GridEdges, status.TiledWindows, status.ZoomHeld,
			status.UptimeSeconds)
	}
	return 0
}

func runTile(args []string) int {
	fs := flag.NewFlagSet("tile", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: swipey tile <position>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Positions: maximize, fullscreen, restore, left-half, right-half,")
		fmt.Fprintln(os.Stderr, "  top-half, bottom-half, top-left-quarter, top-right-quarter,")
		fmt.Fprintln(os.Stderr, "  bottom-left-quarter, bottom-right-quarter")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "tile requires exactly one <position>")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	if err := client.Tile(fs.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runGesture(args []string) int {
	fs := flag.NewFlagSet("gesture", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	x := fs.Float64("x", 0, "Pointer x coordinate")
	y := fs.Float64("y", 0, "Pointer y coordinate")
	dx := fs.Float64("dx", 0, "Accumulated horizontal delta")
	dy := fs.Float64("dy", 0, "Accumulated vertical delta")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: swipey gesture --x X --y Y --dx DX --dy DY")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Replay a synthetic swipe over the window at (X, Y).")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	if err := client.Gesture(*x, *y, *dx, *dy); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func printGridUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  swipey grid start")
	fmt.Fprintln(w, "  swipey grid stop")
	fmt.Fprintln(w, "  swipey grid drag --edge N --delta D")
}

func runGrid(args []string) int {
	if len(args) == 0 {
		printGridUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printGridUsage(os.Stdout)
		return 0
	}

	client := ipc.NewClient()

	switch args[0] {
	case "start":
		if err := client.GridStart(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0

	case "stop":
		if err := client.GridStop(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0

	case "drag":
		fs := flag.NewFlagSet("drag", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		edge := fs.Int("edge", 0, "Shared edge index (see swipey status)")
		delta := fs.Float64("delta", 0, "Distance to move the edge in points")
		fs.Usage = func() {
			fmt.Fprintln(os.Stderr, "Usage: swipey grid drag --edge N --delta D")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Flags:")
			fs.PrintDefaults()
		}
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		snapped, err := client.GridDrag(*edge, *delta)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if snapped {
			fmt.Println("snapped")
		}
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown grid command: %s\n\n", args[0])
		printGridUsage(os.Stderr)
		return 2
	}
}

func runReload(args []string) int {
	fs := flag.NewFlagSet("reload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: swipey reload")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	if err := client.Reload(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  swipey config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  swipey config print [--path PATH] [--defaults]")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/swipey/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var err error
		if *path == "" {
			_, err = config.Load()
		} else {
			_, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/swipey/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var cfg *config.Config
		var err error
		if *printDefaults {
			cfg = config.DefaultConfig()
		} else if *path == "" {
			cfg, err = config.Load()
		} else {
			cfg, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/swipey/config.yaml)")

	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stderr, "Usage: swipey tui [--path PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Interactive preview of the tile positions and zoom growth.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  j/k, ↑/↓  Select position")
		fmt.Fprintln(os.Stderr, "  z         Toggle zoom preview")
		fmt.Fprintln(os.Stderr, "  e         Edit config in $EDITOR")
		fmt.Fprintln(os.Stderr, "  r         Reload config")
		fmt.Fprintln(os.Stderr, "  q, Esc    Quit")
		return 0
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	t := tui.New(*path)
	if err := t.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
