package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MisterMaroki/swipey-sub000/internal/mcp"
	"github.com/MisterMaroki/swipey-sub000/internal/platform"
	"github.com/MisterMaroki/swipey-sub000/internal/x11"
)

func runMCP(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage: swipey mcp serve")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Start the MCP server on stdio transport. Window commands are")
		fmt.Fprintln(os.Stderr, "forwarded to the running daemon.")
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	switch args[0] {
	case "serve":
		fs := flag.NewFlagSet("serve", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}

		// list_windows works without the daemon but needs a display.
		var backend platform.Backend
		if b, err := x11.NewBackend(); err == nil {
			backend = b
			defer b.Close()
		} else {
			fmt.Fprintf(os.Stderr, "Warning: no display connection, list_windows disabled: %v\n", err)
		}

		server := mcp.NewServer(backend)
		if err := server.Run(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown mcp subcommand: %s\n", args[0])
		return 2
	}
}
