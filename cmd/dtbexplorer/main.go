package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/dtbkit/cmd/dtbexplorer/logger"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := make([]string, 0, len(os.Args)-1)
	debugMode := false
	for _, arg := range os.Args[1:] {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
			continue
		}
		args = append(args, arg)
	}

	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	if args[0] == "--help" || args[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if args[0] == "--version" || args[0] == "-v" {
		fmt.Printf("dtbexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	blobPath := args[0]
	logger.Info("starting dtbexplorer", "path", blobPath, "debug", debugMode)

	if _, err := os.Stat(blobPath); err != nil {
		logger.Error("blob not found", "path", blobPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: devicetree blob not found: %s\n", blobPath)
		os.Exit(1)
	}

	m := NewModel(blobPath)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			logger.Warn("error closing blob", "error", err)
		}
	}

	logger.Info("dtbexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: dtbexplorer [options] <dtb-file>\n")
	fmt.Fprintf(os.Stderr, "Try 'dtbexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("dtbexplorer - Interactive TUI for Flattened Devicetree Blobs")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  dtbexplorer [options] <dtb-file>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI for exploring compiled")
	fmt.Println("  devicetree blobs (.dtb files).")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Split-pane layout (tree view + property pane)")
	fmt.Println("    - Keyboard navigation (vim-style keys supported)")
	fmt.Println("    - Expand/collapse devicetree nodes")
	fmt.Println("    - Properties rendered as strings, cells, or hex")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Navigate up/down")
	fmt.Println("    →/l, Enter  Expand node")
	fmt.Println("    ←/h         Collapse node / Go to parent")
	fmt.Println("    g/G         Jump to top/bottom")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.dtbexplorer/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  dtbexplorer board.dtb")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'dtbctl' command instead.")
}
