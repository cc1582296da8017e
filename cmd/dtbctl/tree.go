package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/dtbkit/dtb"
	"github.com/joshuapare/dtbkit/dtb/printer"
	"github.com/spf13/cobra"
)

var (
	treeDepth   int
	treeNoProps bool
	treeCompact bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeNoProps, "no-props", false, "Hide property values")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <dtb> [path]",
		Short: "Display the decoded node tree",
		Long: `The tree command displays the decoded node hierarchy with rendered
property values. An optional absolute node path restricts output to that
subtree.

Example:
  dtbctl tree board.dtb
  dtbctl tree board.dtb /cpus --depth 2
  dtbctl tree board.dtb --no-props`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	path := args[0]
	var nodePath string
	if len(args) > 1 {
		nodePath = args[1]
	}

	printVerbose("Opening blob: %s\n", path)

	b, err := dtb.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open blob: %w", err)
	}
	defer b.Close()

	tree, err := b.Decode()
	if err != nil {
		return fmt.Errorf("failed to decode blob: %w", err)
	}

	opts := printer.DefaultOptions()
	opts.ShowProps = !treeNoProps
	opts.MaxDepth = treeDepth
	if treeCompact {
		opts.IndentSize = 1
	}
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	p := printer.New(os.Stdout, opts)
	if nodePath != "" {
		return p.PrintNode(tree, nodePath)
	}
	return p.PrintTree(tree)
}
