package main

import (
	"fmt"
	"sort"

	"github.com/joshuapare/dtbkit/dtb"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSymbolsCmd())
}

func newSymbolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbols <dtb>",
		Short: "List the symbolic aliases defined by the blob",
		Long: `The symbols command lists the alias table extracted from the blob's
reserved /__symbols__ node, one "path: alias" pair per line sorted by path.

Example:
  dtbctl symbols board.dtb
  dtbctl symbols board.dtb --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSymbols(args)
		},
	}
	return cmd
}

func runSymbols(args []string) error {
	b, err := dtb.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open blob: %w", err)
	}
	defer b.Close()

	tree, err := b.Decode()
	if err != nil {
		return fmt.Errorf("failed to decode blob: %w", err)
	}

	if jsonOut {
		return printJSON(tree.Symbols)
	}

	paths := make([]string, 0, len(tree.Symbols))
	for path := range tree.Symbols {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		printInfo("%s: %s\n", path, tree.Symbols[path])
	}
	return nil
}
