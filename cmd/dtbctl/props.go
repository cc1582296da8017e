package main

import (
	"fmt"

	"github.com/joshuapare/dtbkit/dtb"
	"github.com/joshuapare/dtbkit/dtb/render"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPropsCmd())
}

func newPropsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "props <dtb> <path>",
		Short: "List the properties of one node",
		Long: `The props command lists the properties of the node at the given
absolute path, rendered the same way the tree command renders them.

Example:
  dtbctl props board.dtb /cpus/cpu@0
  dtbctl props board.dtb / --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProps(args)
		},
	}
	return cmd
}

type propEntry struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

func runProps(args []string) error {
	path, nodePath := args[0], args[1]

	b, err := dtb.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open blob: %w", err)
	}
	defer b.Close()

	tree, err := b.Decode()
	if err != nil {
		return fmt.Errorf("failed to decode blob: %w", err)
	}

	node := tree.Root.Find(nodePath)
	if node == nil {
		return fmt.Errorf("no node at path %s", nodePath)
	}

	entries := make([]propEntry, 0, len(node.Props))
	for _, p := range node.Props {
		e := propEntry{Name: p.Name}
		if len(p.Value) > 0 {
			e.Value = render.Value(p.Value, p.Name)
		}
		entries = append(entries, e)
	}

	if jsonOut {
		return printJSON(entries)
	}

	for _, e := range entries {
		if e.Value == "" {
			printInfo("%s;\n", e.Name)
		} else {
			printInfo("%s: %s;\n", e.Name, e.Value)
		}
	}
	return nil
}
