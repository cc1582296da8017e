package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/dtbkit/dtb"
	"github.com/joshuapare/dtbkit/dtb/printer"
	"github.com/spf13/cobra"
)

var dumpOutput string

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVarP(&dumpOutput, "output", "o", "-", "Output file (- for stdout)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <dtb>",
		Short: "Render the blob as a collapsible HTML document",
		Long: `The dump command renders the decoded tree as a standalone HTML page
with clickable, collapsible nodes.

Example:
  dtbctl dump board.dtb -o board.html
  dtbctl dump board.dtb > board.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	b, err := dtb.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open blob: %w", err)
	}
	defer b.Close()

	tree, err := b.Decode()
	if err != nil {
		return fmt.Errorf("failed to decode blob: %w", err)
	}

	out := os.Stdout
	if dumpOutput != "-" {
		f, err := os.Create(dumpOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	opts := printer.DefaultOptions()
	opts.Format = printer.FormatHTML
	if err := printer.New(out, opts).PrintTree(tree); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}
