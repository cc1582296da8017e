package main

import (
	"fmt"

	"github.com/joshuapare/dtbkit/dtb"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <dtb>",
		Short: "Validate a blob header and report basic metadata",
		Long: `The info command validates a flattened devicetree blob and displays
header fields along with node, property, and symbol counts.

Example:
  dtbctl info board.dtb
  dtbctl info board.dtb --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type blobInfo struct {
	File            string `json:"file"`
	TotalSize       uint32 `json:"totalsize"`
	Version         uint32 `json:"version"`
	LastCompVersion uint32 `json:"last_comp_version"`
	BootCPUIDPhys   uint32 `json:"boot_cpuid_phys"`
	OffDTStruct     uint32 `json:"off_dt_struct"`
	SizeDTStruct    uint32 `json:"size_dt_struct"`
	OffDTStrings    uint32 `json:"off_dt_strings"`
	SizeDTStrings   uint32 `json:"size_dt_strings"`
	OffMemRsvmap    uint32 `json:"off_mem_rsvmap"`
	Nodes           int    `json:"nodes"`
	Properties      int    `json:"properties"`
	Symbols         int    `json:"symbols"`
}

func runInfo(args []string) error {
	path := args[0]

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

	hdr := b.Header()
	info := blobInfo{
		File:            path,
		TotalSize:       hdr.TotalSize,
		Version:         hdr.Version,
		LastCompVersion: hdr.LastCompVersion,
		BootCPUIDPhys:   hdr.BootCPUIDPhys,
		OffDTStruct:     hdr.OffDTStruct,
		SizeDTStruct:    hdr.SizeDTStruct,
		OffDTStrings:    hdr.OffDTStrings,
		SizeDTStrings:   hdr.SizeDTStrings,
		OffMemRsvmap:    hdr.OffMemRsvmap,
		Symbols:         len(tree.Symbols),
	}
	tree.Root.Walk(func(n *dtb.Node, _ int) bool {
		info.Nodes++
		info.Properties += len(n.Props)
		return true
	})

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nBlob Information:\n")
	printInfo("  File: %s\n", info.File)
	printInfo("  Total size: %d bytes\n", info.TotalSize)
	printInfo("  Version: %d (last compatible: %d)\n", info.Version, info.LastCompVersion)
	printInfo("  Boot CPU: %d\n", info.BootCPUIDPhys)
	printInfo("  Structure block: offset 0x%X, %d bytes\n", info.OffDTStruct, info.SizeDTStruct)
	printInfo("  Strings block: offset 0x%X, %d bytes\n", info.OffDTStrings, info.SizeDTStrings)
	printInfo("  Memory reservation block: offset 0x%X\n", info.OffMemRsvmap)
	printInfo("  Nodes: %d\n", info.Nodes)
	printInfo("  Properties: %d\n", info.Properties)
	printInfo("  Symbols: %d\n", info.Symbols)

	return nil
}
