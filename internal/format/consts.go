// Package format houses low-level decoders for the flattened devicetree
// (DTB) binary format. The goal is to keep the parsing focused,
// allocation-free where possible, and independent from the public API so
// higher-level packages can orchestrate the data in a more ergonomic form.
//
// All multi-byte fields in the format are big-endian.
package format

const (
	// Magic is the signature word at the start of every flattened blob.
	Magic = 0xD00DFEED

	// HeaderSize is the size of the fixed file header in bytes.
	HeaderSize = 40

	// Header field offsets. Each field is an unsigned 32-bit big-endian
	// integer.
	//
	//	Offset  Description
	//	------  ----------------------------------------------------
	//	 0x00   magic (0xD00DFEED)
	//	 0x04   totalsize (entire blob, bytes)
	//	 0x08   off_dt_struct (structure block offset)
	//	 0x0C   off_dt_strings (strings block offset)
	//	 0x10   off_mem_rsvmap (memory reservation block offset)
	//	 0x14   version
	//	 0x18   last_comp_version
	//	 0x1C   boot_cpuid_phys
	//	 0x20   size_dt_strings
	//	 0x24   size_dt_struct
	MagicOffset           = 0x00
	TotalSizeOffset       = 0x04
	OffDTStructOffset     = 0x08
	OffDTStringsOffset    = 0x0C
	OffMemRsvmapOffset    = 0x10
	VersionOffset         = 0x14
	LastCompVersionOffset = 0x18
	BootCPUIDPhysOffset   = 0x1C
	SizeDTStringsOffset   = 0x20
	SizeDTStructOffset    = 0x24

	// Structure block token tags.
	TagBeginNode = 1
	TagEndNode   = 2
	TagProp      = 3
	TagNop       = 4
	TagEnd       = 9

	// TokenAlignment is the record alignment within the structure block.
	// Every token tag sits on a 4-byte boundary.
	TokenAlignment = 4

	// RsvmapAlignment is the required alignment of the memory reservation
	// block.
	RsvmapAlignment = 8

	// MinVersion is the lowest supported header version.
	MinVersion = 17

	// CompVersion is the only accepted last_comp_version value.
	CompVersion = 16

	// MaxNodeNameLen is the maximum length of the name portion of a node
	// name, excluding any unit address after '@'.
	MaxNodeNameLen = 31

	// SymbolsPath is the reserved node whose properties map symbolic alias
	// names to absolute node paths.
	SymbolsPath = "/__symbols__"
)
