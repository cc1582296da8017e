package dtb

import (
	"fmt"

	"github.com/joshuapare/dtbkit/internal/buf"
	"github.com/joshuapare/dtbkit/internal/format"
)

// Header is the decoded fixed-size file header. The diagram below shows
// the on-disk layout; every field is an unsigned 32-bit big-endian value.
//
//	Offset  Description
//	------  ----------------------------------------------------
//	 0x00   magic (0xD00DFEED)
//	 0x04   totalsize of the blob in bytes
//	 0x08   offset of the structure block
//	 0x0C   offset of the strings block
//	 0x10   offset of the memory reservation block
//	 0x14   version
//	 0x18   last compatible version
//	 0x1C   physical CPU ID of the boot CPU
//	 0x20   size of the strings block
//	 0x24   size of the structure block
//
// A Header is immutable once parsed.
type Header struct {
	Magic           uint32
	TotalSize       uint32
	OffDTStruct     uint32
	OffDTStrings    uint32
	OffMemRsvmap    uint32
	Version         uint32
	LastCompVersion uint32
	BootCPUIDPhys   uint32
	SizeDTStrings   uint32
	SizeDTStruct    uint32
}

// ParseHeader validates and extracts the header from a blob. Any failed
// check aborts the decode with ErrMalformedHeader naming the check; there
// is no recovery from a bad header.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < format.HeaderSize {
		return Header{}, fmt.Errorf("header: buffer holds %d bytes, need %d: %w",
			len(data), format.HeaderSize, ErrMalformedHeader)
	}
	h := Header{
		Magic:           buf.U32BE(data[format.MagicOffset:]),
		TotalSize:       buf.U32BE(data[format.TotalSizeOffset:]),
		OffDTStruct:     buf.U32BE(data[format.OffDTStructOffset:]),
		OffDTStrings:    buf.U32BE(data[format.OffDTStringsOffset:]),
		OffMemRsvmap:    buf.U32BE(data[format.OffMemRsvmapOffset:]),
		Version:         buf.U32BE(data[format.VersionOffset:]),
		LastCompVersion: buf.U32BE(data[format.LastCompVersionOffset:]),
		BootCPUIDPhys:   buf.U32BE(data[format.BootCPUIDPhysOffset:]),
		SizeDTStrings:   buf.U32BE(data[format.SizeDTStringsOffset:]),
		SizeDTStruct:    buf.U32BE(data[format.SizeDTStructOffset:]),
	}

	switch {
	case h.Magic != format.Magic:
		return Header{}, fmt.Errorf("header: magic 0x%08X, want 0x%08X: %w",
			h.Magic, uint32(format.Magic), ErrMalformedHeader)
	case h.TotalSize != uint32(len(data)):
		return Header{}, fmt.Errorf("header: totalsize %d does not match buffer length %d: %w",
			h.TotalSize, len(data), ErrMalformedHeader)
	case h.Version < format.MinVersion:
		return Header{}, fmt.Errorf("header: version %d, only >= %d is supported: %w",
			h.Version, format.MinVersion, ErrMalformedHeader)
	case h.LastCompVersion != format.CompVersion:
		return Header{}, fmt.Errorf("header: last_comp_version %d, want %d: %w",
			h.LastCompVersion, format.CompVersion, ErrMalformedHeader)
	case h.OffMemRsvmap >= h.OffDTStruct || h.OffDTStruct >= h.OffDTStrings:
		// Blocks must be ordered: memory reservation, structure, strings.
		return Header{}, fmt.Errorf("header: blocks out of order (rsvmap 0x%X, struct 0x%X, strings 0x%X): %w",
			h.OffMemRsvmap, h.OffDTStruct, h.OffDTStrings, ErrMalformedHeader)
	case uint64(h.OffDTStrings)+uint64(h.SizeDTStrings) > uint64(h.TotalSize):
		return Header{}, fmt.Errorf("header: strings block (0x%X+0x%X) runs past totalsize 0x%X: %w",
			h.OffDTStrings, h.SizeDTStrings, h.TotalSize, ErrMalformedHeader)
	case uint64(h.OffDTStruct)+uint64(h.SizeDTStruct) > uint64(h.OffDTStrings):
		return Header{}, fmt.Errorf("header: structure block (0x%X+0x%X) overlaps strings block at 0x%X: %w",
			h.OffDTStruct, h.SizeDTStruct, h.OffDTStrings, ErrMalformedHeader)
	case h.OffMemRsvmap%format.RsvmapAlignment != 0:
		return Header{}, fmt.Errorf("header: memory reservation block offset 0x%X not %d-byte aligned: %w",
			h.OffMemRsvmap, format.RsvmapAlignment, ErrMalformedHeader)
	case h.OffDTStruct%format.TokenAlignment != 0:
		return Header{}, fmt.Errorf("header: structure block offset 0x%X not %d-byte aligned: %w",
			h.OffDTStruct, format.TokenAlignment, ErrMalformedHeader)
	}
	return h, nil
}
