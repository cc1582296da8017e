// Package testutil builds synthetic flattened devicetree blobs for tests.
// No binary fixtures ship with the repository; every test assembles the
// exact blob it needs.
package testutil

import (
	"encoding/binary"

	"github.com/joshuapare/dtbkit/internal/format"
)

type opKind int

const (
	opBegin opKind = iota
	opEnd
	opProp
	opNop
	opRaw
)

type op struct {
	kind  opKind
	name  string
	value []byte
	tag   uint32
}

// Builder assembles a flattened devicetree blob: a 40-byte header, an
// empty memory reservation block (single terminator entry), the structure
// block described by the recorded operations, and a deduplicated strings
// block. Offsets, sizes, and alignment all follow the on-disk layout, so
// the output exercises the real decoder paths.
type Builder struct {
	ops     []op
	version uint32
	omitEnd bool
}

// NewBuilder returns a Builder producing version-17 blobs.
func NewBuilder() *Builder {
	return &Builder{version: 17}
}

// Begin records a node-begin token. Use an empty name for the root.
func (b *Builder) Begin(name string) *Builder {
	b.ops = append(b.ops, op{kind: opBegin, name: name})
	return b
}

// End records a node-end token.
func (b *Builder) End() *Builder {
	b.ops = append(b.ops, op{kind: opEnd})
	return b
}

// Prop records a property token with a raw value.
func (b *Builder) Prop(name string, value []byte) *Builder {
	b.ops = append(b.ops, op{kind: opProp, name: name, value: value})
	return b
}

// PropString records a property holding NUL-terminated string segments.
func (b *Builder) PropString(name string, segments ...string) *Builder {
	var v []byte
	for _, s := range segments {
		v = append(v, s...)
		v = append(v, 0)
	}
	return b.Prop(name, v)
}

// PropU32 records a property holding big-endian 32-bit words.
func (b *Builder) PropU32(name string, words ...uint32) *Builder {
	v := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(v[4*i:], w)
	}
	return b.Prop(name, v)
}

// Nop records a no-op token.
func (b *Builder) Nop() *Builder {
	b.ops = append(b.ops, op{kind: opNop})
	return b
}

// Raw records an arbitrary token tag with no payload, for malformed-stream
// tests.
func (b *Builder) Raw(tag uint32) *Builder {
	b.ops = append(b.ops, op{kind: opRaw, tag: tag})
	return b
}

// OmitEnd suppresses the end-of-stream token normally appended by Bytes.
func (b *Builder) OmitEnd() *Builder {
	b.omitEnd = true
	return b
}

// Version overrides the header version field.
func (b *Builder) Version(v uint32) *Builder {
	b.version = v
	return b
}

// Bytes lays out the blob and returns it.
func (b *Builder) Bytes() []byte {
	strOffsets := map[string]uint32{}
	var strBlock []byte
	internString := func(s string) uint32 {
		if off, ok := strOffsets[s]; ok {
			return off
		}
		off := uint32(len(strBlock))
		strOffsets[s] = off
		strBlock = append(strBlock, s...)
		strBlock = append(strBlock, 0)
		return off
	}

	var structBlock []byte
	putU32 := func(v uint32) {
		var w [4]byte
		binary.BigEndian.PutUint32(w[:], v)
		structBlock = append(structBlock, w[:]...)
	}

	for _, o := range b.ops {
		switch o.kind {
		case opBegin:
			putU32(format.TagBeginNode)
			structBlock = append(structBlock, o.name...)
			// Terminator plus padding: a full extra word when the name
			// length is already aligned.
			pad := format.NameAdvance(len(o.name)) - len(o.name)
			structBlock = append(structBlock, make([]byte, pad)...)
		case opEnd:
			putU32(format.TagEndNode)
		case opProp:
			putU32(format.TagProp)
			putU32(uint32(len(o.value)))
			putU32(internString(o.name))
			structBlock = append(structBlock, o.value...)
			pad := format.ValueAdvance(len(o.value)) - len(o.value)
			structBlock = append(structBlock, make([]byte, pad)...)
		case opNop:
			putU32(format.TagNop)
		case opRaw:
			putU32(o.tag)
		}
	}
	if !b.omitEnd {
		putU32(format.TagEnd)
	}

	const (
		rsvmapOff = format.HeaderSize // 40, 8-byte aligned
		rsvmapLen = 16                // single zero terminator entry
		structOff = rsvmapOff + rsvmapLen
	)
	stringsOff := structOff + len(structBlock)
	total := stringsOff + len(strBlock)

	blob := make([]byte, total)
	hput := func(off int, v uint32) { binary.BigEndian.PutUint32(blob[off:], v) }
	hput(format.MagicOffset, format.Magic)
	hput(format.TotalSizeOffset, uint32(total))
	hput(format.OffDTStructOffset, uint32(structOff))
	hput(format.OffDTStringsOffset, uint32(stringsOff))
	hput(format.OffMemRsvmapOffset, rsvmapOff)
	hput(format.VersionOffset, b.version)
	hput(format.LastCompVersionOffset, format.CompVersion)
	hput(format.BootCPUIDPhysOffset, 0)
	hput(format.SizeDTStringsOffset, uint32(len(strBlock)))
	hput(format.SizeDTStructOffset, uint32(len(structBlock)))

	copy(blob[structOff:], structBlock)
	copy(blob[stringsOff:], strBlock)
	return blob
}
