package dtb

import "github.com/joshuapare/dtbkit/internal/format"

// Kind identifies a structure block token type.
type Kind uint32

const (
	KindBeginNode Kind = format.TagBeginNode
	KindEndNode   Kind = format.TagEndNode
	KindProp      Kind = format.TagProp
	KindNop       Kind = format.TagNop
	KindEnd       Kind = format.TagEnd
)

// String returns the token tag name used in debug output.
func (k Kind) String() string {
	switch k {
	case KindBeginNode:
		return "BEGIN_NODE"
	case KindEndNode:
		return "END_NODE"
	case KindProp:
		return "PROP"
	case KindNop:
		return "NOP"
	case KindEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// Token is one decoded structure block record. Tokens are produced in
// stream order and never mutated after creation.
//
// KindBeginNode fills Name and Path (absolute, slash-joined, "/" for the
// root). KindProp fills Name (resolved from the strings block) and Value
// (raw bytes, possibly empty). The remaining kinds carry no payload.
type Token struct {
	Kind  Kind
	Name  string
	Path  string
	Value []byte

	// Off is the byte offset of the token tag within the blob, kept for
	// error reporting and debug dumps.
	Off int
}
