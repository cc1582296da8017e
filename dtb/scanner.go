package dtb

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/dtbkit/internal/buf"
	"github.com/joshuapare/dtbkit/internal/format"
)

// Scanner walks the structure block and produces tokens one at a time.
// It is lazy and single-use: call Next until it returns a KindEnd token,
// after which Next returns io.EOF. Any structural violation aborts the
// scan with an error carrying the byte offset where it was detected.
//
// The scanner keeps a stack of open node names to compute absolute paths
// and to detect malformed nesting.
type Scanner struct {
	data    []byte
	strings []byte
	off     int
	end     int
	open    []string
	done    bool
}

// NewScanner returns a scanner over the structure block described by an
// already-validated header.
func NewScanner(data []byte, hdr Header) *Scanner {
	return &Scanner{
		data:    data,
		strings: data[hdr.OffDTStrings : hdr.OffDTStrings+hdr.SizeDTStrings],
		off:     int(hdr.OffDTStruct),
		end:     int(hdr.OffDTStruct) + int(hdr.SizeDTStruct),
	}
}

// Depth returns the number of currently open nodes.
func (s *Scanner) Depth() int { return len(s.open) }

// Next decodes and returns the next token. It returns io.EOF after the
// end-of-stream token has been delivered.
func (s *Scanner) Next() (Token, error) {
	if s.done {
		return Token{}, io.EOF
	}
	if s.off+4 > s.end {
		return Token{}, fmt.Errorf("struct: block exhausted at offset %d without end token: %w",
			s.off, ErrTruncated)
	}
	tagOff := s.off
	tag := buf.U32BE(s.data[s.off:])
	s.off += 4

	switch tag {
	case format.TagBeginNode:
		return s.beginNode(tagOff)

	case format.TagEndNode:
		if len(s.open) == 0 {
			return Token{}, fmt.Errorf("struct: node end at offset %d with no open node: %w",
				tagOff, ErrUnbalancedNesting)
		}
		s.open = s.open[:len(s.open)-1]
		return Token{Kind: KindEndNode, Off: tagOff}, nil

	case format.TagProp:
		return s.prop(tagOff)

	case format.TagNop:
		return Token{Kind: KindNop, Off: tagOff}, nil

	case format.TagEnd:
		if len(s.open) != 0 {
			return Token{}, fmt.Errorf("struct: end token at offset %d with %d open node(s): %w",
				tagOff, len(s.open), ErrTruncated)
		}
		if s.off != s.end {
			return Token{}, fmt.Errorf("struct: end token at offset %d, expected at %d: %w",
				tagOff, s.end-4, ErrTruncated)
		}
		s.done = true
		return Token{Kind: KindEnd, Off: tagOff}, nil

	default:
		return Token{}, fmt.Errorf("struct: token tag 0x%X at offset %d: %w",
			tag, tagOff, ErrUnknownToken)
	}
}

func (s *Scanner) beginNode(tagOff int) (Token, error) {
	rest := s.data[s.off:s.end]
	i := bytes.IndexByte(rest, 0)
	if i < 0 {
		return Token{}, fmt.Errorf("struct: unterminated node name at offset %d: %w",
			s.off, ErrTruncated)
	}
	name := string(rest[:i])

	// Name, terminator, and padding. The terminator slot is always
	// consumed, so aligned names still advance a full extra word.
	adv := format.NameAdvance(len(name))
	next, ok := buf.AddOverflowSafe(s.off, adv)
	if !ok || next > s.end {
		return Token{}, fmt.Errorf("struct: node name padding at offset %d runs past block end: %w",
			s.off, ErrTruncated)
	}
	s.off = next

	if len(s.open) == 0 {
		if name != "" {
			return Token{}, fmt.Errorf("struct: root node at offset %d must not have a name, got %q: %w",
				tagOff, name, ErrInvalidNodeName)
		}
	} else if !format.ValidNodeName(name) {
		return Token{}, fmt.Errorf("struct: node name %q at offset %d: %w",
			name, tagOff, ErrInvalidNodeName)
	}

	s.open = append(s.open, name)
	path := "/"
	if len(s.open) > 1 {
		path = strings.Join(s.open, "/")
	}
	return Token{Kind: KindBeginNode, Name: name, Path: path, Off: tagOff}, nil
}

func (s *Scanner) prop(tagOff int) (Token, error) {
	if len(s.open) == 0 {
		return Token{}, fmt.Errorf("struct: property at offset %d before any node: %w",
			tagOff, ErrPropertyOutsideNode)
	}
	if s.off+8 > s.end {
		return Token{}, fmt.Errorf("struct: property record at offset %d cut short: %w",
			s.off, ErrTruncated)
	}
	propLen := int(buf.U32BE(s.data[s.off:]))
	nameOff := buf.U32BE(s.data[s.off+4:])
	s.off += 8

	name, ok := format.LookupString(s.strings, nameOff)
	if !ok {
		return Token{}, fmt.Errorf("struct: property name offset 0x%X outside strings block: %w",
			nameOff, ErrTruncated)
	}

	raw, ok := buf.Slice(s.data, s.off, propLen)
	if !ok || s.off+propLen > s.end {
		return Token{}, fmt.Errorf("struct: property value (%d bytes) at offset %d runs past block end: %w",
			propLen, s.off, ErrTruncated)
	}
	value := bytes.Clone(raw)

	// Values pad to the next word boundary only when misaligned.
	next, okAdd := buf.AddOverflowSafe(s.off, format.ValueAdvance(propLen))
	if !okAdd || next > s.end {
		return Token{}, fmt.Errorf("struct: property padding at offset %d runs past block end: %w",
			s.off, ErrTruncated)
	}
	s.off = next

	return Token{Kind: KindProp, Name: name, Value: value, Off: tagOff}, nil
}
