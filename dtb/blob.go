package dtb

import (
	"fmt"

	"github.com/joshuapare/dtbkit/internal/mmfile"
)

// Blob is an opened flattened devicetree blob, backed by mmap (unix) or a
// byte slice (others). The header is validated on open; everything else
// is decoded on demand.
type Blob struct {
	data    []byte
	cleanup func() error
	hdr     Header
}

// Open maps the file at path and validates its header.
func Open(path string) (*Blob, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("dtb: open %s: %w", path, err)
	}
	hdr, err := ParseHeader(data)
	if err != nil {
		cleanup()
		return nil, err
	}
	return &Blob{data: data, cleanup: cleanup, hdr: hdr}, nil
}

// FromBytes validates the header of an in-memory blob. The caller keeps
// ownership of data and must not mutate it while the Blob is in use.
func FromBytes(data []byte) (*Blob, error) {
	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	return &Blob{data: data, cleanup: func() error { return nil }, hdr: hdr}, nil
}

// Close releases the mapping. The Blob must not be used afterwards;
// decoded Trees remain valid.
func (b *Blob) Close() error {
	if b == nil || b.cleanup == nil {
		return nil
	}
	err := b.cleanup()
	b.cleanup = nil
	b.data = nil
	return err
}

// Header returns the validated file header.
func (b *Blob) Header() Header { return b.hdr }

// Size returns the blob length in bytes.
func (b *Blob) Size() int { return len(b.data) }

// Tokens scans the structure block once and returns the full token
// sequence, end-of-stream token included. The materialized list lets the
// symbol and tree passes each run as simple linear scans without
// re-parsing the binary buffer.
func (b *Blob) Tokens() ([]Token, error) {
	s := NewScanner(b.data, b.hdr)
	var tokens []Token
	for {
		t, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
		if t.Kind == KindEnd {
			return tokens, nil
		}
	}
}

// Decode runs the full pipeline: token scan, symbol pass, tree build.
func (b *Blob) Decode() (*Tree, error) {
	tokens, err := b.Tokens()
	if err != nil {
		return nil, err
	}
	symbols := BuildSymbols(tokens)
	return &Tree{
		Header:  b.hdr,
		Root:    buildTree(tokens, symbols),
		Symbols: symbols,
	}, nil
}

// Decode validates and decodes an in-memory blob in one call.
func Decode(data []byte) (*Tree, error) {
	b, err := FromBytes(data)
	if err != nil {
		return nil, err
	}
	return b.Decode()
}
