package dtb

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/joshuapare/dtbkit/internal/format"
	"github.com/joshuapare/dtbkit/internal/testutil"
)

func scanAll(t *testing.T, blob []byte) ([]Token, error) {
	t.Helper()
	hdr, err := ParseHeader(blob)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	s := NewScanner(blob, hdr)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEnd {
			return tokens, nil
		}
	}
}

func TestScannerTokenSequence(t *testing.T) {
	// Node name lengths 1, 3, 4, and 5 cover every padding residue of the
	// always-consume-terminator rule; property value lengths 0, 1, 3, 4,
	// and 5 cover the pad-only-when-misaligned rule.
	blob := testutil.NewBuilder().
		Begin("").
		Prop("empty", nil).
		Prop("one", []byte{0xAA}).
		Begin("a").
		Prop("three", []byte{1, 2, 3}).
		End().
		Nop().
		Begin("abc").
		Prop("four", []byte{1, 2, 3, 4}).
		Begin("abcd").
		Prop("five", []byte{1, 2, 3, 4, 5}).
		End().
		End().
		Begin("abcde").
		End().
		End().
		Bytes()

	tokens, err := scanAll(t, blob)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	type want struct {
		kind  Kind
		name  string
		path  string
		value []byte
	}
	wants := []want{
		{kind: KindBeginNode, name: "", path: "/"},
		{kind: KindProp, name: "empty", value: []byte{}},
		{kind: KindProp, name: "one", value: []byte{0xAA}},
		{kind: KindBeginNode, name: "a", path: "/a"},
		{kind: KindProp, name: "three", value: []byte{1, 2, 3}},
		{kind: KindEndNode},
		{kind: KindNop},
		{kind: KindBeginNode, name: "abc", path: "/abc"},
		{kind: KindProp, name: "four", value: []byte{1, 2, 3, 4}},
		{kind: KindBeginNode, name: "abcd", path: "/abc/abcd"},
		{kind: KindProp, name: "five", value: []byte{1, 2, 3, 4, 5}},
		{kind: KindEndNode},
		{kind: KindEndNode},
		{kind: KindBeginNode, name: "abcde", path: "/abcde"},
		{kind: KindEndNode},
		{kind: KindEndNode},
		{kind: KindEnd},
	}
	if len(tokens) != len(wants) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(wants))
	}
	for i, w := range wants {
		tok := tokens[i]
		if tok.Kind != w.kind {
			t.Fatalf("token %d: kind %s, want %s", i, tok.Kind, w.kind)
		}
		if tok.Name != w.name {
			t.Errorf("token %d: name %q, want %q", i, tok.Name, w.name)
		}
		if tok.Path != w.path {
			t.Errorf("token %d: path %q, want %q", i, tok.Path, w.path)
		}
		if w.value != nil && !bytes.Equal(tok.Value, w.value) {
			t.Errorf("token %d: value %x, want %x", i, tok.Value, w.value)
		}
	}
}

func TestScannerEOFAfterEnd(t *testing.T) {
	blob := testutil.NewBuilder().Begin("").End().Bytes()
	hdr, err := ParseHeader(blob)
	if err != nil {
		t.Fatal(err)
	}
	s := NewScanner(blob, hdr)
	for {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("scan: %v", err)
		}
		if tok.Kind == KindEnd {
			break
		}
	}
	if _, err := s.Next(); err != io.EOF {
		t.Fatalf("after end: %v, want io.EOF", err)
	}
}

func TestScannerPropertyNameFromStringsBlock(t *testing.T) {
	// Two properties sharing a name land on the same strings-block offset.
	blob := testutil.NewBuilder().
		Begin("").
		PropU32("reg", 1).
		Begin("child").
		PropU32("reg", 2).
		End().
		End().
		Bytes()
	hdr, err := ParseHeader(blob)
	if err != nil {
		t.Fatal(err)
	}
	// Deduplicated pool: "reg\0" only once.
	if hdr.SizeDTStrings != 4 {
		t.Fatalf("strings block size %d, want 4", hdr.SizeDTStrings)
	}
	tokens, scanErr := scanAll(t, blob)
	if scanErr != nil {
		t.Fatalf("scan: %v", scanErr)
	}
	var propNames []string
	for _, tok := range tokens {
		if tok.Kind == KindProp {
			propNames = append(propNames, tok.Name)
		}
	}
	if len(propNames) != 2 || propNames[0] != "reg" || propNames[1] != "reg" {
		t.Fatalf("prop names = %v", propNames)
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() []byte
		wantErr error
	}{
		{
			name:    "named root",
			build:   func() []byte { return testutil.NewBuilder().Begin("root").End().Bytes() },
			wantErr: ErrInvalidNodeName,
		},
		{
			name: "bad node name",
			build: func() []byte {
				return testutil.NewBuilder().Begin("").Begin("bad name").End().End().Bytes()
			},
			wantErr: ErrInvalidNodeName,
		},
		{
			name:    "node end without begin",
			build:   func() []byte { return testutil.NewBuilder().End().Bytes() },
			wantErr: ErrUnbalancedNesting,
		},
		{
			name:    "property before any node",
			build:   func() []byte { return testutil.NewBuilder().Prop("reg", []byte{1}).Bytes() },
			wantErr: ErrPropertyOutsideNode,
		},
		{
			name: "unknown token tag",
			build: func() []byte {
				return testutil.NewBuilder().Begin("").Raw(7).End().Bytes()
			},
			wantErr: ErrUnknownToken,
		},
		{
			name:    "end token with open nodes",
			build:   func() []byte { return testutil.NewBuilder().Begin("").Bytes() },
			wantErr: ErrTruncated,
		},
		{
			name: "missing end token",
			build: func() []byte {
				return testutil.NewBuilder().Begin("").End().OmitEnd().Bytes()
			},
			wantErr: ErrTruncated,
		},
		{
			name: "trailing data after end token",
			build: func() []byte {
				return testutil.NewBuilder().Begin("").End().
					Raw(format.TagEnd).Nop().OmitEnd().Bytes()
			},
			wantErr: ErrTruncated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanAll(t, tt.build())
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}
