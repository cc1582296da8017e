// Package render formats raw property values into human-readable strings.
//
// Classification is heuristic: a value that looks like a NUL-terminated
// string list prints as quoted segments, a value whose length is a
// multiple of four prints as big-endian 32-bit words, and anything else
// prints as a contiguous hex dump. Every non-empty value has a defined
// rendering; there is no error path.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/dtbkit/internal/buf"
)

// NamesSuffix forces string-list rendering regardless of the heuristic.
// Bindings conventionally use it for properties listing entry names
// (clock-names, reg-names, interrupt-names, ...).
const NamesSuffix = "-names"

// Value renders a raw property value. name is the property name, which
// participates in classification. Callers render empty values as
// name-only and must not pass them here.
func Value(value []byte, name string) string {
	if s, ok := stringList(value, name); ok {
		return s
	}

	if len(value)%4 == 0 {
		words := make([]string, 0, len(value)/4)
		for i := 0; i < len(value); i += 4 {
			words = append(words, fmt.Sprintf("0x%x", buf.U32BE(value[i:])))
		}
		return strings.Join(words, " ")
	}

	// Mostly MAC addresses and similar odd-length byte strings.
	return fmt.Sprintf("0x%X", value)
}

// stringList renders value as quoted NUL-terminated segments when it
// qualifies. The heuristic requires a trailing NUL and no empty segment
// before it; a name ending in NamesSuffix skips the heuristic and splits
// unconditionally, empty segments included. Either way the attempt is
// abandoned when a segment is not valid UTF-8.
//
// A legitimate string list with an empty middle segment (two consecutive
// NULs) fails the heuristic on purpose and falls through to numeric or
// hex rendering; output compatibility depends on this quirk.
func stringList(value []byte, name string) (string, bool) {
	parts := bytes.Split(value, []byte{0})
	last := len(parts) - 1

	heuristic := len(parts) > 0 && len(parts[last]) == 0
	if heuristic {
		for _, p := range parts[:last] {
			if len(p) == 0 {
				heuristic = false
				break
			}
		}
	}
	if !heuristic && !strings.HasSuffix(name, NamesSuffix) {
		return "", false
	}

	quoted := make([]string, 0, last)
	for _, p := range parts[:last] {
		if !utf8.Valid(p) {
			return "", false
		}
		quoted = append(quoted, `"`+string(p)+`"`)
	}
	return strings.Join(quoted, ", "), true
}
