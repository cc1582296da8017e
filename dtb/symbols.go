package dtb

import (
	"bytes"

	"github.com/joshuapare/dtbkit/internal/format"
)

// BuildSymbols makes one forward pass over the token sequence and returns
// the inverted symbol table: absolute node path -> alias name. Aliases
// come from the reserved /__symbols__ node, whose properties map alias
// names to NUL-terminated path strings.
//
// The pass is read-only and idempotent; rerunning it over the same tokens
// yields an identical table.
func BuildSymbols(tokens []Token) map[string]string {
	table := make(map[string]string)
	var open []string
	for _, t := range tokens {
		switch t.Kind {
		case KindBeginNode:
			open = append(open, t.Path)
		case KindEndNode:
			open = open[:len(open)-1]
		case KindProp:
			if len(open) == 0 || open[len(open)-1] != format.SymbolsPath {
				continue
			}
			path := t.Value
			if i := bytes.IndexByte(path, 0); i >= 0 {
				path = path[:i]
			}
			table[string(path)] = t.Name
		}
	}
	return table
}
