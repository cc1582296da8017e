package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/dtbkit/dtb"
	"github.com/joshuapare/dtbkit/dtb/render"
)

// printTreeText prints an indented textual rendition of the tree. The
// layout mirrors devicetree source conventions: empty properties print as
// "name;", valued ones as "name: rendered;".
func (p *Printer) printTreeText(tree *dtb.Tree) error {
	var err error
	tree.Root.Walk(func(n *dtb.Node, depth int) bool {
		if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
			return true
		}
		indent := strings.Repeat(" ", depth*p.opts.IndentSize)

		name := n.Name
		if name == "" {
			name = "/"
		}
		if n.Symbol != "" {
			name = n.Symbol + ": " + name
		}
		if _, err = fmt.Fprintf(p.writer, "%s%s\n", indent, name); err != nil {
			return false
		}

		if !p.opts.ShowProps {
			return true
		}
		propIndent := indent + strings.Repeat(" ", p.opts.IndentSize)
		for _, prop := range n.Props {
			if len(prop.Value) == 0 {
				_, err = fmt.Fprintf(p.writer, "%s%s;\n", propIndent, prop.Name)
			} else {
				_, err = fmt.Fprintf(p.writer, "%s%s: %s;\n",
					propIndent, prop.Name, render.Value(prop.Value, prop.Name))
			}
			if err != nil {
				return false
			}
		}
		return true
	})
	return err
}
