package printer

import (
	"encoding/json"

	"github.com/joshuapare/dtbkit/dtb"
	"github.com/joshuapare/dtbkit/dtb/render"
)

// jsonNode mirrors dtb.Node with rendered property values. Props stay an
// ordered array because declaration order is part of the data model.
type jsonNode struct {
	Name     string      `json:"name"`
	Path     string      `json:"path"`
	Symbol   string      `json:"symbol,omitempty"`
	Props    []jsonProp  `json:"props,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonProp struct {
	Name string `json:"name"`
	// Value is the rendered form; absent for empty (flag) properties.
	Value string `json:"value,omitempty"`
}

// printTreeJSON prints the tree as an indented JSON document.
func (p *Printer) printTreeJSON(tree *dtb.Tree) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(p.toJSONNode(tree.Root, 0))
}

func (p *Printer) toJSONNode(n *dtb.Node, depth int) *jsonNode {
	out := &jsonNode{
		Name:   n.Name,
		Path:   n.Path,
		Symbol: n.Symbol,
	}
	if p.opts.ShowProps {
		for _, prop := range n.Props {
			jp := jsonProp{Name: prop.Name}
			if len(prop.Value) > 0 {
				jp.Value = render.Value(prop.Value, prop.Name)
			}
			out.Props = append(out.Props, jp)
		}
	}
	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		return out
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, p.toJSONNode(child, depth+1))
	}
	return out
}
