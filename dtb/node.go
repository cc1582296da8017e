package dtb

// Property is a single named property attached to a Node.
type Property struct {
	Name  string
	Value []byte
}

// Node is one node of the decoded tree. The root node has Name == "" and
// Path == "/". A node owns its properties and children; nothing in the
// tree aliases the underlying blob.
type Node struct {
	Name string
	Path string

	// Symbol is the alias name from the blob's symbol table, or "" when
	// the node has no alias.
	Symbol string

	// Props preserves declaration order. Names are unique within a node;
	// a redeclared name overwrites the earlier value in place.
	Props []Property

	// Children preserves declaration order.
	Children []*Node
}

// Prop returns the raw value of the named property.
func (n *Node) Prop(name string) ([]byte, bool) {
	for _, p := range n.Props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// setProp attaches a property, overwriting any prior value under the same
// name while keeping its original position. Last write wins.
func (n *Node) setProp(name string, value []byte) {
	for i := range n.Props {
		if n.Props[i].Name == name {
			n.Props[i].Value = value
			return
		}
	}
	n.Props = append(n.Props, Property{Name: name, Value: value})
}

type walkFrame struct {
	node  *Node
	depth int
}

// Walk visits n and every descendant in declaration order, calling fn
// with each node and its depth. fn returns false to stop the walk early.
// Traversal is iterative with an explicit stack so deeply nested blobs
// cannot exhaust the call stack.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	if n == nil {
		return
	}
	stack := []walkFrame{{node: n}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(frame.node, frame.depth) {
			return
		}
		// Children are pushed in reverse so declaration order pops first.
		for i := len(frame.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{node: frame.node.Children[i], depth: frame.depth + 1})
		}
	}
}

// Find returns the node with the given absolute path, or nil.
func (n *Node) Find(path string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if node.Path == path {
			found = node
			return false
		}
		return true
	})
	return found
}
