package dtb

// Tree is the result of decoding one blob. It holds no reference to the
// input buffer; decode sessions are fully independent of each other.
type Tree struct {
	Header  Header
	Root    *Node
	Symbols map[string]string // absolute node path -> alias name
}

// buildTree assembles the node tree in a second pass over the token
// sequence. It requires a well-nested sequence as produced by Scanner;
// behavior on anything else is undefined. An explicit stack of
// in-progress nodes keeps construction iterative.
func buildTree(tokens []Token, symbols map[string]string) *Node {
	var stack []*Node
	for _, t := range tokens {
		switch t.Kind {
		case KindBeginNode:
			stack = append(stack, &Node{
				Name:   t.Name,
				Path:   t.Path,
				Symbol: symbols[t.Path],
			})
		case KindEndNode:
			if len(stack) >= 2 {
				parent := stack[len(stack)-2]
				parent.Children = append(parent.Children, stack[len(stack)-1])
			}
			// The root stays on the stack so it survives its end token.
			if len(stack) != 1 {
				stack = stack[:len(stack)-1]
			}
		case KindProp:
			stack[len(stack)-1].setProp(t.Name, t.Value)
		}
	}
	if len(stack) == 0 {
		return nil
	}
	return stack[0]
}
