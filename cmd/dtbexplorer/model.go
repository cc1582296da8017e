package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/dtbkit/dtb"
)

// row is one visible line in the tree pane.
type row struct {
	node  *dtb.Node
	depth int
}

// Model is the main application model
type Model struct {
	blobPath string
	blob     *dtb.Blob
	tree     *dtb.Tree

	rows     []row           // visible rows, rebuilt after every expand/collapse
	cursor   int             // index into rows
	expanded map[string]bool // node path -> expanded
	offset   int             // scroll offset of the tree pane

	keys     KeyMap
	showHelp bool
	width    int
	height   int

	err error
}

// NewModel creates a new TUI model
func NewModel(blobPath string) Model {
	m := Model{
		blobPath: blobPath,
		expanded: make(map[string]bool),
		keys:     DefaultKeyMap(),
	}

	blob, err := dtb.Open(blobPath)
	if err != nil {
		m.err = err
		return m
	}
	m.blob = blob

	tree, err := blob.Decode()
	if err != nil {
		m.err = err
		return m
	}
	m.tree = tree

	// Start with the root expanded so the first level is visible.
	m.expanded[tree.Root.Path] = true
	m.rebuildRows()
	return m
}

// newModelFromTree builds a model around an already decoded tree.
func newModelFromTree(tree *dtb.Tree) Model {
	m := Model{
		tree:     tree,
		expanded: make(map[string]bool),
		keys:     DefaultKeyMap(),
	}
	m.expanded[tree.Root.Path] = true
	m.rebuildRows()
	return m
}

// rebuildRows flattens the tree into the visible row list, descending only
// into expanded nodes.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	if m.tree == nil || m.tree.Root == nil {
		m.cursor = 0
		return
	}

	type frame struct {
		node  *dtb.Node
		depth int
	}
	stack := []frame{{m.tree.Root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m.rows = append(m.rows, row{node: f.node, depth: f.depth})
		if !m.expanded[f.node.Path] {
			continue
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the node under the cursor, or nil when the tree is empty.
func (m *Model) selected() *dtb.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].node
}

// parentPath returns the path of the node's parent ("" for the root).
func parentPath(path string) string {
	if path == "/" {
		return ""
	}
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			if i == 0 {
				return "/"
			}
			return path[:i]
		}
	}
	return ""
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the mapped blob.
func (m Model) Close() error {
	if m.blob != nil {
		return m.blob.Close()
	}
	return nil
}
