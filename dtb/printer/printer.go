// Package printer renders decoded devicetree trees as text, JSON, or a
// self-contained collapsible HTML document.
package printer

import (
	"io"

	"github.com/joshuapare/dtbkit/dtb"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable indented text.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"

	// FormatHTML outputs a standalone HTML document with clickable,
	// collapsible nodes.
	FormatHTML Format = "html"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, html).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits tree depth (0 = unlimited). Ignored by HTML output.
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowProps includes property values in output.
	// Default: true
	ShowProps bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
		ShowProps:  true,
	}
}

// Printer handles formatted output of decoded trees.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// PrintTree prints the whole tree in the configured format.
func (p *Printer) PrintTree(tree *dtb.Tree) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printTreeJSON(tree)
	case FormatHTML:
		return p.printTreeHTML(tree)
	case FormatText:
		return p.printTreeText(tree)
	default:
		return p.printTreeText(tree)
	}
}

// PrintNode prints the subtree rooted at the node with the given absolute
// path. Unknown paths are reported as an error.
func (p *Printer) PrintNode(tree *dtb.Tree, path string) error {
	node := tree.Root.Find(path)
	if node == nil {
		return &PathError{Path: path}
	}
	sub := &dtb.Tree{Header: tree.Header, Root: node, Symbols: tree.Symbols}
	return p.PrintTree(sub)
}

// PathError reports a node path that does not exist in the tree.
type PathError struct {
	Path string
}

func (e *PathError) Error() string {
	return "printer: no node at path " + e.Path
}
