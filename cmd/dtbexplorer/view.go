package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/joshuapare/dtbkit/dtb/render"
)

const chromeHeight = 4 // header + status bar + pane borders

// treeHeight is the number of rows the tree pane can display.
func (m *Model) treeHeight() int {
	return m.height - chromeHeight
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\nPress q to quit.\n"
	}
	if m.width == 0 || m.tree == nil {
		return "Loading..."
	}
	if m.showHelp {
		return m.helpView()
	}

	header := headerStyle.Render("dtbexplorer") + " " + pathStyle.Render(m.blobPath)

	treeWidth := m.width * 2 / 5
	propWidth := m.width - treeWidth - 6 // pane borders and padding
	if treeWidth < 20 {
		treeWidth = 20
	}
	if propWidth < 20 {
		propWidth = 20
	}
	paneHeight := m.treeHeight()
	if paneHeight < 3 {
		paneHeight = 3
	}

	treePane := paneStyle.Width(treeWidth).Height(paneHeight).Render(m.treeView(treeWidth, paneHeight))
	propPane := paneStyle.Width(propWidth).Height(paneHeight).Render(m.propView(propWidth))

	body := lipgloss.JoinHorizontal(lipgloss.Top, treePane, propPane)

	status := statusStyle.Width(m.width).Render(m.statusLine())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// treeView renders the visible window of tree rows.
func (m Model) treeView(width, height int) string {
	var b strings.Builder
	end := m.offset + height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		r := m.rows[i]

		marker := "  "
		if len(r.node.Children) > 0 {
			if m.expanded[r.node.Path] {
				marker = "▼ "
			} else {
				marker = "▶ "
			}
		}

		name := r.node.Name
		if name == "" {
			name = "/"
		}
		line := strings.Repeat("  ", r.depth) + marker + name
		if r.node.Symbol != "" {
			line += " " + symbolStyle.Render("&"+r.node.Symbol)
		}
		// Width-aware truncation; a byte slice could cut a rune or an
		// escape sequence in half.
		line = ansi.Truncate(line, width, "")

		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if i != end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// propView renders the properties of the selected node.
func (m Model) propView(width int) string {
	n := m.selected()
	if n == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(ansi.Truncate(pathStyle.Render(n.Path), width, ""))
	b.WriteByte('\n')
	if n.Symbol != "" {
		b.WriteString(ansi.Truncate(symbolStyle.Render("symbol: "+n.Symbol), width, ""))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	if len(n.Props) == 0 {
		b.WriteString(statusStyle.Render("(no properties)"))
		return b.String()
	}
	for _, p := range n.Props {
		line := propNameStyle.Render(p.Name)
		if len(p.Value) > 0 {
			line += " = " + render.Value(p.Value, p.Name)
		}
		line = ansi.Truncate(line, width, "")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) statusLine() string {
	return fmt.Sprintf("%d/%d nodes  •  ? help  •  q quit", m.cursor+1, len(m.rows))
}

func (m Model) helpView() string {
	rows := []struct{ key, desc string }{
		{"↑/k, ↓/j", "move up/down"},
		{"→/l", "expand node"},
		{"←/h", "collapse node / go to parent"},
		{"enter", "expand/collapse"},
		{"g, G", "jump to top/bottom"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("dtbexplorer - Keyboard Shortcuts"))
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(helpKeyStyle.Render(r.key))
		b.WriteString(helpDescStyle.Render(r.desc))
		b.WriteByte('\n')
	}
	b.WriteString("\nPress any key to close.")
	return b.String()
}
