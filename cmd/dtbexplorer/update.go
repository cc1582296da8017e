package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}

		if m.showHelp {
			// Any other key dismisses the help overlay.
			m.showHelp = false
			return m, nil
		}
		if m.err != nil {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)

		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)

		case key.Matches(msg, m.keys.Right):
			m.expandSelected()

		case key.Matches(msg, m.keys.Enter):
			m.toggleSelected()

		case key.Matches(msg, m.keys.Left):
			m.collapseSelected()

		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
			m.offset = 0

		case key.Matches(msg, m.keys.Bottom):
			m.cursor = len(m.rows) - 1
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.clampOffset()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.clampOffset()
}

// expandSelected expands the node under the cursor.
func (m *Model) expandSelected() {
	n := m.selected()
	if n == nil || len(n.Children) == 0 {
		return
	}
	if !m.expanded[n.Path] {
		m.expanded[n.Path] = true
		m.rebuildRows()
	}
}

// toggleSelected flips the expansion state of the node under the cursor.
func (m *Model) toggleSelected() {
	n := m.selected()
	if n == nil || len(n.Children) == 0 {
		return
	}
	m.expanded[n.Path] = !m.expanded[n.Path]
	m.rebuildRows()
	m.clampOffset()
}

// collapseSelected collapses the node under the cursor, or moves to its
// parent when it is already collapsed.
func (m *Model) collapseSelected() {
	n := m.selected()
	if n == nil {
		return
	}
	if m.expanded[n.Path] {
		m.expanded[n.Path] = false
		m.rebuildRows()
		m.clampOffset()
		return
	}
	parent := parentPath(n.Path)
	if parent == "" {
		return
	}
	for i, r := range m.rows {
		if r.node.Path == parent {
			m.cursor = i
			m.clampOffset()
			return
		}
	}
}

// clampOffset keeps the cursor inside the visible window of the tree pane.
func (m *Model) clampOffset() {
	visible := m.treeHeight()
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
