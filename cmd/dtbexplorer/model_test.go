package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dtbkit/dtb"
	"github.com/joshuapare/dtbkit/internal/testutil"
)

func decodeSampleTree(t *testing.T) *dtb.Tree {
	t.Helper()
	tree, err := dtb.Decode(testutil.SampleBlob())
	require.NoError(t, err)
	return tree
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialRows(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))

	// Root is expanded, children are collapsed: root + its direct children.
	require.Len(t, m.rows, 4)
	assert.Equal(t, "/", m.rows[0].node.Path)
	assert.Equal(t, "cpus", m.rows[1].node.Name)
	assert.Equal(t, "memory@80000000", m.rows[2].node.Name)
	assert.Equal(t, "__symbols__", m.rows[3].node.Name)
	assert.Equal(t, 0, m.cursor)
}

func TestExpandCollapse(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))

	// Move to cpus and expand it.
	m.moveCursor(1)
	require.Equal(t, "cpus", m.selected().Name)
	m.expandSelected()

	require.Len(t, m.rows, 6)
	assert.Equal(t, "cpu@0", m.rows[2].node.Name)
	assert.Equal(t, "cpu@1", m.rows[3].node.Name)
	assert.Equal(t, 2, m.rows[2].depth)

	// Collapse it again.
	m.collapseSelected()
	assert.Len(t, m.rows, 4)
}

func TestCollapseJumpsToParent(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))

	m.moveCursor(1)
	m.expandSelected()
	m.moveCursor(1) // cpu@0
	require.Equal(t, "cpu@0", m.selected().Name)

	// cpu@0 is a leaf: collapse moves the cursor to cpus.
	m.collapseSelected()
	assert.Equal(t, "cpus", m.selected().Name)
}

func TestCursorBounds(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))

	m.moveCursor(-10)
	assert.Equal(t, 0, m.cursor)

	m.moveCursor(100)
	assert.Equal(t, len(m.rows)-1, m.cursor)
}

func TestExpandLeafIsNoop(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))

	m.cursor = 2 // memory@80000000 has no children
	before := len(m.rows)
	m.expandSelected()
	assert.Equal(t, before, len(m.rows))
}

func TestCollapseAdjustsCursor(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))

	// Expand cpus, move to the last row, then collapse cpus via enter on it.
	m.moveCursor(1)
	m.expandSelected()
	m.cursor = len(m.rows) - 1

	m.expanded["/cpus"] = false
	m.rebuildRows()
	assert.Less(t, m.cursor, len(m.rows))
}

func TestUpdateKeyNavigation(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))
	m.width = 120
	m.height = 40

	next, _ := m.Update(keyMsg("j"))
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyMsg("G"))
	m = next.(Model)
	assert.Equal(t, len(m.rows)-1, m.cursor)

	next, _ = m.Update(keyMsg("g"))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestUpdateQuit(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHelpOverlayToggle(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))
	m.width = 120
	m.height = 40

	next, _ := m.Update(keyMsg("?"))
	m = next.(Model)
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	// Any key dismisses it.
	next, _ = m.Update(keyMsg("j"))
	m = next.(Model)
	assert.False(t, m.showHelp)
	assert.Equal(t, 0, m.cursor)
}

func TestViewShowsSelection(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))
	m.width = 120
	m.height = 40

	out := m.View()
	assert.Contains(t, out, "cpus")
	assert.Contains(t, out, "memory@80000000")
}

func TestPropPaneRendersValues(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))
	m.width = 120
	m.height = 40

	// Select memory@80000000 and check its reg property rendering.
	m.cursor = 2
	out := m.propView(80)
	assert.Contains(t, out, "device_type")
	assert.Contains(t, out, "0x80000000 0x10000000")
}

func TestNarrowPanesKeepRunesIntact(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))
	m.width = 120
	m.height = 40

	// Expand cpus so rows carry both expand markers and unit addresses.
	m.moveCursor(1)
	m.expandSelected()

	// A width narrow enough to cut into the "▼ " marker and into styled
	// symbol text on every row.
	const width = 3
	for _, line := range strings.Split(m.treeView(width, 10), "\n") {
		assert.True(t, utf8.ValidString(line), "tree line %q is not valid UTF-8", line)
		assert.LessOrEqual(t, ansi.StringWidth(line), width)
	}

	m.cursor = 0 // root carries the multi-word compatible property
	for _, line := range strings.Split(m.propView(width), "\n") {
		assert.True(t, utf8.ValidString(line), "prop line %q is not valid UTF-8", line)
		assert.LessOrEqual(t, ansi.StringWidth(line), width)
	}
}

func TestParentPath(t *testing.T) {
	assert.Equal(t, "", parentPath("/"))
	assert.Equal(t, "/", parentPath("/cpus"))
	assert.Equal(t, "/cpus", parentPath("/cpus/cpu@0"))
}

func TestWindowSizeMsg(t *testing.T) {
	m := newModelFromTree(decodeSampleTree(t))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
}
