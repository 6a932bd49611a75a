package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderInt(item int, selected bool) string {
	if selected {
		return fmt.Sprintf("> %d", item)
	}
	return fmt.Sprintf("  %d", item)
}

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func press(m *VirtualListModel[int], key string) {
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		msg = tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		msg = tea.KeyMsg{Type: tea.KeyPgUp}
	case "home":
		msg = tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		msg = tea.KeyMsg{Type: tea.KeyEnd}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m.Update(msg)
}

func TestVirtualList_Navigation(t *testing.T) {
	m := NewVirtualListModel(intRange(20), 5, 40, renderInt)

	press(m, "up")
	assert.Equal(t, 0, m.Selected(), "up at top stays at top")

	press(m, "down")
	press(m, "j")
	assert.Equal(t, 2, m.Selected())

	press(m, "k")
	assert.Equal(t, 1, m.Selected())

	press(m, "pgdown")
	assert.Equal(t, 6, m.Selected())

	press(m, "end")
	assert.Equal(t, 19, m.Selected())

	press(m, "down")
	assert.Equal(t, 19, m.Selected(), "down at bottom stays at bottom")

	press(m, "pgup")
	assert.Equal(t, 14, m.Selected())

	press(m, "home")
	assert.Equal(t, 0, m.Selected())
}

func TestVirtualList_ScrollsToSelection(t *testing.T) {
	m := NewVirtualListModel(intRange(20), 5, 40, renderInt)

	from, to := m.VisibleRange()
	assert.Equal(t, 0, from)
	assert.Equal(t, 5, to)

	m.SetSelected(7)
	from, to = m.VisibleRange()
	assert.Equal(t, 3, from)
	assert.Equal(t, 8, to)

	// Moving up inside the viewport does not scroll.
	m.SetSelected(4)
	from, _ = m.VisibleRange()
	assert.Equal(t, 3, from)

	m.SetSelected(100)
	from, to = m.VisibleRange()
	assert.Equal(t, 15, from)
	assert.Equal(t, 20, to)
}

func TestVirtualList_View(t *testing.T) {
	m := NewVirtualListModel(intRange(3), 10, 40, renderInt)
	m.SetSelected(1)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  0", lines[0])
	assert.Equal(t, "> 1", lines[1])
}

func TestVirtualList_Empty(t *testing.T) {
	m := NewVirtualListModel([]int{}, 5, 40, renderInt)
	press(m, "down")

	assert.Equal(t, 0, m.Selected())
	assert.Nil(t, m.GetSelectedItem())
	assert.Empty(t, m.View())
}

func TestVirtualList_SetItemsClampsSelection(t *testing.T) {
	m := NewVirtualListModel(intRange(10), 5, 40, renderInt)
	m.SetSelected(8)

	m.SetItems(intRange(3))
	assert.Equal(t, 2, m.Selected())
	require.NotNil(t, m.GetSelectedItem())
	assert.Equal(t, 2, *m.GetSelectedItem())
	assert.Equal(t, 3, m.ItemCount())
}

func TestVirtualList_Resize(t *testing.T) {
	m := NewVirtualListModel(intRange(20), 5, 40, renderInt)
	m.SetSelected(10)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 2})
	from, to := m.VisibleRange()
	assert.Equal(t, 2, to-from)
	assert.True(t, from <= 10 && 10 < to)
}
