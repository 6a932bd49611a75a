package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc draws one row.
type RenderFunc[T any] func(item T, selected bool) string

// VirtualListModel is a selectable list that scrolls to keep the selection visible.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected int
	// top is the index of the first row in the viewport.
	top int

	height int
	width  int
}

// NewVirtualListModel creates a list showing height rows.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 1),
		width:      width,
	}
	m.scrollToSelection()
	return m
}

// Init implements tea.Model.
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.height = max(msg.Height, 1)
		m.width = msg.Width
		m.scrollToSelection()
	}
	return m, nil
}

func (m *VirtualListModel[T]) handleKey(key string) {
	switch key {
	case "up", "k":
		m.SetSelected(m.selected - 1)
	case "down", "j":
		m.SetSelected(m.selected + 1)
	case "pgup":
		m.SetSelected(m.selected - m.height)
	case "pgdown":
		m.SetSelected(m.selected + m.height)
	case "home", "g":
		m.SetSelected(0)
	case "end", "G":
		m.SetSelected(len(m.items) - 1)
	}
}

// scrollToSelection moves the viewport the minimum distance needed to show
// the selected row.
func (m *VirtualListModel[T]) scrollToSelection() {
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+m.height {
		m.top = m.selected - m.height + 1
	}
	m.top = max(0, min(m.top, len(m.items)-m.height))
}

// View renders the rows inside the viewport.
func (m *VirtualListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	end := min(m.top+m.height, len(m.items))
	rows := make([]string, 0, end-m.top)
	for i := m.top; i < end; i++ {
		rows = append(rows, m.renderFunc(m.items[i], i == m.selected))
	}
	return strings.Join(rows, "\n")
}

// SetItems replaces the list contents, keeping the selection index in range.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.SetSelected(m.selected)
}

// ItemCount returns the number of items.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the selected index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// SetSelected selects index, clamped to the list bounds.
func (m *VirtualListModel[T]) SetSelected(index int) {
	m.selected = max(0, min(index, len(m.items)-1))
	m.scrollToSelection()
}

// VisibleRange returns the first (inclusive) and last (exclusive) rows in view.
//
//nolint:nonamedreturns // Named returns document the range bounds.
func (m *VirtualListModel[T]) VisibleRange() (from, to int) {
	return m.top, min(m.top+m.height, len(m.items))
}

// GetSelectedItem returns the selected item, or nil for an empty list.
func (m *VirtualListModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}
