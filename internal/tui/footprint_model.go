package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/ecodash/internal/footprint"
)

// FootprintState is the current state of the calculator TUI.
type FootprintState int

const (
	// FootprintStateEditing is the normal stepping state.
	FootprintStateEditing FootprintState = iota
	// FootprintStateQuitting is set once the program is exiting.
	FootprintStateQuitting
)

// FootprintModel is the Bubble Tea model for the interactive carbon calculator.
// Only one section is expanded at a time; arrow keys move between its counters.
type FootprintModel struct {
	baseline footprint.LifestyleInputs
	inputs   footprint.LifestyleInputs
	sections []footprint.SectionFields

	expanded   int
	focusedRow int
	editMode   bool
	editBuffer string
	editErr    error

	state  FootprintState
	width  int
	height int
}

// NewFootprintModel creates a calculator starting from inputs, with the
// transportation section expanded.
func NewFootprintModel(inputs footprint.LifestyleInputs) *FootprintModel {
	return &FootprintModel{
		baseline: inputs,
		inputs:   inputs,
		sections: footprint.Sections(),
		state:    FootprintStateEditing,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Init initializes the model.
func (m *FootprintModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *FootprintModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.editMode {
			return m.handleEditModeKey(msg)
		}
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *FootprintModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.state = FootprintStateQuitting
		return m, tea.Quit

	case keyTab:
		m.expandSection(m.expanded + 1)
	case keyShiftTab:
		m.expandSection(m.expanded - 1)

	case keyUp, keyK:
		if m.focusedRow > 0 {
			m.focusedRow--
		}
	case keyDown, keyJ:
		if m.focusedRow < len(m.currentFields())-1 {
			m.focusedRow++
		}

	case keyPlus, keyEquals, keyRight:
		m.inputs = footprint.Increment(m.inputs, m.FocusedField())
	case keyMinus, keyLeft:
		m.inputs = footprint.Decrement(m.inputs, m.FocusedField())

	case keyEnter:
		m.editMode = true
		m.editErr = nil
		m.editBuffer = strconv.Itoa(m.inputs.Get(m.FocusedField()))

	case keyR:
		m.inputs = m.baseline
		m.editErr = nil
	}
	return m, nil
}

//nolint:exhaustive // Only handling relevant key types for numeric editing.
func (m *FootprintModel) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = FootprintStateQuitting
		return m, tea.Quit

	case tea.KeyEnter:
		m.commitEdit()

	case tea.KeyEsc:
		m.editMode = false
		m.editBuffer = ""

	case tea.KeyBackspace:
		if len(m.editBuffer) > 0 {
			m.editBuffer = m.editBuffer[:len(m.editBuffer)-1]
		}

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || (r == '-' && m.editBuffer == "") {
				m.editBuffer += string(r)
			}
		}
	}
	return m, nil
}

// commitEdit applies the edit buffer. Invalid values keep edit mode open.
func (m *FootprintModel) commitEdit() {
	v, err := strconv.Atoi(m.editBuffer)
	if err != nil {
		m.editErr = fmt.Errorf("%q is not a whole number", m.editBuffer)
		return
	}
	updated, err := footprint.Set(m.inputs, m.FocusedField(), v)
	if err != nil {
		m.editErr = err
		return
	}
	m.inputs = updated
	m.editMode = false
	m.editBuffer = ""
	m.editErr = nil
}

func (m *FootprintModel) expandSection(i int) {
	n := len(m.sections)
	m.expanded = ((i % n) + n) % n
	m.focusedRow = 0
}

func (m *FootprintModel) currentFields() []footprint.Field {
	return m.sections[m.expanded].Fields
}

// FocusedField returns the counter under the cursor.
func (m *FootprintModel) FocusedField() footprint.Field {
	return m.currentFields()[m.focusedRow]
}

// ExpandedSection returns the open section.
func (m *FootprintModel) ExpandedSection() footprint.Section {
	return m.sections[m.expanded].Section
}

// Inputs returns the current counters.
func (m *FootprintModel) Inputs() footprint.LifestyleInputs {
	return m.inputs
}

// Estimate returns the estimate for the current counters.
func (m *FootprintModel) Estimate() footprint.CarbonEstimate {
	return footprint.Estimate(m.inputs)
}

// State returns the model state.
func (m *FootprintModel) State() FootprintState {
	return m.state
}

// View renders the current view.
func (m *FootprintModel) View() string {
	if m.state == FootprintStateQuitting {
		return ""
	}

	baseline := footprint.Estimate(m.baseline)
	current := m.Estimate()

	var out string
	out += RenderFootprintHeader()
	out += "\n\n"
	out += RenderAnnualSummary(current)
	out += "\n"
	out += LabelStyle.Render("Change vs start: ") + RenderFootprintDelta(current.Annual()-baseline.Annual())
	out += "\n\n"

	editing := ""
	if m.editMode {
		editing = m.editBuffer + IconCursor
	}
	for i, sf := range m.sections {
		focused := -1
		if i == m.expanded {
			focused = m.focusedRow
		}
		out += RenderSection(sf, m.inputs, current, i == m.expanded, focused, editing)
		out += "\n"
	}

	if m.editErr != nil {
		out += WarningStyle.Render("Error: "+m.editErr.Error()) + "\n"
	}
	out += "\n"
	out += RenderFootprintHelp(m.editMode)
	return out
}
