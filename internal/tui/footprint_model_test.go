package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecodash/internal/footprint"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewFootprintModel(t *testing.T) {
	model := NewFootprintModel(footprint.DefaultInputs())

	require.NotNil(t, model)
	assert.Equal(t, FootprintStateEditing, model.State())
	assert.Equal(t, footprint.SectionTransportation, model.ExpandedSection())
	assert.Equal(t, footprint.CarMiles, model.FocusedField())
	assert.InDelta(t, 1359.0, model.Estimate().Total, 1e-9)
	assert.Nil(t, model.Init())
}

func TestFootprintModel_Stepping(t *testing.T) {
	model := NewFootprintModel(footprint.DefaultInputs())

	model.Update(keyRunes("+"))
	assert.Equal(t, 130, model.Inputs().CarMiles)

	model.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 140, model.Inputs().CarMiles)

	model.Update(keyRunes("-"))
	model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 120, model.Inputs().CarMiles)

	// Stepping below zero clamps.
	for range 20 {
		model.Update(keyRunes("-"))
	}
	assert.Equal(t, 0, model.Inputs().CarMiles)
	assert.InDelta(t, 366.0, model.Estimate().Transportation, 1e-9)
}

func TestFootprintModel_Navigation(t *testing.T) {
	model := NewFootprintModel(footprint.DefaultInputs())

	model.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, footprint.CarMiles, model.FocusedField(), "up at top stays")

	model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model.Update(keyRunes("j"))
	assert.Equal(t, footprint.FlightHours, model.FocusedField())

	model.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, footprint.FlightHours, model.FocusedField(), "down at bottom stays")

	model.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, footprint.SectionHome, model.ExpandedSection())
	assert.Equal(t, footprint.ElectricityUsage, model.FocusedField(), "focus resets on expand")

	model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, footprint.SectionTransportation, model.ExpandedSection(), "tab wraps")

	model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, footprint.SectionConsumption, model.ExpandedSection())

	model.Update(keyRunes("+"))
	assert.Equal(t, 220, model.Inputs().Groceries)
}

func TestFootprintModel_EditMode(t *testing.T) {
	t.Run("commits typed value", func(t *testing.T) {
		model := NewFootprintModel(footprint.DefaultInputs())
		model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.True(t, model.editMode)
		assert.Equal(t, "120", model.editBuffer)

		for range 3 {
			model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		}
		model.Update(keyRunes("75"))
		model.Update(keyRunes("x"))
		assert.Equal(t, "75", model.editBuffer)

		model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.False(t, model.editMode)
		assert.Equal(t, 75, model.Inputs().CarMiles)
	})

	t.Run("rejects negative value", func(t *testing.T) {
		model := NewFootprintModel(footprint.DefaultInputs())
		model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		model.editBuffer = ""
		model.Update(keyRunes("-5"))
		model.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.True(t, model.editMode)
		require.ErrorIs(t, model.editErr, footprint.ErrNegativeValue)
		assert.Equal(t, 120, model.Inputs().CarMiles)
		assert.Contains(t, model.View(), "cannot be negative")
	})

	t.Run("rejects empty buffer", func(t *testing.T) {
		model := NewFootprintModel(footprint.DefaultInputs())
		model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		model.editBuffer = ""
		model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Error(t, model.editErr)
	})

	t.Run("esc cancels", func(t *testing.T) {
		model := NewFootprintModel(footprint.DefaultInputs())
		model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		model.Update(keyRunes("9"))
		model.Update(tea.KeyMsg{Type: tea.KeyEsc})

		assert.False(t, model.editMode)
		assert.Equal(t, 120, model.Inputs().CarMiles)
	})
}

func TestFootprintModel_Reset(t *testing.T) {
	model := NewFootprintModel(footprint.DefaultInputs())
	model.Update(keyRunes("+"))
	model.Update(keyRunes("r"))
	assert.Equal(t, footprint.DefaultInputs(), model.Inputs())
}

func TestFootprintModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		model := NewFootprintModel(footprint.DefaultInputs())
		_, cmd := model.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, FootprintStateQuitting, model.State())
		assert.Empty(t, model.View())
	}
}

func TestFootprintModel_WindowSize(t *testing.T) {
	model := NewFootprintModel(footprint.DefaultInputs())
	model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
}

func TestFootprintModel_View(t *testing.T) {
	model := NewFootprintModel(footprint.DefaultInputs())
	view := model.View()

	assert.Contains(t, view, "Carbon Footprint Calculator")
	assert.Contains(t, view, "70,668 kg CO₂e")
	assert.Contains(t, view, "Transportation")
	assert.Contains(t, view, "Car miles per week")
	// Collapsed sections list their totals but not their fields.
	assert.Contains(t, view, "Home Energy")
	assert.NotContains(t, view, "Monthly electricity usage")
	assert.Contains(t, view, "q: Quit")
}

func TestRenderFootprintDelta(t *testing.T) {
	tests := []struct {
		delta float64
		want  string
	}{
		{520, "+520 kg/yr " + IconArrowUp},
		{-1040.4, "-1,040 kg/yr " + IconArrowDown},
		{0.2, "0 kg/yr " + IconArrowRight},
	}
	for _, tt := range tests {
		assert.Contains(t, RenderFootprintDelta(tt.delta), tt.want)
	}
}

func TestRenderFootprintSummary(t *testing.T) {
	out := RenderFootprintSummary(footprint.DefaultInputs())

	assert.Contains(t, out, "70,668 kg CO₂e")
	assert.Contains(t, out, "~71 metric tons")
	for _, label := range []string{"Car miles per week", "Monthly natural gas usage", "New clothing items per month"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "smartphones")
	assert.Contains(t, out, "Switch to renewable energy")
	assert.Equal(t, 3, strings.Count(out, IconExpanded))
}

func TestRenderGauge(t *testing.T) {
	assert.Contains(t, RenderGauge(footprint.Estimate(footprint.LifestyleInputs{})), "12,000 kg")
}
