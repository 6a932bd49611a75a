package tui

import "errors"

// ViewState is the screen a list model is showing.
type ViewState int

const (
	// ViewStateList shows the list.
	ViewStateList ViewState = iota
	// ViewStateDetail shows the selected item.
	ViewStateDetail
	// ViewStateQuitting is set once the program is exiting.
	ViewStateQuitting
)

// Key names as reported by tea.KeyMsg.String.
const (
	keyQuit      = "q"
	keyCtrlC     = "ctrl+c"
	keyEnter     = "enter"
	keyEsc       = "esc"
	keySlash     = "/"
	keyS         = "s"
	keyC         = "c"
	keyA         = "a"
	keyR         = "r"
	keyTab       = "tab"
	keyShiftTab  = "shift+tab"
	keyUp        = "up"
	keyDown      = "down"
	keyK         = "k"
	keyJ         = "j"
	keyPlus      = "+"
	keyEquals    = "="
	keyMinus     = "-"
	keyRight     = "right"
	keyLeft      = "left"
	keyBackspace = "backspace"
)

// Layout defaults.
const (
	defaultWidth         = 100
	defaultHeight        = 30
	minHeight            = 5
	filterInputCharLimit = 64
	filterInputWidth     = 40
	minTruncateLen       = 3
)

// ErrNothingSelected is returned when a detail view has no selected item.
var ErrNothingSelected = errors.New("no item selected")

// truncate shortens s to maxLen runes, ending in "...".
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= minTruncateLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-minTruncateLen]) + "..."
}
