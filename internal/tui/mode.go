package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how table output is rendered.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without taking over the terminal.
	OutputModeStyled
	// OutputModeInteractive runs a Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// Terminal probes, replaceable in tests.
//
//nolint:gochecknoglobals // Test seams for terminal detection.
var (
	isStdoutTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	isStdinTerminal  = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// DetectOutputMode picks a mode from flags, environment and the terminal.
//
//   - plain, NO_COLOR, TERM=dumb or a non-terminal stdout give plain output
//     unless forceColor is set
//   - CI or a non-terminal stdin give styled output
//   - otherwise the mode is interactive
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain {
		return OutputModePlain
	}
	if !forceColor {
		if noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" || !isStdoutTerminal() {
			return OutputModePlain
		}
	}
	if os.Getenv("CI") != "" || !isStdinTerminal() || !isStdoutTerminal() {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the stdout width, or fallback when unknown.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
