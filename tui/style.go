package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/dork/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleYouSee = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	stylePrompt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling. The
// engine's output kind picks the base style; list headers inside
// narration get their own.
type lineKind int

const (
	kindNarration lineKind = iota
	kindYouSee
	kindExits
	kindPrompt
	kindError
)

// classifyLine styles one line of an engine output.
func classifyLine(line string, kind types.OutputKind) lineKind {
	switch kind {
	case types.Error:
		return kindError
	case types.Prompt:
		return kindPrompt
	}
	switch {
	case strings.HasPrefix(line, "You see:"):
		return kindYouSee
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	default:
		return kindNarration
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindYouSee:
		return styleYouSee.Render(line)
	case kindExits:
		return styleExits.Render(line)
	case kindPrompt:
		return stylePrompt.Render(line)
	case kindError:
		return styleError.Render(line)
	default:
		return styleNarration.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
