// SPDX-License-Identifier: EPL-2.0

package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPlaying  = lipgloss.Color("#04B575")
	ColorPaused   = lipgloss.Color("#FFA500")
	ColorFinished = lipgloss.Color("#7571F9")
	ColorError    = lipgloss.Color("#FF5555")
	ColorMuted    = lipgloss.Color("#A0A0A0")
)

// Styles used by the status line.
type Styles struct {
	Title    lipgloss.Style
	Playing  lipgloss.Style
	Paused   lipgloss.Style
	Finished lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Playing:  lipgloss.NewStyle().Foreground(ColorPlaying).Bold(true),
		Paused:   lipgloss.NewStyle().Foreground(ColorPaused).Bold(true),
		Finished: lipgloss.NewStyle().Foreground(ColorFinished).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(ColorError),
		Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
	}
}
