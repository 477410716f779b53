package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// styleSet holds the lipgloss styles for the picker.
type styleSet struct {
	Name     lipgloss.Style
	Desc     lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Border   lipgloss.Style
	Title    lipgloss.Style
}

func defaultStyles() styleSet {
	return styleSet{
		Name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Desc:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		Title:    lipgloss.NewStyle().Bold(true),
	}
}
