package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header    lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	body      lipgloss.Style
	tool      lipgloss.Style
	errText   lipgloss.Style
	hint      lipgloss.Style
	spinner   lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		body:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		tool:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("245")),
		errText:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		hint:      lipgloss.NewStyle().Faint(true),
		spinner:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
}
