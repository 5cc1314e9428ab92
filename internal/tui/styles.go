package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	summaryStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
