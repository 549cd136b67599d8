package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	pathStyle  = lipgloss.NewStyle().Bold(true)
	localStyle = lipgloss.NewStyle().Faint(true)
	cloudStyle = lipgloss.NewStyle().Faint(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)
