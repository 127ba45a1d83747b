package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	validStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	invalidStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	focusedStyle    = lipgloss.NewStyle().Reverse(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
