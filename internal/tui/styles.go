package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	badgeFoundStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	badgeLostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	matchStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	staleStyle      = lipgloss.NewStyle().Faint(true).Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
