package views

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")
	ColorMuted   = lipgloss.Color("241")
	ColorError   = lipgloss.Color("196")

	DirectoryStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	FileStyle      = lipgloss.NewStyle()
	MutedStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
	HeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Underline(true)
	ErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	SelectedStyle  = lipgloss.NewStyle().Foreground(ColorPrimary).Reverse(true)

	// PathStyle renders the path line above a listing or file.
	PathStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)
