package cli

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	folderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	mimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)
