package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and terminal-native.
var (
	ColorPrompt = lipgloss.Color("40")  // Green, classic shell prompt
	ColorError  = lipgloss.Color("196") // Red
	ColorDir    = lipgloss.Color("33")  // Blue, ls directory entries
	ColorMuted  = lipgloss.Color("240") // Dark gray
	ColorBanner = lipgloss.Color("245") // Gray
)

// Styles for the terminal view.
var (
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrompt)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	DirStyle = lipgloss.NewStyle().
			Foreground(ColorDir)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorBanner).
			MarginBottom(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// Banner shown above the transcript on startup.
const Banner = "demosh - simulated shell session (type 'help' for commands)"
