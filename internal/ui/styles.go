package ui

import "github.com/charmbracelet/lipgloss"

var (
	dimColor       = lipgloss.Color("7")
	accentColor    = lipgloss.Color("12")
	successColor   = lipgloss.Color("10")
	warningColor   = lipgloss.Color("11")
	highlightColor = lipgloss.Color("13")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	StatusStyle = lipgloss.NewStyle().
			Bold(true)

	WinnerStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	DrawStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor).
			Padding(1, 3)

	// Squares
	SquareStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center)

	CursorSquareStyle = SquareStyle.
				Reverse(true)

	WinningSquareStyle = SquareStyle.
				Foreground(highlightColor).
				Bold(true)

	// Chat panel
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	UserStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	AssistantStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)
