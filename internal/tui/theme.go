package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette: parchment and brass, fit for a law library.
	Gold      = lipgloss.Color("#C9A54E")
	Brass     = lipgloss.Color("#9C7C38")
	Ink       = lipgloss.Color("#E8E4D8")
	Parchment = lipgloss.Color("#D8CFB8")
	DimBrown  = lipgloss.Color("#6B5D3F")
	Slate     = lipgloss.Color("#8A8573")
	Crimson   = lipgloss.Color("#C75450")
	Black     = lipgloss.Color("#14110A")

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(Brass).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	StatusModeStyle = lipgloss.NewStyle().
			Background(Gold).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	// User messages
	UserLabelStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	UserMsgStyle = lipgloss.NewStyle().
			Foreground(Parchment)

	// Tutor messages
	TutorLabelStyle = lipgloss.NewStyle().
			Foreground(Brass).
			Bold(true)

	// System / error notices
	NoticeStyle = lipgloss.NewStyle().
			Foreground(Slate).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Crimson).
			Bold(true)

	// Materials list
	MaterialNameStyle = lipgloss.NewStyle().
				Foreground(Ink).
				Bold(true)

	MaterialMetaStyle = lipgloss.NewStyle().
				Foreground(Slate)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(Black).
			Background(Parchment).
			Padding(0, 1)

	// Input
	InputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DimBrown).
				Padding(0, 1)

	InputActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Gold).
				Padding(0, 1)

	// Spinner
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Gold)

	TitleStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)
)
