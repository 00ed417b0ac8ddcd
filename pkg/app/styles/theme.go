package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#7AA2F7")
	Secondary  = lipgloss.Color("#BB9AF7")
	Accent     = lipgloss.Color("#9ECE6A")
	Muted      = lipgloss.Color("#565F89")
	Foreground = lipgloss.Color("#C0CAF5")
)

var (
	// Brand name in the header
	BrandStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// Section headings inside a page body
	HeadingStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true).
		MarginTop(1)

	TextStyle = lipgloss.NewStyle().
		Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	// Hyperlink-ish rendering for items that carry a URL
	LinkStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Underline(true)

	// Category tag on presentation rows
	TagStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	// Nav entries in the header
	ActiveNavStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Background(lipgloss.Color("#1F2335")).
		Padding(0, 2).
		Bold(true)

	InactiveNavStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 2)

	// Help text at the bottom
	HelpStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true).
		MarginTop(1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F7768E")).
		Bold(true)
)
