package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Error        lipgloss.Style
	Notice       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Prompt       lipgloss.Style
	Rating       lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	Thumb        lipgloss.Style
	URL          lipgloss.Style
	PreviewBox   lipgloss.Style
	Scroll       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Rating: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardTitle:  lipgloss.NewStyle().Bold(true),
		Thumb:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		URL:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		PreviewBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
