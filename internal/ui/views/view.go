package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gifgrip/internal/domain"
	"gifgrip/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Query          string
	TextInput      string // current text input content, already rendered
	InputMode      string // "query", "copy" or ""
	Status         state.Status
	ErrorMessage   string
	StatusMessage  string
	Results        []domain.ResultItem
	SelectedIndex  int
	Columns        int
	ViewportOffset int
	ViewportRows   int
	Preview        *domain.ResultItem
	Rating         domain.Rating
	ShowHelp       bool
	SpinnerView    string
	HelpView       string // short help line, rendered by the model
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showDimensions bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles, showDimensions),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(vs))
	content.WriteString("\n")
	content.WriteString(r.renderInputLine(vs))
	content.WriteString("\n")

	if status := r.renderStatusLine(vs); status != "" {
		content.WriteString(status)
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(r.renderBody(vs))

	// Pin the help line to the bottom
	if vs.HelpView != "" && !vs.ShowHelp {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := vs.Height - 2 // container padding
		if availableLines <= 0 {
			availableLines = 22
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(vs.HelpView)
	}

	finalContent := r.styles.Main.MaxHeight(vs.Height).Render(content.String())

	// Overlays on top of the main content
	if vs.Preview != nil {
		preview := r.renderPreviewContent(*vs.Preview)
		return r.popupRender.RenderPopupOverlay(finalContent, preview, vs.Height, vs.Width, r.styles.PreviewBox)
	}

	if vs.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderHelpContent(), vs.Height, vs.Width, r.styles.PreviewBox)
	}

	return finalContent
}

// renderTitleLine builds the logo line with right-aligned indicators
func (r *Renderer) renderTitleLine(vs ViewState) string {
	logo := r.styles.Title.Render("gifgrip")

	right := r.styles.Rating.Render(fmt.Sprintf("[rating: %s]", vs.Rating))
	if vs.Status == state.StatusLoading && vs.SpinnerView != "" {
		right = r.styles.Dim.Render(vs.SpinnerView+" Searching") + "  " + right
	}

	termWidth := vs.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding > 0 {
		return logo + strings.Repeat(" ", padding) + right
	}
	return logo + "  " + right
}

// renderInputLine shows the query bar or the active text prompt
func (r *Renderer) renderInputLine(vs ViewState) string {
	switch vs.InputMode {
	case "query":
		return r.styles.Prompt.Render("Search: ") + vs.TextInput
	case "copy":
		return r.styles.Prompt.Render("Copy link: ") + vs.TextInput + r.styles.Dim.Render("  (enter/esc to dismiss)")
	default:
		if vs.Query != "" {
			return r.styles.Dim.Render("Search: ") + vs.Query + r.styles.Dim.Render("  (/ to edit)")
		}
		return r.styles.Dim.Render("Press / to search")
	}
}

// renderStatusLine surfaces errors and transient notices
func (r *Renderer) renderStatusLine(vs ViewState) string {
	if vs.Status == state.StatusError && vs.ErrorMessage != "" {
		return r.styles.Error.Render("✗ "+vs.ErrorMessage) + r.styles.Dim.Render("  — press / to search again")
	}
	if vs.StatusMessage != "" {
		return r.styles.Notice.Render(vs.StatusMessage)
	}
	return ""
}

// renderBody renders the results grid or the placeholder content
func (r *Renderer) renderBody(vs ViewState) string {
	if len(vs.Results) == 0 {
		if vs.Status == state.StatusLoading {
			return r.styles.Dim.Render("Searching...")
		}
		if vs.Status == state.StatusError {
			// The error line already explains; keep the body quiet
			return ""
		}
		return r.styles.Dim.Render("No results yet. Try searching for \"cat\", \"party parrot\" or \"thumbs up\".")
	}
	return r.renderGrid(vs)
}

// renderGrid lays the cards out in viewport rows
func (r *Renderer) renderGrid(vs ViewState) string {
	cols := vs.Columns
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(vs.Results); start += cols {
		end := start + cols
		if end > len(vs.Results) {
			end = len(vs.Results)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, r.cardRender.RenderCard(vs.Results[i], i == vs.SelectedIndex))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	first := vs.ViewportOffset
	if first > len(rows) {
		first = len(rows)
	}
	last := first + vs.ViewportRows
	if vs.ViewportRows <= 0 || last > len(rows) {
		last = len(rows)
	}

	var lines []string
	if first > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", first)))
	}
	lines = append(lines, rows[first:last]...)
	if last < len(rows) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(rows)-last)))
	}

	return strings.Join(lines, "\n")
}

// renderPreviewContent builds the full-size preview card
func (r *Renderer) renderPreviewContent(item domain.ResultItem) string {
	var b strings.Builder

	b.WriteString(r.styles.CardTitle.Render(displayTitle(item.Title)))
	b.WriteString("\n\n")
	if item.Original.Width > 0 {
		b.WriteString(r.styles.Thumb.Render(fmt.Sprintf("▒▒▒▒▒▒ %d×%d gif", item.Original.Width, item.Original.Height)))
	} else {
		b.WriteString(r.styles.Thumb.Render("▒▒▒▒▒▒ gif"))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.URL.Render(item.Original.URL))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("o open page • c copy link • esc close"))

	return b.String()
}

// renderHelpContent renders the help popup
func (r *Renderer) renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("gifgrip help"))
	help.WriteString("\n")
	row := func(key, desc string) {
		help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(key), descStyle.Render(desc)))
	}
	row("/", "search")
	row("↑/↓/←/→, hjkl", "move between cards")
	row("enter", "open preview")
	row("o", "open page in browser")
	row("c / y", "copy link")
	row("r", "cycle content rating")
	row("gg / G", "first / last card")
	row("?", "toggle this help")
	row("q", "quit")

	return strings.TrimRight(help.String(), "\n")
}
