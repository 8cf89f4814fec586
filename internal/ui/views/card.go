package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gifgrip/internal/domain"
	"gifgrip/internal/ui/logic"
)

// CardRenderer handles rendering of result cards in the grid
type CardRenderer struct {
	styles         *Styles
	showDimensions bool
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, showDimensions bool) *CardRenderer {
	return &CardRenderer{
		styles:         styles,
		showDimensions: showDimensions,
	}
}

// RenderCard renders one result as a bordered card. Terminals can't show
// the actual image, so the thumbnail is a sized placeholder block.
func (r *CardRenderer) RenderCard(item domain.ResultItem, isSelected bool) string {
	inner := logic.CardWidth - 4 // border + padding

	var lines []string
	lines = append(lines, r.styles.Thumb.Render(r.thumbLine(item.Thumb, inner)))
	lines = append(lines, r.styles.CardTitle.Render(truncate(displayTitle(item.Title), inner)))
	lines = append(lines, r.styles.URL.Render(truncate(trimScheme(item.PageURL), inner)))

	cardStyle := r.styles.Card
	if isSelected {
		cardStyle = r.styles.CardSelected
	}
	return cardStyle.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// thumbLine builds the placeholder row standing in for the thumbnail
func (r *CardRenderer) thumbLine(f domain.ImageFile, width int) string {
	if !r.showDimensions || f.Width == 0 {
		return truncate("▒▒▒ gif", width)
	}
	return truncate(fmt.Sprintf("▒▒▒ %d×%d gif", f.Width, f.Height), width)
}

// displayTitle substitutes a placeholder for results without a title
func displayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// trimScheme drops the scheme prefix to save card width
func trimScheme(url string) string {
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	return url
}

// truncate shortens s to at most width cells, appending an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
