package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers the popup over a desaturated copy of the main
// content. The popup region and the backdrop are composed as two distinct
// areas, so keys bound to the popup content never reach the backdrop and
// dismissal never touches the content.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	popupLines := strings.Split(styledPopup, "\n")
	popupW := lipgloss.Width(styledPopup)
	popupH := len(popupLines)

	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	x := (width - popupW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - popupH) / 2
	if y < 0 {
		y = 0
	}

	// Flatten the backdrop to plain text, then re-style it dim
	base := strings.Split(ansiRE.ReplaceAllString(mainContent, ""), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	base = base[:height]

	dim := pr.styles.Dim
	out := make([]string, height)
	for i, line := range base {
		if i < y || i >= y+popupH {
			out[i] = dim.Render(line)
			continue
		}

		popupLine := popupLines[i-y]
		lineRunes := []rune(padTo(line, width))
		left := string(lineRunes[:x])
		var right string
		if x+popupW < len(lineRunes) {
			right = string(lineRunes[x+popupW:])
		}

		out[i] = dim.Render(left) + popupLine + dim.Render(right)
	}

	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// padTo right-pads a plain line with spaces to at least n cells
func padTo(s string, n int) string {
	if diff := n - len([]rune(s)); diff > 0 {
		return s + strings.Repeat(" ", diff)
	}
	return s
}
