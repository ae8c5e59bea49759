package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Block draws content inside the border of pane, with title written into the
// top border. content is expected to fit the inner area.
func Block(pane, titleStyle lipgloss.Style, title, content string, width, height int) string {
	return BlockWithStatus(pane, titleStyle, title, "", content, width, height)
}

// BlockWithStatus is Block with a second label right-aligned in the top
// border. The status is dropped when both labels do not fit.
func BlockWithStatus(pane, titleStyle lipgloss.Style, title, status, content string, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	border := pane.GetBorderStyle()
	borderStyle := lipgloss.NewStyle().Foreground(pane.GetBorderTopForeground())

	body := pane.
		BorderTop(false).
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height - 1).
		Render(content)

	inner := width - 2
	var label, right string
	if title != "" && inner > 0 {
		label = ansi.Truncate(" "+title+" ", inner, "")
	}
	if status != "" && ansi.StringWidth(label)+ansi.StringWidth(status) <= inner {
		right = status
	}
	fill := strings.Repeat(border.Top, max(inner-ansi.StringWidth(label)-ansi.StringWidth(right), 0))
	top := borderStyle.Render(border.TopLeft) +
		titleStyle.Render(label) +
		borderStyle.Render(fill) +
		titleStyle.Render(right) +
		borderStyle.Render(border.TopRight)

	return top + "\n" + body
}

// Overlay places fg over bg with its top-left corner at (x, y).
func Overlay(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		base := bgLines[row]
		w := ansi.StringWidth(line)
		left := ansi.Truncate(base, x, "")
		left = padRight(left, x)
		right := ansi.TruncateLeft(base, x+w, "")
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}
