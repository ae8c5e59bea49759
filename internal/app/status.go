package app

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/willibrandon/ddv/internal/ui"
	"github.com/willibrandon/ddv/internal/ui/styles"
)

type statusKind int

const (
	statusNone statusKind = iota
	statusNotification
	statusInput
)

// status is the content of the status line. With statusNone the line shows
// the short helps of the current screen.
type status struct {
	kind   statusKind
	notify ui.NotifyMsg
	input  ui.UpdateStatusInputMsg
}

const shortHelpSeparator = ", "

func (m Model) renderStatusLine() string {
	theme := m.env.Theme
	inner := max(m.width-2, 0)
	bold := lipgloss.NewStyle().Bold(true)

	var text string
	switch m.status.kind {
	case statusNone:
		text = styles.Fg(theme.ShortHelp).Render(
			pruneShortHelps(m.stack.Current().ShortHelps(), inner, shortHelpSeparator))
	case statusNotification:
		switch m.status.notify.Kind {
		case ui.NotifySuccess:
			text = bold.Foreground(theme.NotificationSuccess).Render(m.status.notify.Text)
		case ui.NotifyWarning:
			text = bold.Foreground(theme.NotificationWarning).Render(m.status.notify.Text)
		default:
			text = bold.Foreground(theme.NotificationError).Render("ERROR: " + m.status.notify.Text)
		}
	case statusInput:
		text = renderInput(m.status.input, lipgloss.NewStyle().Reverse(true))
	}

	text = ansi.Truncate(text, inner, "")
	pad := max(inner-ansi.StringWidth(text), 0)
	return " " + text + strings.Repeat(" ", pad) + " "
}

// pruneShortHelps keeps the hints with the lowest priority values that fit
// width, shown in their original order.
func pruneShortHelps(helps []ui.ShortHelp, width int, sep string) string {
	order := make([]int, len(helps))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return helps[order[a]].Priority < helps[order[b]].Priority
	})

	keep := make([]bool, len(helps))
	used, n := 0, 0
	for _, i := range order {
		w := ansi.StringWidth(helps[i].Text)
		if n > 0 {
			w += ansi.StringWidth(sep)
		}
		if used+w > width {
			break
		}
		keep[i] = true
		used += w
		n++
	}

	parts := make([]string, 0, n)
	for i, h := range helps {
		if keep[i] {
			parts = append(parts, h.Text)
		}
	}
	return strings.Join(parts, sep)
}

// renderInput draws the status input with a block cursor at its column.
func renderInput(in ui.UpdateStatusInputMsg, cursor lipgloss.Style) string {
	runes := []rune(in.Text)
	pos := min(max(in.Cursor, 0), len(runes))
	at := " "
	rest := ""
	if pos < len(runes) {
		at = string(runes[pos])
		rest = string(runes[pos+1:])
	}
	return string(runes[:pos]) + cursor.Render(at) + rest
}
