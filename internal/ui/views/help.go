package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mitchellh/go-wordwrap"

	"github.com/willibrandon/ddv/internal/logger"
	"github.com/willibrandon/ddv/internal/ui"
	"github.com/willibrandon/ddv/internal/ui/styles"
	"github.com/willibrandon/ddv/internal/ui/widget"
)

// recentLogEntries is how many captured warnings the help screen lists.
const recentLogEntries = 5

// HelpView shows the about block and the full key help of the screen it
// was opened from.
type HelpView struct {
	env    Env
	groups []ui.HelpGroup

	lines      *widget.ScrollLines
	linesWidth int
}

// NewHelpView builds the help screen for groups.
func NewHelpView(groups []ui.HelpGroup, env Env) *HelpView {
	return &HelpView{
		env:        env,
		groups:     groups,
		lines:      widget.NewScrollLines(nil, widget.ScrollLinesOptions{}),
		linesWidth: -1,
	}
}

// Kind implements View.
func (v *HelpView) Kind() Kind { return KindHelp }

// Update implements View.
func (v *HelpView) Update(_ tea.KeyMsg, actions []ui.Action) tea.Cmd {
	if ui.Has(actions, ui.ActionClose) || ui.Has(actions, ui.ActionHelp) {
		return ui.Send(ui.BackMsg{})
	}
	if ev, ok := scrollEvent(actions); ok {
		v.lines.Scroll(ev)
	}
	return nil
}

// Render implements View.
func (v *HelpView) Render(width, height int) string {
	innerW, innerH := max(width-2, 0), max(height-2, 0)
	// one column of padding on each side is added by ScrollLines
	if textW := max(innerW-2, 1); textW != v.linesWidth {
		v.lines = widget.NewScrollLines(v.content(textW), v.lines.Options())
		v.linesWidth = textW
	}
	return widget.Block(v.env.Theme.Pane(true), v.env.Theme.PaneTitle(true), ui.AppName,
		v.lines.Render(innerW, innerH), width, height)
}

func (v *HelpView) content(width int) []string {
	theme := v.env.Theme
	var lines []string

	about := wordwrap.WrapString(fmt.Sprintf("%s - %s", ui.AppName, ui.AppDescription), uint(width))
	lines = append(lines, "")
	lines = append(lines, strings.Split(about, "\n")...)
	lines = append(lines,
		"",
		"Version: "+ui.Version,
		"",
		styles.Fg(theme.HelpLinkFg).Render(ui.AppHomepage),
		"",
		styles.Fg(theme.DividerFg).Render(strings.Repeat("─", width)),
	)

	for _, g := range v.groups {
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render(g.Title), "")
		lines = append(lines, helpColumns(g, width, theme)...)
	}

	if entries := logger.Entries(); len(entries) > 0 {
		lines = append(lines, "", styles.Fg(theme.DividerFg).Render(strings.Repeat("─", width)), "",
			lipgloss.NewStyle().Bold(true).Render("Recent warnings"), "")
		for _, e := range entries[max(len(entries)-recentLogEntries, 0):] {
			lines = append(lines, styles.Fg(theme.NotificationWarning).Render(e.Format()))
		}
	}
	return lines
}

// helpColumns lays the bindings of a group out in as many columns as fit.
func helpColumns(g ui.HelpGroup, width int, theme styles.Theme) []string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKeyFg).Bold(true)

	keyWidth, entryWidth := 0, 0
	for _, b := range g.Bindings {
		keyWidth = max(keyWidth, ansi.StringWidth(b.Help().Key))
	}
	entries := make([]string, len(g.Bindings))
	for i, b := range g.Bindings {
		h := b.Help()
		entries[i] = keyStyle.Render(fmt.Sprintf("%-*s", keyWidth, h.Key)) + "  " + h.Desc
		entryWidth = max(entryWidth, ansi.StringWidth(entries[i]))
	}

	const gap = "    "
	perLine := max((width+len(gap))/(entryWidth+len(gap)), 1)
	var lines []string
	for i := 0; i < len(entries); i += perLine {
		row := entries[i:min(i+perLine, len(entries))]
		for j := range row[:len(row)-1] {
			row[j] += strings.Repeat(" ", entryWidth-ansi.StringWidth(row[j]))
		}
		lines = append(lines, strings.Join(row, gap))
	}
	return lines
}

// ShortHelps implements View.
func (v *HelpView) ShortHelps() []ui.ShortHelp {
	k := v.env.Keys
	return []ui.ShortHelp{
		ui.Hint(k.Quit, "Quit", 0),
		ui.Hint(k.Close, "Close help", 1),
		ui.HintGroup("Scroll", 2, k.Down, k.Up),
	}
}
