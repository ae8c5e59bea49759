package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/willibrandon/ddv/internal/models"
	"github.com/willibrandon/ddv/internal/ui"
	"github.com/willibrandon/ddv/internal/ui/styles"
	"github.com/willibrandon/ddv/internal/ui/widget"
)

// TableInsightView shows the attribute type distribution of a table.
type TableInsightView struct {
	env     Env
	insight models.TableInsight
	lines   *widget.ScrollLines
}

// NewTableInsightView builds the insight screen.
func NewTableInsightView(insight models.TableInsight, env Env) *TableInsightView {
	return &TableInsightView{
		env:     env,
		insight: insight,
		lines: widget.NewScrollLines(insightLines(insight, env.Theme), widget.ScrollLinesOptions{}).
			WithLineNumberStyle(styles.Fg(env.Theme.LineNumberFg)),
	}
}

// Kind implements View.
func (v *TableInsightView) Kind() Kind { return KindTableInsight }

// Update implements View.
func (v *TableInsightView) Update(_ tea.KeyMsg, actions []ui.Action) tea.Cmd {
	if ui.Has(actions, ui.ActionClose) {
		return ui.Send(ui.BackMsg{})
	}
	if ev, ok := scrollEvent(actions); ok {
		v.lines.Scroll(ev)
		return nil
	}
	switch {
	case ui.Has(actions, ui.ActionToggleWrap):
		v.lines.ToggleWrap()
	case ui.Has(actions, ui.ActionToggleNumber):
		v.lines.ToggleNumber()
	case ui.Has(actions, ui.ActionHelp):
		k := v.env.Keys
		return ui.Send(ui.OpenHelpMsg{Groups: []ui.HelpGroup{
			{Title: "Table insight", Bindings: append(scrollHelps(k), ui.Describe(k.Close, "Back to table"))},
		}})
	}
	return nil
}

func insightLines(insight models.TableInsight, theme styles.Theme) []string {
	bold := lipgloss.NewStyle().Bold(true)
	nameStyle := styles.Fg(theme.InsightAttributeNameFg)
	valueStyle := styles.Fg(theme.InsightAttributeValueFg)

	lines := []string{
		bold.Render("Total Items: ") + humanize.Comma(int64(insight.TotalItems)),
		"",
		bold.Render("Attribute Distribution:"),
		"",
	}

	width := 0
	for _, d := range insight.AttributeDistributions {
		width = max(width, len(d.AttributeName))
	}
	for _, d := range insight.AttributeDistributions {
		parts := make([]string, len(d.Distributions))
		for i, tc := range d.Distributions {
			parts[i] = nameStyle.Render(string(tc.Type)) + " " +
				valueStyle.Render(formatRatio(tc.Count, insight.TotalItems))
		}
		lines = append(lines, "  "+
			bold.Render(fmt.Sprintf("%*s", width, d.AttributeName))+
			bold.Render(" : ")+
			strings.Join(parts, " "))
	}
	return lines
}

// formatRatio renders n/total as a percentage with one decimal, dropping ".0".
func formatRatio(n, total int) string {
	if total == 0 {
		return "0%"
	}
	ratio := fmt.Sprintf("%.1f", float64(n)/float64(total)*100)
	return strings.TrimSuffix(ratio, ".0") + "%"
}

// Render implements View.
func (v *TableInsightView) Render(width, height int) string {
	title := fmt.Sprintf("%s (Insights)", v.insight.TableName)
	return widget.Block(v.env.Theme.Pane(true), v.env.Theme.PaneTitle(true), title,
		v.lines.Render(max(width-2, 0), max(height-2, 0)), width, height)
}

// ShortHelps implements View.
func (v *TableInsightView) ShortHelps() []ui.ShortHelp {
	k := v.env.Keys
	return []ui.ShortHelp{
		ui.Hint(k.Quit, "Quit", 0),
		ui.Hint(k.Help, "Help", 0),
		ui.Hint(k.Close, "Back", 1),
		ui.HintGroup("Scroll", 2, k.Down, k.Up),
		ui.HintGroup("Top/Bottom", 3, k.GoToTop, k.GoToBottom),
		ui.HintGroup("Toggle wrap/number", 4, k.ToggleWrap, k.ToggleNumber),
	}
}
