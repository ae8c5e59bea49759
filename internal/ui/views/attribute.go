package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/willibrandon/ddv/internal/models"
	"github.com/willibrandon/ddv/internal/ui/styles"
)

const ellipsis = "..."

// attributeString renders a value with per-type colors: strings quoted,
// containers recursively.
func attributeString(a models.Attribute, theme styles.Theme) string {
	str := styles.Fg(theme.CellStringFg)
	num := styles.Fg(theme.CellNumberFg)
	bin := styles.Fg(theme.CellBinaryFg)

	switch a.Kind {
	case models.KindS:
		return str.Render(quote(a.S))
	case models.KindN:
		return num.Render(a.S)
	case models.KindB:
		return bin.Render(fmt.Sprintf("Blob (%d)", len(a.B)))
	case models.KindBOOL:
		return styles.Fg(theme.CellBoolFg).Render(fmt.Sprintf("%t", a.Bool))
	case models.KindNULL:
		return styles.Fg(theme.CellNullFg).Render("null")
	case models.KindL:
		parts := make([]string, len(a.L))
		for i, v := range a.L {
			parts[i] = attributeString(v, theme)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case models.KindM:
		keys := make([]string, 0, len(a.M))
		for k := range a.M {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + attributeString(a.M[k], theme)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case models.KindSS:
		return joinSet(a.SS, func(s string) string { return str.Render(quote(s)) })
	case models.KindNS:
		return joinSet(a.SS, func(s string) string { return num.Render(s) })
	case models.KindBS:
		parts := make([]string, len(a.BS))
		for i, b := range a.BS {
			parts[i] = bin.Render(fmt.Sprintf("Blob (%d)", len(b)))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return ""
}

func quote(s string) string {
	return `"` + s + `"`
}

func joinSet(values []string, render func(string) string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = render(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// cutWidth truncates s to maxWidth cells, ending with an ellipsis when cut.
func cutWidth(s string, maxWidth int, ellipsisStyle lipgloss.Style) string {
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	rest := maxWidth - len(ellipsis)
	if rest < 0 {
		return ansi.Truncate(s, maxWidth, "")
	}
	return ansi.Truncate(s, rest, "") + ellipsisStyle.Render(ellipsis)
}
