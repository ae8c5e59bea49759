package styles

import "github.com/charmbracelet/lipgloss"

// Common border styles
var (
	// BorderNormal is used for panes
	BorderNormal = lipgloss.NormalBorder()

	// BorderRounded is used for dialogs and popups
	BorderRounded = lipgloss.RoundedBorder()
)

// Pane returns the bordered block style. Focused panes use the foreground
// color for their border, unfocused ones are dimmed.
func (t Theme) Pane(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Border(BorderNormal)
	if !focused {
		s = s.BorderForeground(t.Disabled)
	}
	return s
}

// PaneTitle is the style of a title drawn into a pane's top border.
func (t Theme) PaneTitle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle()
	if !focused {
		s = s.Foreground(t.Disabled)
	}
	return s
}

// Selected is the style of the selected list entry or table row.
func (t Theme) Selected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.SelectedFg).Background(t.SelectedBg)
}

// SelectedAxis is the style of the row carrying the selected cell.
func (t Theme) SelectedAxis() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.SelectedAxisBg)
}

// Matched highlights the part of a cell matching the filter query.
func (t Theme) Matched() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.MatchedFg).Background(t.MatchedBg)
}

// Fg returns a plain foreground style.
func Fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Dialog wraps the loading dialog and popups.
func (t Theme) Dialog() lipgloss.Style {
	return lipgloss.NewStyle().Border(BorderRounded).Padding(0, 1)
}
