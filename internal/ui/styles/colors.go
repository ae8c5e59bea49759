// Package styles provides centralized Lipgloss styling for ddv.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette shared by every view.
type Theme struct {
	// Base colors
	Fg lipgloss.Color
	Bg lipgloss.Color

	// Selection colors
	SelectedFg     lipgloss.Color
	SelectedBg     lipgloss.Color
	SelectedAxisBg lipgloss.Color

	// Quick filter match highlight
	MatchedFg lipgloss.Color
	MatchedBg lipgloss.Color

	Disabled            lipgloss.Color
	ShortHelp           lipgloss.Color
	NotificationSuccess lipgloss.Color
	NotificationWarning lipgloss.Color
	NotificationError   lipgloss.Color

	// Table cell colors by attribute type
	CellNumberFg    lipgloss.Color
	CellStringFg    lipgloss.Color
	CellBinaryFg    lipgloss.Color
	CellBoolFg      lipgloss.Color
	CellNullFg      lipgloss.Color
	CellUndefinedFg lipgloss.Color
	CellEllipsisFg  lipgloss.Color

	ItemAttributeTypeFg lipgloss.Color

	InsightAttributeNameFg  lipgloss.Color
	InsightAttributeValueFg lipgloss.Color

	HelpKeyFg  lipgloss.Color
	HelpLinkFg lipgloss.Color

	LineNumberFg lipgloss.Color
	DividerFg    lipgloss.Color

	// ChromaStyle is the registered chroma style used for JSON text
	ChromaStyle string
}

// DarkTheme is the default palette, using the terminal's ANSI colors.
func DarkTheme() Theme {
	return Theme{
		Fg:             lipgloss.Color(""),
		Bg:             lipgloss.Color(""),
		SelectedFg:     lipgloss.Color("0"),
		SelectedBg:     lipgloss.Color("10"),
		SelectedAxisBg: lipgloss.Color("8"),
		MatchedFg:      lipgloss.Color("0"),
		MatchedBg:      lipgloss.Color("3"),

		Disabled:            lipgloss.Color("8"),
		ShortHelp:           lipgloss.Color("8"),
		NotificationSuccess: lipgloss.Color("2"),
		NotificationWarning: lipgloss.Color("3"),
		NotificationError:   lipgloss.Color("1"),

		CellNumberFg:    lipgloss.Color("4"),
		CellStringFg:    lipgloss.Color("2"),
		CellBinaryFg:    lipgloss.Color("6"),
		CellBoolFg:      lipgloss.Color("1"),
		CellNullFg:      lipgloss.Color("5"),
		CellUndefinedFg: lipgloss.Color("8"),
		CellEllipsisFg:  lipgloss.Color(""),

		ItemAttributeTypeFg: lipgloss.Color("8"),

		InsightAttributeNameFg:  lipgloss.Color("2"),
		InsightAttributeValueFg: lipgloss.Color("8"),

		HelpKeyFg:  lipgloss.Color("3"),
		HelpLinkFg: lipgloss.Color("4"),

		LineNumberFg: lipgloss.Color("8"),
		DividerFg:    lipgloss.Color("8"),

		ChromaStyle: "ddv",
	}
}

// LightTheme is a palette for light terminal backgrounds.
func LightTheme() Theme {
	t := DarkTheme()
	t.SelectedFg = lipgloss.Color("15")
	t.SelectedBg = lipgloss.Color("28")
	t.SelectedAxisBg = lipgloss.Color("252")
	t.MatchedBg = lipgloss.Color("220")
	t.Disabled = lipgloss.Color("245")
	t.ShortHelp = lipgloss.Color("245")
	t.CellUndefinedFg = lipgloss.Color("245")
	t.ItemAttributeTypeFg = lipgloss.Color("245")
	t.InsightAttributeValueFg = lipgloss.Color("245")
	t.LineNumberFg = lipgloss.Color("245")
	t.DividerFg = lipgloss.Color("250")
	t.ChromaStyle = "ddv-light"
	return t
}

// ThemeByName returns the palette for a ui.theme config value.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
