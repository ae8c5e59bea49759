package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CellItem is a table cell: the styled content drawn on screen and the full
// plain text used for filtering and copying.
type CellItem struct {
	Content string
	Plain   string
}

// NewCellItem builds a cell from styled content and its untruncated text.
func NewCellItem(content, plain string) CellItem {
	return CellItem{Content: content, Plain: plain}
}

// MatchedIndex returns the byte index of the first case-insensitive match
// of query in the plain text, or -1.
func (c CellItem) MatchedIndex(query string) int {
	if query == "" {
		return -1
	}
	return strings.Index(strings.ToLower(c.Plain), strings.ToLower(query))
}

// MatchFold reports whether s contains query, ignoring case.
func MatchFold(s, query string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

// FilterIndices returns the indices of the n rows accepted by match, in
// order. It never touches the rows themselves.
func FilterIndices(n int, match func(i int) bool) []int {
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if match == nil || match(i) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Identity returns [0, n).
func Identity(n int) []int {
	return FilterIndices(n, nil)
}

// FilterRows returns the view indices of rows having any cell whose plain
// text contains query. An empty query keeps every row.
func FilterRows(rows [][]CellItem, query string) []int {
	if query == "" {
		return Identity(len(rows))
	}
	q := strings.ToLower(query)
	return FilterIndices(len(rows), func(i int) bool {
		for _, c := range rows[i] {
			if strings.Contains(strings.ToLower(c.Plain), q) {
				return true
			}
		}
		return false
	})
}

// HighlightMatch styles the first occurrence of query in plain text s,
// which must not carry ANSI codes, ignoring case.
func HighlightMatch(s, query string, style lipgloss.Style) string {
	if query == "" {
		return s
	}
	ls, lq := strings.ToLower(s), strings.ToLower(query)
	idx := strings.Index(ls, lq)
	if idx < 0 || len(ls) != len(s) {
		return s
	}
	end := idx + len(lq)
	return s[:idx] + style.Render(s[idx:end]) + s[end:]
}
