package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ScrollList tracks the selection of a vertical list and the window of
// rows visible in a viewport of the given height.
//
// Invariant: offset <= selected <= offset+height-1 whenever total > 0.
type ScrollList struct {
	selected int
	offset   int
	total    int
	height   int
}

// NewScrollList returns a list over total items with the first one selected.
func NewScrollList(total int) ScrollList {
	return ScrollList{total: max(total, 0)}
}

// WithNewTotal rebinds the list to a new item count. Selection resets to the
// first item; callers that want to keep a position follow with SelectIndex.
func (l ScrollList) WithNewTotal(total int) ScrollList {
	return ScrollList{total: max(total, 0), height: l.height}
}

// Selected is the index of the selected item.
func (l ScrollList) Selected() int { return l.selected }

// Offset is the index of the first visible item.
func (l ScrollList) Offset() int { return l.offset }

// Total is the item count.
func (l ScrollList) Total() int { return l.total }

// Height is the viewport height recorded by the last render.
func (l ScrollList) Height() int { return l.height }

// SetHeight records the viewport height and keeps the selection visible.
func (l *ScrollList) SetHeight(height int) {
	l.height = max(height, 0)
	if l.total == 0 || l.height == 0 {
		return
	}
	if l.selected >= l.offset+l.height {
		l.offset = l.selected - l.height + 1
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
}

// SelectNext moves down one item, wrapping to the first after the last.
func (l *ScrollList) SelectNext() {
	if l.total == 0 {
		return
	}
	if l.selected >= l.total-1 {
		l.SelectFirst()
		return
	}
	if l.selected-l.offset == l.height-1 {
		l.offset++
	}
	l.selected++
}

// SelectPrev moves up one item, wrapping to the last before the first.
func (l *ScrollList) SelectPrev() {
	if l.total == 0 {
		return
	}
	if l.selected == 0 {
		l.SelectLast()
		return
	}
	if l.selected-l.offset == 0 {
		l.offset--
	}
	l.selected--
}

// SelectNextPage moves down one viewport height.
func (l *ScrollList) SelectNextPage() {
	if l.total == 0 {
		return
	}
	l.selected, l.offset = nextPage(l.selected, l.total, l.height)
}

// SelectPrevPage moves up one viewport height.
func (l *ScrollList) SelectPrevPage() {
	if l.total == 0 {
		return
	}
	l.selected, l.offset = prevPage(l.selected, l.total, l.height)
}

// SelectFirst jumps to the first item.
func (l *ScrollList) SelectFirst() {
	if l.total == 0 {
		return
	}
	l.selected, l.offset = 0, 0
}

// SelectLast jumps to the last item.
func (l *ScrollList) SelectLast() {
	if l.total == 0 {
		return
	}
	l.selected, l.offset = lastPage(l.total, l.height)
}

// SelectIndex selects i, clamped to the list, scrolling as little as needed.
func (l *ScrollList) SelectIndex(i int) {
	if l.total == 0 {
		return
	}
	l.selected = clamp(i, 0, l.total-1)
	l.SetHeight(l.height)
}

// nextPage is shared by lists and table rows. Before the first render the
// height is unknown and a page is one row.
func nextPage(selected, total, height int) (int, int) {
	height = max(height, 1)
	if total < height {
		return total - 1, 0
	}
	if selected+height < total-1 {
		selected += height
		if selected+height > total-1 {
			return selected, total - height
		}
		return selected, selected
	}
	return total - 1, max(total-height, 0)
}

func prevPage(selected, total, height int) (int, int) {
	height = max(height, 1)
	if total < height {
		return 0, 0
	}
	if selected > height {
		selected -= height
		if selected < height {
			return selected, 0
		}
		return selected, selected - height + 1
	}
	return 0, 0
}

func lastPage(total, height int) (int, int) {
	height = max(height, 1)
	if height < total {
		return total - 1, total - height
	}
	return total - 1, 0
}

// List renders a ScrollList as a bordered block.
type List struct {
	Title   string
	Items   []string
	Focused bool

	SelectedStyle lipgloss.Style
	PaneStyle     lipgloss.Style
	TitleStyle    lipgloss.Style
}

// Render draws the list into width x height cells. The list height is the
// inner height of the block.
func (r List) Render(state *ScrollList, width, height int) string {
	innerW, innerH := max(width-2, 0), max(height-2, 0)
	state.SetHeight(innerH)

	rows := make([]string, 0, innerH)
	for i := state.Offset(); i < len(r.Items) && len(rows) < innerH; i++ {
		text := " " + ansi.Truncate(r.Items[i], max(innerW-2, 0), "") + " "
		text = padRight(text, innerW)
		if i == state.Selected() && r.Focused {
			text = r.SelectedStyle.Render(ansi.Strip(text))
		}
		rows = append(rows, text)
	}
	for len(rows) < innerH {
		rows = append(rows, strings.Repeat(" ", innerW))
	}

	return Block(r.PaneStyle, r.TitleStyle, r.Title, strings.Join(rows, "\n"), width, height)
}
