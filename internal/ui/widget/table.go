package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TableState tracks row and column selection of a virtual table and the
// visible window over both axes. Column widths are owned by the state so
// they can be widened and narrowed.
type TableState struct {
	selectedRow int
	// selectedCol is -1 in whole-row mode
	selectedCol int
	rowOffset   int
	colOffset   int

	totalRows int
	colWidths []int

	// Size of the content area recorded by the last render; height
	// excludes the header row
	width  int
	height int
}

// NewTableState returns a state over totalRows rows and the given column
// widths with the first row selected and no column selected.
func NewTableState(totalRows int, colWidths []int) TableState {
	return TableState{
		selectedCol: -1,
		totalRows:   max(totalRows, 0),
		colWidths:   append([]int(nil), colWidths...),
	}
}

// WithNewTotalRows rebinds the rows; row selection resets to the first row
// and the column state is kept.
func (t TableState) WithNewTotalRows(totalRows int) TableState {
	t.totalRows = max(totalRows, 0)
	t.selectedRow, t.rowOffset = 0, 0
	return t
}

// SelectedRow is the index of the selected row.
func (t TableState) SelectedRow() int { return t.selectedRow }

// SelectedCol is the selected column; ok is false in whole-row mode.
func (t TableState) SelectedCol() (col int, ok bool) {
	return t.selectedCol, t.selectedCol >= 0
}

// RowOffset is the index of the first visible row.
func (t TableState) RowOffset() int { return t.rowOffset }

// ColOffset is the index of the first visible column.
func (t TableState) ColOffset() int { return t.colOffset }

// TotalRows is the row count.
func (t TableState) TotalRows() int { return t.totalRows }

// TotalCols is the column count.
func (t TableState) TotalCols() int { return len(t.colWidths) }

// ColWidths returns the current column widths.
func (t TableState) ColWidths() []int { return t.colWidths }

// SetSize records the content area; height excludes the header row.
func (t *TableState) SetSize(width, height int) {
	t.width = max(width, 0)
	t.height = max(height, 0)
	if t.totalRows == 0 || t.height == 0 {
		return
	}
	if t.selectedRow >= t.rowOffset+t.height {
		t.rowOffset = t.selectedRow - t.height + 1
	}
	if t.selectedRow < t.rowOffset {
		t.rowOffset = t.selectedRow
	}
}

func (t TableState) empty() bool {
	return t.totalRows == 0 || len(t.colWidths) == 0
}

// SelectNextRow moves down one row, wrapping to the first.
func (t *TableState) SelectNextRow() {
	if t.empty() {
		return
	}
	if t.selectedRow >= t.totalRows-1 {
		t.SelectFirstRow()
		return
	}
	if t.selectedRow-t.rowOffset == t.height-1 {
		t.rowOffset++
	}
	t.selectedRow++
}

// SelectPrevRow moves up one row, wrapping to the last.
func (t *TableState) SelectPrevRow() {
	if t.empty() {
		return
	}
	if t.selectedRow == 0 {
		t.SelectLastRow()
		return
	}
	if t.selectedRow-t.rowOffset == 0 {
		t.rowOffset--
	}
	t.selectedRow--
}

// SelectNextRowPage moves down one viewport height.
func (t *TableState) SelectNextRowPage() {
	if t.empty() {
		return
	}
	t.selectedRow, t.rowOffset = nextPage(t.selectedRow, t.totalRows, t.height)
}

// SelectPrevRowPage moves up one viewport height.
func (t *TableState) SelectPrevRowPage() {
	if t.empty() {
		return
	}
	t.selectedRow, t.rowOffset = prevPage(t.selectedRow, t.totalRows, t.height)
}

// SelectFirstRow jumps to the first row.
func (t *TableState) SelectFirstRow() {
	if t.empty() {
		return
	}
	t.selectedRow, t.rowOffset = 0, 0
}

// SelectLastRow jumps to the last row.
func (t *TableState) SelectLastRow() {
	if t.empty() {
		return
	}
	t.selectedRow, t.rowOffset = lastPage(t.totalRows, t.height)
}

// SelectRow selects row i, clamped, scrolling as little as needed.
func (t *TableState) SelectRow(i int) {
	if t.empty() {
		return
	}
	t.selectedRow = clamp(i, 0, t.totalRows-1)
	t.SetSize(t.width, t.height)
}

// SelectNextCol enters cell mode at column 0, or moves one column right and
// advances the column offset until the selected column fits the width.
func (t *TableState) SelectNextCol() {
	if t.empty() {
		return
	}
	if t.selectedCol < 0 {
		t.selectedCol = 0
		return
	}
	if t.selectedCol < len(t.colWidths)-1 {
		t.selectedCol++
	}
	for t.colOffset < t.selectedCol {
		if t.spanWidth(t.colOffset, t.selectedCol) <= t.width {
			break
		}
		t.colOffset++
	}
}

// SelectPrevCol moves one column left; leaving column 0 returns to
// whole-row mode.
func (t *TableState) SelectPrevCol() {
	if t.empty() || t.selectedCol < 0 {
		return
	}
	if t.selectedCol == 0 {
		t.selectedCol = -1
		return
	}
	if t.selectedCol == t.colOffset {
		t.colOffset--
	}
	t.selectedCol--
}

// SelectFirstCol jumps to column 0.
func (t *TableState) SelectFirstCol() {
	if t.empty() {
		return
	}
	t.selectedCol, t.colOffset = 0, 0
}

// SelectLastCol jumps to the last column and shows as many trailing columns
// as fit the width.
func (t *TableState) SelectLastCol() {
	if t.empty() {
		return
	}
	n := len(t.colWidths)
	t.selectedCol = n - 1
	sum, count := 0, 0
	for i := n - 1; i >= 0; i-- {
		sum += t.colWidths[i] + 1
		if sum > t.width {
			break
		}
		count++
	}
	t.colOffset = n - max(count, 1)
}

// spanWidth sums column widths plus one separator each over [from, to].
func (t TableState) spanWidth(from, to int) int {
	sum := 0
	for i := from; i <= to; i++ {
		sum += t.colWidths[i] + 1
	}
	return sum
}

// VisibleCols is the number of columns drawn from the column offset. The
// last one may be cut at the right edge.
func (t TableState) VisibleCols() int {
	sum, count := 0, 0
	for i := t.colOffset; i < len(t.colWidths); i++ {
		sum += t.colWidths[i] + 1
		count++
		if sum > t.width {
			break
		}
	}
	return count
}

// WidenCol grows the selected column by one cell.
func (t *TableState) WidenCol() {
	if t.selectedCol < 0 || t.empty() {
		return
	}
	t.colWidths[t.selectedCol]++
}

// NarrowCol shrinks the selected column by one cell, down to one.
func (t *TableState) NarrowCol() {
	if t.selectedCol < 0 || t.empty() {
		return
	}
	if t.colWidths[t.selectedCol] > 1 {
		t.colWidths[t.selectedCol]--
	}
}

// SelectedColWidth is the width of the selected column; ok is false in
// whole-row mode.
func (t TableState) SelectedColWidth() (int, bool) {
	if t.selectedCol < 0 || t.selectedCol >= len(t.colWidths) {
		return 0, false
	}
	return t.colWidths[t.selectedCol], true
}

// SelectedItemPosition returns the offset of the selected cell relative to
// the first content row of the table. ok is false in whole-row mode.
func (t TableState) SelectedItemPosition() (x, y int, ok bool) {
	if t.selectedCol < 0 || t.empty() {
		return 0, 0, false
	}
	for i := t.colOffset; i < t.selectedCol; i++ {
		x += t.colWidths[i] + 1
	}
	return x, t.selectedRow - t.rowOffset, true
}

// SelectedCountString is " i / n " for the selected row, or "" when empty.
func (t TableState) SelectedCountString() string {
	if t.totalRows == 0 {
		return ""
	}
	return fmt.Sprintf(" %d / %d ", t.selectedRow+1, t.totalRows)
}

// Table renders a TableState over header and row cells. Rows holds the rows
// in display order.
type Table struct {
	Header []string
	Rows   [][]CellItem

	HeaderStyle       lipgloss.Style
	SelectedStyle     lipgloss.Style
	SelectedAxisStyle lipgloss.Style
}

// Render draws the table into width x height cells, header included.
func (r Table) Render(state *TableState, width, height int) string {
	if height <= 0 {
		return ""
	}
	state.SetSize(width, height-1)
	blank := strings.Repeat(" ", max(width, 0))
	if state.empty() {
		rows := make([]string, height)
		for i := range rows {
			rows[i] = blank
		}
		return strings.Join(rows, "\n")
	}

	from := state.ColOffset()
	to := min(from+state.VisibleCols(), state.TotalCols())
	widths := state.ColWidths()
	selCol, cellMode := state.SelectedCol()

	header := make([]string, 0, to-from)
	for c := from; c < to; c++ {
		name := ""
		if c < len(r.Header) {
			name = r.Header[c]
		}
		header = append(header, padRight(ansi.Truncate(name, widths[c], ""), widths[c]))
	}
	lines := []string{r.HeaderStyle.Render(fitLine(" "+strings.Join(header, " "), width))}

	for i := state.RowOffset(); i < len(r.Rows) && len(lines) < height; i++ {
		selected := i == state.SelectedRow()
		cells := make([]string, 0, to-from)
		for c := from; c < to; c++ {
			var cell string
			if c < len(r.Rows[i]) {
				cell = r.Rows[i][c].Content
			}
			cell = padRight(ansi.Truncate(cell, widths[c], ""), widths[c])
			if selected && cellMode && c == selCol {
				cell = r.SelectedStyle.Render(ansi.Strip(cell))
			}
			cells = append(cells, cell)
		}
		line := fitLine(" "+strings.Join(cells, " "), width)
		switch {
		case selected && !cellMode:
			line = r.SelectedStyle.Render(ansi.Strip(line))
		case selected:
			line = r.SelectedAxisStyle.Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func fitLine(s string, width int) string {
	return padRight(ansi.Truncate(s, max(width, 0), ""), width)
}
