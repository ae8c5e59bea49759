package widget

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableAt(rows int, widths []int, width, height int) *TableState {
	s := NewTableState(rows, widths)
	s.SetSize(width, height)
	return &s
}

func selectedCol(t *testing.T, s *TableState) int {
	t.Helper()
	col, ok := s.SelectedCol()
	if !ok {
		return -1
	}
	return col
}

func TestTableSelectNextCol(t *testing.T) {
	s := tableAt(5, []int{10, 10, 10}, 25, 4)
	assert.Equal(t, -1, selectedCol(t, s))

	s.SelectNextCol()
	assert.Equal(t, 0, selectedCol(t, s))
	assert.Equal(t, 0, s.ColOffset())

	s.SelectNextCol()
	assert.Equal(t, 1, selectedCol(t, s))
	assert.Equal(t, 0, s.ColOffset())

	s.SelectNextCol()
	assert.Equal(t, 2, selectedCol(t, s))
	assert.Equal(t, 1, s.ColOffset())

	s.SelectNextCol()
	assert.Equal(t, 2, selectedCol(t, s), "stays on the last column")
	assert.Equal(t, 1, s.ColOffset())
}

func TestTableSelectNextColAdvancesSeveral(t *testing.T) {
	s := tableAt(1, []int{3, 3, 3, 20}, 22, 2)
	s.SelectNextCol()
	s.SelectNextCol()
	s.SelectNextCol()
	require.Equal(t, 2, selectedCol(t, s))
	assert.Equal(t, 0, s.ColOffset())

	s.SelectNextCol()
	assert.Equal(t, 3, selectedCol(t, s))
	// 20+1 alone fits, any column before it does not
	assert.Equal(t, 3, s.ColOffset())
}

func TestTableExactFitColumnOffset(t *testing.T) {
	// (10+1)+(10+1) == 22: both columns are fully drawn
	stepped := tableAt(3, []int{10, 10}, 22, 3)
	stepped.SelectNextCol()
	stepped.SelectNextCol()

	jumped := tableAt(3, []int{10, 10}, 22, 3)
	jumped.SelectLastCol()

	for _, s := range []*TableState{stepped, jumped} {
		assert.Equal(t, 1, selectedCol(t, s))
		assert.Equal(t, 0, s.ColOffset())
		assert.Equal(t, 2, s.VisibleCols())
	}

	narrow := tableAt(3, []int{10, 10}, 21, 3)
	narrow.SelectNextCol()
	narrow.SelectNextCol()
	assert.Equal(t, 1, narrow.ColOffset())
}

func TestTableSelectPrevCol(t *testing.T) {
	s := tableAt(5, []int{10, 10, 10}, 25, 4)
	s.SelectLastCol()
	require.Equal(t, 2, selectedCol(t, s))
	require.Equal(t, 1, s.ColOffset())

	s.SelectPrevCol()
	assert.Equal(t, 1, selectedCol(t, s))
	assert.Equal(t, 1, s.ColOffset())

	s.SelectPrevCol()
	assert.Equal(t, 0, selectedCol(t, s))
	assert.Equal(t, 0, s.ColOffset())

	s.SelectPrevCol()
	assert.Equal(t, -1, selectedCol(t, s))

	for i := 0; i < 3; i++ {
		s.SelectPrevCol()
		assert.Equal(t, -1, selectedCol(t, s))
	}
	s.SelectNextCol()
	assert.Equal(t, 0, selectedCol(t, s))
}

func TestTableSelectLastCol(t *testing.T) {
	tests := []struct {
		name       string
		widths     []int
		width      int
		wantOffset int
	}{
		{"two of three fit", []int{10, 10, 10}, 25, 1},
		{"exact fit counts", []int{10, 10, 10}, 22, 1},
		{"everything fits", []int{4, 4, 4}, 40, 0},
		{"last wider than viewport", []int{4, 40}, 20, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tableAt(3, tt.widths, tt.width, 3)
			s.SelectLastCol()
			assert.Equal(t, len(tt.widths)-1, selectedCol(t, s))
			assert.Equal(t, tt.wantOffset, s.ColOffset())
		})
	}
}

func TestTableColOffsetKeepsSelectionVisible(t *testing.T) {
	s := tableAt(2, []int{5, 12, 3, 8, 9, 4, 15}, 20, 2)
	for i := 0; i < 10; i++ {
		s.SelectNextCol()
		col := selectedCol(t, s)
		assert.LessOrEqual(t, s.ColOffset(), col)
		assert.Less(t, col, s.ColOffset()+s.VisibleCols())
	}
	for i := 0; i < 10; i++ {
		s.SelectPrevCol()
		if col := selectedCol(t, s); col >= 0 {
			assert.LessOrEqual(t, s.ColOffset(), col)
		}
	}
}

func TestTableWidenNarrow(t *testing.T) {
	s := tableAt(2, []int{1, 5}, 30, 2)

	s.WidenCol()
	assert.Equal(t, []int{1, 5}, s.ColWidths(), "no-op in whole-row mode")

	s.SelectNextCol()
	s.NarrowCol()
	assert.Equal(t, []int{1, 5}, s.ColWidths(), "width never drops below one")

	s.SelectNextCol()
	s.WidenCol()
	w, ok := s.SelectedColWidth()
	assert.True(t, ok)
	assert.Equal(t, 6, w)
	s.NarrowCol()
	assert.Equal(t, []int{1, 5}, s.ColWidths())
}

func TestTableStateDoesNotAliasWidths(t *testing.T) {
	widths := []int{3, 3}
	s := NewTableState(1, widths)
	s.SelectNextCol()
	s.WidenCol()
	assert.Equal(t, []int{3, 3}, widths)
}

func TestTableSelectedItemPosition(t *testing.T) {
	s := tableAt(10, []int{4, 6, 8, 5}, 40, 3)

	_, _, ok := s.SelectedItemPosition()
	assert.False(t, ok)

	s.SelectNextRow()
	s.SelectNextRow()
	s.SelectNextRow()
	s.SelectNextCol()
	s.SelectNextCol()
	s.SelectNextCol()

	x, y, ok := s.SelectedItemPosition()
	require.True(t, ok)
	assert.Equal(t, 4+1+6+1, x)
	assert.Equal(t, 2, y)
	assert.Equal(t, 1, s.RowOffset())
}

func TestTableRowsMirrorList(t *testing.T) {
	s := tableAt(3, []int{5}, 10, 2)
	s.SelectNextRow()
	s.SelectNextRow()
	assert.Equal(t, 2, s.SelectedRow())
	assert.Equal(t, 1, s.RowOffset())
	s.SelectNextRow()
	assert.Equal(t, 0, s.SelectedRow())
	assert.Equal(t, 0, s.RowOffset())

	s.SelectPrevRow()
	assert.Equal(t, 2, s.SelectedRow())
	assert.Equal(t, 1, s.RowOffset())

	big := tableAt(10, []int{5}, 10, 3)
	big.SelectNextRowPage()
	assert.Equal(t, 3, big.SelectedRow())
	big.SelectLastRow()
	assert.Equal(t, 9, big.SelectedRow())
	assert.Equal(t, 7, big.RowOffset())
	big.SelectPrevRowPage()
	assert.Equal(t, 6, big.SelectedRow())
	big.SelectFirstRow()
	assert.Equal(t, 0, big.SelectedRow())

	big.SelectRow(8)
	assert.Equal(t, 8, big.SelectedRow())
	assert.Equal(t, 6, big.RowOffset())
}

func TestTableWithNewTotalRows(t *testing.T) {
	s := tableAt(10, []int{5, 5}, 20, 3)
	s.SelectLastRow()
	s.SelectNextCol()
	s.SelectNextCol()

	n := s.WithNewTotalRows(4)

	assert.Equal(t, 0, n.SelectedRow())
	assert.Equal(t, 0, n.RowOffset())
	assert.Equal(t, 4, n.TotalRows())
	col, ok := n.SelectedCol()
	assert.True(t, ok)
	assert.Equal(t, 1, col)
}

func TestTableEmpty(t *testing.T) {
	for _, s := range []*TableState{tableAt(0, []int{3, 3}, 20, 3), tableAt(3, nil, 20, 3)} {
		s.SelectNextRow()
		s.SelectPrevRow()
		s.SelectNextRowPage()
		s.SelectPrevRowPage()
		s.SelectLastRow()
		s.SelectNextCol()
		s.SelectLastCol()
		s.WidenCol()
		assert.Equal(t, 0, s.SelectedRow())
		assert.Equal(t, -1, selectedCol(t, s))
		assert.Equal(t, 0, s.ColOffset())
	}
	assert.Equal(t, "", NewTableState(0, nil).SelectedCountString())
}

func TestTableSelectedCountString(t *testing.T) {
	s := tableAt(12, []int{3}, 10, 3)
	s.SelectNextRow()
	assert.Equal(t, " 2 / 12 ", s.SelectedCountString())
}

func TestTableRender(t *testing.T) {
	state := NewTableState(3, []int{3, 4})
	r := Table{
		Header: []string{"id", "name"},
		Rows: [][]CellItem{
			{NewCellItem("1", "1"), NewCellItem("alice", "alice")},
			{NewCellItem("2", "2"), NewCellItem("bob", "bob")},
			{NewCellItem("3", "3"), NewCellItem("carol", "carol")},
		},
		HeaderStyle:       lipgloss.NewStyle(),
		SelectedStyle:     lipgloss.NewStyle(),
		SelectedAxisStyle: lipgloss.NewStyle(),
	}

	rows := plainRows(r.Render(&state, 12, 3))

	assert.Equal(t, []string{
		" id  name   ",
		" 1   alic   ",
		" 2   bob    ",
	}, rows)
	assert.Equal(t, 2, state.VisibleCols())
}

func TestTableRenderEmpty(t *testing.T) {
	state := NewTableState(0, []int{3})
	rows := plainRows(Table{}.Render(&state, 4, 2))
	assert.Equal(t, []string{"    ", "    "}, rows)
}
