package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/willibrandon/ddv/internal/models"
	"github.com/willibrandon/ddv/internal/ui"
	"github.com/willibrandon/ddv/internal/ui/highlight"
	"github.com/willibrandon/ddv/internal/ui/styles"
	"github.com/willibrandon/ddv/internal/ui/widget"
)

// tableMode is the interaction mode of the table browser.
type tableMode int

const (
	tableBrowse tableMode = iota
	tableExpanded
	tableConfirmDelete
)

// TableView browses the scanned items of one table.
type TableView struct {
	env Env

	desc  models.TableDescription
	items []models.Item
	keys  []string

	// header and rows hold every item in scan order; viewIndices selects
	// the rows shown.
	header      []string
	rows        [][]widget.CellItem
	viewIndices []int
	state       widget.TableState

	mode   tableMode
	popup  *widget.ScrollLines
	filter quickFilter
}

// NewTableView builds the browser over items, which are expected sorted by key.
func NewTableView(desc models.TableDescription, items []models.Item, env Env) *TableView {
	v := &TableView{
		env:    env,
		desc:   desc,
		items:  items,
		keys:   models.ListAttributeKeys(items, desc.KeySchemaType),
		popup:  widget.NewScrollLines(nil, widget.ScrollLinesOptions{}),
		filter: newQuickFilter(),
	}

	maxWidth := env.Config.Table.MaxAttributeWidth
	widths := make([]int, len(v.keys))
	v.header = make([]string, len(v.keys))
	for c, k := range v.keys {
		v.header[c] = v.headerCell(k, maxWidth)
		widths[c] = ansi.StringWidth(v.header[c])
	}
	v.rows = make([][]widget.CellItem, len(items))
	for r, it := range items {
		cells := make([]widget.CellItem, len(v.keys))
		for c, k := range v.keys {
			cells[c] = v.cell(it, k, maxWidth)
			widths[c] = max(widths[c], ansi.StringWidth(cells[c].Content))
		}
		v.rows[r] = cells
	}

	v.viewIndices = widget.Identity(len(items))
	v.state = widget.NewTableState(len(items), widths)
	return v
}

// Kind implements View.
func (v *TableView) Kind() Kind { return KindTable }

// Description returns the table being browsed.
func (v *TableView) Description() models.TableDescription { return v.desc }

func (v *TableView) headerCell(name string, width int) string {
	return cutWidth(lipgloss.NewStyle().Bold(true).Render(name), width, styles.Fg(v.env.Theme.CellEllipsisFg))
}

func (v *TableView) cell(it models.Item, name string, width int) widget.CellItem {
	attr := it.Get(name)
	if attr == nil {
		return widget.NewCellItem(styles.Fg(v.env.Theme.CellUndefinedFg).Render("-"), "")
	}
	full := attributeString(*attr, v.env.Theme)
	content := cutWidth(full, width, styles.Fg(v.env.Theme.CellEllipsisFg))
	return widget.NewCellItem(content, ansi.Strip(full))
}

// regenerateColumn re-truncates the cells of col to its current width.
func (v *TableView) regenerateColumn(col, width int) {
	v.header[col] = v.headerCell(v.keys[col], width)
	for r, it := range v.items {
		v.rows[r][col] = v.cell(it, v.keys[col], width)
	}
}

func (v *TableView) selectedItem() (models.Item, bool) {
	if len(v.viewIndices) == 0 {
		return models.Item{}, false
	}
	return v.items[v.viewIndices[v.state.SelectedRow()]], true
}

func (v *TableView) selectedAttribute() (models.Attribute, bool) {
	it, ok := v.selectedItem()
	if !ok {
		return models.Attribute{}, false
	}
	col, ok := v.state.SelectedCol()
	if !ok {
		return models.Attribute{}, false
	}
	attr := it.Get(v.keys[col])
	if attr == nil {
		return models.Attribute{}, false
	}
	return *attr, true
}

// Update implements View.
func (v *TableView) Update(msg tea.KeyMsg, actions []ui.Action) tea.Cmd {
	switch {
	case v.filter.editing():
		return v.updateFilter(msg, actions)
	case v.mode == tableExpanded:
		return v.updateExpanded(actions)
	case v.mode == tableConfirmDelete:
		return v.updateConfirmDelete(actions)
	}
	return v.updateBrowse(actions)
}

func (v *TableView) updateBrowse(actions []ui.Action) tea.Cmd {
	switch {
	case ui.Has(actions, ui.ActionReset):
		if v.filter.active() {
			return v.resetFilter()
		}
	case ui.Has(actions, ui.ActionClose):
		return ui.Send(ui.BackMsg{})
	case ui.Has(actions, ui.ActionDown):
		v.state.SelectNextRow()
	case ui.Has(actions, ui.ActionUp):
		v.state.SelectPrevRow()
	case ui.Has(actions, ui.ActionPageDown):
		v.state.SelectNextRowPage()
	case ui.Has(actions, ui.ActionPageUp):
		v.state.SelectPrevRowPage()
	case ui.Has(actions, ui.ActionGoToTop):
		v.state.SelectFirstRow()
	case ui.Has(actions, ui.ActionGoToBottom):
		v.state.SelectLastRow()
	case ui.Has(actions, ui.ActionGoToLeft):
		v.state.SelectFirstCol()
	case ui.Has(actions, ui.ActionGoToRight):
		v.state.SelectLastCol()
	case ui.Has(actions, ui.ActionRight):
		v.state.SelectNextCol()
	case ui.Has(actions, ui.ActionLeft):
		v.state.SelectPrevCol()
	case ui.Has(actions, ui.ActionWiden):
		v.state.WidenCol()
		v.syncSelectedColumn()
	case ui.Has(actions, ui.ActionNarrow):
		v.state.NarrowCol()
		v.syncSelectedColumn()
	case ui.Has(actions, ui.ActionConfirm):
		if it, ok := v.selectedItem(); ok {
			return ui.Send(ui.OpenItemMsg{Description: v.desc, Item: it})
		}
	case ui.Has(actions, ui.ActionInsight):
		return ui.Send(ui.OpenTableInsightMsg{Description: v.desc, Items: v.items})
	case ui.Has(actions, ui.ActionExpand):
		v.expand()
	case ui.Has(actions, ui.ActionQuickFilter):
		return v.filter.start()
	case ui.Has(actions, ui.ActionReload):
		return ui.Send(ui.ReloadTableItemsMsg{Description: v.desc})
	case ui.Has(actions, ui.ActionDelete):
		if _, ok := v.selectedItem(); ok {
			v.mode = tableConfirmDelete
		}
	case ui.Has(actions, ui.ActionCopyToClipboard):
		return v.copyToClipboard()
	case ui.Has(actions, ui.ActionHelp):
		return ui.Send(ui.OpenHelpMsg{Groups: v.browseHelps()})
	}
	return nil
}

func (v *TableView) updateExpanded(actions []ui.Action) tea.Cmd {
	if ui.Has(actions, ui.ActionClose) || ui.Has(actions, ui.ActionExpand) {
		v.mode = tableBrowse
		return nil
	}
	if ev, ok := scrollEvent(actions); ok {
		v.popup.Scroll(ev)
		return nil
	}
	switch {
	case ui.Has(actions, ui.ActionToggleWrap):
		v.popup.ToggleWrap()
	case ui.Has(actions, ui.ActionToggleNumber):
		v.popup.ToggleNumber()
	case ui.Has(actions, ui.ActionCopyToClipboard):
		return v.copyToClipboard()
	case ui.Has(actions, ui.ActionHelp):
		return ui.Send(ui.OpenHelpMsg{Groups: v.expandedHelps()})
	}
	return nil
}

func (v *TableView) updateConfirmDelete(actions []ui.Action) tea.Cmd {
	switch {
	case ui.Has(actions, ui.ActionYes):
		v.mode = tableBrowse
		if it, ok := v.selectedItem(); ok {
			return ui.Send(ui.DeleteItemMsg{Description: v.desc, Item: it})
		}
	case ui.Has(actions, ui.ActionNo), ui.Has(actions, ui.ActionClose), ui.Has(actions, ui.ActionReset):
		v.mode = tableBrowse
	}
	return nil
}

func (v *TableView) updateFilter(msg tea.KeyMsg, actions []ui.Action) tea.Cmd {
	// absolute row selected before this key
	orig := restoreSelection(v.viewIndices, v.state.SelectedRow())

	switch v.filter.handle(msg, actions) {
	case filterConfirmed:
		// an empty query confirms back to every row
		if !v.filter.active() || len(v.viewIndices) == 0 {
			return v.restoreAfterFilter(orig)
		}
		return ui.Send(ui.ClearStatusMsg{})
	case filterCancelled:
		return v.restoreAfterFilter(orig)
	case filterQueryChanged:
		v.refilter()
	}
	return v.filter.statusInput()
}

func (v *TableView) resetFilter() tea.Cmd {
	return v.restoreAfterFilter(restoreSelection(v.viewIndices, v.state.SelectedRow()))
}

func (v *TableView) restoreAfterFilter(orig int) tea.Cmd {
	v.filter.cancel()
	v.refilter()
	if orig >= 0 {
		v.state.SelectRow(orig)
	}
	return ui.Send(ui.ClearStatusMsg{})
}

func (v *TableView) refilter() {
	v.viewIndices = widget.FilterRows(v.rows, v.filter.query())
	v.state = v.state.WithNewTotalRows(len(v.viewIndices))
}

func (v *TableView) syncSelectedColumn() {
	col, ok := v.state.SelectedCol()
	if !ok {
		return
	}
	w, _ := v.state.SelectedColWidth()
	v.regenerateColumn(col, w)
}

func (v *TableView) expand() {
	attr, ok := v.selectedAttribute()
	if !ok {
		return
	}
	s, err := models.RawAttributeJSON(attr)
	if err != nil {
		s = err.Error()
	}
	v.popup = widget.NewScrollLines(highlight.JSONLines(s, v.env.Theme.ChromaStyle), v.popup.Options()).
		WithLineNumberStyle(styles.Fg(v.env.Theme.LineNumberFg))
	v.mode = tableExpanded
}

func (v *TableView) copyToClipboard() tea.Cmd {
	it, ok := v.selectedItem()
	if !ok {
		return nil
	}
	if _, cellMode := v.state.SelectedCol(); cellMode {
		attr, ok := v.selectedAttribute()
		if !ok {
			return nil
		}
		content := attr.SimpleString()
		if v.mode == tableExpanded {
			s, err := models.RawAttributeJSON(attr)
			if err != nil {
				return ui.Error(err.Error())
			}
			content = s
		}
		return ui.Send(ui.CopyToClipboardMsg{Name: "selected attribute", Content: content})
	}
	s, err := models.CompactRawJSONItem(it, v.desc.KeySchemaType)
	if err != nil {
		return ui.Error(err.Error())
	}
	return ui.Send(ui.CopyToClipboardMsg{Name: "selected item", Content: s})
}

// Render implements View.
func (v *TableView) Render(width, height int) string {
	if width < 4 || height < 2 {
		return ""
	}
	theme := v.env.Theme

	// table area sits inside the border with a margin of two columns and one row
	areaX, areaY := 2, 1
	areaW, areaH := width-4, height-2

	rows := make([][]widget.CellItem, len(v.viewIndices))
	for i, idx := range v.viewIndices {
		rows[i] = v.rows[idx]
	}
	table := widget.Table{
		Header:            v.header,
		Rows:              rows,
		SelectedStyle:     theme.Selected(),
		SelectedAxisStyle: theme.SelectedAxis(),
	}.Render(&v.state, areaW, areaH)

	lines := strings.Split(table, "\n")
	for i, l := range lines {
		lines[i] = " " + l + " "
	}
	title := fmt.Sprintf("%s - %s", ui.AppName, v.desc.TableName)
	out := widget.BlockWithStatus(theme.Pane(true), theme.PaneTitle(true), title,
		v.state.SelectedCountString(), strings.Join(lines, "\n"), width, height)

	switch v.mode {
	case tableExpanded:
		if x, y, ok := v.state.SelectedItemPosition(); ok {
			popup, left, top := v.renderPopup(areaX+1+x, areaY+y+1, areaX+areaW, areaY+areaH)
			out = widget.Overlay(out, popup, left, top)
		}
	case tableConfirmDelete:
		out = v.overlayConfirm(out, width, height)
	}
	return out
}

// renderPopup draws the expanded attribute next to the cell at (cellX, cellY),
// flipping left or up when it would leave the table area.
func (v *TableView) renderPopup(cellX, cellY, right, bottom int) (string, int, int) {
	cfg := v.env.Config.Table
	w, h := cfg.ExpandedPopupWidth+2, cfg.ExpandedPopupHeight+2

	left := cellX - 1
	if cellX+w-1 >= right {
		left = right - w
	}
	top := cellY + 1
	if cellY+h >= bottom {
		top = cellY - h
	}

	pane := lipgloss.NewStyle().Border(lipgloss.DoubleBorder())
	popup := widget.Block(pane, lipgloss.NewStyle(), "", v.popup.Render(w-2, h-2), w, h)
	return popup, max(left, 0), max(top, 0)
}

func (v *TableView) overlayConfirm(out string, width, height int) string {
	it, ok := v.selectedItem()
	if !ok {
		return out
	}
	text := fmt.Sprintf("Delete item %s ?\n\n%s: Delete  %s: Cancel",
		models.KeyString(it, v.desc.KeySchemaType),
		v.env.Keys.Yes.Help().Key, v.env.Keys.No.Help().Key)
	dialog := v.env.Theme.Dialog().
		BorderForeground(v.env.Theme.NotificationError).
		Render(text)
	x := max((width-lipgloss.Width(dialog))/2, 0)
	y := max((height-lipgloss.Height(dialog))/2, 0)
	return widget.Overlay(out, dialog, x, y)
}

// ShortHelps implements View.
func (v *TableView) ShortHelps() []ui.ShortHelp {
	k := v.env.Keys
	switch v.mode {
	case tableExpanded:
		return []ui.ShortHelp{
			ui.Hint(k.Quit, "Quit", 0),
			ui.Hint(k.Help, "Help", 0),
			ui.Hint(k.Close, "Close", 1),
			ui.HintGroup("Scroll", 2, k.Down, k.Up),
			ui.Hint(k.CopyToClipboard, "Copy", 3),
			ui.HintGroup("Top/Bottom", 4, k.GoToTop, k.GoToBottom),
			ui.HintGroup("Toggle wrap/number", 5, k.ToggleWrap, k.ToggleNumber),
		}
	case tableConfirmDelete:
		return []ui.ShortHelp{
			ui.Hint(k.Quit, "Quit", 0),
			ui.Hint(k.Yes, "Delete", 1),
			ui.Hint(k.No, "Cancel", 1),
		}
	}
	filter := ui.Hint(k.QuickFilter, "Filter", 8)
	if v.filter.active() {
		filter = ui.Hint(k.Reset, "Clear filter", 8)
	}
	return []ui.ShortHelp{
		ui.Hint(k.Quit, "Quit", 0),
		ui.Hint(k.Help, "Help", 0),
		ui.Hint(k.Close, "Back", 1),
		ui.Hint(k.Confirm, "Open", 2),
		ui.Hint(k.Insight, "Insight", 3),
		ui.HintGroup("Select row", 4, k.Down, k.Up),
		ui.HintGroup("Select col", 5, k.Left, k.Right),
		ui.Hint(k.CopyToClipboard, "Copy", 6),
		ui.HintGroup("Top/Bottom", 7, k.GoToTop, k.GoToBottom),
		filter,
		ui.Hint(k.Expand, "Expand", 8),
		ui.HintGroup("Widen/Narrow", 9, k.Widen, k.Narrow),
		ui.Hint(k.Reload, "Reload", 9),
		ui.Hint(k.Delete, "Delete", 9),
	}
}

func (v *TableView) browseHelps() []ui.HelpGroup {
	k := v.env.Keys
	return []ui.HelpGroup{
		{Title: "Table", Bindings: []key.Binding{
			ui.Describe(k.Quit, "Quit app"),
			ui.Describe(k.Close, "Back to table list"),
			ui.Describe(k.Down, "Select next row"),
			ui.Describe(k.Up, "Select previous row"),
			ui.Describe(k.Right, "Select next column"),
			ui.Describe(k.Left, "Select previous column"),
			ui.Describe(k.PageDown, "Select next page"),
			ui.Describe(k.PageUp, "Select previous page"),
			ui.Describe(k.GoToTop, "Select first row"),
			ui.Describe(k.GoToBottom, "Select last row"),
			ui.Describe(k.GoToLeft, "Select first column"),
			ui.Describe(k.GoToRight, "Select last column"),
			ui.Describe(k.Widen, "Widen selected column"),
			ui.Describe(k.Narrow, "Narrow selected column"),
		}},
		{Title: "Actions", Bindings: []key.Binding{
			ui.Describe(k.Confirm, "Open selected item"),
			ui.Describe(k.Insight, "Open table insight"),
			ui.Describe(k.Expand, "Expand selected attribute"),
			ui.Describe(k.QuickFilter, "Filter rows"),
			ui.Describe(k.Reset, "Clear filter"),
			ui.Describe(k.Reload, "Reload items"),
			ui.Describe(k.Delete, "Delete selected item"),
			ui.Describe(k.CopyToClipboard, "Copy selected item or attribute"),
		}},
	}
}

func (v *TableView) expandedHelps() []ui.HelpGroup {
	k := v.env.Keys
	return []ui.HelpGroup{
		{Title: "Expanded attribute", Bindings: append(scrollHelps(k),
			ui.Describe(k.Close, "Close expanded attribute"),
			ui.Describe(k.CopyToClipboard, "Copy attribute as JSON"),
		)},
	}
}
