package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/willibrandon/ddv/internal/models"
	"github.com/willibrandon/ddv/internal/ui"
	"github.com/willibrandon/ddv/internal/ui/highlight"
	"github.com/willibrandon/ddv/internal/ui/widget"
)

// tableListFocus is the pane receiving keys.
type tableListFocus int

const (
	focusList tableListFocus = iota
	focusDetail
)

// descriptionPreview is the rendering of the description pane.
type descriptionPreview int

const (
	previewKeyValue descriptionPreview = iota
	previewJSON
	previewYAML
	descriptionPreviewCount
)

// TableListView lists tables next to the description of the selected one.
type TableListView struct {
	env Env

	tables       []models.Table
	descriptions map[string]models.TableDescription
	viewIndices  []int
	list         widget.ScrollList
	detail       *widget.ScrollLines

	focus   tableListFocus
	preview descriptionPreview
	filter  quickFilter
}

// NewTableListView returns the view and the command loading the description
// of the first table.
func NewTableListView(tables []models.Table, env Env) (*TableListView, tea.Cmd) {
	v := &TableListView{
		env:          env,
		tables:       tables,
		descriptions: make(map[string]models.TableDescription),
		viewIndices:  widget.Identity(len(tables)),
		list:         widget.NewScrollList(len(tables)),
		detail:       widget.NewScrollLines(nil, widget.ScrollLinesOptions{}),
		filter:       newQuickFilter(),
	}
	v.updatePreview()
	return v, v.loadDescription()
}

// Kind implements View.
func (v *TableListView) Kind() Kind { return KindTableList }

// SetTableDescription caches a loaded description and refreshes the preview.
func (v *TableListView) SetTableDescription(desc models.TableDescription) {
	v.descriptions[desc.TableName] = desc
	v.updatePreview()
}

// SelectedTableName returns the name under the cursor.
func (v *TableListView) SelectedTableName() (string, bool) {
	if len(v.viewIndices) == 0 {
		return "", false
	}
	return v.tables[v.viewIndices[v.list.Selected()]].Name, true
}

// Update implements View.
func (v *TableListView) Update(msg tea.KeyMsg, actions []ui.Action) tea.Cmd {
	if v.filter.editing() {
		return v.updateFilter(msg, actions)
	}
	if v.focus == focusDetail {
		return v.updateDetail(actions)
	}
	return v.updateList(actions)
}

func (v *TableListView) updateList(actions []ui.Action) tea.Cmd {
	move := func(f func()) tea.Cmd {
		f()
		v.updatePreview()
		return v.loadDescription()
	}

	switch {
	case ui.Has(actions, ui.ActionDown):
		return move(v.list.SelectNext)
	case ui.Has(actions, ui.ActionUp):
		return move(v.list.SelectPrev)
	case ui.Has(actions, ui.ActionPageDown):
		return move(v.list.SelectNextPage)
	case ui.Has(actions, ui.ActionPageUp):
		return move(v.list.SelectPrevPage)
	case ui.Has(actions, ui.ActionGoToTop):
		return move(v.list.SelectFirst)
	case ui.Has(actions, ui.ActionGoToBottom):
		return move(v.list.SelectLast)
	case ui.Has(actions, ui.ActionConfirm):
		return v.loadItems()
	case ui.Has(actions, ui.ActionQuickFilter):
		return v.filter.start()
	case ui.Has(actions, ui.ActionReset):
		if v.filter.active() {
			return v.resetFilter()
		}
	case ui.Has(actions, ui.ActionNextPane):
		v.focus = focusDetail
	case ui.Has(actions, ui.ActionNextPreview):
		v.preview = (v.preview + 1) % descriptionPreviewCount
		v.updatePreview()
	case ui.Has(actions, ui.ActionPrevPreview):
		v.preview = (v.preview + descriptionPreviewCount - 1) % descriptionPreviewCount
		v.updatePreview()
	case ui.Has(actions, ui.ActionCopyToClipboard):
		if name, ok := v.SelectedTableName(); ok {
			return ui.Send(ui.CopyToClipboardMsg{Name: "table name", Content: name})
		}
	case ui.Has(actions, ui.ActionHelp):
		return ui.Send(ui.OpenHelpMsg{Groups: v.listHelps()})
	}
	return nil
}

func (v *TableListView) updateDetail(actions []ui.Action) tea.Cmd {
	if ev, ok := scrollEvent(actions); ok {
		v.detail.Scroll(ev)
		return nil
	}
	switch {
	case ui.Has(actions, ui.ActionNextPane):
		v.focus = focusList
	case ui.Has(actions, ui.ActionNextPreview):
		v.preview = (v.preview + 1) % descriptionPreviewCount
		v.updatePreview()
	case ui.Has(actions, ui.ActionPrevPreview):
		v.preview = (v.preview + descriptionPreviewCount - 1) % descriptionPreviewCount
		v.updatePreview()
	case ui.Has(actions, ui.ActionToggleWrap):
		v.detail.ToggleWrap()
	case ui.Has(actions, ui.ActionToggleNumber):
		v.detail.ToggleNumber()
	case ui.Has(actions, ui.ActionCopyToClipboard):
		return ui.Send(ui.CopyToClipboardMsg{Name: "table descriptions", Content: v.detail.PlainText()})
	case ui.Has(actions, ui.ActionHelp):
		return ui.Send(ui.OpenHelpMsg{Groups: v.detailHelps()})
	}
	return nil
}

func (v *TableListView) updateFilter(msg tea.KeyMsg, actions []ui.Action) tea.Cmd {
	// absolute row selected before this key
	orig := restoreSelection(v.viewIndices, v.list.Selected())

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
		v.updatePreview()
		return tea.Batch(v.loadDescription(), v.filter.statusInput())
	}
	return v.filter.statusInput()
}

// resetFilter leaves the applied filter, keeping the selected table.
func (v *TableListView) resetFilter() tea.Cmd {
	return v.restoreAfterFilter(restoreSelection(v.viewIndices, v.list.Selected()))
}

func (v *TableListView) restoreAfterFilter(orig int) tea.Cmd {
	v.filter.cancel()
	v.refilter()
	if orig >= 0 {
		v.list.SelectIndex(orig)
	}
	v.updatePreview()
	return tea.Batch(v.loadDescription(), ui.Send(ui.ClearStatusMsg{}))
}

func (v *TableListView) refilter() {
	q := v.filter.query()
	v.viewIndices = widget.FilterIndices(len(v.tables), func(i int) bool {
		return widget.MatchFold(v.tables[i].Name, q)
	})
	v.list = v.list.WithNewTotal(len(v.viewIndices))
}

func (v *TableListView) loadDescription() tea.Cmd {
	name, ok := v.SelectedTableName()
	if !ok {
		return nil
	}
	if _, cached := v.descriptions[name]; cached {
		return nil
	}
	return ui.Send(ui.LoadTableDescriptionMsg{TableName: name})
}

func (v *TableListView) loadItems() tea.Cmd {
	name, ok := v.SelectedTableName()
	if !ok {
		return nil
	}
	desc, cached := v.descriptions[name]
	if !cached {
		return nil
	}
	return ui.Send(ui.LoadTableItemsMsg{Description: desc})
}

func (v *TableListView) updatePreview() {
	opts := v.detail.Options()
	var lines []string
	if name, ok := v.SelectedTableName(); ok {
		if desc, cached := v.descriptions[name]; cached {
			lines = v.descriptionLines(desc)
		}
	}
	v.detail = widget.NewScrollLines(lines, opts).
		WithLineNumberStyle(lipgloss.NewStyle().Foreground(v.env.Theme.LineNumberFg))
}

func (v *TableListView) descriptionLines(desc models.TableDescription) []string {
	switch v.preview {
	case previewJSON:
		s, err := models.DescriptionJSON(desc)
		if err != nil {
			return []string{err.Error()}
		}
		return highlight.JSONLines(s, v.env.Theme.ChromaStyle)
	case previewYAML:
		s, err := models.DescriptionYAML(desc)
		if err != nil {
			return []string{err.Error()}
		}
		return strings.Split(s, "\n")
	}
	return descriptionKeyValueLines(desc)
}

const descriptionKeyWidth = 22

func descriptionKeyValueLines(desc models.TableDescription) []string {
	bold := lipgloss.NewStyle().Bold(true)
	sep := " : "
	row := func(key, value string) string {
		return bold.Render(fmt.Sprintf("%*s", descriptionKeyWidth, key)) + sep + value
	}
	indent := strings.Repeat(" ", descriptionKeyWidth+len(sep))

	keySchema := make([]string, len(desc.KeySchema))
	for i, k := range desc.KeySchema {
		keySchema[i] = fmt.Sprintf("%s (%s)", k.AttributeName, k.KeyType)
	}
	defs := make([]string, len(desc.AttributeDefinitions))
	for i, d := range desc.AttributeDefinitions {
		defs[i] = fmt.Sprintf("%s (%s)", d.AttributeName, d.AttributeType)
	}

	lines := []string{
		row("Table Name", desc.TableName),
		row("Key Schema", strings.Join(keySchema, " / ")),
		row("Attribute Definitions", strings.Join(defs, " / ")),
		row("Table Status", desc.TableStatus),
		row("Creation Date", desc.CreationDateTime.Format("2006-01-02 15:04:05 MST")),
	}
	if pt := desc.ProvisionedThroughput; pt != nil {
		lines = append(lines, row("Provisioned Throughput",
			fmt.Sprintf("Read: %d / Write: %d", pt.ReadCapacityUnits, pt.WriteCapacityUnits)))
	}
	lines = append(lines,
		row("Item Count", humanize.Comma(desc.ItemCount)),
		row("Total Size", fmt.Sprintf("%s (%d bytes)", humanize.Bytes(uint64(max(desc.TotalSizeBytes, 0))), desc.TotalSizeBytes)),
		row("Table ARN", desc.TableArn),
	)

	indexes := func(title string, idx []models.SecondaryIndexDescription) {
		for i, ix := range idx {
			keys := make([]string, len(ix.KeySchema))
			for j, k := range ix.KeySchema {
				keys[j] = k.AttributeName
			}
			value := fmt.Sprintf("%s (%s)", ix.IndexName, strings.Join(keys, " / "))
			if i == 0 {
				lines = append(lines, row(title, value))
			} else {
				lines = append(lines, indent+value)
			}
		}
	}
	indexes("LSI", desc.LocalSecondaryIndexes)
	indexes("GSI", desc.GlobalSecondaryIndexes)
	return lines
}

// Render implements View.
func (v *TableListView) Render(width, height int) string {
	listWidth := min(v.env.Config.TableList.ListWidth, width)
	theme := v.env.Theme
	listFocused := v.focus == focusList

	itemWidth := max(listWidth-4, 0)
	query := v.filter.query()
	items := make([]string, len(v.viewIndices))
	for i, idx := range v.viewIndices {
		name := runewidth.Truncate(v.tables[idx].Name, itemWidth, "..")
		items[i] = widget.HighlightMatch(name, query, theme.Matched())
	}

	selected := theme.Selected()
	if !listFocused {
		selected = selected.Background(theme.Disabled)
	}
	list := widget.List{
		Title:         "Tables",
		Items:         items,
		Focused:       true,
		SelectedStyle: selected,
		PaneStyle:     theme.Pane(listFocused),
		TitleStyle:    theme.PaneTitle(listFocused),
	}.Render(&v.list, listWidth, height)

	detailWidth := width - listWidth
	if detailWidth < 2 {
		return list
	}
	innerW, innerH := detailWidth-2, max(height-2, 0)
	detail := widget.Block(theme.Pane(!listFocused), theme.PaneTitle(!listFocused), "",
		v.detail.Render(innerW, innerH), detailWidth, height)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

// ShortHelps implements View.
func (v *TableListView) ShortHelps() []ui.ShortHelp {
	k := v.env.Keys
	if v.focus == focusDetail {
		return []ui.ShortHelp{
			ui.Hint(k.Quit, "Quit", 0),
			ui.Hint(k.Help, "Help", 0),
			ui.HintGroup("Scroll", 1, k.Down, k.Up),
			ui.Hint(k.NextPane, "Switch pane", 2),
			ui.Hint(k.CopyToClipboard, "Copy", 3),
			ui.Hint(k.NextPreview, "Switch preview", 4),
			ui.HintGroup("Top/Bottom", 5, k.GoToTop, k.GoToBottom),
			ui.HintGroup("Toggle wrap/number", 6, k.ToggleWrap, k.ToggleNumber),
		}
	}
	filter := ui.Hint(k.QuickFilter, "Filter", 3)
	if v.filter.active() {
		filter = ui.Hint(k.Reset, "Clear filter", 3)
	}
	return []ui.ShortHelp{
		ui.Hint(k.Quit, "Quit", 0),
		ui.Hint(k.Help, "Help", 0),
		ui.Hint(k.Confirm, "Open", 1),
		ui.HintGroup("Select", 2, k.Down, k.Up),
		filter,
		ui.Hint(k.NextPane, "Switch pane", 4),
		ui.Hint(k.CopyToClipboard, "Copy", 5),
		ui.Hint(k.NextPreview, "Switch preview", 6),
		ui.HintGroup("Top/Bottom", 7, k.GoToTop, k.GoToBottom),
	}
}

func (v *TableListView) listHelps() []ui.HelpGroup {
	k := v.env.Keys
	return []ui.HelpGroup{
		{Title: "Table list", Bindings: []key.Binding{
			ui.Describe(k.Quit, "Quit app"),
			ui.Describe(k.Down, "Select next table"),
			ui.Describe(k.Up, "Select previous table"),
			ui.Describe(k.PageDown, "Select next page"),
			ui.Describe(k.PageUp, "Select previous page"),
			ui.Describe(k.GoToTop, "Select first table"),
			ui.Describe(k.GoToBottom, "Select last table"),
			ui.Describe(k.Confirm, "Open table"),
			ui.Describe(k.QuickFilter, "Filter tables"),
			ui.Describe(k.Reset, "Clear filter"),
			ui.Describe(k.NextPane, "Switch pane"),
			ui.Describe(k.NextPreview, "Switch to next preview"),
			ui.Describe(k.PrevPreview, "Switch to previous preview"),
			ui.Describe(k.CopyToClipboard, "Copy table name"),
		}},
	}
}

func (v *TableListView) detailHelps() []ui.HelpGroup {
	k := v.env.Keys
	return []ui.HelpGroup{
		{Title: "Table description", Bindings: append(scrollHelps(k),
			ui.Describe(k.NextPane, "Switch pane"),
			ui.Describe(k.NextPreview, "Switch to next preview"),
			ui.Describe(k.PrevPreview, "Switch to previous preview"),
			ui.Describe(k.CopyToClipboard, "Copy table descriptions"),
		)},
	}
}
