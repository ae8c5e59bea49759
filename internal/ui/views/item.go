package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/ddv/internal/models"
	"github.com/willibrandon/ddv/internal/ui"
	"github.com/willibrandon/ddv/internal/ui/highlight"
	"github.com/willibrandon/ddv/internal/ui/styles"
	"github.com/willibrandon/ddv/internal/ui/widget"
)

// itemPreview is the rendering of an item.
type itemPreview int

const (
	itemKeyValue itemPreview = iota
	itemTree
	itemPlainJSON
	itemRawJSON
	itemPreviewCount
)

// String returns the preview name shown in the title.
func (p itemPreview) String() string {
	switch p {
	case itemKeyValue:
		return "Key-Value"
	case itemTree:
		return "Tree"
	case itemPlainJSON:
		return "JSON"
	case itemRawJSON:
		return "Raw JSON"
	default:
		return "Unknown"
	}
}

// ItemView shows a single item.
type ItemView struct {
	env       Env
	desc      models.TableDescription
	item      models.Item
	keyString string

	preview itemPreview
	lines   *widget.ScrollLines
}

// NewItemView builds the item screen with the key-value preview.
func NewItemView(desc models.TableDescription, item models.Item, env Env) *ItemView {
	v := &ItemView{
		env:       env,
		desc:      desc,
		item:      item,
		keyString: models.KeyString(item, desc.KeySchemaType),
		lines:     widget.NewScrollLines(nil, widget.ScrollLinesOptions{}),
	}
	v.updatePreview()
	return v
}

// Kind implements View.
func (v *ItemView) Kind() Kind { return KindItem }

// Update implements View.
func (v *ItemView) Update(_ tea.KeyMsg, actions []ui.Action) tea.Cmd {
	if ui.Has(actions, ui.ActionClose) {
		return ui.Send(ui.BackMsg{})
	}
	if ev, ok := scrollEvent(actions); ok {
		v.lines.Scroll(ev)
		return nil
	}
	switch {
	case ui.Has(actions, ui.ActionNextPreview):
		v.preview = (v.preview + 1) % itemPreviewCount
		v.updatePreview()
	case ui.Has(actions, ui.ActionPrevPreview):
		v.preview = (v.preview + itemPreviewCount - 1) % itemPreviewCount
		v.updatePreview()
	case ui.Has(actions, ui.ActionToggleWrap):
		v.lines.ToggleWrap()
	case ui.Has(actions, ui.ActionToggleNumber):
		v.lines.ToggleNumber()
	case ui.Has(actions, ui.ActionCopyToClipboard):
		return ui.Send(ui.CopyToClipboardMsg{Name: "item", Content: v.lines.PlainText()})
	case ui.Has(actions, ui.ActionHelp):
		return ui.Send(ui.OpenHelpMsg{Groups: v.helps()})
	}
	return nil
}

func (v *ItemView) updatePreview() {
	v.lines = widget.NewScrollLines(v.previewLines(), v.lines.Options()).
		WithLineNumberStyle(styles.Fg(v.env.Theme.LineNumberFg))
}

func (v *ItemView) previewLines() []string {
	schema := v.desc.KeySchemaType
	var (
		s   string
		err error
	)
	switch v.preview {
	case itemTree:
		return strings.Split(strings.TrimRight(models.ItemTree(v.item, schema), "\n"), "\n")
	case itemPlainJSON:
		s, err = models.PlainJSONItem(v.item, schema)
	case itemRawJSON:
		s, err = models.RawJSONItem(v.item, schema)
	default:
		return itemKeyValueLines(v.item, schema, v.env.Theme)
	}
	if err != nil {
		return []string{err.Error()}
	}
	return highlight.JSONLines(s, v.env.Theme.ChromaStyle)
}

// itemKeyValueLines renders one attribute per line: name right-aligned,
// then its type, then its value.
func itemKeyValueLines(it models.Item, schema models.KeySchemaType, theme styles.Theme) []string {
	keys := models.ListAttributeKeys([]models.Item{it}, schema)
	keyWidth, typeWidth := 0, 0
	for _, k := range keys {
		keyWidth = max(keyWidth, len(k))
		typeWidth = max(typeWidth, len(it.Attributes[k].TypeString()))
	}

	bold := lipgloss.NewStyle().Bold(true)
	typeStyle := bold.Foreground(theme.ItemAttributeTypeFg)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		attr := it.Attributes[k]
		lines = append(lines,
			bold.Render(fmt.Sprintf("%*s", keyWidth, k))+
				typeStyle.Render(fmt.Sprintf(" %-*s ", typeWidth, attr.TypeString()))+
				": "+attributeString(attr, theme))
	}
	return lines
}

// Render implements View.
func (v *ItemView) Render(width, height int) string {
	title := fmt.Sprintf("%s - %s (%s)", ui.AppName, v.desc.TableName, v.keyString)
	status := " " + v.preview.String() + " "
	return widget.BlockWithStatus(v.env.Theme.Pane(true), v.env.Theme.PaneTitle(true), title, status,
		v.lines.Render(max(width-2, 0), max(height-2, 0)), width, height)
}

// ShortHelps implements View.
func (v *ItemView) ShortHelps() []ui.ShortHelp {
	k := v.env.Keys
	return []ui.ShortHelp{
		ui.Hint(k.Quit, "Quit", 0),
		ui.Hint(k.Help, "Help", 0),
		ui.Hint(k.Close, "Back", 1),
		ui.HintGroup("Scroll", 2, k.Down, k.Up),
		ui.Hint(k.NextPreview, "Switch preview", 3),
		ui.Hint(k.CopyToClipboard, "Copy", 4),
		ui.HintGroup("Top/Bottom", 5, k.GoToTop, k.GoToBottom),
		ui.HintGroup("Toggle wrap/number", 6, k.ToggleWrap, k.ToggleNumber),
	}
}

func (v *ItemView) helps() []ui.HelpGroup {
	k := v.env.Keys
	return []ui.HelpGroup{
		{Title: "Item", Bindings: append(scrollHelps(k),
			ui.Describe(k.Close, "Back to table"),
			ui.Describe(k.NextPreview, "Switch to next preview"),
			ui.Describe(k.PrevPreview, "Switch to previous preview"),
			ui.Describe(k.CopyToClipboard, "Copy current preview"),
		)},
	}
}
