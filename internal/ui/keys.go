package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a user intent decoded from a key press.
type Action int

const (
	ActionQuit Action = iota
	ActionDown
	ActionUp
	ActionGoToTop
	ActionGoToBottom
	ActionGoToLeft
	ActionGoToRight
	ActionPageDown
	ActionPageUp
	ActionRight
	ActionLeft
	ActionScrollDown
	ActionScrollUp
	ActionConfirm
	ActionClose
	ActionQuickFilter
	ActionReset
	ActionNextPane
	ActionNextPreview
	ActionPrevPreview
	ActionInsight
	ActionExpand
	ActionToggleWrap
	ActionToggleNumber
	ActionWiden
	ActionNarrow
	ActionReload
	ActionDelete
	ActionCopyToClipboard
	ActionHelp
	ActionYes
	ActionNo
)

// KeyMap defines all keyboard bindings for the application
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	// Navigation
	Down       key.Binding
	Up         key.Binding
	GoToTop    key.Binding
	GoToBottom key.Binding
	GoToLeft   key.Binding
	GoToRight  key.Binding
	PageDown   key.Binding
	PageUp     key.Binding
	Right      key.Binding
	Left       key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding

	// Screen control
	Confirm     key.Binding
	Close       key.Binding
	QuickFilter key.Binding
	Reset       key.Binding
	NextPane    key.Binding
	NextPreview key.Binding
	PrevPreview key.Binding

	// Table and item actions
	Insight         key.Binding
	Expand          key.Binding
	ToggleWrap      key.Binding
	ToggleNumber    key.Binding
	Widen           key.Binding
	Narrow          key.Binding
	Reload          key.Binding
	Delete          key.Binding
	CopyToClipboard key.Binding

	// Confirmation dialog
	Yes key.Binding
	No  key.Binding
}

// DefaultKeyMap returns the default keyboard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		GoToTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		GoToBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		GoToLeft: key.NewBinding(
			key.WithKeys("^"),
			key.WithHelp("^", "first column"),
		),
		GoToRight: key.NewBinding(
			key.WithKeys("$"),
			key.WithHelp("$", "last column"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("f", "pgdown"),
			key.WithHelp("f", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("b", "pgup"),
			key.WithHelp("b", "page up"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "scroll up"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "back"),
		),
		QuickFilter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Reset: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "reset"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		NextPreview: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "next preview"),
		),
		PrevPreview: key.NewBinding(
			key.WithKeys("V"),
			key.WithHelp("V", "prev preview"),
		),

		Insight: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insight"),
		),
		Expand: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand"),
		),
		ToggleWrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle wrap"),
		),
		ToggleNumber: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle number"),
		),
		Widen: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "widen column"),
		),
		Narrow: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "narrow column"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload"),
		),
		Delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete item"),
		),
		CopyToClipboard: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),

		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "cancel"),
		),
	}
}

func (k KeyMap) bindings() []struct {
	binding key.Binding
	action  Action
} {
	return []struct {
		binding key.Binding
		action  Action
	}{
		{k.Quit, ActionQuit},
		{k.Down, ActionDown},
		{k.Up, ActionUp},
		{k.GoToTop, ActionGoToTop},
		{k.GoToBottom, ActionGoToBottom},
		{k.GoToLeft, ActionGoToLeft},
		{k.GoToRight, ActionGoToRight},
		{k.PageDown, ActionPageDown},
		{k.PageUp, ActionPageUp},
		{k.Right, ActionRight},
		{k.Left, ActionLeft},
		{k.ScrollDown, ActionScrollDown},
		{k.ScrollUp, ActionScrollUp},
		{k.Confirm, ActionConfirm},
		{k.Close, ActionClose},
		{k.QuickFilter, ActionQuickFilter},
		{k.Reset, ActionReset},
		{k.NextPane, ActionNextPane},
		{k.NextPreview, ActionNextPreview},
		{k.PrevPreview, ActionPrevPreview},
		{k.Insight, ActionInsight},
		{k.Expand, ActionExpand},
		{k.ToggleWrap, ActionToggleWrap},
		{k.ToggleNumber, ActionToggleNumber},
		{k.Widen, ActionWiden},
		{k.Narrow, ActionNarrow},
		{k.Reload, ActionReload},
		{k.Delete, ActionDelete},
		{k.CopyToClipboard, ActionCopyToClipboard},
		{k.Help, ActionHelp},
		{k.Yes, ActionYes},
		{k.No, ActionNo},
	}
}

// Actions decodes a key press into every action bound to it.
func (k KeyMap) Actions(msg tea.KeyMsg) []Action {
	var actions []Action
	for _, b := range k.bindings() {
		if key.Matches(msg, b.binding) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

// Has reports whether action is among actions.
func Has(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// ShortHelp is a status line hint. Hints with a higher priority survive
// when the status line is too narrow to show all of them.
type ShortHelp struct {
	Text     string
	Priority int
}

// Hint builds a ShortHelp from a binding, with desc overriding its help text.
func Hint(b key.Binding, desc string, priority int) ShortHelp {
	h := b.Help()
	if desc == "" {
		desc = h.Desc
	}
	return ShortHelp{Text: h.Key + ": " + desc, Priority: priority}
}

// HelpGroup is a titled group of bindings shown by the help screen.
type HelpGroup struct {
	Title    string
	Bindings []key.Binding
}

// HintGroup joins the first key of each binding, as in "j/k: Select".
func HintGroup(desc string, priority int, bindings ...key.Binding) ShortHelp {
	keys := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if ks := b.Keys(); len(ks) > 0 {
			keys = append(keys, ks[0])
		}
	}
	return ShortHelp{Text: strings.Join(keys, "/") + ": " + desc, Priority: priority}
}

// Describe returns a copy of b with its help description replaced.
func Describe(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
