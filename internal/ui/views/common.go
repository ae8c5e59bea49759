package views

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/willibrandon/ddv/internal/ui"
	"github.com/willibrandon/ddv/internal/ui/widget"
)

// scrollEvent maps navigation actions onto a text viewport.
func scrollEvent(actions []ui.Action) (widget.ScrollEvent, bool) {
	switch {
	case ui.Has(actions, ui.ActionDown):
		return widget.ScrollForward, true
	case ui.Has(actions, ui.ActionUp):
		return widget.ScrollBackward, true
	case ui.Has(actions, ui.ActionPageDown):
		return widget.ScrollPageForward, true
	case ui.Has(actions, ui.ActionPageUp):
		return widget.ScrollPageBackward, true
	case ui.Has(actions, ui.ActionGoToTop):
		return widget.ScrollToTop, true
	case ui.Has(actions, ui.ActionGoToBottom):
		return widget.ScrollToEnd, true
	case ui.Has(actions, ui.ActionRight):
		return widget.ScrollRight, true
	case ui.Has(actions, ui.ActionLeft):
		return widget.ScrollLeft, true
	}
	return 0, false
}

// scrollHelps describes the keys handled by scrollEvent and the viewport toggles.
func scrollHelps(k ui.KeyMap) []key.Binding {
	return []key.Binding{
		ui.Describe(k.Quit, "Quit app"),
		ui.Describe(k.Down, "Scroll down"),
		ui.Describe(k.Up, "Scroll up"),
		ui.Describe(k.Right, "Scroll right"),
		ui.Describe(k.Left, "Scroll left"),
		ui.Describe(k.PageDown, "Scroll page down"),
		ui.Describe(k.PageUp, "Scroll page up"),
		ui.Describe(k.GoToTop, "Scroll to top"),
		ui.Describe(k.GoToBottom, "Scroll to bottom"),
		ui.Describe(k.ToggleWrap, "Toggle wrap"),
		ui.Describe(k.ToggleNumber, "Toggle number"),
	}
}
