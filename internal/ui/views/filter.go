package views

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/ddv/internal/ui"
)

// filterState is the quick filter mode shared by the table list and the
// table browser.
type filterState int

const (
	filterIdle filterState = iota
	filterEditing
	filterApplied
)

// filterEvent tells the owning screen what a key did to the filter.
type filterEvent int

const (
	filterUnchanged filterEvent = iota
	filterQueryChanged
	filterConfirmed
	filterCancelled
)

type quickFilter struct {
	state filterState
	input textinput.Model
}

func newQuickFilter() quickFilter {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()
	return quickFilter{input: ti}
}

// active reports whether a query narrows the rows.
func (f *quickFilter) active() bool {
	return f.state != filterIdle
}

func (f *quickFilter) editing() bool {
	return f.state == filterEditing
}

func (f *quickFilter) query() string {
	if f.state == filterIdle {
		return ""
	}
	return f.input.Value()
}

// start enters editing with an empty buffer. It does nothing while editing.
func (f *quickFilter) start() tea.Cmd {
	if f.state == filterEditing {
		return nil
	}
	f.input.Reset()
	f.state = filterEditing
	return f.statusInput()
}

// handle processes a key while editing.
func (f *quickFilter) handle(msg tea.KeyMsg, actions []ui.Action) filterEvent {
	switch {
	case ui.Has(actions, ui.ActionConfirm):
		if f.input.Value() == "" {
			f.state = filterIdle
		} else {
			f.state = filterApplied
		}
		return filterConfirmed
	case ui.Has(actions, ui.ActionReset):
		f.cancel()
		return filterCancelled
	}
	before := f.input.Value()
	f.input, _ = f.input.Update(msg)
	if f.input.Value() == before {
		return filterUnchanged
	}
	return filterQueryChanged
}

// cancel discards the query.
func (f *quickFilter) cancel() {
	f.input.Reset()
	f.state = filterIdle
}

// statusInput publishes the live query with its cursor to the status line.
func (f *quickFilter) statusInput() tea.Cmd {
	return ui.Send(ui.UpdateStatusInputMsg{
		Text:   "/" + f.input.Value(),
		Cursor: f.input.Position() + 1,
	})
}

// restoreSelection maps the selected position in a filtered index back to
// the absolute row, or -1 when nothing is selected.
func restoreSelection(indices []int, selected int) int {
	if selected < 0 || selected >= len(indices) {
		return -1
	}
	return indices[selected]
}
