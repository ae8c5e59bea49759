package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/ddv/internal/ui"
	"github.com/willibrandon/ddv/internal/ui/widget"
)

// InitView is the empty root screen shown while tables are listed.
type InitView struct {
	env Env
}

// NewInitView returns the root screen.
func NewInitView(env Env) *InitView {
	return &InitView{env: env}
}

// Kind implements View.
func (v *InitView) Kind() Kind { return KindInit }

// Update implements View.
func (v *InitView) Update(tea.KeyMsg, []ui.Action) tea.Cmd { return nil }

// Render implements View.
func (v *InitView) Render(width, height int) string {
	return widget.Block(v.env.Theme.Pane(true), v.env.Theme.PaneTitle(true), ui.AppName, "", width, height)
}

// ShortHelps implements View.
func (v *InitView) ShortHelps() []ui.ShortHelp { return nil }
