// Package views implements the screens of ddv and the stack they live on.
package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/ddv/internal/config"
	"github.com/willibrandon/ddv/internal/ui"
	"github.com/willibrandon/ddv/internal/ui/styles"
)

// Kind identifies the screen variant of a View.
type Kind int

const (
	KindInit Kind = iota
	KindTableList
	KindTable
	KindItem
	KindTableInsight
	KindHelp
)

// String returns the string representation of the view kind
func (k Kind) String() string {
	switch k {
	case KindInit:
		return "Init"
	case KindTableList:
		return "Table List"
	case KindTable:
		return "Table"
	case KindItem:
		return "Item"
	case KindTableInsight:
		return "Table Insight"
	case KindHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// View defines the interface that all screens implement
type View interface {
	// Kind reports the screen variant
	Kind() Kind

	// Update handles decoded key actions. msg is passed along for text input.
	Update(msg tea.KeyMsg, actions []ui.Action) tea.Cmd

	// Render draws the screen into width x height cells
	Render(width, height int) string

	// ShortHelps returns the status line hints for the current mode
	ShortHelps() []ui.ShortHelp
}

// Env carries the read-only values every screen is built with.
type Env struct {
	Theme  styles.Theme
	Keys   ui.KeyMap
	Config config.UIConfig
}

// NewEnv returns an Env with the default key map.
func NewEnv(theme styles.Theme, cfg config.UIConfig) Env {
	return Env{Theme: theme, Keys: ui.DefaultKeyMap(), Config: cfg}
}

// Stack is the navigation stack of screens. It is never empty; the top is
// the current screen and suspended screens keep their state.
type Stack struct {
	views []View
}

// NewStack returns a stack holding root.
func NewStack(root View) *Stack {
	return &Stack{views: []View{root}}
}

// Push makes v the current screen.
func (s *Stack) Push(v View) {
	s.views = append(s.views, v)
}

// Pop drops the current screen. The root is never popped.
func (s *Stack) Pop() {
	if len(s.views) > 1 {
		s.views[len(s.views)-1] = nil
		s.views = s.views[:len(s.views)-1]
	}
}

// Current returns the top of the stack.
func (s *Stack) Current() View {
	return s.views[len(s.views)-1]
}

// Len returns the number of screens on the stack.
func (s *Stack) Len() int {
	return len(s.views)
}
