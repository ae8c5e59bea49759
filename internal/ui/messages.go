// Package ui provides Bubbletea TUI components for ddv.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/ddv/internal/models"
)

// Request messages (views to app)

// LoadTableDescriptionMsg requests the description of a table.
type LoadTableDescriptionMsg struct {
	TableName string
}

// LoadTableItemsMsg requests a full scan of a table.
type LoadTableItemsMsg struct {
	Description models.TableDescription
}

// ReloadTableItemsMsg requests a new scan of the table currently shown.
type ReloadTableItemsMsg struct {
	Description models.TableDescription
}

// DeleteItemMsg requests deletion of an item, followed by a reload.
type DeleteItemMsg struct {
	Description models.TableDescription
	Item        models.Item
}

// Navigation messages

// OpenItemMsg pushes the item screen.
type OpenItemMsg struct {
	Description models.TableDescription
	Item        models.Item
}

// OpenTableInsightMsg pushes the insight screen.
type OpenTableInsightMsg struct {
	Description models.TableDescription
	Items       []models.Item
}

// OpenHelpMsg pushes the help screen for the current screen.
type OpenHelpMsg struct {
	Groups []HelpGroup
}

// BackMsg pops the current screen.
type BackMsg struct{}

// Status messages

// CopyToClipboardMsg copies Content; Name describes it in the notification.
type CopyToClipboardMsg struct {
	Name    string
	Content string
}

// NotifyKind is the severity of a status line notification.
type NotifyKind int

const (
	NotifySuccess NotifyKind = iota
	NotifyWarning
	NotifyError
)

// NotifyMsg shows a notification in the status line.
type NotifyMsg struct {
	Kind NotifyKind
	Text string
}

// UpdateStatusInputMsg shows a text input in the status line. Cursor is
// the column of the cursor within Text.
type UpdateStatusInputMsg struct {
	Text   string
	Cursor int
}

// ClearStatusMsg clears the status line.
type ClearStatusMsg struct{}

// Send wraps a message into a command.
func Send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Success returns a command emitting a success notification.
func Success(text string) tea.Cmd { return Send(NotifyMsg{Kind: NotifySuccess, Text: text}) }

// Warning returns a command emitting a warning notification.
func Warning(text string) tea.Cmd { return Send(NotifyMsg{Kind: NotifyWarning, Text: text}) }

// Error returns a command emitting an error notification.
func Error(text string) tea.Cmd { return Send(NotifyMsg{Kind: NotifyError, Text: text}) }
