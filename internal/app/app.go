// Package app wires the screens of ddv to the DynamoDB client.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/ddv/internal/config"
	"github.com/willibrandon/ddv/internal/dynamo"
	"github.com/willibrandon/ddv/internal/logger"
	"github.com/willibrandon/ddv/internal/models"
	"github.com/willibrandon/ddv/internal/ui"
	"github.com/willibrandon/ddv/internal/ui/styles"
	"github.com/willibrandon/ddv/internal/ui/views"
	"github.com/willibrandon/ddv/internal/ui/widget"
)

// Model represents the main Bubbletea application model
type Model struct {
	// Collaborators
	client    dynamo.Client
	clipboard ui.Clipboard
	timeout   time.Duration

	// Screens
	env   views.Env
	keys  ui.KeyMap
	stack *views.Stack

	// Status line and loading dialog
	status  status
	loading bool
	spinner spinner.Model

	// UI state
	width  int
	height int

	// lastErr is the most recent client failure; err is the failure that
	// ended the program
	lastErr error
	err     error
}

// New creates a new application model. The model starts loading the table
// list as soon as the program runs.
func New(cfg *config.Config, client dynamo.Client, clipboard ui.Clipboard) Model {
	env := views.NewEnv(styles.ThemeByName(cfg.UI.Theme), cfg.UI)
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.Fg(env.Theme.Fg)),
	)

	return Model{
		client:    client,
		clipboard: clipboard,
		timeout:   cfg.AWS.RequestTimeout,
		env:       env,
		keys:      env.Keys,
		stack:     views.NewStack(views.NewInitView(env)),
		loading:   true,
		spinner:   sp,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		listTables(m.client, m.timeout),
		m.spinner.Tick,
	)
}

// Err returns the error that ended the program, if any
func (m Model) Err() error {
	return m.err
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Completions

	case TablesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			return m, m.notifyError(msg.Err)
		}
		if len(msg.Tables) == 0 {
			return m, ui.Warning("No tables found.")
		}
		view, cmd := views.NewTableListView(msg.Tables, m.env)
		m.stack.Push(view)
		return m, cmd

	case TableDescriptionLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			return m, m.notifyError(msg.Err)
		}
		if tl, ok := m.stack.Current().(*views.TableListView); ok {
			tl.SetTableDescription(msg.Description)
		}
		return m, nil

	case TableItemsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			return m, m.notifyError(msg.Err)
		}
		// a reload replaces the table screen it was started from
		if m.stack.Current().Kind() == views.KindTable {
			m.stack.Pop()
		}
		if len(msg.Items) == 0 {
			return m, ui.Warning(fmt.Sprintf("Table %s has no items", msg.Description.TableName))
		}
		m.stack.Push(views.NewTableView(msg.Description, msg.Items, m.env))
		return m, nil

	case ItemDeletedMsg:
		if msg.Err != nil {
			m.loading = false
			return m, m.notifyError(msg.Err)
		}
		return m, tea.Batch(
			scanTable(m.client, m.timeout, msg.Description),
			ui.Success("Item deleted"),
		)

	case ClipboardWrittenMsg:
		if msg.Err != nil {
			logger.Warn("Clipboard write failed", "name", msg.Name, "error", msg.Err)
			return m, ui.Error(fmt.Sprintf("Failed to copy %s to clipboard: %v", msg.Name, msg.Err))
		}
		return m, ui.Success(fmt.Sprintf("Copied %s to clipboard successfully", msg.Name))

	// Requests from screens

	case ui.LoadTableDescriptionMsg:
		return m, m.startLoading(describeTable(m.client, m.timeout, msg.TableName))

	case ui.LoadTableItemsMsg:
		return m, m.startLoading(scanTable(m.client, m.timeout, msg.Description))

	case ui.ReloadTableItemsMsg:
		return m, m.startLoading(scanTable(m.client, m.timeout, msg.Description))

	case ui.DeleteItemMsg:
		logger.Info("Deleting item",
			"table", msg.Description.TableName,
			"key", models.KeyString(msg.Item, msg.Description.KeySchemaType),
		)
		return m, m.startLoading(deleteItem(m.client, m.timeout, msg.Description, msg.Item))

	case ui.OpenItemMsg:
		m.stack.Push(views.NewItemView(msg.Description, msg.Item, m.env))
		return m, nil

	case ui.OpenTableInsightMsg:
		insight := models.NewTableInsight(msg.Description, msg.Items)
		m.stack.Push(views.NewTableInsightView(insight, m.env))
		return m, nil

	case ui.OpenHelpMsg:
		m.stack.Push(views.NewHelpView(msg.Groups, m.env))
		return m, nil

	case ui.BackMsg:
		m.stack.Pop()
		return m, nil

	case ui.CopyToClipboardMsg:
		return m, copyToClipboard(m.clipboard, msg.Name, msg.Content)

	// Status line

	case ui.NotifyMsg:
		switch msg.Kind {
		case ui.NotifyWarning:
			logger.Warn(msg.Text)
		case ui.NotifyError:
			logger.Error(msg.Text)
		}
		m.status = status{kind: statusNotification, notify: msg}
		return m, nil

	case ui.UpdateStatusInputMsg:
		m.status = status{kind: statusInput, input: msg}
		return m, nil

	case ui.ClearStatusMsg:
		m.status = status{}
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions := m.keys.Actions(msg)
	if ui.Has(actions, ui.ActionQuit) {
		return m, tea.Quit
	}

	// Keys are dropped, not queued, while a request is in flight
	if m.loading {
		return m, nil
	}

	if m.status.kind == statusNotification {
		if m.status.notify.Kind == ui.NotifyError {
			// nothing to fall back to before the table list is shown
			if m.stack.Current().Kind() == views.KindInit {
				m.err = m.lastErr
				if m.err == nil {
					m.err = errors.New(m.status.notify.Text)
				}
				return m, tea.Quit
			}
			m.status = status{}
			return m, nil
		}
		m.status = status{}
	}

	return m, m.stack.Current().Update(msg, actions)
}

func (m *Model) startLoading(cmd tea.Cmd) tea.Cmd {
	if m.loading {
		return cmd
	}
	m.loading = true
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m *Model) notifyError(err error) tea.Cmd {
	m.lastErr = err
	return ui.Error(NotificationText(err))
}

// View renders the application UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	out := m.stack.Current().Render(m.width, max(m.height-1, 0)) + "\n" + m.renderStatusLine()
	if m.loading {
		out = m.overlayLoading(out)
	}
	return out
}

func (m Model) overlayLoading(out string) string {
	dialog := m.env.Theme.Dialog().Render(m.spinner.View() + " Loading...")
	x := max((m.width-lipgloss.Width(dialog))/2, 0)
	y := max((m.height-lipgloss.Height(dialog))/2, 0)
	return widget.Overlay(out, dialog, x, y)
}
