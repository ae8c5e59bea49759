package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/ddv/internal/dynamo"
	"github.com/willibrandon/ddv/internal/logger"
	"github.com/willibrandon/ddv/internal/models"
	"github.com/willibrandon/ddv/internal/ui"
)

// listTables creates a command fetching every table name
func listTables(client dynamo.Client, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		tables, err := client.ListTables(ctx)
		return TablesLoadedMsg{Tables: tables, Err: err}
	}
}

// describeTable creates a command fetching the description of a table
func describeTable(client dynamo.Client, timeout time.Duration, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		desc, err := client.DescribeTable(ctx, name)
		return TableDescriptionLoadedMsg{Description: desc, Err: err}
	}
}

// scanTable creates a command reading every item of a table
func scanTable(client dynamo.Client, timeout time.Duration, desc models.TableDescription) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		items, err := client.ScanAllItems(ctx, desc.TableName, desc.KeySchemaType)
		logger.Debug("Scan finished",
			"table", desc.TableName,
			"items", len(items),
			"duration", time.Since(start),
		)
		return TableItemsLoadedMsg{Description: desc, Items: items, Err: err}
	}
}

// deleteItem creates a command deleting one item by key
func deleteItem(client dynamo.Client, timeout time.Duration, desc models.TableDescription, item models.Item) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := client.DeleteItem(ctx, desc.TableName, desc.KeySchemaType, item)
		return ItemDeletedMsg{Description: desc, Err: err}
	}
}

// copyToClipboard creates a command writing content to the clipboard
func copyToClipboard(cb ui.Clipboard, name, content string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardWrittenMsg{Name: name, Err: cb.Write(content)}
	}
}
