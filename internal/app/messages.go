package app

import (
	"github.com/willibrandon/ddv/internal/models"
)

// TablesLoadedMsg is sent when the table list has been fetched
type TablesLoadedMsg struct {
	Tables []models.Table
	Err    error
}

// TableDescriptionLoadedMsg is sent when a table description has been fetched
type TableDescriptionLoadedMsg struct {
	Description models.TableDescription
	Err         error
}

// TableItemsLoadedMsg is sent when a full scan completes
type TableItemsLoadedMsg struct {
	Description models.TableDescription
	Items       []models.Item
	Err         error
}

// ItemDeletedMsg is sent when a delete request completes
type ItemDeletedMsg struct {
	Description models.TableDescription
	Err         error
}

// ClipboardWrittenMsg is sent when a clipboard write completes
type ClipboardWrittenMsg struct {
	Name string
	Err  error
}
