package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/flintapp/flint-cli/internal/draft"
	"github.com/flintapp/flint-cli/internal/models"
)

var (
	_ list.Item = resultItem{}
	_ list.Item = entryItem{}
)

// resultItem wraps [models.ContentRef] to implement [list.Item].
// selected marks results already in the draft; the list is rebuilt whenever
// the draft changes so the marker stays live.
type resultItem struct {
	content  models.ContentRef
	selected bool
}

func (i resultItem) FilterValue() string { return i.content.Title }
func (i resultItem) Title() string {
	if i.selected {
		return "✓ " + i.content.Title
	}
	return i.content.Title
}
func (i resultItem) Description() string {
	desc := i.content.Author
	if i.content.Year > 0 {
		desc = fmt.Sprintf("%s (%d)", desc, i.content.Year)
	}
	return desc
}

// entryItem wraps [draft.Entry] to implement [list.Item].
type entryItem struct {
	rank  int
	entry draft.Entry
}

func (i entryItem) FilterValue() string { return i.entry.Content.Title }
func (i entryItem) Title() string {
	title := fmt.Sprintf("%d. %s", i.rank, i.entry.Content.Title)
	if i.entry.IsSpoiler {
		title += " [spoiler]"
	}
	return title
}
func (i entryItem) Description() string {
	if i.entry.Reason == "" {
		return "no reason yet"
	}
	return i.entry.Reason
}
