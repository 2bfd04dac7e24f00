// package draft implements the in-memory collection authoring workflow.
//
// A [Draft] is the mutable collection under construction: title, description,
// visibility, and an ordered list of selected catalog entries with per-entry
// annotations. The draft enforces de-duplication and capacity on every add;
// field-length rules are deliberately deferred to [Draft.ValidateForSubmit]
// so editing stays permissive until the user submits.
package draft

import (
	"fmt"

	"github.com/flintapp/flint-cli/internal/models"
)

// Limits enforced by the draft engine.
const (
	MaxEntries        = 10
	MaxTitleLen       = 20
	MaxDescriptionLen = 200
)

var (
	// ErrDuplicateEntry is returned when the content is already in the draft.
	ErrDuplicateEntry = fmt.Errorf("content is already in the draft")
	// ErrCapacityExceeded is returned when the draft already holds MaxEntries.
	ErrCapacityExceeded = fmt.Errorf("draft cannot hold more than %d entries", MaxEntries)
)

// Entry is one selected catalog item plus its user-supplied annotation.
// Identity is the underlying ContentID; a draft holds at most one entry per id.
type Entry struct {
	Content   models.ContentRef
	Reason    string
	IsSpoiler bool
}

// Draft is a collection under construction. Created empty when the authoring
// workflow starts and consumed exactly once by a successful submit.
//
// Entry order is insertion order and is caller-visible as the display rank;
// no sort is ever applied, and removal does not renumber anything.
type Draft struct {
	Title       string
	Description string
	IsPublic    bool
	entries     []Entry
}

// New returns an empty draft. Collections are public by default.
func New() *Draft {
	return &Draft{IsPublic: true}
}

// AddEntry appends the content as a new entry with an empty reason and the
// spoiler flag off. Fails with ErrDuplicateEntry or ErrCapacityExceeded and
// leaves the draft unchanged.
func (d *Draft) AddEntry(content models.ContentRef) error {
	if d.Contains(content.ContentID) {
		return ErrDuplicateEntry
	}
	if len(d.entries) >= MaxEntries {
		return ErrCapacityExceeded
	}

	d.entries = append(d.entries, Entry{Content: content})
	return nil
}

// RemoveEntry removes the entry with the matching id. No-op when absent.
func (d *Draft) RemoveEntry(contentID string) {
	for i, entry := range d.entries {
		if entry.Content.ContentID == contentID {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return
		}
	}
}

// UpdateReason replaces the reason text of the matching entry. No-op when
// absent. Length is not enforced here; see ValidateForSubmit.
func (d *Draft) UpdateReason(contentID, reason string) {
	if i := d.index(contentID); i >= 0 {
		d.entries[i].Reason = reason
	}
}

// ToggleSpoiler sets the spoiler flag of the matching entry. No-op when absent.
func (d *Draft) ToggleSpoiler(contentID string, flag bool) {
	if i := d.index(contentID); i >= 0 {
		d.entries[i].IsSpoiler = flag
	}
}

// Contains reports whether the draft holds an entry for the given id.
func (d *Draft) Contains(contentID string) bool {
	return d.index(contentID) >= 0
}

// Entries returns the entries in rank order. The returned slice is a copy;
// mutating it does not affect the draft.
func (d *Draft) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len returns the number of entries.
func (d *Draft) Len() int {
	return len(d.entries)
}

func (d *Draft) index(contentID string) int {
	for i, entry := range d.entries {
		if entry.Content.ContentID == contentID {
			return i
		}
	}
	return -1
}

// Payload maps the draft to the collection create wire shape, preserving
// entry order.
func (d *Draft) Payload() models.CreateCollectionRequest {
	contentList := make([]models.ContentItem, len(d.entries))
	for i, entry := range d.entries {
		contentList[i] = models.ContentItem{
			ContentID: entry.Content.ContentID,
			IsSpoiler: entry.IsSpoiler,
			Reason:    entry.Reason,
		}
	}

	return models.CreateCollectionRequest{
		Title:       d.Title,
		Description: d.Description,
		IsPublic:    d.IsPublic,
		ContentList: contentList,
	}
}
