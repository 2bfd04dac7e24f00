package models

import (
	"fmt"
	"strings"
	"time"
)

// SearchRecord is a persisted catalog search, used by the local search history.
type SearchRecord struct {
	id          string
	sequence    int
	keyword     string
	resultCount int
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

// NewSearchRecord creates a SearchRecord for the given keyword and result count.
// The ID is assigned by the repository on insert.
func NewSearchRecord(sequence int, keyword string, resultCount int) *SearchRecord {
	now := time.Now()
	return &SearchRecord{
		sequence:    sequence,
		keyword:     keyword,
		resultCount: resultCount,
		createdAt:   now,
		updatedAt:   now,
	}
}

func (s *SearchRecord) ID() string           { return s.id }
func (s *SearchRecord) Sequence() int        { return s.sequence }
func (s *SearchRecord) Keyword() string      { return s.keyword }
func (s *SearchRecord) ResultCount() int     { return s.resultCount }
func (s *SearchRecord) CreatedAt() time.Time { return s.createdAt }
func (s *SearchRecord) UpdatedAt() time.Time { return s.updatedAt }
func (s *SearchRecord) DeletedAt() *time.Time {
	return s.deletedAt
}

func (s *SearchRecord) SetID(id string)           { s.id = id }
func (s *SearchRecord) SetUpdatedAt(t time.Time)  { s.updatedAt = t }
func (s *SearchRecord) SetDeletedAt(t *time.Time) { s.deletedAt = t }
func (s *SearchRecord) SetResultCount(count int)  { s.resultCount = count }

// Validate checks that the record carries a non-blank keyword and a sane count.
func (s *SearchRecord) Validate() error {
	if strings.TrimSpace(s.keyword) == "" {
		return fmt.Errorf("search record keyword cannot be empty")
	}
	if s.resultCount < 0 {
		return fmt.Errorf("search record result count cannot be negative")
	}
	return nil
}

var _ Model = (*SearchRecord)(nil)
