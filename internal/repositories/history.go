package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/flintapp/flint-cli/internal/models"
	"github.com/flintapp/flint-cli/internal/shared"
)

// HistoryRepository implements [models.Repository] for [models.SearchRecord] persistence.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new [HistoryRepository] with the given database connection
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create inserts a new search record into the database with generated ID and sequence
func (r *HistoryRepository) Create(record *models.SearchRecord) error {
	sequence, err := NextSequence(r.db, "search_history")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	record.SetID(id)

	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO search_history (id, sequence, keyword, result_count, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, record.Keyword(), record.ResultCount(), record.CreatedAt(), record.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert search record: %w", err)
	}

	return nil
}

// Get retrieves a search record by ID, excluding soft-deleted records
func (r *HistoryRepository) Get(id string) (*models.SearchRecord, error) {
	query := `
		SELECT id, sequence, keyword, result_count, created_at, updated_at, deleted_at
		FROM search_history
		WHERE id = ? AND deleted_at IS NULL
	`

	record, err := scanSearchRecord(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("search record not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query search record: %w", err)
	}

	return record, nil
}

// Update modifies an existing search record in the database
func (r *HistoryRepository) Update(record *models.SearchRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	record.SetUpdatedAt(now)

	query := `
		UPDATE search_history
		SET keyword = ?, result_count = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, record.Keyword(), record.ResultCount(), now, record.ID())
	if err != nil {
		return fmt.Errorf("failed to update search record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("search record not found or already deleted: %s", record.ID())
	}

	return nil
}

// Delete soft-deletes a search record by ID
func (r *HistoryRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE search_history
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete search record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("search record not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves search records matching the given criteria, excluding soft-deleted
// records. Newest searches come first. Supported criteria: "keyword" (exact match)
// and "limit".
func (r *HistoryRepository) List(criteria map[string]any) ([]*models.SearchRecord, error) {
	query := `
		SELECT id, sequence, keyword, result_count, created_at, updated_at, deleted_at
		FROM search_history
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if keyword, ok := criteria["keyword"].(string); ok && keyword != "" {
		query += " AND keyword = ?"
		args = append(args, keyword)
	}

	query += " ORDER BY sequence DESC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query search records: %w", err)
	}
	defer rows.Close()

	var records []*models.SearchRecord
	for rows.Next() {
		record, err := scanSearchRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSearchRecord(row rowScanner) (*models.SearchRecord, error) {
	var (
		recordID    string
		sequence    int
		keyword     string
		resultCount int
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	if err := row.Scan(&recordID, &sequence, &keyword, &resultCount, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	record := models.NewSearchRecord(sequence, keyword, resultCount)
	record.SetID(recordID)
	record.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		record.SetDeletedAt(&deletedAt.Time)
	}

	return record, nil
}
