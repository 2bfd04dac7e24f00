package repositories

import (
	"database/sql"
	"testing"

	"github.com/flintapp/flint-cli/internal/models"
	"github.com/flintapp/flint-cli/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestNextSequence(t *testing.T) {
	t.Run("increments monotonically", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		first, err := NextSequence(db, "search_history")
		if err != nil {
			t.Fatalf("NextSequence failed: %v", err)
		}

		second, err := NextSequence(db, "search_history")
		if err != nil {
			t.Fatalf("NextSequence failed: %v", err)
		}

		if second != first+1 {
			t.Errorf("expected %d, got %d", first+1, second)
		}
	})

	t.Run("fails for unknown table", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		if _, err := NextSequence(db, "no_such_table"); err == nil {
			t.Error("expected an error for a missing sequence table")
		}
	})
}

func TestHistoryRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewHistoryRepository(db)
		record := models.NewSearchRecord(0, "dune", 12)

		if err := repo.Create(record); err != nil {
			t.Fatalf("failed to create search record: %v", err)
		}

		if record.ID() == "" {
			t.Error("record ID should be set after creation")
		}
	})

	t.Run("Create rejects blank keywords", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewHistoryRepository(db)
		if err := repo.Create(models.NewSearchRecord(0, "   ", 0)); err == nil {
			t.Error("expected validation error for blank keyword")
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewHistoryRepository(db)
		record := models.NewSearchRecord(0, "dune", 12)
		if err := repo.Create(record); err != nil {
			t.Fatalf("failed to create search record: %v", err)
		}

		retrieved, err := repo.Get(record.ID())
		if err != nil {
			t.Fatalf("failed to get search record: %v", err)
		}

		if retrieved.Keyword() != "dune" || retrieved.ResultCount() != 12 {
			t.Errorf("retrieved = keyword %q count %d", retrieved.Keyword(), retrieved.ResultCount())
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewHistoryRepository(db)
		record := models.NewSearchRecord(0, "dune", 12)
		if err := repo.Create(record); err != nil {
			t.Fatalf("failed to create search record: %v", err)
		}

		record.SetResultCount(20)
		if err := repo.Update(record); err != nil {
			t.Fatalf("failed to update search record: %v", err)
		}

		retrieved, err := repo.Get(record.ID())
		if err != nil {
			t.Fatalf("failed to get search record: %v", err)
		}
		if retrieved.ResultCount() != 20 {
			t.Errorf("result count = %d, want 20", retrieved.ResultCount())
		}
	})

	t.Run("Delete soft-deletes", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewHistoryRepository(db)
		record := models.NewSearchRecord(0, "dune", 12)
		if err := repo.Create(record); err != nil {
			t.Fatalf("failed to create search record: %v", err)
		}

		if err := repo.Delete(record.ID()); err != nil {
			t.Fatalf("failed to delete search record: %v", err)
		}

		if _, err := repo.Get(record.ID()); err == nil {
			t.Error("deleted record should not be retrievable")
		}

		if err := repo.Delete(record.ID()); err == nil {
			t.Error("double delete should fail")
		}
	})

	t.Run("List newest first with limit", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewHistoryRepository(db)
		for _, keyword := range []string{"first", "second", "third"} {
			if err := repo.Create(models.NewSearchRecord(0, keyword, 1)); err != nil {
				t.Fatalf("failed to create search record: %v", err)
			}
		}

		records, err := repo.List(map[string]any{"limit": 2})
		if err != nil {
			t.Fatalf("failed to list search records: %v", err)
		}

		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].Keyword() != "third" || records[1].Keyword() != "second" {
			t.Errorf("unexpected order: %s, %s", records[0].Keyword(), records[1].Keyword())
		}
	})

	t.Run("List filters by keyword", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewHistoryRepository(db)
		repo.Create(models.NewSearchRecord(0, "dune", 1))
		repo.Create(models.NewSearchRecord(0, "alien", 1))

		records, err := repo.List(map[string]any{"keyword": "dune"})
		if err != nil {
			t.Fatalf("failed to list search records: %v", err)
		}
		if len(records) != 1 || records[0].Keyword() != "dune" {
			t.Errorf("unexpected records: %v", records)
		}
	})
}
