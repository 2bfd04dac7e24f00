package shared

import (
	"testing"
)

func TestRunMigrations(t *testing.T) {
	t.Run("creates the expected tables", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("RunMigrations failed: %v", err)
		}

		for _, table := range []string{"session_store", "search_history", "search_history_sequence", "schema_migrations"} {
			var name string
			err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
			if err != nil {
				t.Errorf("table %s missing: %v", table, err)
			}
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		if err := RunMigrations(db); err != nil {
			t.Fatalf("second run failed: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM search_history_sequence").Scan(&count); err != nil {
			t.Fatalf("failed to count sequence rows: %v", err)
		}
		if count != 1 {
			t.Errorf("sequence seed duplicated, %d rows", count)
		}
	})
}

func TestRollbackMigration(t *testing.T) {
	t.Run("drops the created tables", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("RunMigrations failed: %v", err)
		}
		if err := RollbackMigration(db); err != nil {
			t.Fatalf("RollbackMigration failed: %v", err)
		}

		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='search_history'").Scan(&name)
		if err == nil {
			t.Error("search_history should be dropped after rollback")
		}
	})

	t.Run("fails with nothing applied", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := createMigrationsTable(db); err != nil {
			t.Fatalf("failed to create migrations table: %v", err)
		}

		if err := RollbackMigration(db); err == nil {
			t.Error("expected an error with no applied migrations")
		}
	})
}

func TestRemoveComments(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips full-line comments",
			input: "-- a comment\nSELECT 1",
			want:  "SELECT 1",
		},
		{
			name:  "strips trailing comments",
			input: "SELECT 1 -- trailing",
			want:  "SELECT 1",
		},
		{
			name:  "keeps plain statements",
			input: "SELECT 1",
			want:  "SELECT 1",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := removeComments(tt.input); got != tt.want {
				t.Errorf("removeComments() = %q, want %q", got, tt.want)
			}
		})
	}
}
