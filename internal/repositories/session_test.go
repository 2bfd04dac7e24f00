package repositories

import (
	"testing"

	"github.com/flintapp/flint-cli/internal/session"
)

func TestSessionRepository(t *testing.T) {
	identity := &session.Identity{
		UserID:       "7",
		Nickname:     "mina",
		AccessToken:  "acc",
		RefreshToken: "ref",
	}

	t.Run("Load returns nil on a fresh database", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSessionRepository(db)
		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded != nil {
			t.Errorf("expected nil identity, got %+v", loaded)
		}
	})

	t.Run("Save then Load round-trips", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSessionRepository(db)
		if err := repo.Save(identity); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded == nil || *loaded != *identity {
			t.Errorf("loaded = %+v, want %+v", loaded, identity)
		}
	})

	t.Run("Save overwrites the previous session", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSessionRepository(db)
		repo.Save(identity)
		repo.Save(&session.Identity{UserID: "8", AccessToken: "acc2"})

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded.UserID != "8" || loaded.Nickname != "" {
			t.Errorf("loaded = %+v", loaded)
		}
	})

	t.Run("Save rejects nil", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		if err := NewSessionRepository(db).Save(nil); err == nil {
			t.Error("expected an error for nil identity")
		}
	})

	t.Run("Clear removes everything", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSessionRepository(db)
		repo.Save(identity)
		repo.SaveTempToken("temp-1")

		if err := repo.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}

		loaded, _ := repo.Load()
		if loaded != nil {
			t.Errorf("session should be gone, got %+v", loaded)
		}
		token, _ := repo.TakeTempToken()
		if token != "" {
			t.Errorf("temp token should be gone, got %q", token)
		}
	})

	t.Run("temp token alone is not a session", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSessionRepository(db)
		if err := repo.SaveTempToken("temp-1"); err != nil {
			t.Fatalf("SaveTempToken failed: %v", err)
		}

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded != nil {
			t.Errorf("temp token should not produce a session, got %+v", loaded)
		}
	})

	t.Run("TakeTempToken consumes the token", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSessionRepository(db)
		repo.SaveTempToken("temp-1")

		token, err := repo.TakeTempToken()
		if err != nil {
			t.Fatalf("TakeTempToken failed: %v", err)
		}
		if token != "temp-1" {
			t.Errorf("token = %q", token)
		}

		token, err = repo.TakeTempToken()
		if err != nil {
			t.Fatalf("second TakeTempToken failed: %v", err)
		}
		if token != "" {
			t.Errorf("token should be consumed, got %q", token)
		}
	})
}
