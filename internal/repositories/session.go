package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/flintapp/flint-cli/internal/session"
)

// Fixed keys of the session_store table. Each identity field is one row.
const (
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
	keyUserID       = "userId"
	keyNickname     = "nickname"
	keyTempToken    = "tempToken"
)

// SessionRepository persists the active identity in sqlite and implements
// [session.Store]. The temp token lives under its own key so an interrupted
// signup never masquerades as a logged-in session.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new [SessionRepository] with the given database connection
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

var _ session.Store = (*SessionRepository)(nil)

// Load reads the persisted identity. Returns nil without error when the
// minimum fields of a session (access token and user id) are absent.
func (r *SessionRepository) Load() (*session.Identity, error) {
	values, err := r.getValues(keyAccessToken, keyRefreshToken, keyUserID, keyNickname)
	if err != nil {
		return nil, err
	}

	identity := &session.Identity{
		UserID:       values[keyUserID],
		Nickname:     values[keyNickname],
		AccessToken:  values[keyAccessToken],
		RefreshToken: values[keyRefreshToken],
	}
	if !identity.LoggedIn() {
		return nil, nil
	}

	return identity, nil
}

// Save replaces the persisted identity.
func (r *SessionRepository) Save(identity *session.Identity) error {
	if identity == nil {
		return fmt.Errorf("cannot save nil identity")
	}

	return r.setValues(map[string]string{
		keyAccessToken:  identity.AccessToken,
		keyRefreshToken: identity.RefreshToken,
		keyUserID:       identity.UserID,
		keyNickname:     identity.Nickname,
	})
}

// Clear removes the identity and any stashed temp token.
func (r *SessionRepository) Clear() error {
	_, err := r.db.Exec("DELETE FROM session_store")
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// SaveTempToken stashes the signup temp token.
func (r *SessionRepository) SaveTempToken(token string) error {
	return r.setValues(map[string]string{keyTempToken: token})
}

// TakeTempToken returns the stashed temp token and removes it. Returns the
// empty string when none is stashed.
func (r *SessionRepository) TakeTempToken() (string, error) {
	values, err := r.getValues(keyTempToken)
	if err != nil {
		return "", err
	}

	token := values[keyTempToken]
	if token != "" {
		if _, err := r.db.Exec("DELETE FROM session_store WHERE key = ?", keyTempToken); err != nil {
			return "", fmt.Errorf("failed to consume temp token: %w", err)
		}
	}

	return token, nil
}

func (r *SessionRepository) getValues(keys ...string) (map[string]string, error) {
	query := "SELECT key, value FROM session_store WHERE key IN (?" +
		repeatPlaceholder(len(keys)-1) + ")"

	args := make([]any, len(keys))
	for i, key := range keys {
		args[i] = key
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return values, nil
}

func (r *SessionRepository) setValues(values map[string]string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO session_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	now := time.Now()
	for key, value := range values {
		if _, err := tx.Exec(query, key, value, now); err != nil {
			return fmt.Errorf("failed to write session key %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session write: %w", err)
	}

	return nil
}

func repeatPlaceholder(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += ", ?"
	}
	return out
}
