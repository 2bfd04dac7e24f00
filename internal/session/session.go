// package session defines the authenticated identity and its durable store.
//
// The client keeps exactly one identity, persisted outside process memory so
// a login survives restarts. All identity reads and writes go through the
// [Store] interface so the all-or-nothing presence of auth fields is enforced
// in one place rather than scattered field-by-field access.
package session

// Identity is the authenticated user: set on successful login, cleared on logout.
type Identity struct {
	UserID       string
	Nickname     string
	AccessToken  string
	RefreshToken string
}

// LoggedIn reports whether the identity carries the minimum required fields.
// A missing access token or user id means the client is logged out, even if
// other fields survived in storage.
func (i *Identity) LoggedIn() bool {
	return i != nil && i.AccessToken != "" && i.UserID != ""
}

// Store is the durable home for the identity and the ephemeral signup token.
//
// The temp token is persisted under its own key, separate from the identity,
// so an incomplete signup never looks like a logged-in state.
type Store interface {
	// Load reads the persisted identity. Returns nil (not an error) when the
	// minimum required fields are absent.
	Load() (*Identity, error)

	// Save persists all identity fields. Partial identities are allowed;
	// a missing nickname is stored as the empty string.
	Save(identity *Identity) error

	// Clear removes all persisted identity fields.
	Clear() error

	// SaveTempToken persists the temporary signup token.
	SaveTempToken(token string) error

	// TakeTempToken returns the stored signup token and removes it.
	// Returns the empty string when none is stored.
	TakeTempToken() (string, error)
}
