// package auth orchestrates the authentication workflows: exchanging a social
// authorization code, completing signup for first-time users, the dev login
// shortcut, and logout. It owns the rule for what each backend outcome does
// to the locally persisted session.
package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/flintapp/flint-cli/internal/api"
	"github.com/flintapp/flint-cli/internal/session"
	"github.com/flintapp/flint-cli/internal/shared"
)

// Backend is the slice of the API client the flows need.
type Backend interface {
	SocialVerify(ctx context.Context, req api.SocialVerifyRequest) (*api.AuthResponse, error)
	Signup(ctx context.Context, req api.SignupRequest) (*api.AuthResponse, error)
	DevLogin(ctx context.Context, req api.DevLoginRequest) (*api.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// Flow drives the authentication state transitions against the backend and
// the local session store.
type Flow struct {
	backend Backend
	store   session.Store
	logger  *log.Logger
}

// NewFlow wires a flow. A nil logger falls back to the package default.
func NewFlow(backend Backend, store session.Store, logger *log.Logger) *Flow {
	if logger == nil {
		logger = log.Default()
	}
	return &Flow{backend: backend, store: store, logger: logger}
}

// Outcome is the result of a verification attempt. Registered reports whether
// the identity is fully logged in; when false the caller must complete signup
// before any authenticated call will succeed.
type Outcome struct {
	Registered bool
	Identity   *session.Identity
}

// VerifyCode exchanges a social authorization code. A registered identity is
// persisted as the active session; an unregistered one only stashes the temp
// token for the signup step.
func (f *Flow) VerifyCode(ctx context.Context, code string) (*Outcome, error) {
	if code == "" {
		return nil, shared.ErrMissingAuthCode
	}

	resp, err := f.backend.SocialVerify(ctx, api.SocialVerifyRequest{
		Provider: api.ProviderKakao,
		Code:     code,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	if !resp.IsRegistered {
		f.logger.Info("identity verified but not registered, signup required")

		if err := f.store.SaveTempToken(resp.TempToken); err != nil {
			return nil, err
		}
		return &Outcome{Registered: false}, nil
	}

	identity := &session.Identity{
		UserID:       resp.UserID,
		Nickname:     resp.Nickname,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if err := f.store.Save(identity); err != nil {
		return nil, err
	}

	f.logger.Info("logged in", "user_id", identity.UserID)
	return &Outcome{Registered: true, Identity: identity}, nil
}

// CompleteSignup finishes registration with the stashed temp token. The token
// is consumed up front; a failed signup requires a fresh verification.
func (f *Flow) CompleteSignup(ctx context.Context, nickname string, favoriteContentIDs, subscribedOttIDs []int) (*session.Identity, error) {
	tempToken, err := f.store.TakeTempToken()
	if err != nil {
		return nil, err
	}
	if tempToken == "" {
		return nil, shared.ErrNoTempToken
	}

	resp, err := f.backend.Signup(ctx, api.SignupRequest{
		TempToken:          tempToken,
		Nickname:           nickname,
		FavoriteContentIDs: favoriteContentIDs,
		SubscribedOttIDs:   subscribedOttIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	identity := &session.Identity{
		UserID:       resp.UserID,
		Nickname:     resp.Nickname,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if err := f.store.Save(identity); err != nil {
		return nil, err
	}

	f.logger.Info("signup complete", "user_id", identity.UserID)
	return identity, nil
}

// DevLogin logs in with a raw numeric user id, bypassing social verification.
// The id is validated before any network call so a typo never reaches the
// backend.
func (f *Flow) DevLogin(ctx context.Context, rawID string) (*session.Identity, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, shared.ErrInvalidUserID
	}

	resp, err := f.backend.DevLogin(ctx, api.DevLoginRequest{UserID: id})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	identity := &session.Identity{
		UserID:       resp.UserID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if err := f.store.Save(identity); err != nil {
		return nil, err
	}

	f.logger.Info("dev login", "user_id", identity.UserID)
	return identity, nil
}

// Logout clears the local session. The server-side token invalidation is best
// effort: a backend failure is logged but never blocks the local logout.
func (f *Flow) Logout(ctx context.Context) error {
	identity, err := f.store.Load()
	if err != nil {
		return err
	}

	if identity != nil && identity.RefreshToken != "" {
		if err := f.backend.Logout(ctx, identity.RefreshToken); err != nil {
			f.logger.Warn("server-side logout failed, clearing local session anyway", "error", err)
		}
	}

	return f.store.Clear()
}

// Current returns the active identity, or ErrNotAuthenticated when the store
// holds no usable session.
func (f *Flow) Current() (*session.Identity, error) {
	identity, err := f.store.Load()
	if err != nil {
		return nil, err
	}
	if !identity.LoggedIn() {
		return nil, shared.ErrNotAuthenticated
	}
	return identity, nil
}
