package api

import (
	"context"
	"net/http"
)

// ProviderKakao is the only social provider the backend currently verifies.
const ProviderKakao = "KAKAO"

// SocialVerifyRequest exchanges an authorization code (or provider access
// token) for either a full token bundle or a temporary signup token.
type SocialVerifyRequest struct {
	Provider    string `json:"provider"`
	Code        string `json:"code,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

// AuthResponse is the social verify / signup response.
// TempToken is present iff IsRegistered is false.
type AuthResponse struct {
	IsRegistered bool   `json:"isRegistered"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	UserID       string `json:"userId,omitempty"`
	Nickname     string `json:"nickname,omitempty"`
	TempToken    string `json:"tempToken,omitempty"`
}

// SignupRequest completes registration for a verified but unregistered identity.
type SignupRequest struct {
	TempToken          string `json:"tempToken"`
	Nickname           string `json:"nickname"`
	FavoriteContentIDs []int  `json:"favoriteContentIds"`
	SubscribedOttIDs   []int  `json:"subscribedOttIds"`
}

// DevLoginRequest exchanges a raw user id for tokens, bypassing identity
// verification. Non-production only.
type DevLoginRequest struct {
	UserID int `json:"userId"`
}

// TokenResponse is the dev login response.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
}

// SocialVerify verifies a social authorization code with the backend.
func (c *Client) SocialVerify(ctx context.Context, req SocialVerifyRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/social/verify", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup completes registration using a temp token.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DevLogin exchanges a numeric user id for a token bundle.
func (c *Client) DevLogin(ctx context.Context, req DevLoginRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/dev/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the refresh token server-side.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refreshToken": refreshToken}
	return c.doRequest(ctx, http.MethodPost, "/auth/logout", body, nil)
}
