package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"

	"github.com/flintapp/flint-cli/internal/server"
	"github.com/flintapp/flint-cli/internal/shared"
)

// kakaoEndpoint is the Kakao OAuth2 authorization endpoint. Only the auth URL
// matters: the authorization code is verified by the backend, so no token URL
// or client secret is configured.
var kakaoEndpoint = oauth2.Endpoint{
	AuthURL: "https://kauth.kakao.com/oauth/authorize",
}

// AuthLogin logs in with a raw user id against the development backend.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	rawID := cmd.StringArg("id")
	if rawID == "" {
		return fmt.Errorf("%w: user id", shared.ErrMissingArgument)
	}

	flow, err := r.authFlow()
	if err != nil {
		return err
	}

	identity, err := flow.DevLogin(ctx, rawID)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Logged in as user %s\n", identity.UserID)
}

// AuthKakao runs the browser login flow: opens the Kakao consent page, captures
// the redirect on a local server, and hands the code to the backend.
func (r *Runner) AuthKakao(ctx context.Context, cmd *cli.Command) error {
	flow, err := r.authFlow()
	if err != nil {
		return err
	}

	code, err := r.captureAuthCode()
	if err != nil {
		return err
	}

	outcome, err := flow.VerifyCode(ctx, code)
	if err != nil {
		return err
	}

	if !outcome.Registered {
		r.writePlain("✓ Kakao account verified\n")
		r.writePlainln("This account is not registered yet. Finish with:")
		return r.writePlain("  flint auth signup --nickname <name>\n")
	}

	return r.writePlain("✓ Logged in as %s\n", outcome.Identity.Nickname)
}

// AuthSignup completes registration using the temp token stashed by a prior
// Kakao verification.
func (r *Runner) AuthSignup(ctx context.Context, cmd *cli.Command) error {
	flow, err := r.authFlow()
	if err != nil {
		return err
	}

	identity, err := flow.CompleteSignup(ctx, cmd.String("nickname"), toInts(cmd.IntSlice("favorite")), toInts(cmd.IntSlice("ott")))
	if err != nil {
		return err
	}

	return r.writePlain("✓ Welcome, %s!\n", identity.Nickname)
}

func toInts(values []int) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}

// AuthStatus shows the active session.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	flow, err := r.authFlow()
	if err != nil {
		return err
	}

	identity, err := flow.Current()
	if err != nil {
		if err == shared.ErrNotAuthenticated {
			return r.writePlain("✗ Not logged in\n")
		}
		return err
	}

	r.writePlain("✓ Logged in\n")
	r.writePlain("User ID: %s\n", identity.UserID)
	if identity.Nickname != "" {
		r.writePlain("Nickname: %s\n", identity.Nickname)
	}
	return nil
}

// AuthLogout logs out and clears the local session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	flow, err := r.authFlow()
	if err != nil {
		return err
	}

	if err := flow.Logout(ctx); err != nil {
		return err
	}

	return r.writePlain("✓ Logged out\n")
}

// captureAuthCode runs a local HTTP server and waits for the Kakao redirect,
// returning the captured authorization code.
func (r *Runner) captureAuthCode() (string, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:    r.config.Credentials.Kakao.ClientID,
		RedirectURL: r.config.Credentials.Kakao.RedirectURI,
		Endpoint:    kakaoEndpoint,
	}
	authURL := oauthConfig.AuthCodeURL(state)

	callbackHandler := server.NewCallbackHandler(state)
	router := server.NewBasicRouter()
	router.Handler(callbackHandler)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting login callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for Kakao login...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for login (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.CallbackResult

	select {
	case result = <-callbackHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return "", fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return "", fmt.Errorf("%w: login timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return "", fmt.Errorf("login failed: %w", result.Error())
	}

	if result.Code == "" {
		return "", shared.ErrMissingAuthCode
	}

	return result.Code, nil
}
