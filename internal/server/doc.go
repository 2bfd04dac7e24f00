// Package server provides HTTP routing, middleware, and the OAuth callback
// handler for the login flow.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # OAuth Callback Handler
//
// [CallbackHandler] implements the browser half of the social login flow.
// When the user runs `flint auth kakao`, a temporary HTTP server starts on
// the configured redirect host, captures the authorization code from the
// provider redirect, and shuts down. The code itself is verified by the
// backend, never exchanged locally, so no provider secret ships with the
// binary.
//
// The handler validates the state parameter (CSRF protection) and sends the
// captured code through a channel. It only processes one callback to prevent
// replay attacks.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
