// Copyright (c) 2026 Fitfolio. All rights reserved.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dnminh/fitfolio/internal/platform/apperr"
	"github.com/dnminh/fitfolio/internal/platform/ctxkey"
	"github.com/dnminh/fitfolio/internal/platform/ctxutil"
	"github.com/dnminh/fitfolio/internal/platform/respond"
	"github.com/dnminh/fitfolio/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify session tokens.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the [sec]
// implementation, allowing us to easily inject fakes during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.SessionClaims, error)
}

// Authenticate extracts and verifies the session JWT from the request cookie.
//
// # Flow
//  1. Check for the session cookie.
//  2. If absent, request proceeds as anonymous.
//  3. If present, parse and verify the JWT via [TokenVerifier].
//  4. On success, inject [*sec.SessionClaims] into the request context.
//
// A cookie that fails verification is treated exactly like a missing one:
// the request continues anonymous and [RequireAuth] produces the 401. This
// keeps the public endpoints reachable for a browser still carrying an
// expired cookie, and keeps "missing", "malformed", "tampered" and "expired"
// indistinguishable to the client. The verification failure itself is
// recorded in the server log only.
func Authenticate(verifier TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Anonymous Access ───────────────────────────────────────────
			cookie, err := request.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				ctxutil.GetLogger(request.Context()).Warn("session_token_rejected",
					slog.String("reason", err.Error()),
				)
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := context.WithValue(request.Context(), ctxkey.KeyUser, claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.SessionClaims] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := GetUser(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Not Authenticated"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// GetUser retrieves the [*sec.SessionClaims] from the [context.Context].
//
// # Returns
//   - A pointer to [*sec.SessionClaims] if the user is authenticated.
//   - nil if the user is anonymous.
func GetUser(ctx context.Context) *sec.SessionClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
