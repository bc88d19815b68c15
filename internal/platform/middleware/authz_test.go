// Copyright (c) 2026 Fitfolio. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnminh/fitfolio/internal/platform/constants"
	"github.com/dnminh/fitfolio/internal/platform/middleware"
	"github.com/dnminh/fitfolio/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string and rejects everything else.
type fakeVerifier struct {
	acceptToken string
	claims      *sec.SessionClaims
}

func (verifier *fakeVerifier) VerifyToken(tokenStr string) (*sec.SessionClaims, error) {
	if tokenStr == verifier.acceptToken {
		return verifier.claims, nil
	}
	return nil, sec.ErrInvalidToken
}

// newSessionChain builds Authenticate -> optional RequireAuth -> probe
// handler that captures the claims seen by the final handler.
func newSessionChain(verifier middleware.TokenVerifier, protected bool, seen **sec.SessionClaims) http.Handler {
	var final http.Handler = http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*seen = middleware.GetUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	if protected {
		final = middleware.RequireAuth(final)
	}
	return middleware.Authenticate(verifier, constants.SessionCookieName)(final)
}

/*
TestAuthenticate_ValidCookie verifies that a good session cookie ends up as
claims in the request context.
*/
func TestAuthenticate_ValidCookie(t *testing.T) {
	verifier := &fakeVerifier{
		acceptToken: "good-token",
		claims:      &sec.SessionClaims{UserID: "user-1", Username: "minh"},
	}

	var seen *sec.SessionClaims
	handler := newSessionChain(verifier, true, &seen)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "good-token"})
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "user-1", seen.UserID)
	assert.Equal(t, "minh", seen.Username)
}

/*
TestAuthenticate_ProtectedRejections verifies that missing, empty, and
invalid cookies all produce the same 401 on a protected route.
*/
func TestAuthenticate_ProtectedRejections(t *testing.T) {
	verifier := &fakeVerifier{acceptToken: "good-token"}

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no_cookie", nil},
		{"empty_cookie", &http.Cookie{Name: constants.SessionCookieName, Value: ""}},
		{"invalid_token", &http.Cookie{Name: constants.SessionCookieName, Value: "tampered"}},
		{"wrong_cookie_name", &http.Cookie{Name: "other", Value: "good-token"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *sec.SessionClaims
			handler := newSessionChain(verifier, true, &seen)

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				request.AddCookie(tt.cookie)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Nil(t, seen)
			assert.Contains(t, recorder.Body.String(), "Not Authenticated")
		})
	}
}

/*
TestAuthenticate_PublicStaysReachable verifies that a stale cookie does not
block an unprotected route: the request proceeds as anonymous.
*/
func TestAuthenticate_PublicStaysReachable(t *testing.T) {
	verifier := &fakeVerifier{acceptToken: "good-token"}

	var seen *sec.SessionClaims
	handler := newSessionChain(verifier, false, &seen)

	request := httptest.NewRequest(http.MethodPost, "/login", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "expired-token"})
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, seen)
}
