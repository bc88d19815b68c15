// Copyright (c) 2026 Fitfolio. All rights reserved.

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnminh/fitfolio/internal/platform/sec"
)

func newTestTokenService(t *testing.T) *sec.TokenService {
	t.Helper()

	service, err := sec.NewTokenService("unit-test-signing-secret", "fitfolio.test")
	require.NoError(t, err)
	return service
}

/*
TestNewTokenService_EmptySecret checks that construction fails fast when no
signing secret is configured.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "fitfolio.test")
	require.Error(t, err)
}

/*
TestTokenService_RoundTrip generates a session token and verifies that the
claims survive the trip.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestTokenService(t)

	token, err := service.GenerateSessionToken("user-42", "minh", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "minh", claims.Username)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "fitfolio.test", claims.Issuer)
}

/*
TestTokenService_VerifyFailures checks that every rejection path collapses
into the single [sec.ErrInvalidToken].
*/
func TestTokenService_VerifyFailures(t *testing.T) {
	service := newTestTokenService(t)

	valid, err := service.GenerateSessionToken("user-42", "minh", time.Hour)
	require.NoError(t, err)

	// Signed with a different secret.
	otherService, err := sec.NewTokenService("a-completely-different-secret", "fitfolio.test")
	require.NoError(t, err)
	foreign, err := otherService.GenerateSessionToken("user-42", "minh", time.Hour)
	require.NoError(t, err)

	// Already expired at issue time.
	expired, err := service.GenerateSessionToken("user-42", "minh", -time.Minute)
	require.NoError(t, err)

	// Payload altered after signing.
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJ1aWQiOiJzb21lb25lLWVsc2UifQ." + parts[2]

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"wrong_secret", foreign},
		{"expired", expired},
		{"tampered_payload", tampered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.VerifyToken(tt.token)
			require.ErrorIs(t, err, sec.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
