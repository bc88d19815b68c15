// Copyright (c) 2026 Fitfolio. All rights reserved.

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnminh/fitfolio/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip checks that a freshly hashed password verifies
against its own plaintext and rejects everything else.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	encoded, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	match, err := sec.VerifyPassword("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = sec.VerifyPassword("correct horse battery stable", encoded)
	require.NoError(t, err)
	assert.False(t, match)
}

/*
TestHashPassword_UniqueSalt checks that hashing the same plaintext twice
produces two different encodings.
*/
func TestHashPassword_UniqueSalt(t *testing.T) {
	first, err := sec.HashPassword("s3cret-password")
	require.NoError(t, err)

	second, err := sec.HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Both must still verify against the original plaintext.
	for _, encoded := range []string{first, second} {
		match, err := sec.VerifyPassword("s3cret-password", encoded)
		require.NoError(t, err)
		assert.True(t, match)
	}
}

/*
TestHashPassword_Encoding checks the PHC string layout of the output.
*/
func TestHashPassword_Encoding(t *testing.T) {
	encoded, err := sec.HashPassword("any")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))
	assert.Len(t, strings.Split(encoded, "$"), 6)
}

/*
TestVerifyPassword_Malformed checks that corrupted stored hashes surface an
error rather than a silent mismatch.
*/
func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not_phc", "plainly-not-a-hash"},
		{"wrong_algorithm", "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"truncated", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA"},
		{"bad_base64_salt", "$argon2id$v=19$m=65536,t=3,p=2$!!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := sec.VerifyPassword("whatever", tt.encoded)
			require.Error(t, err)
			assert.False(t, match)
		})
	}
}
