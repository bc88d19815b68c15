// Copyright (c) 2026 Fitfolio. All rights reserved.

package sec

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Memory-hard on purpose: a single hash costs tens of
// milliseconds and ~64 MiB, which is negligible per login but ruinous for
// GPU brute-force. Tuned above the OWASP ASVS Level 2 floor.
const (
	argonMemory  = 64 * 1024 // KiB
	argonTime    = 3
	argonThreads = 2
	argonKeyLen  = 32
	argonSaltLen = 16
)

// ErrMalformedHash is returned by [VerifyPassword] when the stored hash
// string cannot be parsed as a PHC-encoded Argon2id hash.
var ErrMalformedHash = errors.New("sec: malformed password hash")

// HashPassword hashes a plain-text password using Argon2id.
//
// A fresh random salt is generated on every call, so hashing the same
// password twice yields different strings. The output is self-contained
// PHC format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<b64 salt>$<b64 hash>
//
// It fails only on an internal entropy failure, never on the input itself.
func HashPassword(plainTextPassword string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("sec: failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plainTextPassword), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// VerifyPassword compares a plain-text password against a stored Argon2id hash.
//
// The comparison is constant-time. It returns (false, nil) on a clean
// mismatch and a non-nil error only when the stored hash is malformed.
// The parameters embedded in the hash are honored, so old hashes remain
// verifiable after the package defaults change.
func VerifyPassword(plainTextPassword, encodedHash string) (bool, error) {
	salt, key, memory, timeCost, threads, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(plainTextPassword), salt, timeCost, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// decodeHash splits a PHC-encoded Argon2id string into its components.
func decodeHash(encodedHash string) (salt, key []byte, memory, timeCost uint32, threads uint8, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	return salt, key, memory, timeCost, threads, nil
}
