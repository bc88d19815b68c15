// Copyright (c) 2026 Fitfolio. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces defined at the point of use.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the payload embedded inside a session JWT.
//
// # Why custom claims?
//
// By embedding the UserID and Username directly inside the JWT, the session
// middleware can reconstruct the active user context WITHOUT querying the
// database on every single API request.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID   string `json:"uid"`
	Username string `json:"unm"`
}

// ErrInvalidToken is the single verification failure surfaced by
// [TokenService.VerifyToken]. Missing, malformed, tampered, and expired
// tokens are deliberately indistinguishable through this error so that a
// caller (and therefore a client) only ever learns "not authenticated".
var ErrInvalidToken = errors.New("sec: invalid token")

// TokenService handles generation and verification of session JWTs using HS256.
//
// The signing secret is process-wide and read-only after construction.
// Token validity is fully determined by signature and expiry; there is no
// server-side revocation list.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService from the server-held secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// GenerateSessionToken creates a signed session token for a user.
//
// The token embeds {userID, username} and expires timeToLive from now.
func (service *TokenService) GenerateSessionToken(userID, username string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID:   userID,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// Any failure (malformed, wrong signature, expired, wrong algorithm) is
// collapsed into [ErrInvalidToken]; the underlying cause is wrapped for
// server-side logs only.
func (service *TokenService) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
