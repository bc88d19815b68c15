// Copyright (c) 2026 Fitfolio. All rights reserved.

/*
Package auth implements the user identity layer.

It defines the core Account entity and the logic for registration, login,
and session establishment.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no
external dependencies and encapsulates all business rules related to user
identity.
*/
package auth

import "time"

// # Domain Entities

// Account represents a registered Fitfolio user.
//
// Accounts are immutable after creation: this core never updates or deletes
// a row, it only reads them back for login and uniqueness checks.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)
