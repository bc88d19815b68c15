// Copyright (c) 2026 Fitfolio. All rights reserved.

/*
Package auth implements the registration and login use cases.

Architecture:

  - Service: Orchestrates business logic (Register, Login).
  - Repository: Abstracted interface over PostgreSQL (Accounts).
  - Security: Argon2id password hashing and HMAC-signed session JWTs.

The package ensures that identity data remains consistent and secure
throughout the platform's lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/dnminh/fitfolio/internal/platform/apperr"
	"github.com/dnminh/fitfolio/internal/platform/constants"
	"github.com/dnminh/fitfolio/internal/platform/sec"
	"github.com/dnminh/fitfolio/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating session tokens.
type TokenProvider interface {
	// GenerateSessionToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - username: The username of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an error if signing fails.
	GenerateSessionToken(userID, username string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing,
// registration, or login logic must be reviewed by the security team.
type Service struct {
	accountRepository AccountRepository
	tokenProvider     TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(accountRepo AccountRepository, tokenProv TokenProvider) *Service {
	return &Service{
		accountRepository: accountRepo,
		tokenProvider:     tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register validates uniqueness, hashes the password, and persists a brand
new account.

Description: The existence pre-checks run in a fixed order (username, then
email) so the Conflict message names exactly what is taken. They are a UX
nicety, not the correctness mechanism: the checks and the insert are not one
atomic transaction, so a concurrent registration can slip between them. The
UNIQUE constraints on users.account close that race — the repository maps an
insert-time violation to the same Conflict outcome.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Account: Created entity (no token — the user logs in separately)
  - error: apperr.Conflict (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Account, error) {

	// Verify username uniqueness first.
	usernameTaken, err := service.accountRepository.ExistsByUsername(context, input.Username)
	if err != nil {
		return nil, fmt.Errorf("auth_service_check_username_failed: %w", err)
	}

	// Then email uniqueness.
	emailTaken, err := service.accountRepository.ExistsByEmail(context, input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_check_email_failed: %w", err)
	}

	// Short-circuit with the most specific conflict message.
	switch {
	case usernameTaken && emailTaken:
		return nil, apperr.Conflict("Username and Email already registered")
	case usernameTaken:
		return nil, apperr.Conflict("Username already registered")
	case emailTaken:
		return nil, apperr.Conflict("Email already registered")
	}

	// Prevent storing plain-text passwords. Argon2id is deliberately slow;
	// the cost is confined to this request's goroutine.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new Account entity. Time-sortable ID to prevent PG index fragmentation.
	account := &Account{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// Persist the account to the database.
	if err := service.accountRepository.Create(context, account); err != nil {
		return nil, err
	}

	return account, nil
}

// # Login Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession represents a successfully established session.
type LoginSession struct {
	Token     string
	ExpiresAt time.Time
	Account   *Account
}

/*
Login validates user credentials and issues a session token.

Description: Unknown usernames and wrong passwords are distinct outcomes
(NotFound vs WrongCredential) — the API contract exposes both, so a wrong
password against an existing account must never surface as NotFound.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session token and expiry
  - error: apperr.NotFound, apperr.WrongCredential, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Look up the account by username.
	account, err := service.accountRepository.FindByUsername(context, input.Username)
	if err != nil {
		return nil, err
	}

	// Verify the password against the stored Argon2id hash.
	// A malformed stored hash is an internal failure, not a mismatch.
	match, err := sec.VerifyPassword(input.Password, account.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("auth_service_verify_failed: %w", err)
	}
	if !match {
		return nil, apperr.WrongCredential("Wrong Password")
	}

	// Issue the 24h session token. Validity is bound only by signature and
	// expiry; nothing is persisted server-side.
	expiresAt := time.Now().Add(constants.SessionTokenTTL)
	token, err := service.tokenProvider.GenerateSessionToken(account.ID, account.Username, constants.SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   account,
	}, nil
}
