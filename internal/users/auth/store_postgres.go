// Copyright (c) 2026 Fitfolio. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dnminh/fitfolio/internal/platform/apperr"
	"github.com/dnminh/fitfolio/internal/platform/dberr"
)

// # Account Repository

// PostgresAccountRepository implements the AccountRepository interface using pgx.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] values so no storage detail leaks upward.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of the AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
Create persists a new account record into the users.account table.

Description: The UNIQUE indexes on username and email are the correctness
mechanism for duplicate registrations. When a concurrent registration wins
the race between the existence pre-checks and this insert, the resulting
constraint violation is translated into the same Conflict outcome the
pre-checks would have produced, naming the column that collided.

Parameters:
  - context: context.Context
  - account: *Account (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicate username/email, or connectivity errors
*/
func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	const query = `
		INSERT INTO users.account (
			id, username, email, passwordhash, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		account.ID,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && dberr.IsUniqueViolation(err) {
			return conflictFromConstraint(pgErr.ConstraintName)
		}
		return apperr.Internal(fmt.Errorf("postgres_account_repo_create_failed: %w", err))
	}

	return nil
}

// conflictFromConstraint maps a violated constraint name to the Conflict
// message clients expect.
func conflictFromConstraint(constraintName string) *apperr.AppError {
	switch {
	case strings.Contains(constraintName, "email"):
		return apperr.Conflict("Email already registered")
	case strings.Contains(constraintName, "username"):
		return apperr.Conflict("Username already registered")
	default:
		return apperr.Conflict("Username or Email already registered")
	}
}

/*
FindByUsername retrieves an account record by its unique username.

Description: Standard lookup by username for authentication.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresAccountRepository) FindByUsername(context context.Context, username string) (*Account, error) {
	const query = `
		SELECT id, username, email, passwordhash, createdat, updatedat
		FROM users.account
		WHERE username = $1`

	account := &Account{}
	err := repository.pool.QueryRow(context, query, username).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Username")
		}
		return nil, apperr.Internal(fmt.Errorf("postgres_account_repo_find_by_username_failed: %w", err))
	}

	return account, nil
}

/*
ExistsByUsername checks whether the username is already taken.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - bool: Existence flag
  - error: Execution errors
*/
func (repository *PostgresAccountRepository) ExistsByUsername(context context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users.account WHERE username = $1)`

	var exists bool
	if err := repository.pool.QueryRow(context, query, username).Scan(&exists); err != nil {
		return false, apperr.Internal(fmt.Errorf("postgres_account_repo_exists_by_username_failed: %w", err))
	}

	return exists, nil
}

/*
ExistsByEmail checks whether the email is already registered.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - bool: Existence flag
  - error: Execution errors
*/
func (repository *PostgresAccountRepository) ExistsByEmail(context context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users.account WHERE email = $1)`

	var exists bool
	if err := repository.pool.QueryRow(context, query, email).Scan(&exists); err != nil {
		return false, apperr.Internal(fmt.Errorf("postgres_account_repo_exists_by_email_failed: %w", err))
	}

	return exists, nil
}
