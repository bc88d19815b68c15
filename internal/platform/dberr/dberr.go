// Copyright (c) 2026 Fitfolio. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dnminh/fitfolio/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the
// error type.
//
// Unique-constraint violations (SQLSTATE 23505) become Conflict: the UNIQUE
// indexes on users.account are the actual correctness mechanism for duplicate
// registrations, so an insert that loses the race must surface the same
// outcome as the pre-insert existence checks.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Constraint violation mapping
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperr.Conflict(resource + " already registered")
	}

	// 3. Unknown query errors become Internal Server Errors. The driver
	// error rides along as the cause for server-side logs only.
	return apperr.Internal(fmt.Errorf("dberr: %s: %w", resource, err))
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation, regardless of wrapping.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
