// Copyright (c) 2026 Fitfolio. All rights reserved.

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnminh/fitfolio/internal/platform/apperr"
	"github.com/dnminh/fitfolio/internal/platform/dberr"
)

/*
TestWrap_Classification verifies the mapping from driver errors to
application errors.
*/
func TestWrap_Classification(t *testing.T) {
	uniqueViolation := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "account_username_key",
	}

	tests := []struct {
		name       string
		input      error
		wantCode   string
		wantStatus int
	}{
		{"no_rows", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"wrapped_no_rows", fmt.Errorf("query: %w", pgx.ErrNoRows), "NOT_FOUND", http.StatusNotFound},
		{"unique_violation", uniqueViolation, "CONFLICT", http.StatusBadRequest},
		{"wrapped_unique_violation", fmt.Errorf("insert: %w", uniqueViolation), "CONFLICT", http.StatusBadRequest},
		{"unknown_error", errors.New("connection reset"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.Wrap(tt.input, "Username")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
		})
	}
}

/*
TestWrap_Nil verifies that a nil error passes through untouched.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Username"))
}

/*
TestWrap_Messages verifies the client-facing messages for the two mapped
outcomes.
*/
func TestWrap_Messages(t *testing.T) {
	notFound := apperr.As(dberr.Wrap(pgx.ErrNoRows, "Username"))
	require.NotNil(t, notFound)
	assert.Equal(t, "Username not registered", notFound.Message)

	conflict := apperr.As(dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "Username"))
	require.NotNil(t, conflict)
	assert.Equal(t, "Username already registered", conflict.Message)
}

/*
TestIsUniqueViolation checks detection through arbitrary wrapping.
*/
func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	assert.True(t, dberr.IsUniqueViolation(pgErr))
	assert.True(t, dberr.IsUniqueViolation(fmt.Errorf("outer: %w", pgErr)))
	assert.False(t, dberr.IsUniqueViolation(errors.New("plain")))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, dberr.IsUniqueViolation(nil))
}
