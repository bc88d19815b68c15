// Copyright (c) 2026 Fitfolio. All rights reserved.

package auth

import "context"

// # Account Data Access

// AccountRepository defines the data access contract for user accounts.
type AccountRepository interface {

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*Account, error)

	/*
		ExistsByUsername reports whether an account with the username exists.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - bool: Existence flag
		  - error: Database retrieval failures
	*/
	ExistsByUsername(context context.Context, username string) (bool, error)

	/*
		ExistsByEmail reports whether an account with the email exists.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - bool: Existence flag
		  - error: Database retrieval failures
	*/
	ExistsByEmail(context context.Context, email string) (bool, error)

	/*
		Create persists a brand-new account to the storage.

		The storage enforces username and email uniqueness with hard
		constraints; a violation surfaces as apperr.Conflict.

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: apperr.Conflict or persistence failures
	*/
	Create(context context.Context, account *Account) error
}
