// Copyright (c) 2026 Fitfolio. All rights reserved.

package result

import "context"

// # Result Data Access

// Repository defines the persistent data access contract for calculation results.
type Repository interface {

	/*
		Create persists a new calculation record.

		Parameters:
		  - context: context.Context
		  - result: *Result

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, result *Result) error

	/*
		ListByUser returns every record owned by userID, newest first.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []Result: Hydrated records (empty slice when none exist)
		  - error: Database retrieval failures
	*/
	ListByUser(context context.Context, userID string) ([]Result, error)
}

// # Volatile Data Access

// Cache defines the volatile read-through cache contract for a user's records.
//
// Cache failures are never fatal to a request: callers treat a miss and an
// unreachable cache identically and fall back to the repository.
type Cache interface {

	/*
		Get returns the cached record list for userID.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []Result: Cached records, or nil on a miss
		  - error: Connectivity failures (a plain miss is not an error)
	*/
	Get(context context.Context, userID string) ([]Result, error)

	/*
		Set stores the record list for userID with the standard TTL.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - results: []Result

		Returns:
		  - error: Storage failures
	*/
	Set(context context.Context, userID string, results []Result) error

	/*
		Invalidate drops the cached list for userID after a write.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - error: Deletion failures
	*/
	Invalidate(context context.Context, userID string) error
}
