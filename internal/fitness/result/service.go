// Copyright (c) 2026 Fitfolio. All rights reserved.

package result

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dnminh/fitfolio/internal/platform/ctxutil"
	"github.com/dnminh/fitfolio/pkg/uuid"
)

// Service implements the save/list use cases for calculation records.
//
// Ownership is enforced here: the user ID always comes from the verified
// session claims, never from the request body, so a caller can only ever
// touch their own records.
type Service struct {
	repository Repository
	cache      Cache
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(repository Repository, cache Cache) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
	}
}

// SaveInput holds one calculator snapshot to persist.
type SaveInput struct {
	Date          time.Time
	Age           int
	WeightKg      float64
	HeightCm      float64
	BMI           float64
	Calories      float64
	IdealWeightKg float64
}

/*
Save persists a calculation record for the owning user.

Description: Inserts the record and eagerly invalidates the user's cached
list. Cache invalidation failure is logged and swallowed — the TTL backstop
bounds the staleness window and the write itself has already succeeded.

Parameters:
  - context: context.Context
  - userID: string (from verified session claims)
  - input: SaveInput

Returns:
  - *Result: Persisted entity
  - error: Storage failures
*/
func (service *Service) Save(context context.Context, userID string, input SaveInput) (*Result, error) {
	record := &Result{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          input.Date,
		Age:           input.Age,
		WeightKg:      input.WeightKg,
		HeightCm:      input.HeightCm,
		BMI:           input.BMI,
		Calories:      input.Calories,
		IdealWeightKg: input.IdealWeightKg,
	}

	if err := service.repository.Create(context, record); err != nil {
		return nil, fmt.Errorf("result_service_save_failed: %w", err)
	}

	if err := service.cache.Invalidate(context, userID); err != nil {
		ctxutil.GetLogger(context).Warn("result_cache_invalidate_failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	return record, nil
}

/*
List returns every record owned by userID, newest first.

Description: Read-through cache — serve from Redis when warm, otherwise load
from PostgreSQL and repopulate. Cache errors degrade to a database read.

Parameters:
  - context: context.Context
  - userID: string (from verified session claims)

Returns:
  - []Result: Records (empty slice when none exist)
  - error: Storage failures
*/
func (service *Service) List(context context.Context, userID string) ([]Result, error) {

	// 1. Cache probe. Both a miss and an unreachable cache fall through.
	cached, err := service.cache.Get(context, userID)
	if err != nil {
		ctxutil.GetLogger(context).Warn("result_cache_get_failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
	if cached != nil {
		return cached, nil
	}

	// 2. Authoritative read.
	results, err := service.repository.ListByUser(context, userID)
	if err != nil {
		return nil, fmt.Errorf("result_service_list_failed: %w", err)
	}

	// 3. Repopulate. Failure is non-fatal for the same reason as above.
	if err := service.cache.Set(context, userID, results); err != nil {
		ctxutil.GetLogger(context).Warn("result_cache_set_failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	return results, nil
}
