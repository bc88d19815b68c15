// Copyright (c) 2026 Fitfolio. All rights reserved.

package result

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dnminh/fitfolio/internal/platform/dberr"
)

// # Result Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new record into the fitness.result table.

Parameters:
  - context: context.Context
  - result: *Result (Entity to persist)

Returns:
  - error: Database constraint violations or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, result *Result) error {
	const query = `
		INSERT INTO fitness.result (
			id, userid, recordedon, age, weightkg, heightcm, bmi, calories, idealweightkg, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		result.ID,
		result.UserID,
		result.Date,
		result.Age,
		result.WeightKg,
		result.HeightCm,
		result.BMI,
		result.Calories,
		result.IdealWeightKg,
		result.CreatedAt,
	)

	return dberr.Wrap(err, "Result")
}

/*
ListByUser retrieves every record owned by userID, newest first.

Description: Returns an empty slice (never nil rows error) when the user has
no saved calculations yet.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []Result: Hydrated records
  - error: Execution errors
*/
func (repository *PostgresRepository) ListByUser(context context.Context, userID string) ([]Result, error) {
	const query = `
		SELECT id, userid, recordedon, age, weightkg, heightcm, bmi, calories, idealweightkg, createdat
		FROM fitness.result
		WHERE userid = $1
		ORDER BY recordedon DESC, createdat DESC`

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "Result")
	}
	defer rows.Close()

	results := make([]Result, 0)
	for rows.Next() {
		var record Result
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Date,
			&record.Age,
			&record.WeightKg,
			&record.HeightCm,
			&record.BMI,
			&record.Calories,
			&record.IdealWeightKg,
			&record.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "Result")
		}
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Result")
	}

	return results, nil
}
