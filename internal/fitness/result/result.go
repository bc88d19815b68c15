// Copyright (c) 2026 Fitfolio. All rights reserved.

/*
Package result manages a user's saved fitness-calculation records.

Each record is a snapshot of one calculator run: the inputs (age, weight,
height) and the derived values (BMI, daily calories, ideal body weight).
Records belong to exactly one account and are only ever read back by their
owner.

# Architecture

  - Entity: Result.
  - Service: Save/List orchestration plus cache maintenance.
  - Repository: PostgreSQL persistence, Redis read-through cache.
*/
package result

import "time"

// # Domain Entities

// Result represents one saved calculator snapshot.
type Result struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Date          time.Time `json:"date"`
	Age           int       `json:"age"`
	WeightKg      float64   `json:"weight"`
	HeightCm      float64   `json:"height"`
	BMI           float64   `json:"bmi"`
	Calories      float64   `json:"calories"`
	IdealWeightKg float64   `json:"bodyWeight"`
	CreatedAt     time.Time `json:"createdAt"`
}

// # Field Identifiers

// Field names for validation in the result domain.
const (
	FieldDate     = "date"
	FieldAge      = "age"
	FieldWeight   = "weight"
	FieldHeight   = "height"
	FieldBMI      = "bmi"
	FieldCalories = "calories"
	FieldBodyWt   = "bodyWeight"
)
