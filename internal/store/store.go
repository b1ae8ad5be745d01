// Package store defines the record store interface the dashboard reads from.
//
// A store exposes one read per tracked collection. Collection reads are
// scoped to a user identifier and, except for profile and weight, to a
// half-open creation-time window [start, end). Rows come back loosely typed;
// normalization is the caller's job (see the records package).
package store

import (
	"context"
	"errors"
	"time"

	"github.com/vitadash/vitadash/internal/records"
)

// ErrUserNotFound is returned by Profile when no row exists for the
// identifier. It is the only store error that is fatal for a day fetch.
var ErrUserNotFound = errors.New("no user found for this identifier")

// Store is a read-only record store backend.
type Store interface {
	// Profile returns the single master-data row for the identifier,
	// or ErrUserNotFound.
	Profile(ctx context.Context, id string) (records.Row, error)

	// LatestWeight returns the most recent weight sample for the identifier,
	// or (nil, nil) when the user has never logged one.
	LatestWeight(ctx context.Context, id string) (records.Row, error)

	Meals(ctx context.Context, id string, start, end time.Time) ([]records.Row, error)
	Workouts(ctx context.Context, id string, start, end time.Time) ([]records.Row, error)
	Hydration(ctx context.Context, id string, start, end time.Time) ([]records.Row, error)
	Sleep(ctx context.Context, id string, start, end time.Time) ([]records.Row, error)
	Steps(ctx context.Context, id string, start, end time.Time) ([]records.Row, error)

	Close() error
}
