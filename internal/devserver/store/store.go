// Package store holds the dev server's credential and daily-usage state.
// Usage tracking is pluggable: an in-memory adapter for hermetic runs and a
// redis adapter for state that survives restarts.
package store

import (
	"context"
	"errors"
)

// ErrUserExists is returned when a signup collides with an existing username.
var ErrUserExists = errors.New("username already exists")

// UserStore owns account credentials.
type UserStore interface {
	Create(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (bool, error)
}

// UsageStore tracks per-user generation counts for a given day. Day keys use
// the YYYY-MM-DD form so the count naturally rolls over at midnight.
type UsageStore interface {
	UsedToday(ctx context.Context, username, day string) (int, error)
	Increment(ctx context.Context, username, day string) (int, error)
}
