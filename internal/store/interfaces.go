package store

import (
	"context"

	"github.com/google/uuid"
)

// StateStorage is a key/value store scoped by user id. Each storage tier has
// one implementation.
type StateStorage interface {
	// Get returns the value stored under key, or [ErrStateNotFound].
	Get(ctx context.Context, userID uuid.UUID, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, userID uuid.UUID, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, userID uuid.UUID, key string) error
	// DeleteUser removes every key of the user.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification tells the state storage whether to retry a statement.
type ErrorClassification int

const (
	// NonRetryable is the default for every error a driver classifier does
	// not recognize.
	NonRetryable ErrorClassification = iota
	// Retryable errors are transient: a busy database, a lost connection or
	// a rolled back transaction.
	Retryable
)
