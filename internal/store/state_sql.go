// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-keycore/internal/logger"
)

const (
	stateTable       = "user_state"
	stateColumnUser  = "user_id"
	stateColumnKey   = "state_key"
	stateColumnValue = "value"
	stateColumnTime  = "updated_at"

	upsertStateSuffix = "ON CONFLICT (user_id, state_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

// retryDelays are the waits between attempts of an operation whose error
// the driver classifies as retryable.
var retryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond, 500 * time.Millisecond}

// sqlStateStorage is the disk tier. Rows live in the user_state table and
// survive restarts.
type sqlStateStorage struct {
	db      *DB
	builder sq.StatementBuilderType
	now     func() time.Time
}

// NewSQLStateStorage returns the disk tier backed by db.
func NewSQLStateStorage(db *DB) StateStorage {
	return &sqlStateStorage{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(db.placeholder()),
		now:     time.Now,
	}
}

func (s *sqlStateStorage) Get(ctx context.Context, userID uuid.UUID, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select(stateColumnValue).
		From(stateTable).
		Where(sq.Eq{stateColumnUser: userID.String(), stateColumnKey: key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrStateNotFound
	case err != nil:
		log.Err(err).Str("func", "*sqlStateStorage.Get").Str("sqlstate", postgresError(err)).Msg("error reading state")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqlStateStorage) Set(ctx context.Context, userID uuid.UUID, key, value string) error {
	query, args, err := s.builder.
		Insert(stateTable).
		Columns(stateColumnUser, stateColumnKey, stateColumnValue, stateColumnTime).
		Values(userID.String(), key, value, s.now().UTC()).
		Suffix(upsertStateSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "*sqlStateStorage.Set", query, args)
}

func (s *sqlStateStorage) Delete(ctx context.Context, userID uuid.UUID, key string) error {
	query, args, err := s.builder.
		Delete(stateTable).
		Where(sq.Eq{stateColumnUser: userID.String(), stateColumnKey: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "*sqlStateStorage.Delete", query, args)
}

func (s *sqlStateStorage) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	query, args, err := s.builder.
		Delete(stateTable).
		Where(sq.Eq{stateColumnUser: userID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "*sqlStateStorage.DeleteUser", query, args)
}

func (s *sqlStateStorage) exec(ctx context.Context, funcName, query string, args []any) error {
	err := s.withRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Str("sqlstate", postgresError(err)).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// withRetry runs op again after a short wait while the error is classified as
// retryable.
func (s *sqlStateStorage) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if s.db.errorClassificator == nil {
		return err
	}

	for _, delay := range retryDelays {
		if err == nil || s.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}
		err = op()
	}
	return err
}
