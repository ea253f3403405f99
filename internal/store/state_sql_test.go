// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
)

var (
	testUserID = uuid.MustParse("6f1c2a3b-4d5e-4f60-8172-839405a6b7c8")
	fixedNow   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newTestSQLStorage(t *testing.T, driver string) (*sqlStateStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	classifier := ErrorClassificator(NewSQLiteErrorClassifier())
	if driver == config.DriverPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	s := NewSQLStateStorage(&DB{
		DB:                 db,
		driver:             driver,
		logger:             logger.Nop(),
		errorClassificator: classifier,
	}).(*sqlStateStorage)
	s.now = func() time.Time { return fixedNow }
	return s, mock
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestSQLStateStorage_Get_Success(t *testing.T) {
	s, mock := newTestSQLStorage(t, config.DriverSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM user_state WHERE state_key = ? AND user_id = ?")).
		WithArgs("kdfConfig", testUserID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"kdfType":0,"iterations":600000}`))

	value, err := s.Get(context.Background(), testUserID, "kdfConfig")
	require.NoError(t, err)
	assert.Equal(t, `{"kdfType":0,"iterations":600000}`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateStorage_Get_NotFound(t *testing.T) {
	s, mock := newTestSQLStorage(t, config.DriverSQLite)

	mock.ExpectQuery("SELECT value FROM user_state").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), testUserID, "missing")
	assert.ErrorIs(t, err, ErrStateNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateStorage_Get_PostgresPlaceholders(t *testing.T) {
	s, mock := newTestSQLStorage(t, config.DriverPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM user_state WHERE state_key = $1 AND user_id = $2")).
		WithArgs("lastSync", testUserID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2026-03-01T12:00:00Z"))

	value, err := s.Get(context.Background(), testUserID, "lastSync")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01T12:00:00Z", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateStorage_Get_NonRetryableError(t *testing.T) {
	s, mock := newTestSQLStorage(t, config.DriverPostgres)

	mock.ExpectQuery("SELECT value FROM user_state").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

	_, err := s.Get(context.Background(), testUserID, "kdfConfig")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Set ───────────────────────────────────────────────────────────────────────

func TestSQLStateStorage_Set_Upserts(t *testing.T) {
	s, mock := newTestSQLStorage(t, config.DriverSQLite)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO user_state (user_id,state_key,value,updated_at) VALUES (?,?,?,?) "+upsertStateSuffix)).
		WithArgs(testUserID.String(), "securityStamp", "stamp-1", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), testUserID, "securityStamp", "stamp-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateStorage_Set_RetriesBusyDatabase(t *testing.T) {
	s, mock := newTestSQLStorage(t, config.DriverSQLite)

	mock.ExpectExec("INSERT INTO user_state").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectExec("INSERT INTO user_state").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), testUserID, "securityStamp", "stamp-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateStorage_Set_GivesUpAfterRetries(t *testing.T) {
	s, mock := newTestSQLStorage(t, config.DriverPostgres)

	for range len(retryDelays) + 1 {
		mock.ExpectExec("INSERT INTO user_state").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	}

	err := s.Set(context.Background(), testUserID, "securityStamp", "stamp-1")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateStorage_WithRetry_StopsOnCancel(t *testing.T) {
	s, _ := newTestSQLStorage(t, config.DriverPostgres)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := s.withRetry(ctx, func() error {
		calls++
		cancel()
		return &pgconn.PgError{Code: pgerrcode.DeadlockDetected}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

// ── Delete / DeleteUser ───────────────────────────────────────────────────────

func TestSQLStateStorage_Delete(t *testing.T) {
	s, mock := newTestSQLStorage(t, config.DriverSQLite)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM user_state WHERE state_key = ? AND user_id = ?")).
		WithArgs("encPrivateKey", testUserID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Delete(context.Background(), testUserID, "encPrivateKey"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateStorage_DeleteUser(t *testing.T) {
	s, mock := newTestSQLStorage(t, config.DriverSQLite)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM user_state WHERE user_id = ?")).
		WithArgs(testUserID.String()).
		WillReturnResult(sqlmock.NewResult(0, 7))

	require.NoError(t, s.DeleteUser(context.Background(), testUserID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateStorage_DeleteUser_Error(t *testing.T) {
	s, mock := newTestSQLStorage(t, config.DriverSQLite)

	mock.ExpectExec("DELETE FROM user_state").
		WillReturnError(errors.New("disk I/O error"))

	err := s.DeleteUser(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── error classifiers ─────────────────────────────────────────────────────────

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Retryable},
		{"serialization", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"other connection class", &pgconn.PgError{Code: pgerrcode.SQLClientUnableToEstablishSQLConnection}, Retryable},
		{"lock not available", &pgconn.PgError{Code: pgerrcode.LockNotAvailable}, Retryable},
		{"too many connections", &pgconn.PgError{Code: pgerrcode.TooManyConnections}, Retryable},
		{"wrapped rollback", fmt.Errorf("error setting state: %w", &pgconn.PgError{Code: pgerrcode.TransactionRollback}), Retryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"disk full", &pgconn.PgError{Code: pgerrcode.DiskFull}, NonRetryable},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Empty(t, postgresError(errors.New("boom")))
}

// ── NewDB ─────────────────────────────────────────────────────────────────────

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(context.Background(), config.Storage{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestDB_Placeholder(t *testing.T) {
	assert.Equal(t, "$1", mustPlaceholder(t, &DB{driver: config.DriverPostgres}))
	assert.Equal(t, "?", mustPlaceholder(t, &DB{driver: config.DriverSQLite}))
}

func mustPlaceholder(t *testing.T, db *DB) string {
	t.Helper()
	out, err := db.placeholder().ReplacePlaceholders("?")
	require.NoError(t, err)
	return out
}
