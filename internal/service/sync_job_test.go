package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/models"
)

// stubAccounts returns a fixed active account or error.
type stubAccounts struct {
	AccountService
	account models.AccountInfo
	err     error
}

func (s stubAccounts) ActiveAccount(context.Context) (models.AccountInfo, error) {
	return s.account, s.err
}

// syncSpy counts FullSync calls.
type syncSpy struct {
	SyncService
	mu     sync.Mutex
	calls  atomic.Int32
	userID uuid.UUID
	force  bool
	err    error
}

func (s *syncSpy) FullSync(_ context.Context, userID uuid.UUID, force bool) error {
	s.mu.Lock()
	s.userID, s.force = userID, force
	s.mu.Unlock()
	s.calls.Add(1)
	return s.err
}

// ── syncJob ─────────────────────────────────────────────────────────────────

func TestSyncJob_SyncsActiveAccount(t *testing.T) {
	spy := &syncSpy{}
	job := NewSyncJob(stubAccounts{account: models.AccountInfo{UserID: testUserID}}, spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	job.Stop()

	spy.mu.Lock()
	defer spy.mu.Unlock()
	assert.Equal(t, testUserID, spy.userID)
	assert.False(t, spy.force)
}

func TestSyncJob_NoActiveAccount(t *testing.T) {
	spy := &syncSpy{}
	job := NewSyncJob(stubAccounts{err: ErrNoActiveAccount}, spy, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}

func TestSyncJob_ErrorsDoNotStopTheJob(t *testing.T) {
	spy := &syncSpy{err: errors.New("offline")}
	job := NewSyncJob(stubAccounts{account: models.AccountInfo{UserID: testUserID}}, spy, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestSyncJob_StopsOnContextCancel(t *testing.T) {
	spy := &syncSpy{}
	job := NewSyncJob(stubAccounts{account: models.AccountInfo{UserID: testUserID}}, spy, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()
	job.Stop()

	calls := spy.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load())
}

func TestSyncJob_StopWithoutStart(t *testing.T) {
	job := NewSyncJob(stubAccounts{}, &syncSpy{}, logger.Nop())
	job.Stop()
}

func TestSyncJob_RestartReplacesRunningJob(t *testing.T) {
	spy := &syncSpy{}
	job := NewSyncJob(stubAccounts{account: models.AccountInfo{UserID: testUserID}}, spy, logger.Nop())

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 5*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	job.Stop()
}
