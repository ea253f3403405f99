package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-keycore/internal/logger"
)

const defaultSyncInterval = 30 * time.Minute

type syncJob struct {
	accounts    AccountService
	syncService SyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls syncService.FullSync for the active
// account on a ticker. The job is idle until Start is called.
func NewSyncJob(accounts AccountService, syncService SyncService, logger *logger.Logger) SyncJob {
	return &syncJob{accounts: accounts, syncService: syncService, logger: logger}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that runs a non-forced sync every interval.
// If interval is zero or negative it defaults to 30 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *syncJob) tick(ctx context.Context) {
	account, err := j.accounts.ActiveAccount(ctx)
	if errors.Is(err, ErrNoActiveAccount) {
		return
	}
	if err != nil {
		j.logger.Err(err).Str("func", "*syncJob.tick").Msg("error reading active account")
		return
	}

	if err = j.syncService.FullSync(ctx, account.UserID, false); err != nil && ctx.Err() == nil {
		j.logger.Err(err).Str("func", "*syncJob.tick").Str("user_id", account.UserID.String()).Msg("background sync failed")
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
