package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-keycore/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts the workers in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// syncWorker runs a [service.SyncJob] at a fixed interval.
type syncWorker struct {
	job      service.SyncJob
	interval time.Duration
}

func NewSyncWorker(job service.SyncJob, interval time.Duration) Worker {
	return &syncWorker{job: job, interval: interval}
}

func (s *syncWorker) Start(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *syncWorker) Stop() {
	s.job.Stop()
}
