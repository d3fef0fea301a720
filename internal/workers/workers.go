package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-item-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker and waits for all of them. The first failure
// cancels the rest and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}

// WorkerFunc adapts a plain function to Worker.
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error { return f(ctx) }

type syncJobWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

// NewSyncJobWorker runs job for as long as ctx lives.
func NewSyncJobWorker(job service.ClientSyncJob, interval time.Duration) Worker {
	return &syncJobWorker{job: job, interval: interval}
}

func (w *syncJobWorker) Run(ctx context.Context) error {
	w.job.Start(ctx, w.interval)
	<-ctx.Done()
	w.job.Stop()
	return nil
}
