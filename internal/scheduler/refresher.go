// Package scheduler periodically recomputes cached eligibility aggregates so
// coordinators open the eligible-students view on a warm cache.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

type OpenJobsRefresher interface {
	RefreshOpenJobs(ctx context.Context) (int, error)
}

// Notifier is told how many jobs a completed run refreshed.
type Notifier interface {
	NotifyEligibilityRefreshed(jobs int)
}

type Refresher struct {
	cron     *cron.Cron
	spec     string
	target   OpenJobsRefresher
	notifier Notifier
	logger   *log.Logger
	running  atomic.Bool
	timeout  time.Duration
}

func NewRefresher(spec string, target OpenJobsRefresher, notifier Notifier, logger *log.Logger) *Refresher {
	if logger == nil {
		logger = log.Default()
	}
	return &Refresher{
		cron:     cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(logger)))),
		spec:     spec,
		target:   target,
		notifier: notifier,
		logger:   logger,
		timeout:  10 * time.Minute,
	}
}

// Start registers the refresh job, starts the cron loop and runs one refresh
// immediately in the background.
func (r *Refresher) Start(ctx context.Context) error {
	if _, err := r.cron.AddFunc(r.spec, func() { r.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc %q: %w", r.spec, err)
	}
	r.cron.Start()
	r.logger.Printf("[Refresher] cron started spec=%s", r.spec)

	go r.RunOnce(ctx)
	return nil
}

// Stop halts scheduling and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Printf("[Refresher] cron stopped")
}

// RunOnce performs one refresh cycle. Overlapping ticks are skipped.
func (r *Refresher) RunOnce(ctx context.Context) {
	if !r.running.CompareAndSwap(false, true) {
		r.logger.Printf("[Refresher] previous cycle still running, skipping")
		return
	}
	defer r.running.Store(false)

	if ctx.Err() != nil {
		return
	}
	rctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	n, err := r.target.RefreshOpenJobs(rctx)
	if err != nil {
		r.logger.Printf("[Refresher] cycle finished with errors refreshed=%d took=%s err=%v", n, time.Since(start), err)
	} else {
		r.logger.Printf("[Refresher] cycle complete refreshed=%d took=%s", n, time.Since(start))
	}
	if n > 0 && r.notifier != nil {
		r.notifier.NotifyEligibilityRefreshed(n)
	}
}
