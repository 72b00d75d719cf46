package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/robfig/cron/v3"

	"github.com/rp1014/launchtrack/internal/aggregator"
	"github.com/rp1014/launchtrack/internal/recorder"
)

// Scheduler periodically refreshes the record set and hands each run to
// the recorder. It also keeps the latest result available for any
// in-process consumer.
type Scheduler struct {
	Cron     *cron.Cron
	Agg      *aggregator.Aggregator
	Recorder recorder.Recorder
	Ctx      context.Context

	mu     sync.RWMutex
	latest *aggregator.Result
}

// NewScheduler creates a Scheduler around an aggregator and a recorder.
func NewScheduler(ctx context.Context, agg *aggregator.Aggregator, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Agg:      agg,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// Register installs the refresh task on the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refresh); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes a refresh immediately (manual trigger / run-on-start).
func (s *Scheduler) RunNow() {
	s.refresh()
}

// Latest returns the most recent run result, or nil before the first
// completed refresh.
func (s *Scheduler) Latest() *aggregator.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// refresh performs one aggregation run. A fully degraded run (no asset
// resolved a current price) is retried with exponential backoff before
// being accepted; the adapters themselves never retry, so this is the
// only retry policy in the process.
func (s *Scheduler) refresh() {
	var res *aggregator.Result

	op := func() error {
		r, err := s.Agg.Run(s.Ctx)
		res = r
		if err != nil {
			// Cancellation: keep the partial result, do not retry.
			return backoff.Permanent(err)
		}
		if r.Degraded {
			return fmt.Errorf("degraded run: all current prices missing")
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 5 * time.Second
	bo.MaxElapsedTime = 2 * time.Minute
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, 3), s.Ctx)); err != nil {
		log.Printf("[WARN] refresh: %v", err)
	}
	if res == nil || len(res.Records) == 0 {
		return
	}

	s.mu.Lock()
	s.latest = res
	s.mu.Unlock()

	priced := 0
	for _, r := range res.Records {
		if r.CurrentPrice != nil {
			priced++
		}
	}
	log.Printf("[INFO] refreshed %d assets (%d with live prices)", len(res.Records), priced)

	if err := s.Recorder.RecordRun(time.Now(), res.Degraded, res.Records); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}
}
