// internal/app/system/tasks/runner.go
package tasks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a named unit of periodic background work.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Runner drives a set of Jobs on their intervals until stopped. Each job
// gets its own goroutine; a failing run is logged and retried on the next
// tick rather than aborting the loop.
type Runner struct {
	log    *zap.Logger
	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{
		log:    logger,
		stopCh: make(chan struct{}),
	}
}

// Start launches the given jobs. Call once.
func (r *Runner) Start(jobs ...Job) {
	for _, job := range jobs {
		r.wg.Add(1)
		go r.loop(job)
	}
}

func (r *Runner) loop(job Job) {
	defer r.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), job.Interval)
			if err := job.Run(ctx); err != nil {
				r.log.Warn("background job failed",
					zap.String("job", job.Name),
					zap.Error(err))
			}
			cancel()
		}
	}
}

// Stop halts all jobs and waits for in-flight runs to finish. Safe to call
// more than once.
func (r *Runner) Stop() {
	r.once.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}
