package background

import (
	"context"
	"log"
	"sync"
	"time"

	"stockflow/internal/jobs"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// JobScheduler manages periodic background jobs
type JobScheduler struct {
	scheduler gocron.Scheduler
	sweep     *jobs.LowStockSweep
	interval  time.Duration
	jobs      map[string]gocron.Job
	mu        sync.RWMutex
}

func NewJobScheduler(sweep *jobs.LowStockSweep, interval time.Duration) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler: scheduler,
		sweep:     sweep,
		interval:  interval,
		jobs:      make(map[string]gocron.Job),
	}

	if err := js.registerJobs(); err != nil {
		return nil, err
	}
	return js, nil
}

func (js *JobScheduler) registerJobs() error {
	job, err := js.scheduler.NewJob(
		gocron.DurationJob(js.interval),
		gocron.NewTask(func() {
			runID := uuid.NewString()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if err := js.sweep.Run(ctx, runID); err != nil {
				log.Printf("low-stock sweep %s failed: %v", runID, err)
			}
		}),
	)
	if err != nil {
		return err
	}

	js.mu.Lock()
	js.jobs["low_stock_sweep"] = job
	js.mu.Unlock()
	return nil
}

// Start begins executing registered jobs.
func (js *JobScheduler) Start() {
	js.scheduler.Start()
	log.Printf("job scheduler started, low-stock sweep every %s", js.interval)
}

// Stop shuts the scheduler down, waiting for running jobs.
func (js *JobScheduler) Stop() error {
	return js.scheduler.Shutdown()
}

// JobNames lists registered job names.
func (js *JobScheduler) JobNames() []string {
	js.mu.RLock()
	defer js.mu.RUnlock()
	names := make([]string, 0, len(js.jobs))
	for name := range js.jobs {
		names = append(names, name)
	}
	return names
}
