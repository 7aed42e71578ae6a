package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named function run on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Poller runs registered jobs on their intervals until stopped. Each job
// runs once immediately on Start and then on every tick.
type Poller struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// New creates an empty poller.
func New() *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job. Must be called before Start.
func (p *Poller) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.jobs = append(p.jobs, Job{
		Name:     name,
		Interval: interval,
		Fn:       fn,
	})
	slog.Info("Poll job registered", "name", name, "interval", interval)
}

// Start begins running all registered jobs.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, job := range p.jobs {
		p.wg.Add(1)
		go p.runJob(job)
	}
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (p *Poller) Stop() {
	p.cancel()
	p.wg.Wait()
	slog.Info("Poller stopped")
}

func (p *Poller) runJob(job Job) {
	defer p.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	p.executeJob(job)

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.executeJob(job)
		}
	}
}

func (p *Poller) executeJob(job Job) {
	start := time.Now()

	if err := job.Fn(p.ctx); err != nil {
		slog.Error("Poll job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Poll job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce runs every registered job a single time with ctx. Useful in tests
// and for on-demand refreshes.
func (p *Poller) RunOnce(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, job := range p.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Poll job failed", "name", job.Name, "error", err)
		}
	}
}
