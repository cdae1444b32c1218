package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/samandr77/microservices/certification/pkg/metrics"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

type Service struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewService() *Service {
	return &Service{
		wg: &sync.WaitGroup{},
	}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !isEnabled || interval <= 0 {
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Start(ctx context.Context) {
	for _, v := range s.jobs {
		s.wg.Add(1)
		go s.startJob(ctx, v)
	}
}

func (s *Service) startJob(ctx context.Context, job job) {
	defer s.wg.Done()

	l := slog.Default().With("job", job.name)

	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	for {
		l.Debug("job started")

		s.run(ctx, l, job)

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

// run executes one pass of j and records its result and duration under the job name.
func (s *Service) run(ctx context.Context, l *slog.Logger, j job) {
	started := time.Now()

	result := metrics.JobResultOK

	defer func() {
		metrics.JobDuration.WithLabelValues(j.name).Observe(time.Since(started).Seconds())
		metrics.JobRuns.WithLabelValues(j.name, result).Inc()
	}()

	panicked, err := s.withRecover(ctx, l, j)

	switch {
	case panicked:
		result = metrics.JobResultPanic
		l.Error("job failed", "error", err)
	case err != nil:
		result = metrics.JobResultError
		l.Error("job failed", "error", err)
	default:
		l.Debug("job done", "took", time.Since(started))
	}
}

func (s *Service) withRecover(ctx context.Context, l *slog.Logger, j job) (panicked bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))
			panicked = true
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return false, j.fn(ctx)
}

// Stop waits for running jobs to observe the cancelled context.
func (s *Service) Stop() {
	s.wg.Wait()
}
