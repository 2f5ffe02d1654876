package scheduler

//go:generate go run go.uber.org/mock/mockgen@latest -source=scheduler.go -destination=mocks_test.go -package=scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bizdesk-server/internal/observability"

	"github.com/robfig/cron/v3"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging and locking
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns a standard five-field cron spec
	Schedule() string
}

// Locker serializes job runs across worker replicas.
type Locker interface {
	TryLock(ctx context.Context, name string, ttl time.Duration) (func(context.Context) error, bool, error)
}

// Scheduler runs registered jobs on their cron schedules.
type Scheduler struct {
	cron    *cron.Cron
	jobs    []Job
	locker  Locker
	lockTTL time.Duration
	logger  *observability.Logger
	mu      sync.Mutex
	started bool
}

// New creates a new scheduler. A nil locker runs every job without locking.
func New(locker Locker, lockTTL time.Duration, location *time.Location, logger *observability.Logger) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithChain(cron.Recover(cronLogger{logger: logger})),
		),
		locker:  locker,
		lockTTL: lockTTL,
		logger:  logger,
	}
}

// Register adds a job to the scheduler. It must be called before Start.
func (s *Scheduler) Register(job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("cannot register job %s: scheduler already started", job.Name())
	}
	if _, err := cron.ParseStandard(job.Schedule()); err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", job.Schedule(), job.Name(), err)
	}
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (schedule: %s)",
		job.Name(), job.Schedule()))
	return nil
}

// Start runs all registered jobs until ctx is cancelled, then waits for
// in-flight runs to finish.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	for _, job := range s.jobs {
		job := job
		jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})
		if _, err := s.cron.AddFunc(job.Schedule(), func() {
			_ = s.executeJob(jobCtx, job)
		}); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
		}
	}
	s.started = true
	s.mu.Unlock()

	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))
	s.cron.Start()

	// Wait for context cancellation
	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

// executeJob executes a job under its lock and logs timing
func (s *Scheduler) executeJob(ctx context.Context, job Job) error {
	if s.locker != nil {
		release, acquired, err := s.locker.TryLock(ctx, job.Name(), s.lockTTL)
		switch {
		case err != nil:
			s.logger.Error(ctx, fmt.Sprintf("Failed to take lock for job %s, running unlocked", job.Name()), err)
		case !acquired:
			s.logger.Debug(ctx, fmt.Sprintf("Job %s is already running on another instance, skipping", job.Name()))
			return nil
		default:
			defer func() {
				if err := release(context.WithoutCancel(ctx)); err != nil {
					s.logger.Error(ctx, fmt.Sprintf("Failed to release lock for job %s", job.Name()), err)
				}
			}()
		}
	}

	start := time.Now()
	s.logger.Info(ctx, fmt.Sprintf("Executing scheduled job: %s", job.Name()))

	err := job.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return err
	}

	s.logger.Info(ctx, fmt.Sprintf("Job %s completed successfully in %v", job.Name(), duration))
	return nil
}

// cronLogger routes cron's own messages (including recovered panics) to the
// application logger.
type cronLogger struct {
	logger *observability.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(append([]interface{}{"cron: " + msg + " "}, keysAndValues...)...))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(append([]interface{}{"cron: " + msg + " "}, keysAndValues...)...), err)
}
