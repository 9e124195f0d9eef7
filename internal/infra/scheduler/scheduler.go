// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/rentaldesk/backend/config"
)

const jobTimeout = 2 * time.Minute

var errInvalidTimeOfDay = errors.New("time of day must be HH:MM")

// Scheduler wraps a gocron scheduler. Every job runs in singleton mode so a
// slow run is never overlapped by the next one.
type Scheduler struct {
	scheduler gocron.Scheduler
	jobs      *Jobs
}

// New creates a scheduler for the maintenance jobs.
func New(jobs *Jobs) (*Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithGlobalJobOptions(
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					slog.Error("Scheduled job panicked", "job_id", jobID, "job_name", jobName, "panic", recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{scheduler: s, jobs: jobs}, nil
}

// Register adds the maintenance jobs using the configured cadence.
func (s *Scheduler) Register(cfg config.SchedulerConfig) error {
	hour, minute, err := parseTimeOfDay(cfg.CompleteStaysAt)
	if err != nil {
		return err
	}

	if err := s.add("purge_expired_tokens", gocron.DurationJob(cfg.TokenPurgeInterval), s.jobs.PurgeExpiredTokens); err != nil {
		return err
	}
	if err := s.add("purge_sent_emails", gocron.DurationJob(cfg.EmailPurgeInterval), s.jobs.PurgeSentEmails); err != nil {
		return err
	}
	if err := s.add("purge_rate_limit_entries", gocron.DurationJob(cfg.RateLimitPurgeInterval), s.jobs.PurgeRateLimitEntries); err != nil {
		return err
	}
	return s.add("complete_past_stays",
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		s.jobs.CompletePastStays,
	)
}

func (s *Scheduler) add(name string, definition gocron.JobDefinition, run func(ctx context.Context) error) error {
	logger := slog.With("job_name", name)
	task := func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		started := time.Now()
		if err := run(ctx); err != nil {
			logger.Error("Scheduled job failed", "error", err)
			return
		}
		logger.Debug("Scheduled job completed", "duration", time.Since(started))
	}

	if _, err := s.scheduler.NewJob(definition, gocron.NewTask(task), gocron.WithName(name)); err != nil {
		return fmt.Errorf("failed to register job %s: %w", name, err)
	}
	logger.Info("Scheduled job registered")
	return nil
}

// Start begins running the registered jobs.
func (s *Scheduler) Start() {
	slog.Info("Scheduler starting", "jobs", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

// Shutdown stops the scheduler and waits for running jobs.
func (s *Scheduler) Shutdown() error {
	slog.Info("Scheduler stopping")
	return s.scheduler.Shutdown()
}

func parseTimeOfDay(s string) (uint, uint, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidTimeOfDay, s)
	}
	return uint(t.Hour()), uint(t.Minute()), nil
}
