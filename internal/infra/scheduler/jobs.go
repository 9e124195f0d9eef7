package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// TokenPurger removes expired refresh tokens.
type TokenPurger interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SentEmailPurger removes delivered e-mails past retention.
type SentEmailPurger interface {
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}

// RateLimitPurger drops expired in-memory rate limit windows.
type RateLimitPurger interface {
	Cleanup() int
}

// StayCompleter marks confirmed stays that have ended as completed.
type StayCompleter interface {
	CompletePastStays(ctx context.Context, before time.Time) (int64, error)
}

// Jobs holds the maintenance tasks.
type Jobs struct {
	tokens        TokenPurger
	emails        SentEmailPurger
	stays         StayCompleter
	limits        RateLimitPurger
	retentionDays int
	now           func() time.Time
}

// NewJobs creates the maintenance tasks. limits may be nil.
func NewJobs(tokens TokenPurger, emails SentEmailPurger, stays StayCompleter, limits RateLimitPurger, retentionDays int) *Jobs {
	return &Jobs{
		tokens:        tokens,
		emails:        emails,
		stays:         stays,
		limits:        limits,
		retentionDays: retentionDays,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// PurgeExpiredTokens deletes refresh tokens that expired before now.
func (j *Jobs) PurgeExpiredTokens(ctx context.Context) error {
	n, err := j.tokens.DeleteExpired(ctx, j.now())
	if err != nil {
		return fmt.Errorf("failed to purge expired tokens: %w", err)
	}
	if n > 0 {
		slog.Info("Expired refresh tokens purged", "count", n)
	}
	return nil
}

// PurgeSentEmails deletes delivered e-mails older than the retention window.
func (j *Jobs) PurgeSentEmails(ctx context.Context) error {
	n, err := j.emails.DeleteOldSentJobs(ctx, j.retentionDays)
	if err != nil {
		return fmt.Errorf("failed to purge sent emails: %w", err)
	}
	if n > 0 {
		slog.Info("Sent email jobs purged", "count", n, "retention_days", j.retentionDays)
	}
	return nil
}

// CompletePastStays completes confirmed reservations whose check-out day is
// today or earlier. Completed stays still block the calendar.
func (j *Jobs) CompletePastStays(ctx context.Context) error {
	n, err := j.stays.CompletePastStays(ctx, j.now())
	if err != nil {
		return fmt.Errorf("failed to complete past stays: %w", err)
	}
	if n > 0 {
		slog.Info("Past stays completed", "count", n)
	}
	return nil
}

// PurgeRateLimitEntries drops login throttle windows that have expired.
func (j *Jobs) PurgeRateLimitEntries(context.Context) error {
	if j.limits == nil {
		return nil
	}
	if n := j.limits.Cleanup(); n > 0 {
		slog.Debug("Expired rate limit windows purged", "count", n)
	}
	return nil
}
