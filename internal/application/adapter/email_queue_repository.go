package adapter

//go:generate mockgen -source=email_queue_repository.go -destination=mocks/mock_email_queue_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for email queue persistence operations.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled_at.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// FindByReservation lists the jobs queued for a reservation, newest first.
	FindByReservation(ctx context.Context, reservationID uuid.UUID) ([]*entity.EmailJob, error)

	// DeleteOldSentJobs removes sent jobs older than the given number of days.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}
