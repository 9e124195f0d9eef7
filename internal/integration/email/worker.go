package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/email/templates"
)

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig polls every 5 seconds for up to 10 jobs.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// BodyRenderer produces the HTML and plain text bodies of a template.
type BodyRenderer interface {
	Render(name string, data interface{}) (string, string, error)
}

var _ BodyRenderer = (*templates.Renderer)(nil)

// Worker drains the outbox: it renders each due job and hands it to the sender.
type Worker struct {
	queue    adapter.EmailQueueRepository
	sender   adapter.EmailSender
	renderer BodyRenderer
	config   WorkerConfig
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer BodyRenderer, config WorkerConfig) *Worker {
	if config.PollInterval <= 0 || config.BatchSize <= 0 {
		config = DefaultWorkerConfig()
	}
	return &Worker{
		queue:    queue,
		sender:   sender,
		renderer: renderer,
		config:   config,
	}
}

// Start runs the worker loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.config.PollInterval,
		"batch_size", w.config.BatchSize,
	)

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	w.ProcessNow(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
			w.ProcessNow(ctx)
		}
	}
}

// ProcessNow processes one batch of due jobs and returns how many were sent.
func (w *Worker) ProcessNow(ctx context.Context) int {
	jobs, err := w.queue.GetPendingJobs(ctx, w.config.BatchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return 0
	}

	sent := 0
	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		if w.process(ctx, job) {
			sent++
		}
	}
	if len(jobs) > 0 {
		slog.Debug("Email batch processed", "jobs", len(jobs), "sent", sent)
	}
	return sent
}

func (w *Worker) process(ctx context.Context, job *entity.EmailJob) bool {
	logger := slog.With("job_id", job.ID, "template", job.TemplateType, "reservation_id", job.ReservationID)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to claim email job", "error", err)
		return false
	}

	html, text, err := w.render(job)
	if err != nil {
		logger.Error("Failed to render email", "error", err)
		w.fail(ctx, logger, job, err, true)
		return false
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		var emailErr *domainerror.EmailError
		permanent := errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure
		w.fail(ctx, logger, job, err, permanent)
		return false
	}

	job.MarkSent(result.ProviderID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark email job as sent", "error", err)
		return false
	}
	logger.Info("Email sent", "provider_id", result.ProviderID)
	return true
}

func (w *Worker) render(job *entity.EmailJob) (string, string, error) {
	var data interface{}
	switch job.TemplateType {
	case entity.TemplateBookingConfirmation:
		data = templates.BookingConfirmationData{
			GuestName:    stringField(job.TemplateData, "guest_name"),
			PropertyName: stringField(job.TemplateData, "property_name"),
			CheckIn:      stringField(job.TemplateData, "check_in"),
			CheckOut:     stringField(job.TemplateData, "check_out"),
			Nights:       intField(job.TemplateData, "nights"),
			TotalAmount:  stringField(job.TemplateData, "total_amount"),
		}
	case entity.TemplatePaymentReceipt:
		data = templates.PaymentReceiptData{
			GuestName:    stringField(job.TemplateData, "guest_name"),
			PropertyName: stringField(job.TemplateData, "property_name"),
			CheckIn:      stringField(job.TemplateData, "check_in"),
			CheckOut:     stringField(job.TemplateData, "check_out"),
			TotalPaid:    stringField(job.TemplateData, "total_paid"),
			PaymentCount: intField(job.TemplateData, "payment_count"),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			fmt.Sprintf("unknown template %q", job.TemplateType),
			domainerror.ErrInvalidTemplate,
		)
	}

	html, text, err := w.renderer.Render(string(job.TemplateType), data)
	if err != nil {
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			fmt.Sprintf("failed to render %s: %v", job.TemplateType, err),
			domainerror.ErrTemplateRenderFailed,
		)
	}
	return html, text, nil
}

func (w *Worker) fail(ctx context.Context, logger *slog.Logger, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)
	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		logger.Error("Failed to record email failure", "error", updateErr)
	}

	if job.Status == entity.EmailStatusFailed {
		logger.Warn("Email job failed permanently", "attempts", job.Attempts, "last_error", job.LastError)
		return
	}
	logger.Info("Email job scheduled for retry", "attempts", job.Attempts, "scheduled_at", job.ScheduledAt)
}

func stringField(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

// intField accepts float64 too since template data round-trips through JSON.
func intField(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
