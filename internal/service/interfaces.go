package service

import (
	"context"
	"io"

	"catalog-importer/internal/domain"
)

// JobEnqueuer schedules jobs on the shared queue. Satisfied by *queue.Queue.
type JobEnqueuer interface {
	Enqueue(ctx context.Context, kind string, payload interface{}) (string, error)
}

// ImportServiceInterface defines the interface for import operations.
// Used for dependency injection and mocking in tests.
type ImportServiceInterface interface {
	// StartImport saves the uploaded file and enqueues an import job,
	// returning the job id progress is tracked under.
	StartImport(ctx context.Context, filename string, reader io.Reader) (string, error)
	// GetProgress returns the current progress snapshot for a job.
	GetProgress(ctx context.Context, jobID string) (domain.ProgressSnapshot, error)
	// ListErrors returns the retained error count and up to limit most
	// recent error records for a job.
	ListErrors(ctx context.Context, jobID string, limit int) (int, []domain.ErrorRecord, error)
}

// DeliveryScheduler schedules a delivery for one specific subscription,
// bypassing the event-type fan-out. Satisfied by *WebhookService.
type DeliveryScheduler interface {
	EnqueueDelivery(ctx context.Context, webhookID int64, eventType string, payload map[string]interface{}) (string, error)
}

// EventEnqueuer fans a catalog-mutation event out to matching webhook
// subscriptions. Scheduling is best-effort: callers log and discard the
// returned error, and a catalog mutation never fails because of it.
type EventEnqueuer interface {
	EnqueueEvent(ctx context.Context, eventType string, payload map[string]interface{}) ([]string, error)
}
