package repository

import (
	"context"
	"errors"

	"catalog-importer/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("repository: not found")

// ErrConflict is returned when a write violates a uniqueness constraint,
// e.g. creating a product whose SKU already exists case-insensitively.
var ErrConflict = errors.New("repository: conflict")

// ProductRepository defines methods for catalog data access.
type ProductRepository interface {
	// BulkUpsert writes one batch of import rows in a single statement inside
	// its own transaction, keyed on the case-insensitive SKU. On conflict the
	// name, description and price are overwritten and updated_at refreshed;
	// created_at is preserved.
	BulkUpsert(ctx context.Context, rows []domain.ProductRow) error
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

// WebhookRepository defines methods for webhook subscription data access.
type WebhookRepository interface {
	Create(ctx context.Context, w *domain.Webhook) error
	GetByID(ctx context.Context, id int64) (*domain.Webhook, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Webhook, error)
	Update(ctx context.Context, w *domain.Webhook) error
	Delete(ctx context.Context, id int64) error
	// ListEnabled returns the enabled subscriptions whose event type matches
	// exactly.
	ListEnabled(ctx context.Context, eventType string) ([]domain.Webhook, error)
	// RecordDelivery persists the outcome of a terminal delivery attempt.
	RecordDelivery(ctx context.Context, id int64, statusCode, elapsedMs int) error
}
