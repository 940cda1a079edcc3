package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-importer/internal/domain"
)

// PostgresWebhookRepository implements WebhookRepository using PostgreSQL.
type PostgresWebhookRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWebhookRepository creates a new PostgresWebhookRepository.
func NewPostgresWebhookRepository(pool *pgxpool.Pool) *PostgresWebhookRepository {
	return &PostgresWebhookRepository{pool: pool}
}

// Create inserts a new webhook subscription.
func (r *PostgresWebhookRepository) Create(ctx context.Context, w *domain.Webhook) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO webhooks (url, event_type, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id, created_at, updated_at
	`, w.URL, w.EventType, w.Enabled).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create webhook: %w", err)
	}
	return nil
}

// GetByID returns a webhook by primary key, or ErrNotFound.
func (r *PostgresWebhookRepository) GetByID(ctx context.Context, id int64) (*domain.Webhook, error) {
	var w domain.Webhook
	err := r.pool.QueryRow(ctx, `
		SELECT id, url, event_type, enabled, last_response_code, last_response_time_ms, created_at, updated_at
		FROM webhooks
		WHERE id = $1
	`, id).Scan(&w.ID, &w.URL, &w.EventType, &w.Enabled, &w.LastResponseCode, &w.LastResponseTimeMs, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get webhook: %w", err)
	}
	return &w, nil
}

// List returns a page of webhooks, newest first.
func (r *PostgresWebhookRepository) List(ctx context.Context, page, pageSize int) ([]domain.Webhook, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, url, event_type, enabled, last_response_code, last_response_time_ms, created_at, updated_at
		FROM webhooks
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("list webhooks: %w", err)
	}
	defer rows.Close()

	return scanWebhooks(rows)
}

// ListEnabled returns the enabled webhooks registered for exactly eventType.
func (r *PostgresWebhookRepository) ListEnabled(ctx context.Context, eventType string) ([]domain.Webhook, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, url, event_type, enabled, last_response_code, last_response_time_ms, created_at, updated_at
		FROM webhooks
		WHERE enabled = true AND event_type = $1
		ORDER BY id
	`, eventType)
	if err != nil {
		return nil, fmt.Errorf("list enabled webhooks: %w", err)
	}
	defer rows.Close()

	return scanWebhooks(rows)
}

func scanWebhooks(rows pgx.Rows) ([]domain.Webhook, error) {
	var webhooks []domain.Webhook
	for rows.Next() {
		var w domain.Webhook
		if err := rows.Scan(&w.ID, &w.URL, &w.EventType, &w.Enabled, &w.LastResponseCode, &w.LastResponseTimeMs, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan webhook: %w", err)
		}
		webhooks = append(webhooks, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read webhooks: %w", err)
	}
	return webhooks, nil
}

// Update overwrites the registration fields of a webhook.
func (r *PostgresWebhookRepository) Update(ctx context.Context, w *domain.Webhook) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE webhooks
		SET url = $2, event_type = $3, enabled = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, w.ID, w.URL, w.EventType, w.Enabled).Scan(&w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update webhook: %w", err)
	}
	return nil
}

// Delete removes a webhook by id, or returns ErrNotFound.
func (r *PostgresWebhookRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM webhooks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordDelivery persists the last terminal delivery outcome for a webhook.
func (r *PostgresWebhookRepository) RecordDelivery(ctx context.Context, id int64, statusCode, elapsedMs int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE webhooks
		SET last_response_code = $2, last_response_time_ms = $3, updated_at = now()
		WHERE id = $1
	`, id, statusCode, elapsedMs)
	if err != nil {
		return fmt.Errorf("record delivery: %w", err)
	}
	return nil
}
