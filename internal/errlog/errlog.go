// Package errlog keeps a bounded, most-recent-first record of per-row import
// failures in Redis. The list is capped; oldest entries fall off the tail.
package errlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"catalog-importer/internal/domain"
)

// MaxEntries is the cap on retained error records per job.
const MaxEntries = 1000

// Log stores per-job import error records.
type Log struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLog creates a Log with the given retention window.
func NewLog(client *redis.Client, ttl time.Duration) *Log {
	return &Log{client: client, ttl: ttl}
}

func key(jobID string) string {
	return "job:" + jobID + ":errors"
}

// Push prepends a record, trims the list to the cap, and refreshes expiry.
func (l *Log) Push(ctx context.Context, jobID string, rec domain.ErrorRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode error record: %w", err)
	}

	k := key(jobID)
	pipe := l.client.TxPipeline()
	pipe.LPush(ctx, k, data)
	pipe.LTrim(ctx, k, 0, MaxEntries-1)
	pipe.Expire(ctx, k, l.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push error record: %w", err)
	}
	return nil
}

// List returns up to limit records, most recent first.
func (l *Log) List(ctx context.Context, jobID string, limit int) ([]domain.ErrorRecord, error) {
	if limit <= 0 || limit > MaxEntries {
		limit = MaxEntries
	}

	raws, err := l.client.LRange(ctx, key(jobID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list error records: %w", err)
	}

	records := make([]domain.ErrorRecord, 0, len(raws))
	for _, raw := range raws {
		var rec domain.ErrorRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode error record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Count returns the number of currently retained records. It is bounded by
// the cap, not the true historical failure count.
func (l *Log) Count(ctx context.Context, jobID string) (int, error) {
	n, err := l.client.LLen(ctx, key(jobID)).Result()
	if err != nil {
		return 0, fmt.Errorf("count error records: %w", err)
	}
	return int(n), nil
}
