// Package progress tracks import job lifecycle state in Redis. One snapshot
// per job id, stored as a JSON value that expires after the retention window.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"catalog-importer/internal/domain"
)

// ErrNotFound is returned when no snapshot exists for a job id.
var ErrNotFound = errors.New("progress: not found")

// Update carries the fields to merge into an existing snapshot. Nil fields
// are left untouched.
type Update struct {
	Status    *domain.JobStatus
	Stage     *string
	Processed *int
	Total     *int
	Errors    *int
	Message   *string
}

// Tracker reads and writes progress snapshots.
//
// Updates are read-modify-write without locking: exactly one worker owns a
// given import job at a time, so there is a single writer per key. Concurrent
// writers to the same job id would race.
type Tracker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTracker creates a Tracker with the given retention window.
func NewTracker(client *redis.Client, ttl time.Duration) *Tracker {
	return &Tracker{client: client, ttl: ttl}
}

func key(jobID string) string {
	return "job:" + jobID + ":progress"
}

// Init creates the initial snapshot for a job (status queued, all counters
// zero). The write is skipped if a snapshot already exists, so a worker that
// picked the job up first keeps whatever state it wrote.
func (t *Tracker) Init(ctx context.Context, jobID string) error {
	data, err := json.Marshal(domain.ProgressSnapshot{
		Status: domain.JobStatusQueued,
		Stage:  "queued",
	})
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := t.client.SetNX(ctx, key(jobID), data, t.ttl).Err(); err != nil {
		return fmt.Errorf("init progress: %w", err)
	}
	return nil
}

// Get returns the current snapshot, or ErrNotFound.
func (t *Tracker) Get(ctx context.Context, jobID string) (domain.ProgressSnapshot, error) {
	raw, err := t.client.Get(ctx, key(jobID)).Result()
	if err == redis.Nil {
		return domain.ProgressSnapshot{}, ErrNotFound
	}
	if err != nil {
		return domain.ProgressSnapshot{}, fmt.Errorf("get progress: %w", err)
	}

	var snap domain.ProgressSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return domain.ProgressSnapshot{}, fmt.Errorf("decode progress: %w", err)
	}
	return snap, nil
}

// Update merges the given fields into the stored snapshot, creating it if
// absent, and refreshes the retention window.
func (t *Tracker) Update(ctx context.Context, jobID string, u Update) error {
	snap, err := t.Get(ctx, jobID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	if u.Status != nil {
		snap.Status = *u.Status
	}
	if u.Stage != nil {
		snap.Stage = *u.Stage
	}
	if u.Processed != nil {
		snap.Processed = *u.Processed
	}
	if u.Total != nil {
		snap.Total = *u.Total
	}
	if u.Errors != nil {
		snap.Errors = *u.Errors
	}
	if u.Message != nil {
		snap.Message = *u.Message
	}

	return t.set(ctx, jobID, snap)
}

func (t *Tracker) set(ctx context.Context, jobID string, snap domain.ProgressSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := t.client.Set(ctx, key(jobID), data, t.ttl).Err(); err != nil {
		return fmt.Errorf("set progress: %w", err)
	}
	return nil
}

// Helpers for building partial updates without pointer noise at call sites.

func Status(s domain.JobStatus) *domain.JobStatus { return &s }
func String(s string) *string                     { return &s }
func Int(i int) *int                              { return &i }
