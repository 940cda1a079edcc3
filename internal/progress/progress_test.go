package progress_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-importer/internal/domain"
	"catalog-importer/internal/progress"
)

func newTracker(t *testing.T) (*progress.Tracker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return progress.NewTracker(client, time.Hour), mr
}

func TestTracker_InitAndGet(t *testing.T) {
	tracker, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Init(ctx, "job-1"))

	snap, err := tracker.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusQueued, snap.Status)
	assert.Equal(t, "queued", snap.Stage)
	assert.Zero(t, snap.Processed)
	assert.Zero(t, snap.Errors)
}

func TestTracker_InitKeepsExistingSnapshot(t *testing.T) {
	tracker, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Update(ctx, "job-1", progress.Update{
		Status:    progress.Status(domain.JobStatusCompleted),
		Stage:     progress.String("completed"),
		Processed: progress.Int(2),
		Total:     progress.Int(2),
	}))

	// A late Init must not clobber state written by the worker.
	require.NoError(t, tracker.Init(ctx, "job-1"))

	snap, err := tracker.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, snap.Status)
	assert.Equal(t, 2, snap.Processed)
}

func TestTracker_GetMissing(t *testing.T) {
	tracker, _ := newTracker(t)

	_, err := tracker.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, progress.ErrNotFound)
}

func TestTracker_UpdateMergesFields(t *testing.T) {
	tracker, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Init(ctx, "job-1"))
	require.NoError(t, tracker.Update(ctx, "job-1", progress.Update{
		Status:  progress.Status(domain.JobStatusRunning),
		Stage:   progress.String("importing"),
		Message: progress.String("Importing in batches"),
	}))
	require.NoError(t, tracker.Update(ctx, "job-1", progress.Update{
		Processed: progress.Int(5000),
		Errors:    progress.Int(3),
	}))

	snap, err := tracker.Get(ctx, "job-1")
	require.NoError(t, err)
	// Fields not named in the second update survive the merge.
	assert.Equal(t, domain.JobStatusRunning, snap.Status)
	assert.Equal(t, "importing", snap.Stage)
	assert.Equal(t, "Importing in batches", snap.Message)
	assert.Equal(t, 5000, snap.Processed)
	assert.Equal(t, 3, snap.Errors)
}

func TestTracker_UpdateCreatesIfAbsent(t *testing.T) {
	tracker, _ := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Update(ctx, "job-2", progress.Update{
		Status: progress.Status(domain.JobStatusRunning),
	}))

	snap, err := tracker.Get(ctx, "job-2")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusRunning, snap.Status)
}

func TestTracker_Expiry(t *testing.T) {
	tracker, mr := newTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Init(ctx, "job-1"))

	mr.FastForward(time.Hour + time.Minute)

	_, err := tracker.Get(ctx, "job-1")
	assert.ErrorIs(t, err, progress.ErrNotFound)
}

func TestSnapshot_Terminal(t *testing.T) {
	assert.False(t, domain.ProgressSnapshot{Status: domain.JobStatusQueued}.Terminal())
	assert.False(t, domain.ProgressSnapshot{Status: domain.JobStatusRunning}.Terminal())
	assert.True(t, domain.ProgressSnapshot{Status: domain.JobStatusCompleted}.Terminal())
	assert.True(t, domain.ProgressSnapshot{Status: domain.JobStatusFailed}.Terminal())
}
