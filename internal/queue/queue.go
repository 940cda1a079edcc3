// Package queue implements a Redis-backed job queue with at-least-once
// delivery. Jobs wait on a pending list, are moved to a processing list while
// a worker runs them (late ack), and are removed only after the handler
// returns. Delayed jobs (retries, rate-limit deferrals) sit in a sorted set
// scored by their ready time until a mover promotes them to the pending list.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"catalog-importer/internal/logger"
)

const (
	// popTimeout bounds each blocking pop so workers can observe shutdown.
	popTimeout = time.Second

	// moverInterval is how often due delayed jobs are promoted.
	moverInterval = 500 * time.Millisecond

	// moverBatchSize caps how many delayed jobs are promoted per sweep.
	moverBatchSize = 100
)

// Job is one unit of asynchronous work. Attempt counts completed retries:
// zero on first execution, incremented each time a Retry result that counts
// against the attempt budget is rescheduled.
type Job struct {
	ID      string          `json:"id"`
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
	Attempt int             `json:"attempt"`
}

// Result tells the queue what to do with a job after its handler returns.
type Result struct {
	Retry bool
	Delay time.Duration
	// CountsAttempt distinguishes backoff retries (which consume the bounded
	// attempt budget) from deferrals such as rate-limit waits (which do not).
	CountsAttempt bool
}

// Ack reports the job as done.
func Ack() Result {
	return Result{}
}

// RetryIn reschedules the job after delay, consuming one attempt.
func RetryIn(delay time.Duration) Result {
	return Result{Retry: true, Delay: delay, CountsAttempt: true}
}

// DeferIn reschedules the job after delay without consuming an attempt.
func DeferIn(delay time.Duration) Result {
	return Result{Retry: true, Delay: delay}
}

// HandlerFunc executes one job. A returned error is terminal: the job is
// acked and the failure is the handler's to record.
type HandlerFunc func(ctx context.Context, job *Job) (Result, error)

// Queue is a Redis-backed job queue with an in-process worker pool.
type Queue struct {
	client      *redis.Client
	prefix      string
	workerCount int
	maxAttempts int

	handlers map[string]HandlerFunc

	stopChan chan struct{}
	wg       sync.WaitGroup
	mu       sync.RWMutex
	started  bool
	closed   bool
}

// New creates a Queue. maxAttempts is the hard ceiling on counted retries per
// job; past it the job is abandoned even if a handler keeps asking to retry.
func New(client *redis.Client, prefix string, workerCount, maxAttempts int) *Queue {
	return &Queue{
		client:      client,
		prefix:      prefix,
		workerCount: workerCount,
		maxAttempts: maxAttempts,
		handlers:    make(map[string]HandlerFunc),
		stopChan:    make(chan struct{}),
	}
}

func (q *Queue) pendingKey() string    { return q.prefix + ":pending" }
func (q *Queue) processingKey() string { return q.prefix + ":processing" }
func (q *Queue) delayedKey() string    { return q.prefix + ":delayed" }

// Register binds a handler to a job kind. Must be called before Start.
func (q *Queue) Register(kind string, handler HandlerFunc) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		panic("queue: Register called after Start")
	}
	q.handlers[kind] = handler
}

// Enqueue schedules a new job for immediate execution and returns its id.
func (q *Queue) Enqueue(ctx context.Context, kind string, payload interface{}) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	job := &Job{
		ID:      uuid.New().String(),
		Kind:    kind,
		Payload: raw,
	}
	if err := q.push(ctx, job); err != nil {
		return "", err
	}
	return job.ID, nil
}

func (q *Queue) push(ctx context.Context, job *Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	if err := q.client.LPush(ctx, q.pendingKey(), data).Err(); err != nil {
		return fmt.Errorf("push job: %w", err)
	}
	return nil
}

// enqueueIn schedules an existing job to become ready after delay.
func (q *Queue) enqueueIn(ctx context.Context, job *Job, delay time.Duration) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	score := float64(time.Now().Add(delay).UnixMilli())
	if err := q.client.ZAdd(ctx, q.delayedKey(), &redis.Z{Score: score, Member: data}).Err(); err != nil {
		return fmt.Errorf("schedule job: %w", err)
	}
	return nil
}

// Start launches the worker pool and the delayed-job mover. Jobs left on the
// processing list from a previous run are pushed back to pending first, which
// is what gives crashed jobs their at-least-once redelivery.
func (q *Queue) Start(ctx context.Context) error {
	q.mu.Lock()
	if q.started {
		q.mu.Unlock()
		return errors.New("queue: already started")
	}
	q.started = true
	q.mu.Unlock()

	if err := q.requeueOrphans(ctx); err != nil {
		return err
	}

	for i := 0; i < q.workerCount; i++ {
		q.wg.Add(1)
		go q.worker()
	}

	q.wg.Add(1)
	go q.runMover()

	return nil
}

// requeueOrphans moves any jobs stranded on the processing list back to
// pending. Safe only because a single process owns this queue prefix.
func (q *Queue) requeueOrphans(ctx context.Context) error {
	for {
		err := q.client.RPopLPush(ctx, q.processingKey(), q.pendingKey()).Err()
		if err == redis.Nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("requeue orphans: %w", err)
		}
	}
}

// Stop shuts the worker pool down and waits for in-flight jobs to finish.
func (q *Queue) Stop() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	close(q.stopChan)
	q.wg.Wait()
}

func (q *Queue) worker() {
	defer q.wg.Done()

	ctx := context.Background()
	for {
		select {
		case <-q.stopChan:
			return
		default:
		}

		raw, err := q.client.BRPopLPush(ctx, q.pendingKey(), q.processingKey(), popTimeout).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			logger.Error("Queue pop failed", slog.String("error", err.Error()))
			select {
			case <-q.stopChan:
				return
			case <-time.After(popTimeout):
			}
			continue
		}

		q.process(ctx, raw)
	}
}

func (q *Queue) process(ctx context.Context, raw string) {
	// Whatever happens below, the processing entry is consumed exactly once.
	defer func() {
		if err := q.client.LRem(ctx, q.processingKey(), 1, raw).Err(); err != nil {
			logger.Error("Queue ack failed", slog.String("error", err.Error()))
		}
	}()

	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		logger.Error("Discarding malformed job", slog.String("error", err.Error()))
		return
	}

	q.mu.RLock()
	handler, ok := q.handlers[job.Kind]
	q.mu.RUnlock()
	if !ok {
		logger.Error("No handler for job kind",
			slog.String("job_id", job.ID),
			slog.String("kind", job.Kind))
		return
	}

	result, err := handler(ctx, &job)
	if err != nil {
		logger.Error("Job failed",
			slog.String("job_id", job.ID),
			slog.String("kind", job.Kind),
			slog.Int("attempt", job.Attempt),
			slog.String("error", err.Error()))
		return
	}

	if !result.Retry {
		return
	}

	if result.CountsAttempt {
		if job.Attempt >= q.maxAttempts {
			logger.Warn("Job abandoned after max attempts",
				slog.String("job_id", job.ID),
				slog.String("kind", job.Kind),
				slog.Int("attempt", job.Attempt))
			return
		}
		job.Attempt++
	}

	if err := q.enqueueIn(ctx, &job, result.Delay); err != nil {
		logger.Error("Job reschedule failed",
			slog.String("job_id", job.ID),
			slog.String("error", err.Error()))
	}
}

// runMover periodically promotes due delayed jobs onto the pending list.
func (q *Queue) runMover() {
	defer q.wg.Done()

	ticker := time.NewTicker(moverInterval)
	defer ticker.Stop()

	ctx := context.Background()
	for {
		select {
		case <-ticker.C:
			if err := q.moveDueJobs(ctx); err != nil {
				logger.Error("Delayed job sweep failed", slog.String("error", err.Error()))
			}
		case <-q.stopChan:
			return
		}
	}
}

func (q *Queue) moveDueJobs(ctx context.Context) error {
	now := fmt.Sprintf("%d", time.Now().UnixMilli())
	due, err := q.client.ZRangeByScore(ctx, q.delayedKey(), &redis.ZRangeBy{
		Min:   "-inf",
		Max:   now,
		Count: moverBatchSize,
	}).Result()
	if err != nil {
		return err
	}

	for _, member := range due {
		pipe := q.client.TxPipeline()
		pipe.ZRem(ctx, q.delayedKey(), member)
		pipe.LPush(ctx, q.pendingKey(), member)
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
