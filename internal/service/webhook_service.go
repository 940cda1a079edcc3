package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"catalog-importer/internal/domain"
	"catalog-importer/internal/logger"
	"catalog-importer/internal/metrics"
	"catalog-importer/internal/queue"
	"catalog-importer/internal/ratelimit"
	"catalog-importer/internal/repository"
)

// deliveryPayload is the job payload for a single webhook delivery. The event
// payload is captured at enqueue time so every subscriber sees the same body
// regardless of when its delivery runs.
type deliveryPayload struct {
	WebhookID int64           `json:"webhook_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
}

// WebhookService fans events out to subscriptions and executes delivery jobs.
type WebhookService struct {
	webhookRepo repository.WebhookRepository
	limiter     *ratelimit.FixedWindow
	jobs        JobEnqueuer
	httpClient  *http.Client
	maxRetries  int
	rateLimit   int
	rateWindow  time.Duration
}

// NewWebhookService creates a new WebhookService. timeout bounds each
// outbound HTTP request.
func NewWebhookService(
	webhookRepo repository.WebhookRepository,
	limiter *ratelimit.FixedWindow,
	jobs JobEnqueuer,
	timeout time.Duration,
	maxRetries int,
	rateLimit int,
	rateWindow time.Duration,
) *WebhookService {
	return &WebhookService{
		webhookRepo: webhookRepo,
		limiter:     limiter,
		jobs:        jobs,
		httpClient:  &http.Client{Timeout: timeout},
		maxRetries:  maxRetries,
		rateLimit:   rateLimit,
		rateWindow:  rateWindow,
	}
}

// EnqueueEvent schedules one delivery job per enabled subscription matching
// eventType. Enqueue failures are logged and counted but never propagate to
// the caller: the triggering operation has already committed.
func (s *WebhookService) EnqueueEvent(ctx context.Context, eventType string, payload map[string]interface{}) ([]string, error) {
	webhooks, err := s.webhookRepo.ListEnabled(ctx, eventType)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	if len(webhooks) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode event payload: %w", err)
	}

	jobIDs := make([]string, 0, len(webhooks))
	for _, wh := range webhooks {
		jobID, err := s.jobs.Enqueue(ctx, domain.JobKindWebhookDelivery, deliveryPayload{
			WebhookID: wh.ID,
			EventType: eventType,
			Payload:   body,
		})
		if err != nil {
			metrics.EventEnqueueFailuresTotal.Inc()
			logger.WithWebhookID(wh.ID).Error("Failed to enqueue delivery",
				slog.String("event_type", eventType),
				slog.String("error", err.Error()))
			continue
		}
		jobIDs = append(jobIDs, jobID)
	}

	metrics.EventsEnqueuedTotal.WithLabelValues(eventType).Add(float64(len(jobIDs)))
	return jobIDs, nil
}

// EnqueueDelivery schedules a delivery for a single subscription, bypassing
// the event-type fan-out. Used for test fires.
func (s *WebhookService) EnqueueDelivery(ctx context.Context, webhookID int64, eventType string, payload map[string]interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode event payload: %w", err)
	}
	return s.jobs.Enqueue(ctx, domain.JobKindWebhookDelivery, deliveryPayload{
		WebhookID: webhookID,
		EventType: eventType,
		Payload:   body,
	})
}

// HandleDelivery is the job body for webhook deliveries. The subscription
// row is re-read on every run so deletions and toggles between enqueue and
// execution are honored.
func (s *WebhookService) HandleDelivery(ctx context.Context, job *queue.Job) (queue.Result, error) {
	var payload deliveryPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return queue.Ack(), fmt.Errorf("decode delivery payload: %w", err)
	}

	log := logger.WithWebhookID(payload.WebhookID).With(slog.String("job_id", job.ID))

	wh, err := s.webhookRepo.GetByID(ctx, payload.WebhookID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.ObserveDelivery(string(domain.DeliveryStatusNotFound), 0)
			log.Info("Subscription deleted, dropping delivery")
			return queue.Ack(), nil
		}
		return queue.Ack(), fmt.Errorf("load subscription: %w", err)
	}
	if !wh.Enabled || wh.EventType != payload.EventType {
		metrics.ObserveDelivery(string(domain.DeliveryStatusSkipped), 0)
		log.Info("Subscription disabled or retargeted, skipping delivery",
			slog.String("event_type", payload.EventType))
		return queue.Ack(), nil
	}

	rateKey := fmt.Sprintf("webhook:%d:window:%d", wh.ID, int(s.rateWindow.Seconds()))
	allowed, err := s.limiter.Allow(ctx, rateKey, s.rateLimit, s.rateWindow)
	if err != nil {
		return queue.Ack(), fmt.Errorf("rate limit check: %w", err)
	}
	if !allowed {
		delay, err := s.limiter.TTL(ctx, rateKey)
		if err != nil || delay <= 0 {
			delay = 5 * time.Second
		}
		metrics.WebhookRateLimitedTotal.Inc()
		log.Info("Rate limited, deferring delivery", slog.Duration("delay", delay))
		return queue.DeferIn(delay), nil
	}

	statusCode, elapsedMs, transient, err := s.post(ctx, wh.URL, payload.EventType, payload.Payload)
	retryable := (err != nil && transient) || statusCode >= 500
	if retryable {
		if job.Attempt < s.maxRetries {
			delay := time.Duration(1<<uint(job.Attempt)) * time.Second
			metrics.WebhookRetriesTotal.Inc()
			log.Warn("Delivery failed, retrying",
				slog.Int("attempt", job.Attempt),
				slog.Int("status_code", statusCode),
				slog.Duration("delay", delay))
			return queue.RetryIn(delay), nil
		}
		s.record(ctx, wh.ID, statusCode, elapsedMs)
		metrics.ObserveDelivery(string(domain.DeliveryStatusFailed), float64(elapsedMs)/1000)
		log.Error("Delivery failed permanently",
			slog.Int("attempts", job.Attempt+1),
			slog.Int("status_code", statusCode))
		return queue.Ack(), nil
	}

	s.record(ctx, wh.ID, statusCode, elapsedMs)
	metrics.ObserveDelivery(string(domain.DeliveryStatusSent), float64(elapsedMs)/1000)
	log.Info("Delivery sent",
		slog.Int("status_code", statusCode),
		slog.Int("elapsed_ms", elapsedMs))
	return queue.Ack(), nil
}

// post sends the event and returns the response status code and the request
// latency in milliseconds. A zero status code means no response was obtained.
// transient is true only for failures on the wire; a request that cannot even
// be built (for instance an unparsable URL) will never succeed on a retry.
func (s *WebhookService) post(ctx context.Context, url, eventType string, body json.RawMessage) (statusCode, elapsedMs int, transient bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, 0, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Type", eventType)

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	elapsedMs = int(time.Since(start).Milliseconds())
	if err != nil {
		return 0, elapsedMs, true, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, elapsedMs, false, nil
}

func (s *WebhookService) record(ctx context.Context, id int64, statusCode, elapsedMs int) {
	if err := s.webhookRepo.RecordDelivery(ctx, id, statusCode, elapsedMs); err != nil {
		logger.WithWebhookID(id).Warn("Failed to record delivery outcome",
			slog.String("error", err.Error()))
	}
}
