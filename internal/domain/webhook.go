package domain

import "time"

// Webhook represents a registered callback endpoint. Delivery metadata
// (LastResponseCode, LastResponseTimeMs) is written only by the dispatcher
// after a terminal delivery attempt.
type Webhook struct {
	ID                 int64     `json:"id"`
	URL                string    `json:"url"`
	EventType          string    `json:"event_type"`
	Enabled            bool      `json:"enabled"`
	LastResponseCode   *int      `json:"last_response_code,omitempty"`
	LastResponseTimeMs *int      `json:"last_response_time_ms,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DeliveryStatus is the terminal status of a single webhook delivery job.
type DeliveryStatus string

const (
	DeliveryStatusSent     DeliveryStatus = "sent"
	DeliveryStatusSkipped  DeliveryStatus = "skipped"
	DeliveryStatusNotFound DeliveryStatus = "not_found"
	DeliveryStatusFailed   DeliveryStatus = "failed"
)

// DeliveryResult is the outcome of one webhook delivery attempt. StatusCode 0
// is the sentinel for "no HTTP response obtained".
type DeliveryResult struct {
	Status     DeliveryStatus `json:"status"`
	StatusCode int            `json:"status_code"`
	ElapsedMs  int            `json:"elapsed_ms"`
}
