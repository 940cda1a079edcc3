package domain

// JobStatus represents the lifecycle status of an import job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	// JobStatusUnknown is reported when no snapshot exists for a job id.
	JobStatusUnknown JobStatus = "unknown"
)

// Job kinds processed by the queue workers.
const (
	JobKindImport          = "import"
	JobKindWebhookDelivery = "webhook_delivery"
)

// ProgressSnapshot is the live state of an import job, kept in the key-value
// store for the retention window. Fields are monotonically non-decreasing
// within one run; Total is set to the final processed count at completion.
type ProgressSnapshot struct {
	Status    JobStatus `json:"status"`
	Stage     string    `json:"stage"`
	Processed int       `json:"processed"`
	Total     int       `json:"total"`
	Errors    int       `json:"errors"`
	Message   string    `json:"message"`
}

// Terminal reports whether the snapshot will no longer change.
func (p ProgressSnapshot) Terminal() bool {
	return p.Status == JobStatusCompleted || p.Status == JobStatusFailed
}

// ErrorRecord captures one rejected import row: its 1-based data row number,
// the reason, and a snapshot of the raw input fields.
type ErrorRecord struct {
	Row   int               `json:"row"`
	Error string            `json:"error"`
	Data  map[string]string `json:"data"`
}

// ImportResult is the final accounting of an import job.
type ImportResult struct {
	Status    JobStatus `json:"status"`
	Processed int       `json:"processed"`
	Errors    int       `json:"errors"`
	Reason    string    `json:"reason,omitempty"`
}
