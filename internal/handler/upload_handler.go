package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-importer/internal/domain"
	"catalog-importer/internal/logger"
	"catalog-importer/internal/middleware"
	"catalog-importer/internal/progress"
	"catalog-importer/internal/service"
)

// streamPollInterval is how often the SSE endpoint re-reads the snapshot.
const streamPollInterval = time.Second

// defaultErrorLimit caps the errors endpoint when no limit is given.
const defaultErrorLimit = 100

// UploadHandler handles CSV upload and job status HTTP requests.
type UploadHandler struct {
	importService service.ImportServiceInterface
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(importService service.ImportServiceInterface) *UploadHandler {
	return &UploadHandler{importService: importService}
}

// UploadResponse is the accepted-upload API response.
type UploadResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// ProgressResponse mirrors the stored progress snapshot.
type ProgressResponse struct {
	Status    string `json:"status"`
	Stage     string `json:"stage,omitempty"`
	Processed int    `json:"processed"`
	Total     int    `json:"total"`
	Errors    int    `json:"errors"`
	Message   string `json:"message,omitempty"`
}

func toProgressResponse(snap domain.ProgressSnapshot) ProgressResponse {
	return ProgressResponse{
		Status:    string(snap.Status),
		Stage:     snap.Stage,
		Processed: snap.Processed,
		Total:     snap.Total,
		Errors:    snap.Errors,
		Message:   snap.Message,
	}
}

// ErrorListResponse is the errors endpoint response. Count is the total
// retained, which may exceed len(Items).
type ErrorListResponse struct {
	Count int                  `json:"count"`
	Items []domain.ErrorRecord `json:"items"`
}

// CreateUpload handles POST /api/v1/uploads/csv
func (h *UploadHandler) CreateUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be a .csv"})
		return
	}

	jobID, err := h.importService.StartImport(c.Request.Context(), header.Filename, file)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to start import: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process upload"})
		return
	}

	c.JSON(http.StatusAccepted, UploadResponse{
		JobID:  jobID,
		Status: string(domain.JobStatusQueued),
	})
}

// GetProgress handles GET /api/v1/uploads/:id/progress
//
// An unknown job id is not an error: snapshots expire after the retention
// window, so pollers get an explicit unknown status instead of a 404.
func (h *UploadHandler) GetProgress(c *gin.Context) {
	jobID := c.Param("id")

	snap, err := h.importService.GetProgress(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, progress.ErrNotFound) {
			c.JSON(http.StatusOK, ProgressResponse{Status: string(domain.JobStatusUnknown)})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to get progress: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve progress"})
		return
	}

	c.JSON(http.StatusOK, toProgressResponse(snap))
}

// StreamProgress handles GET /api/v1/uploads/:id/progress/stream
//
// Server-sent events: one event per observed change, closing after the
// terminal snapshot is sent or the client disconnects.
func (h *UploadHandler) StreamProgress(c *gin.Context) {
	jobID := c.Param("id")

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ticker := time.NewTicker(streamPollInterval)
	defer ticker.Stop()

	var last ProgressResponse
	sent := false

	emit := func() bool {
		snap, err := h.importService.GetProgress(c.Request.Context(), jobID)
		if err != nil {
			if errors.Is(err, progress.ErrNotFound) {
				snap = domain.ProgressSnapshot{Status: domain.JobStatusUnknown}
			} else {
				return false
			}
		}

		resp := toProgressResponse(snap)
		if !sent || resp != last {
			c.SSEvent("progress", resp)
			c.Writer.Flush()
			last = resp
			sent = true
		}
		return snap.Terminal()
	}

	if emit() {
		return
	}
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
			if emit() {
				return
			}
		}
	}
}

// ListErrors handles GET /api/v1/uploads/:id/errors
func (h *UploadHandler) ListErrors(c *gin.Context) {
	jobID := c.Param("id")

	limit := defaultErrorLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	count, records, err := h.importService.ListErrors(c.Request.Context(), jobID, limit)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error(
			fmt.Sprintf("Failed to list errors for job %s: %v", jobID, err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve errors"})
		return
	}

	if records == nil {
		records = []domain.ErrorRecord{}
	}
	c.JSON(http.StatusOK, ErrorListResponse{Count: count, Items: records})
}
