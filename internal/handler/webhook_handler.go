package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-importer/internal/domain"
	"catalog-importer/internal/logger"
	"catalog-importer/internal/middleware"
	"catalog-importer/internal/repository"
	"catalog-importer/internal/service"
)

// WebhookHandler handles webhook subscription HTTP requests.
type WebhookHandler struct {
	webhooks  repository.WebhookRepository
	scheduler service.DeliveryScheduler
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhooks repository.WebhookRepository, scheduler service.DeliveryScheduler) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks, scheduler: scheduler}
}

// WebhookRequest is the create/update request body.
type WebhookRequest struct {
	URL       string `json:"url"`
	EventType string `json:"event_type"`
	Enabled   *bool  `json:"enabled"`
}

var knownEventTypes = []interface{}{
	domain.EventProductCreated,
	domain.EventProductUpdated,
	domain.EventProductDeleted,
	domain.EventProductsBulkDeleted,
	domain.EventImportCompleted,
}

func (r WebhookRequest) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required, validation.By(func(value interface{}) error {
			raw, _ := value.(string)
			u, err := url.Parse(raw)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return validation.NewError("invalid_url", "must be an http or https URL")
			}
			return nil
		})),
		validation.Field(&r.EventType, validation.Required, validation.In(knownEventTypes...)),
	)
}

// CreateWebhook handles POST /api/v1/webhooks
func (h *WebhookHandler) CreateWebhook(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	webhook := &domain.Webhook{
		URL:       req.URL,
		EventType: req.EventType,
		Enabled:   true,
	}
	if req.Enabled != nil {
		webhook.Enabled = *req.Enabled
	}

	if err := h.webhooks.Create(c.Request.Context(), webhook); err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to create webhook: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create webhook"})
		return
	}

	c.JSON(http.StatusCreated, webhook)
}

// GetWebhook handles GET /api/v1/webhooks/:id
func (h *WebhookHandler) GetWebhook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	webhook, err := h.webhooks.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "webhook not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to get webhook: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve webhook"})
		return
	}

	c.JSON(http.StatusOK, webhook)
}

// ListWebhooks handles GET /api/v1/webhooks
func (h *WebhookHandler) ListWebhooks(c *gin.Context) {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", 50)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 500 {
		pageSize = 50
	}

	items, err := h.webhooks.List(c.Request.Context(), page, pageSize)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to list webhooks: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list webhooks"})
		return
	}

	if items == nil {
		items = []domain.Webhook{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "page": page, "page_size": pageSize})
}

// UpdateWebhook handles PUT /api/v1/webhooks/:id
func (h *WebhookHandler) UpdateWebhook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	webhook, err := h.webhooks.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "webhook not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to load webhook: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update webhook"})
		return
	}

	webhook.URL = req.URL
	webhook.EventType = req.EventType
	if req.Enabled != nil {
		webhook.Enabled = *req.Enabled
	}

	if err := h.webhooks.Update(c.Request.Context(), webhook); err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to update webhook: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update webhook"})
		return
	}

	c.JSON(http.StatusOK, webhook)
}

// DeleteWebhook handles DELETE /api/v1/webhooks/:id
func (h *WebhookHandler) DeleteWebhook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.webhooks.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "webhook not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to delete webhook: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete webhook"})
		return
	}

	c.Status(http.StatusNoContent)
}

// TestWebhook handles POST /api/v1/webhooks/:id/test
//
// Schedules a synthetic delivery through the normal pipeline so the
// subscription's rate limit, retries and last-response tracking all apply.
func (h *WebhookHandler) TestWebhook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	webhook, err := h.webhooks.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "webhook not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to load webhook: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to test webhook"})
		return
	}

	jobID, err := h.scheduler.EnqueueDelivery(c.Request.Context(), webhook.ID, webhook.EventType, map[string]interface{}{
		"test":      true,
		"timestamp": time.Now().UTC().Format(TimeFormat),
	})
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to schedule test delivery: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to schedule test delivery"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"job_id": jobID})
}
