package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-importer/internal/domain"
	"catalog-importer/internal/logger"
	"catalog-importer/internal/middleware"
	"catalog-importer/internal/repository"
	"catalog-importer/internal/service"
)

// ProductHandler handles catalog CRUD HTTP requests. Every successful
// mutation fires its event through the enqueuer after the write commits;
// scheduling failures never surface to the API client.
type ProductHandler struct {
	products repository.ProductRepository
	events   service.EventEnqueuer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products repository.ProductRepository, events service.EventEnqueuer) *ProductHandler {
	return &ProductHandler{products: products, events: events}
}

// ProductRequest is the create/update request body.
type ProductRequest struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`
}

func (r ProductRequest) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SKU, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Price, validation.By(func(value interface{}) error {
			p, _ := value.(*float64)
			if p != nil && *p < 0 {
				return validation.NewError("negative_price", "must not be negative")
			}
			return nil
		})),
	)
}

// ProductListResponse is the paginated list response.
type ProductListResponse struct {
	Items    []domain.Product `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateProduct handles POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &domain.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.products.Create(c.Request.Context(), product); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "a product with this SKU already exists"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to create product: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	h.fire(c, domain.EventProductCreated, product)
	c.JSON(http.StatusCreated, product)
}

// GetProduct handles GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to get product: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts handles GET /api/v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := domain.ProductFilter{
		SKU:      c.Query("sku"),
		Name:     c.Query("name"),
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "page_size", 50),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "active must be a boolean"})
			return
		}
		filter.Active = &active
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 500 {
		filter.PageSize = 50
	}

	items, total, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to list products: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	if items == nil {
		items = []domain.Product{}
	}
	c.JSON(http.StatusOK, ProductListResponse{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// UpdateProduct handles PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to load product: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	product.SKU = req.SKU
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.products.Update(c.Request.Context(), product); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "a product with this SKU already exists"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to update product: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	h.fire(c, domain.EventProductUpdated, product)
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to delete product: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	if h.events != nil {
		if _, err := h.events.EnqueueEvent(c.Request.Context(), domain.EventProductDeleted, map[string]interface{}{"id": id}); err != nil {
			logger.WithRequestID(middleware.GetRequestID(c)).Warn("Failed to enqueue event: " + err.Error())
		}
	}
	c.Status(http.StatusNoContent)
}

// DeleteAllProducts handles DELETE /api/v1/products
//
// Destructive, so it requires an explicit confirm=true query parameter.
func (h *ProductHandler) DeleteAllProducts(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirm=true is required"})
		return
	}

	deleted, err := h.products.DeleteAll(c.Request.Context())
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Failed to delete products: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete products"})
		return
	}

	if h.events != nil {
		if _, err := h.events.EnqueueEvent(c.Request.Context(), domain.EventProductsBulkDeleted, map[string]interface{}{"deleted": deleted}); err != nil {
			logger.WithRequestID(middleware.GetRequestID(c)).Warn("Failed to enqueue event: " + err.Error())
		}
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *ProductHandler) fire(c *gin.Context, eventType string, product *domain.Product) {
	if h.events == nil {
		return
	}
	payload := map[string]interface{}{
		"id":   product.ID,
		"sku":  product.SKU,
		"name": product.Name,
	}
	if _, err := h.events.EnqueueEvent(c.Request.Context(), eventType, payload); err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Warn("Failed to enqueue event: " + err.Error())
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
