package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-importer/internal/domain"
	"catalog-importer/internal/mocks"
	"catalog-importer/internal/repository"
)

func productRouter(h *ProductHandler) *gin.Engine {
	router := gin.New()
	router.POST("/api/v1/products", h.CreateProduct)
	router.GET("/api/v1/products", h.ListProducts)
	router.GET("/api/v1/products/:id", h.GetProduct)
	router.PUT("/api/v1/products/:id", h.UpdateProduct)
	router.DELETE("/api/v1/products/:id", h.DeleteProduct)
	router.DELETE("/api/v1/products", h.DeleteAllProducts)
	return router
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("creates a product and fires the event", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Product")).
			RunAndReturn(func(_ context.Context, p *domain.Product) error {
				p.ID = 7
				return nil
			})
		mockEvents.EXPECT().
			EnqueueEvent(mock.Anything, domain.EventProductCreated, mock.Anything).
			Return([]string{"d-1"}, nil)

		req := jsonRequest(t, http.MethodPost, "/api/v1/products", ProductRequest{SKU: "A1", Name: "Widget"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response domain.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(7), response.ID)
		assert.True(t, response.Active)
	})

	t.Run("returns 409 on a duplicate SKU", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		mockRepo.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(repository.ErrConflict)

		req := jsonRequest(t, http.MethodPost, "/api/v1/products", ProductRequest{SKU: "a1", Name: "Widget"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects a missing sku", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		req := jsonRequest(t, http.MethodPost, "/api/v1/products", ProductRequest{Name: "Widget"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("creation succeeds even when event scheduling fails", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		mockEvents.EXPECT().
			EnqueueEvent(mock.Anything, domain.EventProductCreated, mock.Anything).
			Return(nil, assert.AnError)

		req := jsonRequest(t, http.MethodPost, "/api/v1/products", ProductRequest{SKU: "A1", Name: "Widget"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("returns the product", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		mockRepo.EXPECT().
			GetByID(mock.Anything, int64(7)).
			Return(&domain.Product{ID: 7, SKU: "A1", Name: "Widget", Active: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response domain.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "A1", response.SKU)
	})

	t.Run("returns 404 for a missing product", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		mockRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		mockRepo.EXPECT().
			List(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, filter domain.ProductFilter) ([]domain.Product, int, error) {
				assert.Equal(t, "a1", filter.SKU)
				require.NotNil(t, filter.Active)
				assert.True(t, *filter.Active)
				assert.Equal(t, 2, filter.Page)
				return []domain.Product{{ID: 1, SKU: "A1", Name: "Widget"}}, 51, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products?sku=a1&active=true&page=2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response ProductListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 51, response.Total)
		assert.Len(t, response.Items, 1)
	})

	t.Run("rejects a bad active filter", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products?active=maybe", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	t.Run("deletes and fires the event", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		mockRepo.EXPECT().Delete(mock.Anything, int64(7)).Return(nil)
		mockEvents.EXPECT().
			EnqueueEvent(mock.Anything, domain.EventProductDeleted, mock.Anything).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("returns 404 for a missing product", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		mockRepo.EXPECT().Delete(mock.Anything, int64(99)).Return(repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_DeleteAllProducts(t *testing.T) {
	t.Run("requires explicit confirmation", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("deletes everything when confirmed", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		mockEvents := mocks.NewMockEventEnqueuer(t)
		router := productRouter(NewProductHandler(mockRepo, mockEvents))

		mockRepo.EXPECT().DeleteAll(mock.Anything).Return(int64(42), nil)
		mockEvents.EXPECT().
			EnqueueEvent(mock.Anything, domain.EventProductsBulkDeleted, mock.Anything).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products?confirm=true", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]int64
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(42), response["deleted"])
	})
}
