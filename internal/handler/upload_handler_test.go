package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-importer/internal/domain"
	"catalog-importer/internal/mocks"
	"catalog-importer/internal/progress"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func uploadRouter(h *UploadHandler) *gin.Engine {
	router := gin.New()
	router.POST("/api/v1/uploads/csv", h.CreateUpload)
	router.GET("/api/v1/uploads/:id/progress", h.GetProgress)
	router.GET("/api/v1/uploads/:id/progress/stream", h.StreamProgress)
	router.GET("/api/v1/uploads/:id/errors", h.ListErrors)
	return router
}

func multipartCSV(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadHandler_CreateUpload(t *testing.T) {
	t.Run("accepts a csv upload", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		mockService.EXPECT().
			StartImport(mock.Anything, "products.csv", mock.Anything).
			Return("job-1", nil)

		router := uploadRouter(NewUploadHandler(mockService))
		body, contentType := multipartCSV(t, "products.csv", "sku,name\nA1,Widget\n")

		req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/csv", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusAccepted, w.Code)

		var response UploadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "job-1", response.JobID)
		assert.Equal(t, "queued", response.Status)
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		router := uploadRouter(NewUploadHandler(mockService))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/csv", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a non-csv extension", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		router := uploadRouter(NewUploadHandler(mockService))
		body, contentType := multipartCSV(t, "products.xlsx", "not a csv")

		req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/csv", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 500 when the service fails", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		mockService.EXPECT().
			StartImport(mock.Anything, "products.csv", mock.Anything).
			Return("", assert.AnError)

		router := uploadRouter(NewUploadHandler(mockService))
		body, contentType := multipartCSV(t, "products.csv", "sku,name\n")

		req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/csv", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUploadHandler_GetProgress(t *testing.T) {
	t.Run("returns the snapshot", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		mockService.EXPECT().
			GetProgress(mock.Anything, "job-1").
			Return(domain.ProgressSnapshot{
				Status:    domain.JobStatusRunning,
				Stage:     "importing",
				Processed: 10000,
				Errors:    3,
			}, nil)

		router := uploadRouter(NewUploadHandler(mockService))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/job-1/progress", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response ProgressResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "running", response.Status)
		assert.Equal(t, 10000, response.Processed)
		assert.Equal(t, 3, response.Errors)
	})

	t.Run("reports unknown for an expired or bogus id", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		mockService.EXPECT().
			GetProgress(mock.Anything, "gone").
			Return(domain.ProgressSnapshot{}, progress.ErrNotFound)

		router := uploadRouter(NewUploadHandler(mockService))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/gone/progress", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response ProgressResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "unknown", response.Status)
	})
}

func TestUploadHandler_StreamProgress(t *testing.T) {
	t.Run("closes after a terminal snapshot", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		mockService.EXPECT().
			GetProgress(mock.Anything, "job-1").
			Return(domain.ProgressSnapshot{
				Status:    domain.JobStatusCompleted,
				Stage:     "completed",
				Processed: 5,
				Total:     5,
			}, nil)

		router := uploadRouter(NewUploadHandler(mockService))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/job-1/progress/stream", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "event:progress")
		assert.Contains(t, w.Body.String(), `"completed"`)
	})
}

func TestUploadHandler_ListErrors(t *testing.T) {
	t.Run("returns count and items", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		mockService.EXPECT().
			ListErrors(mock.Anything, "job-1", 100).
			Return(2, []domain.ErrorRecord{
				{Row: 7, Error: "sku: sku_required.", Data: map[string]string{"sku": ""}},
				{Row: 3, Error: "price: invalid_price.", Data: map[string]string{"price": "abc"}},
			}, nil)

		router := uploadRouter(NewUploadHandler(mockService))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/job-1/errors", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response ErrorListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Count)
		require.Len(t, response.Items, 2)
		assert.Equal(t, 7, response.Items[0].Row)
	})

	t.Run("honors an explicit limit", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		mockService.EXPECT().
			ListErrors(mock.Anything, "job-1", 5).
			Return(0, nil, nil)

		router := uploadRouter(NewUploadHandler(mockService))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/job-1/errors?limit=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response ErrorListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 0, response.Count)
		assert.NotNil(t, response.Items)
	})

	t.Run("rejects a bad limit", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		router := uploadRouter(NewUploadHandler(mockService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/job-1/errors?limit=zero", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
