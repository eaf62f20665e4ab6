package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/service"
)

// MockGalleryService is a mock implementation of GalleryService
type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) List(ctx context.Context) ([]model.GalleryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.GalleryItem), args.Error(1)
}

func (m *MockGalleryService) BulkUpload(ctx context.Context, in service.BulkUploadInput) (*service.BulkUploadOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkUploadOutput), args.Error(1)
}

func (m *MockGalleryService) UpdateMeta(ctx context.Context, id uuid.UUID, in service.UpdateGalleryMetaInput) (*model.GalleryItem, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryItem), args.Error(1)
}

func (m *MockGalleryService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupGalleryRouter(svc *MockGalleryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewGalleryHandler(svc)
	r := gin.New()
	r.POST("/gallery/upload", h.Upload)
	r.PATCH("/gallery/:id", h.Update)
	return r
}

func multipartUpload(t *testing.T, fieldFiles map[string][]byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for name, data := range fieldFiles {
		fw, err := w.CreateFormFile("files", name)
		assert.NoError(t, err)
		_, err = fw.Write(data)
		assert.NoError(t, err)
	}
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	assert.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestGalleryHandler_Upload(t *testing.T) {
	t.Run("forwards files and category", func(t *testing.T) {
		svc := &MockGalleryService{}
		svc.On("BulkUpload", mock.Anything, mock.MatchedBy(func(in service.BulkUploadInput) bool {
			return len(in.Files) == 2 && in.Category == "interiors"
		})).Return(&service.BulkUploadOutput{}, nil)

		router := setupGalleryRouter(svc)
		body, contentType := multipartUpload(t, map[string][]byte{
			"a.png": []byte("aaa"),
			"b.png": []byte("bbb"),
		}, map[string]string{"category": "interiors"})

		req := httptest.NewRequest("POST", "/gallery/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing category reaches the service untouched", func(t *testing.T) {
		svc := &MockGalleryService{}
		svc.On("BulkUpload", mock.Anything, mock.MatchedBy(func(in service.BulkUploadInput) bool {
			return len(in.Files) == 1 && in.Category == ""
		})).Return(&service.BulkUploadOutput{}, nil)

		router := setupGalleryRouter(svc)
		body, contentType := multipartUpload(t, map[string][]byte{
			"a.png": []byte("aaa"),
		}, nil)

		req := httptest.NewRequest("POST", "/gallery/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("empty batch is a 400", func(t *testing.T) {
		svc := &MockGalleryService{}

		router := setupGalleryRouter(svc)
		body, contentType := multipartUpload(t, nil, map[string]string{"category": "interiors"})

		req := httptest.NewRequest("POST", "/gallery/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "BulkUpload", mock.Anything, mock.Anything)
	})
}

func TestGalleryHandler_Update(t *testing.T) {
	id := uuid.New()

	svc := &MockGalleryService{}
	svc.On("UpdateMeta", mock.Anything, id, mock.MatchedBy(func(in service.UpdateGalleryMetaInput) bool {
		return in.Title != nil && *in.Title == "Living room" && in.DisplayOrder == nil
	})).Return(&model.GalleryItem{ID: id}, nil)

	router := setupGalleryRouter(svc)
	req := httptest.NewRequest("PATCH", "/gallery/"+id.String(),
		bytes.NewBufferString(`{"title":"Living room"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
