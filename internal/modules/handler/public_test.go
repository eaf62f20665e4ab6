package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/service"
)

// MockIntakeService is a mock implementation of IntakeService
type MockIntakeService struct {
	mock.Mock
}

func (m *MockIntakeService) SubmitConsultation(ctx context.Context, in service.SubmitConsultationInput) (*model.ConsultationRequest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConsultationRequest), args.Error(1)
}

func (m *MockIntakeService) SubmitMessage(ctx context.Context, in service.SubmitMessageInput) (*model.ContactMessage, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func setupIntakeRouter(intake *MockIntakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPublicHandler(nil, nil, nil, nil, nil, intake)
	r := gin.New()
	r.POST("/consultations", h.SubmitConsultation)
	r.POST("/messages", h.SubmitMessage)
	return r
}

func TestPublicHandler_SubmitConsultation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockIntakeService)
		expectedStatus int
	}{
		{
			name: "valid request",
			body: `{"name":"Ada","email":"ada@example.com","phone":"+1 555 0100","preferred_date":"2026-09-15","project_type":"residential"}`,
			setup: func(svc *MockIntakeService) {
				svc.On("SubmitConsultation", mock.Anything, mock.Anything).Return(&model.ConsultationRequest{
					Status: model.ConsultationStatusPending,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid email never reaches the service",
			body:           `{"name":"Ada","email":"not-an-email","phone":"+1 555 0100","preferred_date":"2026-09-15","project_type":"residential"}`,
			setup:          func(svc *MockIntakeService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing phone never reaches the service",
			body:           `{"name":"Ada","email":"ada@example.com","preferred_date":"2026-09-15","project_type":"residential"}`,
			setup:          func(svc *MockIntakeService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intake := &MockIntakeService{}
			tt.setup(intake)

			router := setupIntakeRouter(intake)

			req := httptest.NewRequest("POST", "/consultations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			intake.AssertExpectations(t)
		})
	}
}

func TestPublicHandler_SubmitMessage(t *testing.T) {
	t.Run("phone is optional", func(t *testing.T) {
		intake := &MockIntakeService{}
		intake.On("SubmitMessage", mock.Anything, mock.MatchedBy(func(in service.SubmitMessageInput) bool {
			return in.Phone == "" && in.Subject == "Kitchen remodel"
		})).Return(&model.ContactMessage{Status: model.MessageStatusUnread}, nil)

		router := setupIntakeRouter(intake)

		body := `{"name":"Grace","email":"grace@example.com","subject":"Kitchen remodel","message":"Looking for a quote."}`
		req := httptest.NewRequest("POST", "/messages", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		intake.AssertExpectations(t)
	})

	t.Run("missing message body is rejected", func(t *testing.T) {
		intake := &MockIntakeService{}

		router := setupIntakeRouter(intake)

		body := `{"name":"Grace","email":"grace@example.com","subject":"Kitchen remodel"}`
		req := httptest.NewRequest("POST", "/messages", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		intake.AssertNotCalled(t, "SubmitMessage", mock.Anything, mock.Anything)
	})
}
