package handler

import (
	"bytes"
	"context"
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

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]service.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]service.Account), args.Error(1)
}

func (m *MockUserService) SetRole(ctx context.Context, userID uuid.UUID, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserService) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func setupUsersRouter(svc *MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc)
	r := gin.New()
	r.GET("/users", h.List)
	r.PATCH("/users/:id/role", h.SetRole)
	return r
}

func TestUserHandler_SetRole(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		body           string
		setup          func(*MockUserService)
		expectedStatus int
	}{
		{
			name: "promote to admin",
			body: `{"role":"admin"}`,
			setup: func(svc *MockUserService) {
				svc.On("SetRole", mock.Anything, id, model.RoleAdmin).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "demote to user",
			body: `{"role":"user"}`,
			setup: func(svc *MockUserService) {
				svc.On("SetRole", mock.Anything, id, model.RoleUser).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown role is rejected by binding",
			body:           `{"role":"owner"}`,
			setup:          func(svc *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing role is rejected",
			body:           `{}`,
			setup:          func(svc *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{}
			tt.setup(svc)

			router := setupUsersRouter(svc)
			req := httptest.NewRequest("PATCH", "/users/"+id.String()+"/role",
				bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_List(t *testing.T) {
	svc := &MockUserService{}
	svc.On("List", mock.Anything).Return([]service.Account{
		{Profile: model.Profile{ID: uuid.New()}, Role: model.RoleAdmin},
		{Profile: model.Profile{ID: uuid.New()}, Role: model.RoleUser},
	}, nil)

	router := setupUsersRouter(svc)
	req := httptest.NewRequest("GET", "/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
	svc.AssertExpectations(t)
}
