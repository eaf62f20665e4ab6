package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

// MockConsultationRepo is a mock implementation of ConsultationRepo
type MockConsultationRepo struct {
	mock.Mock
}

func (m *MockConsultationRepo) List(ctx context.Context) ([]model.ConsultationRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.ConsultationRequest), args.Error(1)
}

func (m *MockConsultationRepo) Get(ctx context.Context, id uuid.UUID) (*model.ConsultationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConsultationRequest), args.Error(1)
}

func (m *MockConsultationRepo) Create(ctx context.Context, c *model.ConsultationRequest) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConsultationRepo) Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockConsultationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockConsultationRepo) Count(ctx context.Context, filter map[string]any) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestConsultationService_Update(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		input      UpdateConsultationInput
		wantFields map[string]any
	}{
		{
			name:       "status only touches status",
			input:      UpdateConsultationInput{Status: strPtr(model.ConsultationStatusContacted)},
			wantFields: map[string]any{"status": model.ConsultationStatusContacted},
		},
		{
			name:       "notes only touches notes",
			input:      UpdateConsultationInput{Notes: strPtr("call back monday")},
			wantFields: map[string]any{"notes": "call back monday"},
		},
		{
			name: "both fields",
			input: UpdateConsultationInput{
				Status: strPtr(model.ConsultationStatusCompleted),
				Notes:  strPtr("done"),
			},
			wantFields: map[string]any{
				"status": model.ConsultationStatusCompleted,
				"notes":  "done",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockConsultationRepo{}
			repo.On("Patch", mock.Anything, id, tt.wantFields).Return(nil)
			repo.On("Get", mock.Anything, id).Return(&model.ConsultationRequest{ID: id}, nil)

			svc := NewConsultationService(repo, zap.NewNop())
			_, err := svc.Update(context.Background(), id, tt.input)

			assert.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestConsultationService_Update_NotFound(t *testing.T) {
	id := uuid.New()

	repo := &MockConsultationRepo{}
	repo.On("Patch", mock.Anything, id, mock.Anything).Return(gorm.ErrRecordNotFound)

	svc := NewConsultationService(repo, zap.NewNop())
	_, err := svc.Update(context.Background(), id, UpdateConsultationInput{Status: strPtr("contacted")})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertExpectations(t)
}

// An empty patch skips the write, so only the follow-up Get can detect a
// missing row. The gorm sentinel must still come back as ErrNotFound.
func TestConsultationService_Update_EmptyPatchMissingRow(t *testing.T) {
	id := uuid.New()

	repo := &MockConsultationRepo{}
	repo.On("Patch", mock.Anything, id, map[string]any{}).Return(nil)
	repo.On("Get", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewConsultationService(repo, zap.NewNop())
	_, err := svc.Update(context.Background(), id, UpdateConsultationInput{})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertExpectations(t)
}

func TestConsultationService_Delete_Idempotent(t *testing.T) {
	id := uuid.New()

	repo := &MockConsultationRepo{}
	repo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	svc := NewConsultationService(repo, zap.NewNop())
	assert.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}
