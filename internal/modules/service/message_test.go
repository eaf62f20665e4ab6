package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

// MockMessageRepo is a mock implementation of MessageRepo
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) List(ctx context.Context) ([]model.ContactMessage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.ContactMessage), args.Error(1)
}

func (m *MockMessageRepo) Get(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepo) Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepo) Count(ctx context.Context, filter map[string]any) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestMessageService_Open(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		setup      func(*MockMessageRepo)
		wantStatus string
		wantErr    error
	}{
		{
			name: "unread message transitions to read on open",
			setup: func(r *MockMessageRepo) {
				r.On("Get", mock.Anything, id).Return(&model.ContactMessage{
					ID:     id,
					Status: model.MessageStatusUnread,
				}, nil)
				r.On("Patch", mock.Anything, id, map[string]any{
					"status": model.MessageStatusRead,
				}).Return(nil).Once()
			},
			wantStatus: model.MessageStatusRead,
		},
		{
			name: "already read message is returned untouched",
			setup: func(r *MockMessageRepo) {
				r.On("Get", mock.Anything, id).Return(&model.ContactMessage{
					ID:     id,
					Status: model.MessageStatusRead,
				}, nil)
				// no Patch expected
			},
			wantStatus: model.MessageStatusRead,
		},
		{
			name: "replied message is returned untouched",
			setup: func(r *MockMessageRepo) {
				r.On("Get", mock.Anything, id).Return(&model.ContactMessage{
					ID:     id,
					Status: model.MessageStatusReplied,
				}, nil)
			},
			wantStatus: model.MessageStatusReplied,
		},
		{
			name: "missing message maps to not found",
			setup: func(r *MockMessageRepo) {
				r.On("Get", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockMessageRepo{}
			tt.setup(repo)

			svc := NewMessageService(repo, zap.NewNop())
			got, err := svc.Open(context.Background(), id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, got.Status)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestMessageService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("already deleted is not an error", func(t *testing.T) {
		repo := &MockMessageRepo{}
		repo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

		svc := NewMessageService(repo, zap.NewNop())
		assert.NoError(t, svc.Delete(context.Background(), id))
		repo.AssertExpectations(t)
	})

	t.Run("database error is surfaced", func(t *testing.T) {
		repo := &MockMessageRepo{}
		dbErr := errors.New("connection reset")
		repo.On("Delete", mock.Anything, id).Return(dbErr)

		svc := NewMessageService(repo, zap.NewNop())
		assert.ErrorIs(t, svc.Delete(context.Background(), id), dbErr)
		repo.AssertExpectations(t)
	})
}

func TestMessageService_UpdateStatus(t *testing.T) {
	id := uuid.New()

	repo := &MockMessageRepo{}
	repo.On("Patch", mock.Anything, id, map[string]any{
		"status": model.MessageStatusReplied,
	}).Return(nil)
	repo.On("Get", mock.Anything, id).Return(&model.ContactMessage{
		ID:     id,
		Status: model.MessageStatusReplied,
	}, nil)

	svc := NewMessageService(repo, zap.NewNop())
	got, err := svc.UpdateStatus(context.Background(), id, model.MessageStatusReplied)

	assert.NoError(t, err)
	assert.Equal(t, model.MessageStatusReplied, got.Status)
	repo.AssertExpectations(t)
}
