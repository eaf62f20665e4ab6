package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

// MockUserRepo is a mock implementation of UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockUserRepo) ListRoles(ctx context.Context) ([]model.UserRole, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.UserRole), args.Error(1)
}

func (m *MockUserRepo) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepo) SetRole(ctx context.Context, userID uuid.UUID, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRepo) GetProfileByEmail(ctx context.Context, email string) (*model.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func TestUserService_List_DefaultsRoleToUser(t *testing.T) {
	adminID := uuid.New()
	plainID := uuid.New()

	repo := &MockUserRepo{}
	repo.On("ListProfiles", mock.Anything).Return([]model.Profile{
		{ID: adminID},
		{ID: plainID},
	}, nil)
	repo.On("ListRoles", mock.Anything).Return([]model.UserRole{
		{UserID: adminID, Role: model.RoleAdmin},
	}, nil)

	svc := NewUserService(repo)
	accounts, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)

	byID := make(map[uuid.UUID]string, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a.Role
	}
	assert.Equal(t, model.RoleAdmin, byID[adminID])
	assert.Equal(t, model.RoleUser, byID[plainID])
	repo.AssertExpectations(t)
}

func TestUserService_SetRole(t *testing.T) {
	id := uuid.New()

	t.Run("valid role is stored", func(t *testing.T) {
		repo := &MockUserRepo{}
		repo.On("SetRole", mock.Anything, id, model.RoleAdmin).Return(nil)

		svc := NewUserService(repo)
		assert.NoError(t, svc.SetRole(context.Background(), id, model.RoleAdmin))
		repo.AssertExpectations(t)
	})

	t.Run("unknown role is rejected before the repo", func(t *testing.T) {
		repo := &MockUserRepo{}

		svc := NewUserService(repo)
		assert.Error(t, svc.SetRole(context.Background(), id, "superuser"))
		repo.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_GetRole_MissingRowIsUser(t *testing.T) {
	id := uuid.New()

	repo := &MockUserRepo{}
	repo.On("GetRole", mock.Anything, id).Return("", gorm.ErrRecordNotFound)

	svc := NewUserService(repo)
	role, err := svc.GetRole(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, model.RoleUser, role)
	repo.AssertExpectations(t)
}
