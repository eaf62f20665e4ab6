package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"

	"github.com/formastudio/forma-api/internal/modules/model"
)

// MockServiceRepo is a mock implementation of ServiceRepo
type MockServiceRepo struct {
	mock.Mock
}

func (m *MockServiceRepo) List(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Service), args.Error(1)
}

func (m *MockServiceRepo) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockServiceRepo) Create(ctx context.Context, s *model.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepo) Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceRepo) Count(ctx context.Context, filter map[string]any) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestCatalogService_Create_FeaturesJSONB(t *testing.T) {
	features := []string{"3D visualization", "Material selection"}

	repo := &MockServiceRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Service) bool {
		return assert.ObjectsAreEqual(datatypes.NewJSONSlice(features), s.Features)
	})).Return(nil)

	svc := NewCatalogService(repo)
	out, err := svc.Create(context.Background(), CreateServiceInput{
		Title:       "Full design",
		Description: "Concept to handover",
		ImageURL:    "https://cdn.example.com/full.jpg",
		Features:    features,
	})

	assert.NoError(t, err)
	assert.Equal(t, datatypes.NewJSONSlice(features), out.Features)
	repo.AssertExpectations(t)
}

func TestCatalogService_Update_FeaturesJSONB(t *testing.T) {
	id := uuid.New()
	features := []string{"Lighting plan"}

	repo := &MockServiceRepo{}
	repo.On("Patch", mock.Anything, id, map[string]any{
		"features": datatypes.NewJSONSlice(features),
	}).Return(nil)
	repo.On("Get", mock.Anything, id).Return(&model.Service{ID: id}, nil)

	svc := NewCatalogService(repo)
	_, err := svc.Update(context.Background(), id, UpdateServiceInput{Features: &features})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
