package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/formastudio/forma-api/internal/modules/model"
)

// MockTestimonialRepo is a mock implementation of TestimonialRepo
type MockTestimonialRepo struct {
	mock.Mock
}

func (m *MockTestimonialRepo) List(ctx context.Context) ([]model.Testimonial, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepo) Get(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepo) Create(ctx context.Context, t *model.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTestimonialRepo) Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockTestimonialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTestimonialRepo) Count(ctx context.Context, filter map[string]any) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockProjectRepo is a mock implementation of ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepo) Count(ctx context.Context, filter map[string]any) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockProposalRepo is a mock implementation of ProposalRepo
type MockProposalRepo struct {
	mock.Mock
}

func (m *MockProposalRepo) List(ctx context.Context) ([]model.Proposal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Proposal), args.Error(1)
}

func (m *MockProposalRepo) Get(ctx context.Context, id uuid.UUID) (*model.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Proposal), args.Error(1)
}

func (m *MockProposalRepo) Create(ctx context.Context, p *model.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProposalRepo) Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProposalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProposalRepo) Count(ctx context.Context, filter map[string]any) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type dashboardMocks struct {
	consultations *MockConsultationRepo
	messages      *MockMessageRepo
	portfolio     *MockPortfolioRepo
	testimonials  *MockTestimonialRepo
	projects      *MockProjectRepo
	proposals     *MockProposalRepo
}

func newDashboardMocks() dashboardMocks {
	return dashboardMocks{
		consultations: &MockConsultationRepo{},
		messages:      &MockMessageRepo{},
		portfolio:     &MockPortfolioRepo{},
		testimonials:  &MockTestimonialRepo{},
		projects:      &MockProjectRepo{},
		proposals:     &MockProposalRepo{},
	}
}

func (d dashboardMocks) expectCounts(times int) {
	d.consultations.On("Count", mock.Anything, map[string]any(nil)).Return(int64(12), nil).Times(times)
	d.consultations.On("Count", mock.Anything, map[string]any{"status": model.ConsultationStatusPending}).Return(int64(4), nil).Times(times)
	d.messages.On("Count", mock.Anything, map[string]any(nil)).Return(int64(30), nil).Times(times)
	d.messages.On("Count", mock.Anything, map[string]any{"status": model.MessageStatusUnread}).Return(int64(7), nil).Times(times)
	d.portfolio.On("Count", mock.Anything, map[string]any(nil)).Return(int64(9), nil).Times(times)
	d.testimonials.On("Count", mock.Anything, map[string]any(nil)).Return(int64(5), nil).Times(times)
	d.projects.On("Count", mock.Anything, map[string]any(nil)).Return(int64(6), nil).Times(times)
	d.projects.On("Count", mock.Anything, mock.MatchedBy(func(f map[string]any) bool {
		_, ok := f["status"]
		return ok
	})).Return(int64(1), nil).Times(times * 4)
	d.proposals.On("Count", mock.Anything, map[string]any(nil)).Return(int64(3), nil).Times(times)
}

func (d dashboardMocks) service(rdb *redis.Client) DashboardService {
	return NewDashboardService(
		d.consultations, d.messages, d.portfolio,
		d.testimonials, d.projects, d.proposals,
		rdb, zap.NewNop(),
	)
}

func TestDashboardService_Stats(t *testing.T) {
	mocks := newDashboardMocks()
	mocks.expectCounts(1)

	svc := mocks.service(nil)
	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.ConsultationsTotal)
	assert.Equal(t, int64(4), stats.ConsultationsPending)
	assert.Equal(t, int64(7), stats.MessagesUnread)
	assert.Equal(t, int64(6), stats.ProjectsTotal)
	assert.Equal(t, int64(1), stats.ProjectsByStatus[model.ProjectStatusInProgress])
	mocks.consultations.AssertExpectations(t)
	mocks.projects.AssertExpectations(t)
}

func TestDashboardService_Stats_CachesResult(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	mocks := newDashboardMocks()
	// one full fan-out; the second call must be served from cache
	mocks.expectCounts(1)

	svc := mocks.service(rdb)

	first, err := svc.Stats(context.Background())
	assert.NoError(t, err)

	second, err := svc.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	mocks.consultations.AssertExpectations(t)
	mocks.messages.AssertExpectations(t)
	mocks.projects.AssertExpectations(t)

	// expire the cache and the fan-out runs again
	mr.FastForward(statsCacheTTL)
	mocks.expectCounts(1)

	_, err = svc.Stats(context.Background())
	assert.NoError(t, err)
	mocks.consultations.AssertExpectations(t)
}
