package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

const (
	statsCacheKey = "forma:dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// DashboardService aggregates the tile counts for the admin landing page.
// Counts are fanned out concurrently and cached briefly; a cache failure
// falls through to the database.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	consultations repo.ConsultationRepo
	messages      repo.MessageRepo
	portfolio     repo.PortfolioRepo
	testimonials  repo.TestimonialRepo
	projects      repo.ProjectRepo
	proposals     repo.ProposalRepo
	rdb           *redis.Client
	log           *zap.Logger
}

func NewDashboardService(
	consultations repo.ConsultationRepo,
	messages repo.MessageRepo,
	portfolio repo.PortfolioRepo,
	testimonials repo.TestimonialRepo,
	projects repo.ProjectRepo,
	proposals repo.ProposalRepo,
	rdb *redis.Client,
	log *zap.Logger,
) DashboardService {
	return &dashboardService{
		consultations: consultations,
		messages:      messages,
		portfolio:     portfolio,
		testimonials:  testimonials,
		projects:      projects,
		proposals:     proposals,
		rdb:           rdb,
		log:           log,
	}
}

type DashboardStats struct {
	ConsultationsTotal   int64            `json:"consultations_total"`
	ConsultationsPending int64            `json:"consultations_pending"`
	MessagesTotal        int64            `json:"messages_total"`
	MessagesUnread       int64            `json:"messages_unread"`
	PortfolioTotal       int64            `json:"portfolio_total"`
	TestimonialsTotal    int64            `json:"testimonials_total"`
	ProjectsTotal        int64            `json:"projects_total"`
	ProjectsByStatus     map[string]int64 `json:"projects_by_status"`
	ProposalsTotal       int64            `json:"proposals_total"`
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if cached := s.readCache(ctx); cached != nil {
		return cached, nil
	}

	stats := &DashboardStats{
		ProjectsByStatus: make(map[string]int64, 4),
	}

	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, fn func(context.Context, map[string]any) (int64, error), filter map[string]any) {
		g.Go(func() error {
			n, err := fn(gctx, filter)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&stats.ConsultationsTotal, s.consultations.Count, nil)
	count(&stats.ConsultationsPending, s.consultations.Count, map[string]any{"status": model.ConsultationStatusPending})
	count(&stats.MessagesTotal, s.messages.Count, nil)
	count(&stats.MessagesUnread, s.messages.Count, map[string]any{"status": model.MessageStatusUnread})
	count(&stats.PortfolioTotal, s.portfolio.Count, nil)
	count(&stats.TestimonialsTotal, s.testimonials.Count, nil)
	count(&stats.ProjectsTotal, s.projects.Count, nil)
	count(&stats.ProposalsTotal, s.proposals.Count, nil)

	projectStatuses := []string{
		model.ProjectStatusPending,
		model.ProjectStatusInProgress,
		model.ProjectStatusCompleted,
		model.ProjectStatusCancelled,
	}
	byStatus := make([]int64, len(projectStatuses))
	for i, status := range projectStatuses {
		count(&byStatus[i], s.projects.Count, map[string]any{"status": status})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, status := range projectStatuses {
		stats.ProjectsByStatus[status] = byStatus[i]
	}

	s.writeCache(ctx, stats)
	return stats, nil
}

func (s *dashboardService) readCache(ctx context.Context) *DashboardStats {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("dashboard stats cache read failed", zap.Error(err))
		}
		return nil
	}
	var stats DashboardStats
	if err := sonic.Unmarshal(raw, &stats); err != nil {
		s.log.Warn("dashboard stats cache decode failed", zap.Error(err))
		return nil
	}
	return &stats
}

func (s *dashboardService) writeCache(ctx context.Context, stats *DashboardStats) {
	if s.rdb == nil {
		return
	}
	raw, err := sonic.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		s.log.Warn("dashboard stats cache write failed", zap.Error(err))
	}
}
