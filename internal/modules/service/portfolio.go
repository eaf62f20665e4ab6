package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/infra/blob"
	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

type PortfolioService interface {
	List(ctx context.Context) ([]model.PortfolioItem, error)
	Create(ctx context.Context, in CreatePortfolioInput) (*model.PortfolioItem, error)
	Update(ctx context.Context, id uuid.UUID, in UpdatePortfolioInput) (*model.PortfolioItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, data []byte) (string, error)
}

type portfolioService struct {
	r     repo.PortfolioRepo
	store blob.Store
	log   *zap.Logger
}

func NewPortfolioService(r repo.PortfolioRepo, store blob.Store, log *zap.Logger) PortfolioService {
	return &portfolioService{r: r, store: store, log: log}
}

type CreatePortfolioInput struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Featured    bool   `json:"featured"`
}

// UpdatePortfolioInput is a partial patch; a lone non-nil Featured is the
// hover-toggle case and must touch nothing else.
type UpdatePortfolioInput struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Featured    *bool   `json:"featured"`
}

func (s *portfolioService) List(ctx context.Context) ([]model.PortfolioItem, error) {
	return s.r.List(ctx)
}

func (s *portfolioService) Create(ctx context.Context, in CreatePortfolioInput) (*model.PortfolioItem, error) {
	p := &model.PortfolioItem{
		Title:    in.Title,
		Category: in.Category,
		ImageURL: in.ImageURL,
		Featured: in.Featured,
	}
	if in.Description != "" {
		p.Description = &in.Description
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *portfolioService) Update(ctx context.Context, id uuid.UUID, in UpdatePortfolioInput) (*model.PortfolioItem, error) {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.Featured != nil {
		fields["featured"] = *in.Featured
	}

	if err := s.r.Patch(ctx, id, fields); err != nil {
		return nil, mapNotFound(err)
	}
	out, err := s.r.Get(ctx, id)
	return out, mapNotFound(err)
}

func (s *portfolioService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	// Best-effort blob removal; a storage failure never blocks the row
	// deletion.
	if key, ok := s.store.KeyFromURL(p.ImageURL); ok {
		if err := s.store.Remove(ctx, key); err != nil {
			s.log.Warn("failed to remove portfolio image blob",
				zap.Error(err), zap.String("key", key))
		}
	}

	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return nil
}

func (s *portfolioService) UploadImage(ctx context.Context, data []byte) (string, error) {
	url, _, err := uploadMedia(ctx, s.store, "portfolio", data, model.MediaTypeImage)
	if err != nil {
		return "", err
	}
	return url, nil
}
