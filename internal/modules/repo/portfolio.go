package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

type PortfolioRepo interface {
	List(ctx context.Context) ([]model.PortfolioItem, error)
	Get(ctx context.Context, id uuid.UUID) (*model.PortfolioItem, error)
	Create(ctx context.Context, p *model.PortfolioItem) error
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter map[string]any) (int64, error)
}

type portfolioRepo struct {
	crudStore[model.PortfolioItem]
}

func NewPortfolioRepo(db *gorm.DB) PortfolioRepo {
	return &portfolioRepo{crudStore[model.PortfolioItem]{db: db, order: "created_at DESC"}}
}
