package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

type ServiceRepo interface {
	List(ctx context.Context) ([]model.Service, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Service, error)
	Create(ctx context.Context, s *model.Service) error
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter map[string]any) (int64, error)
}

type serviceRepo struct {
	crudStore[model.Service]
}

func NewServiceRepo(db *gorm.DB) ServiceRepo {
	return &serviceRepo{crudStore[model.Service]{db: db, order: "display_order ASC, created_at ASC"}}
}
