package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

type ProjectRepo interface {
	List(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter map[string]any) (int64, error)
}

type projectRepo struct {
	crudStore[model.Project]
}

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{crudStore[model.Project]{db: db, order: "created_at DESC"}}
}
