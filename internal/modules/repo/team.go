package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

type TeamRepo interface {
	List(ctx context.Context) ([]model.TeamMember, error)
	Get(ctx context.Context, id uuid.UUID) (*model.TeamMember, error)
	Create(ctx context.Context, m *model.TeamMember) error
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter map[string]any) (int64, error)
}

type teamRepo struct {
	crudStore[model.TeamMember]
}

func NewTeamRepo(db *gorm.DB) TeamRepo {
	return &teamRepo{crudStore[model.TeamMember]{db: db, order: "display_order ASC, created_at ASC"}}
}
