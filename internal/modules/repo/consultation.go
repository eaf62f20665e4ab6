package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

type ConsultationRepo interface {
	List(ctx context.Context) ([]model.ConsultationRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ConsultationRequest, error)
	Create(ctx context.Context, c *model.ConsultationRequest) error
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter map[string]any) (int64, error)
}

type consultationRepo struct {
	crudStore[model.ConsultationRequest]
}

func NewConsultationRepo(db *gorm.DB) ConsultationRepo {
	return &consultationRepo{crudStore[model.ConsultationRequest]{db: db, order: "created_at DESC"}}
}
