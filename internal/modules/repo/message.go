package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

type MessageRepo interface {
	List(ctx context.Context) ([]model.ContactMessage, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	Create(ctx context.Context, m *model.ContactMessage) error
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter map[string]any) (int64, error)
}

type messageRepo struct {
	crudStore[model.ContactMessage]
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &messageRepo{crudStore[model.ContactMessage]{db: db, order: "created_at DESC"}}
}
