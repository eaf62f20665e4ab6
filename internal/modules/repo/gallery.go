package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

type GalleryRepo interface {
	List(ctx context.Context) ([]model.GalleryItem, error)
	Get(ctx context.Context, id uuid.UUID) (*model.GalleryItem, error)
	Create(ctx context.Context, g *model.GalleryItem) error
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter map[string]any) (int64, error)
}

type galleryRepo struct {
	crudStore[model.GalleryItem]
}

func NewGalleryRepo(db *gorm.DB) GalleryRepo {
	// Curated ordering: explicit display_order first, creation time as the
	// tie-breaker.
	return &galleryRepo{crudStore[model.GalleryItem]{db: db, order: "display_order ASC, created_at ASC"}}
}
