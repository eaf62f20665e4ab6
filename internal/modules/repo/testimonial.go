package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
)

type TestimonialRepo interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Testimonial, error)
	Create(ctx context.Context, t *model.Testimonial) error
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter map[string]any) (int64, error)
}

type testimonialRepo struct {
	crudStore[model.Testimonial]
}

func NewTestimonialRepo(db *gorm.DB) TestimonialRepo {
	return &testimonialRepo{crudStore[model.Testimonial]{db: db, order: "created_at DESC"}}
}
