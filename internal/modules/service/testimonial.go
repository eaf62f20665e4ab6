package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

type TestimonialService interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	Create(ctx context.Context, in CreateTestimonialInput) (*model.Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateTestimonialInput) (*model.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialService struct {
	r repo.TestimonialRepo
}

func NewTestimonialService(r repo.TestimonialRepo) TestimonialService {
	return &testimonialService{r: r}
}

type CreateTestimonialInput struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
	Featured bool   `json:"featured"`
}

type UpdateTestimonialInput struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Content  *string `json:"content"`
	Rating   *int    `json:"rating"`
	Featured *bool   `json:"featured"`
}

func (s *testimonialService) List(ctx context.Context) ([]model.Testimonial, error) {
	return s.r.List(ctx)
}

func (s *testimonialService) Create(ctx context.Context, in CreateTestimonialInput) (*model.Testimonial, error) {
	t := &model.Testimonial{
		Name:     in.Name,
		Content:  in.Content,
		Rating:   in.Rating,
		Featured: in.Featured,
	}
	if in.Role != "" {
		t.Role = &in.Role
	}
	if err := s.r.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *testimonialService) Update(ctx context.Context, id uuid.UUID, in UpdateTestimonialInput) (*model.Testimonial, error) {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Role != nil {
		fields["role"] = *in.Role
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.Rating != nil {
		fields["rating"] = *in.Rating
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

func (s *testimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return nil
}
