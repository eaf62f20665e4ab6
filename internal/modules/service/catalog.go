package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

// CatalogService manages the studio's service offerings (the "services"
// table). Features arrive as an ordered string list, entered one per line in
// the admin form.
type CatalogService interface {
	List(ctx context.Context) ([]model.Service, error)
	Create(ctx context.Context, in CreateServiceInput) (*model.Service, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateServiceInput) (*model.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	r repo.ServiceRepo
}

func NewCatalogService(r repo.ServiceRepo) CatalogService {
	return &catalogService{r: r}
}

type CreateServiceInput struct {
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	Features     []string `json:"features"`
	DisplayOrder int      `json:"display_order"`
}

type UpdateServiceInput struct {
	Title        *string   `json:"title"`
	Subtitle     *string   `json:"subtitle"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	Features     *[]string `json:"features"`
	DisplayOrder *int      `json:"display_order"`
}

func (s *catalogService) List(ctx context.Context) ([]model.Service, error) {
	return s.r.List(ctx)
}

func (s *catalogService) Create(ctx context.Context, in CreateServiceInput) (*model.Service, error) {
	svc := &model.Service{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		Features:     datatypes.NewJSONSlice(in.Features),
		DisplayOrder: in.DisplayOrder,
	}
	if in.Subtitle != "" {
		svc.Subtitle = &in.Subtitle
	}
	if err := s.r.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, id uuid.UUID, in UpdateServiceInput) (*model.Service, error) {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Subtitle != nil {
		fields["subtitle"] = *in.Subtitle
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.Features != nil {
		fields["features"] = datatypes.NewJSONSlice(*in.Features)
	}
	if in.DisplayOrder != nil {
		fields["display_order"] = *in.DisplayOrder
	}

	if err := s.r.Patch(ctx, id, fields); err != nil {
		return nil, mapNotFound(err)
	}
	out, err := s.r.Get(ctx, id)
	return out, mapNotFound(err)
}

func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return nil
}
