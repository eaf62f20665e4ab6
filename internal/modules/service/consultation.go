package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

// ConsultationService is the admin side of consultation requests: the public
// intake creates them, admins update status/notes and delete.
type ConsultationService interface {
	List(ctx context.Context) ([]model.ConsultationRequest, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateConsultationInput) (*model.ConsultationRequest, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type consultationService struct {
	r   repo.ConsultationRepo
	log *zap.Logger
}

func NewConsultationService(r repo.ConsultationRepo, log *zap.Logger) ConsultationService {
	return &consultationService{r: r, log: log}
}

// UpdateConsultationInput carries a partial patch: nil fields are left
// untouched.
type UpdateConsultationInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (s *consultationService) List(ctx context.Context) ([]model.ConsultationRequest, error) {
	return s.r.List(ctx)
}

func (s *consultationService) Update(ctx context.Context, id uuid.UUID, in UpdateConsultationInput) (*model.ConsultationRequest, error) {
	fields := map[string]any{}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}

	if err := s.r.Patch(ctx, id, fields); err != nil {
		return nil, mapNotFound(err)
	}
	out, err := s.r.Get(ctx, id)
	return out, mapNotFound(err)
}

// Delete treats an already-deleted row as success; the operator's goal state
// is reached either way.
func (s *consultationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Debug("consultation already deleted", zap.String("id", id.String()))
			return nil
		}
		return err
	}
	return nil
}
