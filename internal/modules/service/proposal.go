package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

type ProposalService interface {
	List(ctx context.Context) ([]model.Proposal, error)
	Create(ctx context.Context, in CreateProposalInput) (*model.Proposal, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateProposalInput) (*model.Proposal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type proposalService struct {
	r repo.ProposalRepo
}

func NewProposalService(r repo.ProposalRepo) ProposalService {
	return &proposalService{r: r}
}

type CreateProposalInput struct {
	Title           string   `json:"title"`
	ClientName      string   `json:"client_name"`
	ClientEmail     string   `json:"client_email"`
	ClientPhone     string   `json:"client_phone"`
	Description     string   `json:"description"`
	EstimatedBudget *float64 `json:"estimated_budget"`
	Status          string   `json:"status"`
	ValidUntil      string   `json:"valid_until"`
	Notes           string   `json:"notes"`
}

type UpdateProposalInput struct {
	Title           *string  `json:"title"`
	ClientName      *string  `json:"client_name"`
	ClientEmail     *string  `json:"client_email"`
	ClientPhone     *string  `json:"client_phone"`
	Description     *string  `json:"description"`
	EstimatedBudget *float64 `json:"estimated_budget"`
	Status          *string  `json:"status"`
	ValidUntil      *string  `json:"valid_until"`
	Notes           *string  `json:"notes"`
}

func (s *proposalService) List(ctx context.Context) ([]model.Proposal, error) {
	return s.r.List(ctx)
}

func (s *proposalService) Create(ctx context.Context, in CreateProposalInput) (*model.Proposal, error) {
	status := in.Status
	if status == "" {
		status = model.ProposalStatusDraft
	}
	p := &model.Proposal{
		Title:           in.Title,
		ClientName:      in.ClientName,
		ClientEmail:     optional(in.ClientEmail),
		ClientPhone:     optional(in.ClientPhone),
		Description:     optional(in.Description),
		EstimatedBudget: in.EstimatedBudget,
		Status:          status,
		ValidUntil:      optional(in.ValidUntil),
		Notes:           optional(in.Notes),
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proposalService) Update(ctx context.Context, id uuid.UUID, in UpdateProposalInput) (*model.Proposal, error) {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.ClientName != nil {
		fields["client_name"] = *in.ClientName
	}
	if in.ClientEmail != nil {
		fields["client_email"] = *in.ClientEmail
	}
	if in.ClientPhone != nil {
		fields["client_phone"] = *in.ClientPhone
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.EstimatedBudget != nil {
		fields["estimated_budget"] = *in.EstimatedBudget
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.ValidUntil != nil {
		fields["valid_until"] = *in.ValidUntil
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

func (s *proposalService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return nil
}
