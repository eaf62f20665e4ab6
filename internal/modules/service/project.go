package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	r repo.ProjectRepo
}

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r}
}

type CreateProjectInput struct {
	Title                string     `json:"title"`
	ClientName           string     `json:"client_name"`
	ClientEmail          string     `json:"client_email"`
	ClientPhone          string     `json:"client_phone"`
	Description          string     `json:"description"`
	Status               string     `json:"status"`
	Budget               *float64   `json:"budget"`
	StartDate            string     `json:"start_date"`
	EndDate              string     `json:"end_date"`
	AssignedTeamMemberID *uuid.UUID `json:"assigned_team_member_id"`
	Notes                string     `json:"notes"`
}

type UpdateProjectInput struct {
	Title                *string    `json:"title"`
	ClientName           *string    `json:"client_name"`
	ClientEmail          *string    `json:"client_email"`
	ClientPhone          *string    `json:"client_phone"`
	Description          *string    `json:"description"`
	Status               *string    `json:"status"`
	Budget               *float64   `json:"budget"`
	StartDate            *string    `json:"start_date"`
	EndDate              *string    `json:"end_date"`
	AssignedTeamMemberID *uuid.UUID `json:"assigned_team_member_id"`
	Notes                *string    `json:"notes"`
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.r.List(ctx)
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	status := in.Status
	if status == "" {
		status = model.ProjectStatusPending
	}
	p := &model.Project{
		Title:                in.Title,
		ClientName:           in.ClientName,
		ClientEmail:          optional(in.ClientEmail),
		ClientPhone:          optional(in.ClientPhone),
		Description:          optional(in.Description),
		Status:               status,
		Budget:               in.Budget,
		StartDate:            optional(in.StartDate),
		EndDate:              optional(in.EndDate),
		AssignedTeamMemberID: in.AssignedTeamMemberID,
		Notes:                optional(in.Notes),
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
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
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.Budget != nil {
		fields["budget"] = *in.Budget
	}
	if in.StartDate != nil {
		fields["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		fields["end_date"] = *in.EndDate
	}
	if in.AssignedTeamMemberID != nil {
		fields["assigned_team_member_id"] = *in.AssignedTeamMemberID
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

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return nil
}
