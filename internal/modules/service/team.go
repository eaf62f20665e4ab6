package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/infra/blob"
	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

type TeamService interface {
	List(ctx context.Context) ([]model.TeamMember, error)
	Create(ctx context.Context, in CreateTeamMemberInput) (*model.TeamMember, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateTeamMemberInput) (*model.TeamMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// UploadMedia accepts a member photo (image) or intro video; the detected
	// kind tells the caller which URL field to fill.
	UploadMedia(ctx context.Context, data []byte) (string, string, error)
}

type teamService struct {
	r     repo.TeamRepo
	store blob.Store
	log   *zap.Logger
}

func NewTeamService(r repo.TeamRepo, store blob.Store, log *zap.Logger) TeamService {
	return &teamService{r: r, store: store, log: log}
}

type CreateTeamMemberInput struct {
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	Bio          string `json:"bio"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PhotoURL     string `json:"photo_url"`
	VideoURL     string `json:"video_url"`
	IsLeader     bool   `json:"is_leader"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateTeamMemberInput struct {
	FullName     *string `json:"full_name"`
	Role         *string `json:"role"`
	Bio          *string `json:"bio"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	PhotoURL     *string `json:"photo_url"`
	VideoURL     *string `json:"video_url"`
	IsLeader     *bool   `json:"is_leader"`
	DisplayOrder *int    `json:"display_order"`
}

func (s *teamService) List(ctx context.Context) ([]model.TeamMember, error) {
	return s.r.List(ctx)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func (s *teamService) Create(ctx context.Context, in CreateTeamMemberInput) (*model.TeamMember, error) {
	m := &model.TeamMember{
		FullName:     in.FullName,
		Role:         in.Role,
		Bio:          optional(in.Bio),
		Email:        optional(in.Email),
		Phone:        optional(in.Phone),
		PhotoURL:     optional(in.PhotoURL),
		VideoURL:     optional(in.VideoURL),
		IsLeader:     in.IsLeader,
		DisplayOrder: in.DisplayOrder,
	}
	if err := s.r.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *teamService) Update(ctx context.Context, id uuid.UUID, in UpdateTeamMemberInput) (*model.TeamMember, error) {
	fields := map[string]any{}
	if in.FullName != nil {
		fields["full_name"] = *in.FullName
	}
	if in.Role != nil {
		fields["role"] = *in.Role
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.PhotoURL != nil {
		fields["photo_url"] = *in.PhotoURL
	}
	if in.VideoURL != nil {
		fields["video_url"] = *in.VideoURL
	}
	if in.IsLeader != nil {
		fields["is_leader"] = *in.IsLeader
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

func (s *teamService) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	for _, u := range []*string{m.PhotoURL, m.VideoURL} {
		if u == nil {
			continue
		}
		if key, ok := s.store.KeyFromURL(*u); ok {
			if err := s.store.Remove(ctx, key); err != nil {
				s.log.Warn("failed to remove team media blob",
					zap.Error(err), zap.String("key", key))
			}
		}
	}

	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return nil
}

func (s *teamService) UploadMedia(ctx context.Context, data []byte) (string, string, error) {
	return uploadMedia(ctx, s.store, "team", data)
}
