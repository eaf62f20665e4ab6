package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

// UserService joins auth profiles with their role rows. Accounts are created
// by the auth provider; the back-office only reads them and flips roles.
// There is deliberately no delete.
type UserService interface {
	List(ctx context.Context) ([]Account, error)
	SetRole(ctx context.Context, userID uuid.UUID, role string) error
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
}

type userService struct {
	r repo.UserRepo
}

func NewUserService(r repo.UserRepo) UserService {
	return &userService{r: r}
}

// Account is a profile with its resolved role.
type Account struct {
	model.Profile
	Role string `json:"role"`
}

func (s *userService) List(ctx context.Context) ([]Account, error) {
	profiles, err := s.r.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.r.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	// Lookup map keyed by user id; profiles without a role row are regular
	// users.
	roleByUser := make(map[uuid.UUID]string, len(roles))
	for _, r := range roles {
		roleByUser[r.UserID] = r.Role
	}

	accounts := make([]Account, 0, len(profiles))
	for _, p := range profiles {
		role, ok := roleByUser[p.ID]
		if !ok {
			role = model.RoleUser
		}
		accounts = append(accounts, Account{Profile: p, Role: role})
	}
	return accounts, nil
}

func (s *userService) SetRole(ctx context.Context, userID uuid.UUID, role string) error {
	if role != model.RoleAdmin && role != model.RoleUser {
		return errors.New("invalid role")
	}
	return s.r.SetRole(ctx, userID, role)
}

func (s *userService) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	role, err := s.r.GetRole(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.RoleUser, nil
		}
		return "", err
	}
	return role, nil
}
