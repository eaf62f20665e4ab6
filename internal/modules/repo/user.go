package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/formastudio/forma-api/internal/modules/model"
)

// UserRepo covers the two account tables the back-office reads: profiles
// (created by the auth provider's signup trigger) and their role rows.
type UserRepo interface {
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	ListRoles(ctx context.Context) ([]model.UserRole, error)
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
	SetRole(ctx context.Context, userID uuid.UUID, role string) error
	GetProfileByEmail(ctx context.Context, email string) (*model.Profile, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	return profiles, r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error
}

func (r *userRepo) ListRoles(ctx context.Context) ([]model.UserRole, error) {
	var roles []model.UserRole
	return roles, r.db.WithContext(ctx).Find(&roles).Error
}

// GetRole returns model.RoleUser when no role row exists; accounts without an
// explicit role are regular users.
func (r *userRepo) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	var role model.UserRole
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.RoleUser, nil
		}
		return "", err
	}
	return role.Role, nil
}

func (r *userRepo) SetRole(ctx context.Context, userID uuid.UUID, role string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(&model.UserRole{UserID: userID, Role: role}).Error
}

func (r *userRepo) GetProfileByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var p model.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
