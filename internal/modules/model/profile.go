package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile rows are created by the auth provider's signup trigger; the id is
// the auth identity id, so there is no generated default here.
type Profile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Email     *string `gorm:"type:text" json:"email,omitempty"`
	FullName  *string `gorm:"type:text" json:"full_name,omitempty"`
	Phone     *string `gorm:"type:text" json:"phone,omitempty"`
	AvatarURL *string `gorm:"type:text" json:"avatar_url,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
