package model

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	FullName string  `gorm:"type:text;not null" json:"full_name"`
	Role     string  `gorm:"type:text;not null" json:"role"`
	Bio      *string `gorm:"type:text" json:"bio,omitempty"`
	Email    *string `gorm:"type:text" json:"email,omitempty"`
	Phone    *string `gorm:"type:text" json:"phone,omitempty"`
	PhotoURL *string `gorm:"type:text" json:"photo_url,omitempty"`
	VideoURL *string `gorm:"type:text" json:"video_url,omitempty"`

	// IsLeader partitions the public team page into leadership and staff.
	IsLeader     bool `gorm:"not null;default:false" json:"is_leader"`
	DisplayOrder int  `gorm:"not null;default:0;index:ix_team_display_order" json:"display_order"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (TeamMember) TableName() string { return "team_members" }
