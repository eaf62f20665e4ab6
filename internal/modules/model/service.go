package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Service struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title       string  `gorm:"type:text;not null" json:"title"`
	Subtitle    *string `gorm:"type:text" json:"subtitle,omitempty"`
	Description string  `gorm:"type:text;not null" json:"description"`
	ImageURL    string  `gorm:"type:text;not null" json:"image_url"`

	// Features is the ordered bullet list shown on the service card.
	Features datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" json:"features"`

	DisplayOrder int `gorm:"not null;default:0;index:ix_service_display_order" json:"display_order"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Service) TableName() string { return "services" }
