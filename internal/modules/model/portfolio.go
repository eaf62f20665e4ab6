package model

import (
	"time"

	"github.com/google/uuid"
)

type PortfolioItem struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title       string  `gorm:"type:text;not null" json:"title"`
	Category    string  `gorm:"type:text;not null" json:"category"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string  `gorm:"type:text;not null" json:"image_url"`
	Featured    bool    `gorm:"not null;default:false" json:"featured"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (PortfolioItem) TableName() string { return "portfolio_items" }
