package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type GalleryItem struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title       *string `gorm:"type:text" json:"title,omitempty"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	MediaURL    string  `gorm:"type:text;not null" json:"media_url"`
	MediaType   string  `gorm:"type:text;not null;default:'image';check:media_type IN ('image','video')" json:"media_type"`
	Category    string  `gorm:"type:text;not null;default:'general'" json:"category"`

	// DisplayOrder drives curated ordering on the public gallery; there is no
	// reordering UI beyond editing the integer.
	DisplayOrder int `gorm:"not null;default:0;index:ix_gallery_display_order" json:"display_order"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (GalleryItem) TableName() string { return "gallery_items" }
