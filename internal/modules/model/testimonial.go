package model

import (
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name     string  `gorm:"type:text;not null" json:"name"`
	Role     *string `gorm:"type:text" json:"role,omitempty"`
	Content  string  `gorm:"type:text;not null" json:"content"`
	Rating   int     `gorm:"not null;default:5;check:rating >= 1 AND rating <= 5" json:"rating"`
	Featured bool    `gorm:"not null;default:false" json:"featured"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Testimonial) TableName() string { return "testimonials" }
