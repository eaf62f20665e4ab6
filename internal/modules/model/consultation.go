package model

import (
	"time"

	"github.com/google/uuid"
)

// Consultation request lifecycle. New requests arrive from the public intake
// form as "pending"; every later transition is an admin action.
const (
	ConsultationStatusPending   = "pending"
	ConsultationStatusContacted = "contacted"
	ConsultationStatusScheduled = "scheduled"
	ConsultationStatusCompleted = "completed"
	ConsultationStatusCancelled = "cancelled"
)

type ConsultationRequest struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name          string  `gorm:"type:text;not null" json:"name"`
	Email         string  `gorm:"type:text;not null" json:"email"`
	Phone         string  `gorm:"type:text;not null" json:"phone"`
	PreferredDate string  `gorm:"type:text;not null" json:"preferred_date"`
	ProjectType   string  `gorm:"type:text;not null" json:"project_type"`
	Message       *string `gorm:"type:text" json:"message,omitempty"`
	Notes         *string `gorm:"type:text" json:"notes,omitempty"`
	Status        string  `gorm:"type:text;not null;default:'pending';check:status IN ('pending','contacted','scheduled','completed','cancelled');index:ix_consultation_status" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ConsultationRequest) TableName() string { return "consultation_requests" }
