package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProjectStatusPending    = "pending"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusCancelled  = "cancelled"
)

type Project struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title       string   `gorm:"type:text;not null" json:"title"`
	ClientName  string   `gorm:"type:text;not null" json:"client_name"`
	ClientEmail *string  `gorm:"type:text" json:"client_email,omitempty"`
	ClientPhone *string  `gorm:"type:text" json:"client_phone,omitempty"`
	Description *string  `gorm:"type:text" json:"description,omitempty"`
	Status      string   `gorm:"type:text;not null;default:'pending';check:status IN ('pending','in_progress','completed','cancelled');index:ix_project_status" json:"status"`
	Budget      *float64 `gorm:"type:numeric" json:"budget,omitempty"`
	StartDate   *string  `gorm:"type:text" json:"start_date,omitempty"`
	EndDate     *string  `gorm:"type:text" json:"end_date,omitempty"`
	Notes       *string  `gorm:"type:text" json:"notes,omitempty"`

	// Weak reference: resolved by a client-side lookup map against the team
	// list, never joined. Deleting the member leaves the project unassigned.
	AssignedTeamMemberID *uuid.UUID `gorm:"type:uuid" json:"assigned_team_member_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	TeamMember *TeamMember `gorm:"foreignKey:AssignedTeamMemberID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }
