package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProposalStatusDraft    = "draft"
	ProposalStatusSent     = "sent"
	ProposalStatusAccepted = "accepted"
	ProposalStatusRejected = "rejected"
)

type Proposal struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title           string   `gorm:"type:text;not null" json:"title"`
	ClientName      string   `gorm:"type:text;not null" json:"client_name"`
	ClientEmail     *string  `gorm:"type:text" json:"client_email,omitempty"`
	ClientPhone     *string  `gorm:"type:text" json:"client_phone,omitempty"`
	Description     *string  `gorm:"type:text" json:"description,omitempty"`
	EstimatedBudget *float64 `gorm:"type:numeric" json:"estimated_budget,omitempty"`
	Status          string   `gorm:"type:text;not null;default:'draft';check:status IN ('draft','sent','accepted','rejected');index:ix_proposal_status" json:"status"`
	ValidUntil      *string  `gorm:"type:text" json:"valid_until,omitempty"`
	Notes           *string  `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Proposal) TableName() string { return "proposals" }
