package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageStatusUnread  = "unread"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

type ContactMessage struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name    string  `gorm:"type:text;not null" json:"name"`
	Email   string  `gorm:"type:text;not null" json:"email"`
	Phone   *string `gorm:"type:text" json:"phone,omitempty"`
	Subject string  `gorm:"type:text;not null" json:"subject"`
	Message string  `gorm:"type:text;not null" json:"message"`
	Status  string  `gorm:"type:text;not null;default:'unread';check:status IN ('unread','read','replied');index:ix_message_status" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
