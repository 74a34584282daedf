package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact form submission. Write-only: nothing in this service
// reads messages back.
type Message struct {
	ID             uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	SenderName     string    `json:"sender_name" db:"sender_name" gorm:"type:text;not null"`
	SenderEmail    string    `json:"sender_email" db:"sender_email" gorm:"type:text;not null"`
	Subject        string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	MessageContent string    `json:"message_content" db:"message_content" gorm:"type:text;not null"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
