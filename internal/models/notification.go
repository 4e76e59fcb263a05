package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a per-guardian in-app notification row
type Notification struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	GuardianID uuid.UUID  `json:"guardian_id" db:"guardian_id"`
	Message    string     `json:"message" db:"message"`
	Read       bool       `json:"read" db:"read"`
	ReadAt     *time.Time `json:"read_at,omitempty" db:"read_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// BroadcastRequest is the admin broadcast request body
type BroadcastRequest struct {
	Message string `json:"message" binding:"required"`
	SendSMS bool   `json:"send_sms"`
	SendWeb bool   `json:"send_web"`
}
