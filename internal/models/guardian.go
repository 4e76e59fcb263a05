package models

import (
	"time"

	"github.com/google/uuid"
)

// Guardian represents an authenticated account holder who manages individuals
type Guardian struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	FullName     *string   `json:"full_name,omitempty" db:"full_name"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	PasswordHash *string   `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// GuardianResponse is the public view of a guardian
type GuardianResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts Guardian to GuardianResponse
func (g *Guardian) ToResponse() GuardianResponse {
	return GuardianResponse{
		ID:        g.ID,
		Email:     g.Email,
		FullName:  g.FullName,
		Phone:     g.Phone,
		IsAdmin:   g.IsAdmin,
		CreatedAt: g.CreatedAt,
	}
}
