package models

import "github.com/google/uuid"

// EmergencyContact is a contact shown on an individual's public profile.
// The app only manages the priority=1 contact.
type EmergencyContact struct {
	ID           uuid.UUID `json:"id" db:"id"`
	IndividualID uuid.UUID `json:"individual_id" db:"individual_id"`
	Name         string    `json:"name" db:"name"`
	Relation     *string   `json:"relation,omitempty" db:"relation"`
	Phone        string    `json:"phone" db:"phone"`
	Priority     int       `json:"priority" db:"priority"`
}
