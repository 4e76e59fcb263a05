package models

import (
	"time"

	"github.com/google/uuid"
)

// ScanLocation is one recorded visit to an individual's public page.
// Append-only, ordered by scanned_at.
type ScanLocation struct {
	ID           uuid.UUID `json:"id" db:"id"`
	IndividualID uuid.UUID `json:"individual_id" db:"individual_id"`
	Latitude     *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64  `json:"longitude,omitempty" db:"longitude"`
	Accuracy     *float64  `json:"accuracy,omitempty" db:"accuracy"`
	City         *string   `json:"city,omitempty" db:"city"`
	Region       *string   `json:"region,omitempty" db:"region"`
	Country      *string   `json:"country,omitempty" db:"country"`
	ScannedAt    time.Time `json:"scanned_at" db:"scanned_at"`
}

// ScanLocationRequest is the body submitted by the public page after a scan
type ScanLocationRequest struct {
	IndividualID string   `json:"individual_id" binding:"required"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Accuracy     *float64 `json:"accuracy,omitempty"`
	City         *string  `json:"city,omitempty"`
	Region       *string  `json:"region,omitempty"`
	Country      *string  `json:"country,omitempty"`
}
