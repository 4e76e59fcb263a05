package models

import (
	"time"

	"github.com/google/uuid"
)

// QrAsset is the stored QR image for one individual.
// At most one exists per individual; creation is insert-only.
type QrAsset struct {
	IndividualID uuid.UUID `json:"individual_id" db:"individual_id"`
	StoragePath  string    `json:"storage_path" db:"storage_path"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
