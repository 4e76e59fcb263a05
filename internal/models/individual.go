package models

import (
	"time"

	"github.com/google/uuid"
)

// Individual represents an emergency profile owned by a guardian
type Individual struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	GuardianID   uuid.UUID  `json:"guardian_id" db:"guardian_id"`
	DisplayName  string     `json:"display_name" db:"display_name"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Allergies    *string    `json:"allergies,omitempty" db:"allergies"`
	MedicalNotes *string    `json:"medical_notes,omitempty" db:"medical_notes"`
	PublicID     string     `json:"public_id" db:"public_id"`
	IsPublic     bool       `json:"is_public" db:"is_public"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// IndividualCreateRequest is the request body for creating an individual
type IndividualCreateRequest struct {
	DisplayName     string  `json:"display_name" binding:"required"`
	DateOfBirth     *string `json:"date_of_birth,omitempty"`
	Allergies       *string `json:"allergies,omitempty"`
	MedicalNotes    *string `json:"medical_notes,omitempty"`
	ContactName     string  `json:"contact_name" binding:"required"`
	ContactRelation *string `json:"contact_relation,omitempty"`
	ContactPhone    string  `json:"contact_phone" binding:"required"`
}

// IndividualUpdateRequest is the request body for updating an individual
type IndividualUpdateRequest struct {
	DisplayName     string  `json:"display_name" binding:"required"`
	DateOfBirth     *string `json:"date_of_birth,omitempty"`
	Allergies       *string `json:"allergies,omitempty"`
	MedicalNotes    *string `json:"medical_notes,omitempty"`
	IsPublic        *bool   `json:"is_public,omitempty"`
	ContactName     string  `json:"contact_name" binding:"required"`
	ContactRelation *string `json:"contact_relation,omitempty"`
	ContactPhone    string  `json:"contact_phone" binding:"required"`
}

// IndividualListResponse is the simplified response for individual lists
type IndividualListResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	PublicID    string    `json:"public_id"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	Ordered     int       `json:"ordered"`
	Delivered   int       `json:"delivered"`
}

// IndividualDetailResponse includes contact and QR asset info
type IndividualDetailResponse struct {
	ID           uuid.UUID          `json:"id"`
	GuardianID   uuid.UUID          `json:"guardian_id"`
	DisplayName  string             `json:"display_name"`
	DateOfBirth  *time.Time         `json:"date_of_birth,omitempty"`
	Allergies    *string            `json:"allergies,omitempty"`
	MedicalNotes *string            `json:"medical_notes,omitempty"`
	PublicID     string             `json:"public_id"`
	IsPublic     bool               `json:"is_public"`
	CreatedAt    time.Time          `json:"created_at"`
	Contact      *EmergencyContact  `json:"contact,omitempty"`
	HasQrAsset   bool               `json:"has_qr_asset"`
	RecentScans  []ScanLocation     `json:"recent_scans"`
}

// PublicProfileResponse is what the public resolver exposes
type PublicProfileResponse struct {
	DisplayName  string             `json:"display_name"`
	Allergies    *string            `json:"allergies,omitempty"`
	MedicalNotes *string            `json:"medical_notes,omitempty"`
	Contacts     []EmergencyContact `json:"contacts"`
}
