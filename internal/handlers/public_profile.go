package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/middleware"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/models"
)

// GetPublicProfile resolves a profile by its opaque public token.
// Lookup errors and missing rows collapse into one generic not-found
// answer so the response never reveals whether a token exists.
func GetPublicProfile(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	publicID := c.Param("publicId")

	query := `
		SELECT id, display_name, allergies, medical_notes, is_public
		FROM individuals
		WHERE public_id = $1
	`

	var individualID uuid.UUID
	var profile models.PublicProfileResponse
	var isPublic bool

	err := db.QueryRow(c.Request.Context(), query, publicID).Scan(
		&individualID, &profile.DisplayName, &profile.Allergies,
		&profile.MedicalNotes, &isPublic,
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	if !isPublic {
		c.JSON(http.StatusForbidden, gin.H{
			"error":  "Profile hidden",
			"reason": "The guardian disabled public visibility.",
		})
		return
	}

	rows, err := db.Query(c.Request.Context(), `
		SELECT id, individual_id, name, relation, phone, priority
		FROM emergency_contacts
		WHERE individual_id = $1
		ORDER BY priority ASC
	`, individualID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	defer rows.Close()

	profile.Contacts = []models.EmergencyContact{}
	for rows.Next() {
		var contact models.EmergencyContact
		err := rows.Scan(
			&contact.ID, &contact.IndividualID, &contact.Name,
			&contact.Relation, &contact.Phone, &contact.Priority,
		)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		profile.Contacts = append(profile.Contacts, contact)
	}

	c.JSON(http.StatusOK, profile)
}
