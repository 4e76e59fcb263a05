package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/middleware"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/models"
)

// ListIndividuals returns the caller's profiles with order aggregates.
// Admins see every profile.
func ListIndividuals(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	guardianID, ok := middleware.GetAuthGuardianID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	isAdmin, _ := middleware.GetAuthIsAdmin(c)

	// Order stats are computed at request time by scanning orders
	query := `
		SELECT
			i.id, i.display_name, i.public_id, i.is_public, i.created_at,
			COUNT(o.id)::int AS ordered,
			COUNT(CASE WHEN o.status = 'delivered' THEN 1 END)::int AS delivered
		FROM individuals i
		LEFT JOIN orders o ON o.individual_id = i.id
		WHERE i.guardian_id = $1 OR $2
		GROUP BY i.id
		ORDER BY i.created_at DESC
	`

	rows, err := db.Query(c.Request.Context(), query, guardianID, isAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query individuals"})
		return
	}
	defer rows.Close()

	individuals := []models.IndividualListResponse{}
	for rows.Next() {
		var ind models.IndividualListResponse
		err := rows.Scan(
			&ind.ID, &ind.DisplayName, &ind.PublicID, &ind.IsPublic,
			&ind.CreatedAt, &ind.Ordered, &ind.Delivered,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse individual data"})
			return
		}
		individuals = append(individuals, ind)
	}

	c.JSON(http.StatusOK, gin.H{
		"individuals": individuals,
		"count":       len(individuals),
	})
}

// GetIndividual returns full details for one profile (owner or admin)
func GetIndividual(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	guardianID, ok := middleware.GetAuthGuardianID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	isAdmin, _ := middleware.GetAuthIsAdmin(c)

	individualID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid individual ID format"})
		return
	}

	query := `
		SELECT id, guardian_id, display_name, date_of_birth, allergies,
		       medical_notes, public_id, is_public, created_at
		FROM individuals
		WHERE id = $1
	`

	var detail models.IndividualDetailResponse
	err = db.QueryRow(c.Request.Context(), query, individualID).Scan(
		&detail.ID, &detail.GuardianID, &detail.DisplayName, &detail.DateOfBirth,
		&detail.Allergies, &detail.MedicalNotes, &detail.PublicID,
		&detail.IsPublic, &detail.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Individual not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query individual"})
		}
		return
	}

	if detail.GuardianID != guardianID && !isAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		return
	}

	// Primary contact
	var contact models.EmergencyContact
	err = db.QueryRow(c.Request.Context(), `
		SELECT id, individual_id, name, relation, phone, priority
		FROM emergency_contacts
		WHERE individual_id = $1 AND priority = 1
	`, individualID).Scan(
		&contact.ID, &contact.IndividualID, &contact.Name,
		&contact.Relation, &contact.Phone, &contact.Priority,
	)
	if err == nil {
		detail.Contact = &contact
	} else if !errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query emergency contact"})
		return
	}

	err = db.QueryRow(c.Request.Context(),
		"SELECT EXISTS(SELECT 1 FROM qr_assets WHERE individual_id = $1)", individualID,
	).Scan(&detail.HasQrAsset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query QR asset"})
		return
	}

	rows, err := db.Query(c.Request.Context(), `
		SELECT id, individual_id, latitude, longitude, accuracy,
		       city, region, country, scanned_at
		FROM qr_scan_locations
		WHERE individual_id = $1
		ORDER BY scanned_at DESC
		LIMIT 20
	`, individualID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query scan history"})
		return
	}
	defer rows.Close()

	detail.RecentScans = []models.ScanLocation{}
	for rows.Next() {
		var scan models.ScanLocation
		err := rows.Scan(
			&scan.ID, &scan.IndividualID, &scan.Latitude, &scan.Longitude,
			&scan.Accuracy, &scan.City, &scan.Region, &scan.Country, &scan.ScannedAt,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse scan data"})
			return
		}
		detail.RecentScans = append(detail.RecentScans, scan)
	}

	c.JSON(http.StatusOK, detail)
}
