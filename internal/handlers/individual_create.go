package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/ids"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/middleware"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/models"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/qr"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/storage"
)

// parseDateOfBirth accepts YYYY-MM-DD or empty
func parseDateOfBirth(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// CreateIndividual creates an emergency profile, its primary contact, and
// its QR asset. The steps run sequentially without a spanning transaction:
// a failure aborts the flow but does not roll back earlier inserts.
func CreateIndividual(siteURL string, store BlobStore) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		var req models.IndividualCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		if strings.TrimSpace(req.DisplayName) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Display name is required"})
			return
		}
		if strings.TrimSpace(req.ContactName) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Contact name is required"})
			return
		}
		if len(strings.TrimSpace(req.ContactPhone)) < 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Contact phone must be at least 5 characters"})
			return
		}

		dateOfBirth, ok := parseDateOfBirth(req.DateOfBirth)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date of birth, expected YYYY-MM-DD"})
			return
		}

		email, _ := middleware.GetAuthEmail(c)
		if err := ensureGuardian(c.Request.Context(), db, guardianID, email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load guardian"})
			return
		}

		publicID, err := ids.NewPublicID()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate public ID"})
			return
		}

		individualID := uuid.New()
		query := `
			INSERT INTO individuals (
				id, guardian_id, display_name, date_of_birth, allergies,
				medical_notes, public_id, is_public, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, true, NOW())
		`
		_, err = db.Exec(c.Request.Context(), query,
			individualID, guardianID, req.DisplayName, dateOfBirth,
			req.Allergies, req.MedicalNotes, publicID,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create individual"})
			return
		}

		_, err = db.Exec(c.Request.Context(), `
			INSERT INTO emergency_contacts (id, individual_id, name, relation, phone, priority)
			VALUES ($1, $2, $3, $4, $5, 1)
		`, uuid.New(), individualID, req.ContactName, req.ContactRelation, req.ContactPhone)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create emergency contact"})
			return
		}

		// Render and store the QR image, then record the asset row
		publicURL := qr.PublicURL(siteURL, publicID)
		png, err := qr.GeneratePNG(publicURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
			return
		}

		key := storage.KeyFor(individualID)
		if err := store.Upload(c.Request.Context(), key, png); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload QR code"})
			return
		}

		_, err = db.Exec(c.Request.Context(), `
			INSERT INTO qr_assets (individual_id, storage_path, created_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (individual_id) DO UPDATE SET storage_path = EXCLUDED.storage_path
		`, individualID, key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record QR asset"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         individualID,
			"public_id":  publicID,
			"public_url": publicURL,
		})
	}
}
