package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/middleware"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/models"
	"go.uber.org/zap"
)

// requireOwnership loads an individual and verifies the caller owns it.
// Lookup failure and missing row collapse into the same not-found answer.
func requireOwnership(ctx context.Context, db *pgxpool.Pool, c *gin.Context, individualID uuid.UUID) bool {
	guardianID, ok := middleware.GetAuthGuardianID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return false
	}

	var ownerID uuid.UUID
	err := db.QueryRow(ctx,
		"SELECT guardian_id FROM individuals WHERE id = $1", individualID,
	).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Individual not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query individual"})
		}
		return false
	}

	if ownerID != guardianID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		return false
	}

	return true
}

// UpdateIndividual updates mutable profile fields and the priority=1 contact
func UpdateIndividual(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	individualID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid individual ID format"})
		return
	}

	var req models.IndividualUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if strings.TrimSpace(req.DisplayName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Display name is required"})
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

	if !requireOwnership(c.Request.Context(), db, c, individualID) {
		return
	}

	query := `
		UPDATE individuals
		SET display_name = $1, date_of_birth = $2, allergies = $3,
		    medical_notes = $4, is_public = COALESCE($5, is_public)
		WHERE id = $6
	`
	_, err = db.Exec(c.Request.Context(), query,
		req.DisplayName, dateOfBirth, req.Allergies, req.MedicalNotes,
		req.IsPublic, individualID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update individual"})
		return
	}

	// Update or insert the primary contact
	var contactID uuid.UUID
	err = db.QueryRow(c.Request.Context(),
		"SELECT id FROM emergency_contacts WHERE individual_id = $1 AND priority = 1",
		individualID,
	).Scan(&contactID)

	switch {
	case err == nil:
		_, err = db.Exec(c.Request.Context(), `
			UPDATE emergency_contacts SET name = $1, relation = $2, phone = $3 WHERE id = $4
		`, req.ContactName, req.ContactRelation, req.ContactPhone, contactID)
	case errors.Is(err, pgx.ErrNoRows):
		_, err = db.Exec(c.Request.Context(), `
			INSERT INTO emergency_contacts (id, individual_id, name, relation, phone, priority)
			VALUES ($1, $2, $3, $4, $5, 1)
		`, uuid.New(), individualID, req.ContactName, req.ContactRelation, req.ContactPhone)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update emergency contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": individualID})
}

// DeleteIndividual removes a profile, its contacts, its QR asset row, and
// the stored QR blob. Blob deletion is best effort. Orders referencing the
// individual are intentionally left in place.
func DeleteIndividual(store BlobStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, ok := middleware.GetDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
			return
		}

		individualID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid individual ID format"})
			return
		}

		if !requireOwnership(c.Request.Context(), db, c, individualID) {
			return
		}

		// Blob first, so the qr_assets row survives a storage failure log
		var storagePath *string
		err = db.QueryRow(c.Request.Context(),
			"SELECT storage_path FROM qr_assets WHERE individual_id = $1", individualID,
		).Scan(&storagePath)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query QR asset"})
			return
		}

		if storagePath != nil {
			if err := store.Delete(c.Request.Context(), *storagePath); err != nil {
				logger.Warn("Failed to delete QR blob",
					zap.String("individual_id", individualID.String()),
					zap.Error(err),
				)
			}
		}

		if _, err := db.Exec(c.Request.Context(),
			"DELETE FROM qr_assets WHERE individual_id = $1", individualID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete QR asset"})
			return
		}

		if _, err := db.Exec(c.Request.Context(),
			"DELETE FROM emergency_contacts WHERE individual_id = $1", individualID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete emergency contacts"})
			return
		}

		if _, err := db.Exec(c.Request.Context(),
			"DELETE FROM individuals WHERE id = $1", individualID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete individual"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
