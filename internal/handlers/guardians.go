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
)

// ensureGuardian creates a guardian row for the caller if one does not
// exist yet. Guardians are created implicitly on first authenticated action.
func ensureGuardian(ctx context.Context, db *pgxpool.Pool, guardianID uuid.UUID, email string) error {
	var exists bool
	err := db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM guardians WHERE id = $1)", guardianID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = db.Exec(ctx, `
		INSERT INTO guardians (id, email, is_admin, created_at)
		VALUES ($1, $2, false, NOW())
		ON CONFLICT (id) DO NOTHING
	`, guardianID, email)
	return err
}

// GetCurrentGuardian returns the authenticated guardian's account
func GetCurrentGuardian(c *gin.Context) {
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

	query := `
		SELECT id, email, full_name, phone, is_admin, created_at
		FROM guardians
		WHERE id = $1
	`

	var guardian models.GuardianResponse
	err := db.QueryRow(c.Request.Context(), query, guardianID).Scan(
		&guardian.ID, &guardian.Email, &guardian.FullName,
		&guardian.Phone, &guardian.IsAdmin, &guardian.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guardian not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query guardian"})
		}
		return
	}

	c.JSON(http.StatusOK, guardian)
}

type GuardianPhoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// UpdateGuardianPhone upserts the caller's phone number
func UpdateGuardianPhone(c *gin.Context) {
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

	var req GuardianPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	phone := strings.TrimSpace(req.Phone)
	if len(phone) < 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number must be at least 5 characters"})
		return
	}

	email, _ := middleware.GetAuthEmail(c)
	if err := ensureGuardian(c.Request.Context(), db, guardianID, email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load guardian"})
		return
	}

	_, err := db.Exec(c.Request.Context(),
		"UPDATE guardians SET phone = $1 WHERE id = $2", phone, guardianID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update phone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
