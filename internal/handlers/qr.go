package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/middleware"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/qr"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/storage"
)

// GetQrSignedURL returns a 60-second download link for a profile's QR image
// (owner or admin)
func GetQrSignedURL(store BlobStore) gin.HandlerFunc {
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
		isAdmin, _ := middleware.GetAuthIsAdmin(c)

		individualID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid individual ID format"})
			return
		}

		var ownerID uuid.UUID
		var storagePath *string
		err = db.QueryRow(c.Request.Context(), `
			SELECT i.guardian_id, q.storage_path
			FROM individuals i
			LEFT JOIN qr_assets q ON q.individual_id = i.id
			WHERE i.id = $1
		`, individualID).Scan(&ownerID, &storagePath)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Individual not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query QR asset"})
			}
			return
		}

		if ownerID != guardianID && !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		if storagePath == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "QR code not found"})
			return
		}

		url, err := store.SignedURL(*storagePath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign download URL"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

// RegenerateQr recreates a missing QR asset (admin only). The qr_assets
// table is insert-only: if a row exists the request is rejected and
// storage is left untouched.
func RegenerateQr(siteURL string, store BlobStore) gin.HandlerFunc {
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

		var publicID string
		err = db.QueryRow(c.Request.Context(),
			"SELECT public_id FROM individuals WHERE id = $1", individualID,
		).Scan(&publicID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Individual not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query individual"})
			}
			return
		}

		var exists bool
		err = db.QueryRow(c.Request.Context(),
			"SELECT EXISTS(SELECT 1 FROM qr_assets WHERE individual_id = $1)", individualID,
		).Scan(&exists)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query QR asset"})
			return
		}
		if exists {
			c.JSON(http.StatusConflict, gin.H{"error": "QR code already exists for this individual"})
			return
		}

		png, err := qr.GeneratePNG(qr.PublicURL(siteURL, publicID))
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
		`, individualID, key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record QR asset"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "QR code generated successfully"})
	}
}
