package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/middleware"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/models"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/notify"
	"go.uber.org/zap"
)

// RecordScanLocation ingests a geolocation-stamped scan event from the
// public page. The scan row always wins: guardian lookup, geocoding, and
// alert delivery are best effort and never fail the request once the scan
// is recorded.
func RecordScanLocation(geocoder Geocoder, alerter ScanAlerter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ScanLocationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid individual_id"})
			return
		}

		individualID, err := uuid.Parse(req.IndividualID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid individual_id"})
			return
		}

		db, ok := middleware.GetDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
			return
		}

		// Fill in the address server-side when the client couldn't
		city, region, country := req.City, req.Region, req.Country
		if req.Latitude != nil && req.Longitude != nil && city == nil {
			if addr, err := geocoder.Reverse(c.Request.Context(), *req.Latitude, *req.Longitude); err == nil {
				if addr.City != "" {
					city = &addr.City
				}
				if addr.Region != "" {
					region = &addr.Region
				}
				if addr.Country != "" {
					country = &addr.Country
				}
			} else {
				logger.Debug("Reverse geocoding failed", zap.Error(err))
			}
		}

		scan := models.ScanLocation{
			ID:           uuid.New(),
			IndividualID: individualID,
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			Accuracy:     req.Accuracy,
			City:         city,
			Region:       region,
			Country:      country,
			ScannedAt:    time.Now().UTC(),
		}

		_, err = db.Exec(c.Request.Context(), `
			INSERT INTO qr_scan_locations (
				id, individual_id, latitude, longitude, accuracy,
				city, region, country, scanned_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, scan.ID, scan.IndividualID, scan.Latitude, scan.Longitude,
			scan.Accuracy, scan.City, scan.Region, scan.Country, scan.ScannedAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record scan"})
			return
		}

		// Guardian lookup goes through the individual's owning guardian.
		// A missing guardian is non-fatal: the scan stays recorded.
		var displayName string
		var guardianID uuid.UUID
		var guardianPhone, guardianEmail *string
		err = db.QueryRow(c.Request.Context(), `
			SELECT i.display_name, g.id, g.phone, g.email
			FROM individuals i
			JOIN guardians g ON g.id = i.guardian_id
			WHERE i.id = $1
		`, individualID).Scan(&displayName, &guardianID, &guardianPhone, &guardianEmail)

		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				logger.Warn("Guardian lookup failed for scan",
					zap.String("individual_id", individualID.String()),
					zap.Error(err),
				)
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "scan": scan})
			return
		}

		alert := notify.ScanAlert{
			IndividualName: displayName,
			Latitude:       scan.Latitude,
			Longitude:      scan.Longitude,
			ScannedAt:      scan.ScannedAt,
		}

		_, err = db.Exec(c.Request.Context(), `
			INSERT INTO notifications (id, guardian_id, message, read, created_at)
			VALUES ($1, $2, $3, false, NOW())
		`, uuid.New(), guardianID, alert.Message())
		if err != nil {
			logger.Warn("Failed to insert scan notification",
				zap.String("guardian_id", guardianID.String()),
				zap.Error(err),
			)
		}

		alerter.SendScanAlert(c.Request.Context(), guardianPhone, guardianEmail, alert)

		c.JSON(http.StatusOK, gin.H{"success": true, "scan": scan})
	}
}
