package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/middleware"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/models"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/notify"
	"go.uber.org/zap"
)

// ListNotifications returns the caller's latest notifications, newest first
func ListNotifications(c *gin.Context) {
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

	rows, err := db.Query(c.Request.Context(), `
		SELECT id, guardian_id, message, read, read_at, created_at
		FROM notifications
		WHERE guardian_id = $1
		ORDER BY created_at DESC
		LIMIT 10
	`, guardianID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query notifications"})
		return
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.GuardianID, &n.Message, &n.Read, &n.ReadAt, &n.CreatedAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse notification data"})
			return
		}
		notifications = append(notifications, n)
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

// MarkNotificationsRead marks all the caller's unread notifications as read
func MarkNotificationsRead(c *gin.Context) {
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

	_, err := db.Exec(c.Request.Context(), `
		UPDATE notifications
		SET read = true, read_at = NOW()
		WHERE guardian_id = $1 AND read = false
	`, guardianID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// LatestNotification returns the caller's newest notification message
func LatestNotification(c *gin.Context) {
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

	var message string
	err := db.QueryRow(c.Request.Context(), `
		SELECT message FROM notifications
		WHERE guardian_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, guardianID).Scan(&message)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusOK, gin.H{"message": "No notifications found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query notifications"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// AdminBroadcast sends a message to every guardian, optionally by SMS
// and/or as in-app notification rows (admin only)
func AdminBroadcast(sms *notify.SMSClient, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, ok := middleware.GetDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
			return
		}

		var req models.BroadcastRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message required"})
			return
		}

		rows, err := db.Query(c.Request.Context(), "SELECT id, phone FROM guardians")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query guardians"})
			return
		}
		defer rows.Close()

		type guardian struct {
			ID    uuid.UUID
			Phone *string
		}
		guardians := []guardian{}
		for rows.Next() {
			var g guardian
			if err := rows.Scan(&g.ID, &g.Phone); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse guardian data"})
				return
			}
			guardians = append(guardians, g)
		}
		rows.Close()

		if len(guardians) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No guardians found."})
			return
		}

		// SMS failures are logged, never fatal
		if req.SendSMS && sms.Enabled() {
			for _, g := range guardians {
				if g.Phone == nil || *g.Phone == "" {
					continue
				}
				if err := sms.Send(c.Request.Context(), *g.Phone, req.Message); err != nil {
					logger.Warn("Broadcast SMS failed",
						zap.String("guardian_id", g.ID.String()),
						zap.Error(err),
					)
				}
			}
		}

		if req.SendWeb {
			for _, g := range guardians {
				_, err := db.Exec(c.Request.Context(), `
					INSERT INTO notifications (id, guardian_id, message, read, created_at)
					VALUES ($1, $2, $3, false, NOW())
				`, uuid.New(), g.ID, req.Message)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notifications"})
					return
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"sent":    len(guardians),
			"message": "Notification sent successfully.",
		})
	}
}
