package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/auth"
)

const (
	authGuardianKey = "auth_guardian_id"
	authEmailKey    = "auth_email"
	authIsAdminKey  = "auth_is_admin"
)

// RequireAuth validates JWT token and sets guardian context
func RequireAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Check for Bearer token format
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format. Use: Bearer <token>"})
			c.Abort()
			return
		}

		tokenString := parts[1]

		// Validate token
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == auth.ErrExpiredToken {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		// Store guardian info in context
		c.Set(authGuardianKey, claims.GuardianID)
		c.Set(authEmailKey, claims.Email)
		c.Set(authIsAdminKey, claims.IsAdmin)

		c.Next()
	}
}

// RequireAdmin ensures the authenticated guardian is an admin
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(authIsAdminKey)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !isAdmin.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetAuthGuardianID retrieves the authenticated guardian ID from context
func GetAuthGuardianID(c *gin.Context) (uuid.UUID, bool) {
	guardianID, exists := c.Get(authGuardianKey)
	if !exists {
		return uuid.Nil, false
	}
	return guardianID.(uuid.UUID), true
}

// GetAuthEmail retrieves the authenticated guardian's email from context
func GetAuthEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(authEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetAuthIsAdmin retrieves whether the authenticated guardian is an admin
func GetAuthIsAdmin(c *gin.Context) (bool, bool) {
	isAdmin, exists := c.Get(authIsAdminKey)
	if !exists {
		return false, false
	}
	return isAdmin.(bool), true
}
