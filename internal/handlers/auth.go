package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/auth"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/middleware"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	FullName *string `json:"full_name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token      string    `json:"token"`
	GuardianID uuid.UUID `json:"guardian_id"`
	Email      string    `json:"email"`
	IsAdmin    bool      `json:"is_admin"`
}

// Register creates a guardian account and returns a JWT token
func Register(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, ok := middleware.GetDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
			return
		}

		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var exists bool
		err := db.QueryRow(c.Request.Context(),
			"SELECT EXISTS(SELECT 1 FROM guardians WHERE LOWER(email) = $1)",
			email,
		).Scan(&exists)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email"})
			return
		}
		if exists {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		guardianID := uuid.New()
		query := `
			INSERT INTO guardians (id, email, full_name, is_admin, password_hash, created_at)
			VALUES ($1, $2, $3, false, $4, NOW())
		`
		_, err = db.Exec(c.Request.Context(), query, guardianID, email, req.FullName, string(hash))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		token, err := jwtService.GenerateToken(guardianID, email, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusCreated, AuthResponse{
			Token:      token,
			GuardianID: guardianID,
			Email:      email,
		})
	}
}

// Login authenticates a guardian and returns a JWT token
func Login(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, ok := middleware.GetDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
			return
		}

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		query := `
			SELECT id, email, password_hash, is_admin
			FROM guardians
			WHERE LOWER(email) = $1
		`

		var guardianID uuid.UUID
		var dbEmail string
		var passwordHash *string
		var isAdmin bool

		err := db.QueryRow(c.Request.Context(), query, email).Scan(
			&guardianID, &dbEmail, &passwordHash, &isAdmin,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query account"})
			}
			return
		}

		if passwordHash == nil || *passwordHash == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Password authentication not configured for this account"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(*passwordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := jwtService.GenerateToken(guardianID, dbEmail, isAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Token:      token,
			GuardianID: guardianID,
			Email:      dbEmail,
			IsAdmin:    isAdmin,
		})
	}
}
