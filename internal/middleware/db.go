package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

const dbKey contextKey = "db"

// WithDB stores the database connection pool in the request context
func WithDB(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(dbKey), pool)
		c.Next()
	}
}

// GetDB retrieves the database connection pool from context
func GetDB(c *gin.Context) (*pgxpool.Pool, bool) {
	val, exists := c.Get(string(dbKey))
	if !exists {
		return nil, false
	}
	db, ok := val.(*pgxpool.Pool)
	return db, ok
}
