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

// ListProducts returns all active products (public)
func ListProducts(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	rows, err := db.Query(c.Request.Context(), `
		SELECT id, name, type, description, price, is_active
		FROM products
		WHERE is_active = true
		ORDER BY name ASC
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query products"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Description, &p.Price, &p.IsActive)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse product data"})
			return
		}
		products = append(products, p)
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CreateProduct adds a product to the catalog (admin only)
func CreateProduct(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var req models.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	productID := uuid.New()
	query := `
		INSERT INTO products (id, name, type, description, price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, type, description, price, is_active
	`

	var product models.Product
	err := db.QueryRow(c.Request.Context(), query,
		productID, req.Name, req.Type, req.Description, req.Price, isActive,
	).Scan(&product.ID, &product.Name, &product.Type, &product.Description,
		&product.Price, &product.IsActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct updates catalog fields, including the is_active flag
// (admin only)
func UpdateProduct(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	var req models.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	query := `
		UPDATE products
		SET name = COALESCE($1, name),
		    type = COALESCE($2, type),
		    description = COALESCE($3, description),
		    price = COALESCE($4, price),
		    is_active = COALESCE($5, is_active)
		WHERE id = $6
		RETURNING id, name, type, description, price, is_active
	`

	var product models.Product
	err = db.QueryRow(c.Request.Context(), query,
		req.Name, req.Type, req.Description, req.Price, req.IsActive, productID,
	).Scan(&product.ID, &product.Name, &product.Type, &product.Description,
		&product.Price, &product.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}
