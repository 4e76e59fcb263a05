package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/middleware"
	"github.com/shailjakantkaushik-blip/QRSafety/internal/models"
)

// Checkout validates the client-side cart and inserts one pending order row
// per cart line item. Payment is not implemented.
func Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty."})
		return
	}
	if strings.TrimSpace(req.Shipping.Name) == "" || strings.TrimSpace(req.Shipping.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Shipping info required."})
		return
	}

	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	orders := []models.Order{}
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
			return
		}
		individualID, err := uuid.Parse(item.IndividualID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid individual ID format"})
			return
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		query := `
			INSERT INTO orders (
				id, product_id, individual_id, quantity, name, email,
				address, city, zip, country, status, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'pending', NOW())
			RETURNING id, product_id, individual_id, quantity, name, email,
			          address, city, zip, country, status, created_at
		`

		var order models.Order
		err = db.QueryRow(c.Request.Context(), query,
			uuid.New(), productID, individualID, quantity,
			req.Shipping.Name, req.Shipping.Email, req.Shipping.Address,
			req.Shipping.City, req.Shipping.Zip, req.Shipping.Country,
		).Scan(
			&order.ID, &order.ProductID, &order.IndividualID, &order.Quantity,
			&order.Name, &order.Email, &order.Address, &order.City,
			&order.Zip, &order.Country, &order.Status, &order.CreatedAt,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		orders = append(orders, order)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "orders": orders})
}

// ListOrders returns all orders with product and individual names
// (admin only)
func ListOrders(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	query := `
		SELECT
			o.id, o.product_id, p.name, o.individual_id, i.display_name,
			o.quantity, o.name, o.email, o.status, o.created_at
		FROM orders o
		JOIN products p ON p.id = o.product_id
		LEFT JOIN individuals i ON i.id = o.individual_id
		ORDER BY o.created_at DESC
	`

	rows, err := db.Query(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query orders"})
		return
	}
	defer rows.Close()

	orders := []models.OrderListResponse{}
	for rows.Next() {
		var o models.OrderListResponse
		err := rows.Scan(
			&o.ID, &o.ProductID, &o.ProductName, &o.IndividualID,
			&o.IndividualName, &o.Quantity, &o.Name, &o.Email,
			&o.Status, &o.CreatedAt,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse order data"})
			return
		}
		orders = append(orders, o)
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus transitions an order's status (admin only)
func UpdateOrderStatus(c *gin.Context) {
	db, ok := middleware.GetDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	}

	var status string
	err = db.QueryRow(c.Request.Context(),
		"UPDATE orders SET status = $1 WHERE id = $2 RETURNING status",
		req.Status, orderID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "status": status})
}
