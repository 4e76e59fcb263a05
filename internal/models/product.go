package models

import "github.com/google/uuid"

// Product is a physical QR-bearing item offered in the shop
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Type        string    `json:"type" db:"type"`
	Description *string   `json:"description,omitempty" db:"description"`
	Price       float64   `json:"price" db:"price"`
	IsActive    bool      `json:"is_active" db:"is_active"`
}

// ProductCreateRequest is the request body for creating a product
type ProductCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price" binding:"required"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ProductUpdateRequest is the request body for updating a product
type ProductUpdateRequest struct {
	Name        *string  `json:"name,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}
