package handler

import "github.com/shopspring/decimal"

// CreateProductRequest represents the request body for a new listing
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Category    string          `json:"category" binding:"required,max=100"`
	Description string          `json:"description" binding:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"omitempty,gte=0"`
	MinOrder    int             `json:"minOrder" binding:"omitempty,gte=1"`
	ImageURL    string          `json:"imageUrl" binding:"omitempty,url,max=500"`
}

// UpdateProductRequest represents the request body for a partial update.
// Absent fields leave the listing untouched.
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=200"`
	Category    *string          `json:"category" binding:"omitempty,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty"`
	Stock       *int             `json:"stock" binding:"omitempty"`
	MinOrder    *int             `json:"minOrder" binding:"omitempty,gte=1"`
	ImageURL    *string          `json:"imageUrl" binding:"omitempty,max=500"`
}
