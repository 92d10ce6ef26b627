package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/streetmarket/backend/internal/domain/catalog"
)

// ProductView is the client-facing product shape, optionally enriched with
// the supplier's display name
type ProductView struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	MinOrder     int             `json:"minOrder"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	SupplierID   uuid.UUID       `json:"supplierId"`
	SupplierName string          `json:"supplierName,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// NewProductView maps a product aggregate to its view
func NewProductView(product *catalog.Product) ProductView {
	return ProductView{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		MinOrder:    product.MinOrder,
		ImageURL:    product.ImageURL,
		SupplierID:  product.SupplierID,
		CreatedAt:   product.CreatedAt,
	}
}

// CreateProductInput contains the input for creating a product
type CreateProductInput struct {
	Name        string
	Category    string
	Description string
	Price       decimal.Decimal
	Stock       int
	MinOrder    int
	ImageURL    string
	SupplierID  uuid.UUID
}

// UpdateProductInput contains the input for a partial product update.
// Nil pointers leave the corresponding field untouched.
type UpdateProductInput struct {
	ProductID   uuid.UUID
	ActorID     uuid.UUID
	ActorRole   string
	Name        *string
	Category    *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	MinOrder    *int
	ImageURL    *string
}

// DeleteProductInput contains the input for deleting a product
type DeleteProductInput struct {
	ProductID uuid.UUID
	ActorID   uuid.UUID
	ActorRole string
}
