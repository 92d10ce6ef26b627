package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/streetmarket/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// Create creates a new product
	Create(ctx context.Context, product *Product) error

	// Update updates an existing product
	Update(ctx context.Context, product *Product) error

	// Delete deletes a product by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll returns all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]*Product, error)

	// FindBySupplier returns all products owned by a supplier
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*Product, error)

	// Count returns the total number of products
	Count(ctx context.Context) (int64, error)
}
