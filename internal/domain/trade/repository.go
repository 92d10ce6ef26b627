package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/streetmarket/backend/internal/domain/shared"
)

// StockAdjustment captures a per-product stock decrement applied at checkout
type StockAdjustment struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// CreateFromCheckout persists the order with its items, applies the
	// stock decrements, and clears the vendor's entire cart, all inside a
	// single transaction.
	CreateFromCheckout(ctx context.Context, order *Order, adjustments []StockAdjustment) error

	// Update updates an existing order (status/updated_at)
	Update(ctx context.Context, order *Order) error

	// FindByID finds an order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByVendor returns all orders placed by a vendor, items included
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*Order, error)

	// FindAll returns all orders matching the filter, items included
	FindAll(ctx context.Context, filter shared.Filter) ([]*Order, error)

	// Count returns the total number of orders
	Count(ctx context.Context) (int64, error)

	// SumTotalAmount returns the gross merchandise value across all orders
	SumTotalAmount(ctx context.Context) (decimal.Decimal, error)
}

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	// Upsert inserts the entry or, when a row for the same
	// (vendor, product) pair exists, overwrites that row's quantity.
	Upsert(ctx context.Context, item *CartItem) (*CartItem, error)

	// Update updates an existing cart entry
	Update(ctx context.Context, item *CartItem) error

	// Delete deletes a cart entry by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a cart entry by ID
	FindByID(ctx context.Context, id uuid.UUID) (*CartItem, error)

	// FindByVendor returns all cart entries for a vendor
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*CartItem, error)

	// DeleteByVendor removes every cart entry for a vendor
	DeleteByVendor(ctx context.Context, vendorID uuid.UUID) error
}
