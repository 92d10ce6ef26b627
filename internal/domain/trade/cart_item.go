package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/streetmarket/backend/internal/domain/shared"
)

// CartItem represents a vendor's pre-checkout selection of a product.
// At most one row exists per (vendor, product) pair; re-adding the same
// product overwrites the quantity instead of creating a duplicate.
type CartItem struct {
	shared.BaseEntity
	VendorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_vendor_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_vendor_product"`
	Quantity  int       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CartItem) TableName() string {
	return "cart"
}

// NewCartItem creates a new cart entry
func NewCartItem(vendorID, productID uuid.UUID, quantity int) (*CartItem, error) {
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR_ID", "Vendor ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT_ID", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		VendorID:   vendorID,
		ProductID:  productID,
		Quantity:   quantity,
	}, nil
}

// SetQuantity overwrites the quantity. No bounds check against product
// stock or minimum order is performed.
func (c *CartItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	c.Quantity = quantity
	c.UpdatedAt = time.Now()

	return nil
}
