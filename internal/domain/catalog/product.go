package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/streetmarket/backend/internal/domain/shared"
)

// Product represents a raw-material listing owned by a supplier.
// It is the aggregate root for catalog operations.
type Product struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"size:200;not null;index"`
	Category    string          `gorm:"size:100;not null;index"`
	Description string          `gorm:"size:2000"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	MinOrder    int             `gorm:"not null;default:1"`
	ImageURL    string          `gorm:"size:500"`
	SupplierID  uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName specifies the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product listing
func NewProduct(supplierID uuid.UUID, name, category string, price decimal.Decimal, stock, minOrder int) (*Product, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_ID", "Supplier ID cannot be empty")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if minOrder < 1 {
		return nil, shared.NewDomainError("INVALID_MIN_ORDER", "Minimum order must be at least 1")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Category:          strings.TrimSpace(category),
		Price:             price,
		Stock:             stock,
		MinOrder:          minOrder,
		SupplierID:        supplierID,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// SetDescription sets the product description
func (p *Product) SetDescription(description string) error {
	if len(description) > 2000 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 2000 characters")
	}

	p.Description = strings.TrimSpace(description)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetImageURL sets the product image URL
func (p *Product) SetImageURL(imageURL string) error {
	if len(imageURL) > 500 {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}

	p.ImageURL = strings.TrimSpace(imageURL)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Update applies a partial update to the mutable listing fields
func (p *Product) Update(name, category, description *string, price *decimal.Decimal, stock, minOrder *int, imageURL *string) error {
	if name != nil {
		if err := validateName(*name); err != nil {
			return err
		}
		p.Name = strings.TrimSpace(*name)
	}
	if category != nil {
		if err := validateCategory(*category); err != nil {
			return err
		}
		p.Category = strings.TrimSpace(*category)
	}
	if description != nil {
		if len(*description) > 2000 {
			return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 2000 characters")
		}
		p.Description = strings.TrimSpace(*description)
	}
	if price != nil {
		if price.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
		}
		p.Price = *price
	}
	if stock != nil {
		if *stock < 0 {
			return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
		}
		p.Stock = *stock
	}
	if minOrder != nil {
		if *minOrder < 1 {
			return shared.NewDomainError("INVALID_MIN_ORDER", "Minimum order must be at least 1")
		}
		p.MinOrder = *minOrder
	}
	if imageURL != nil {
		if len(*imageURL) > 500 {
			return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
		}
		p.ImageURL = strings.TrimSpace(*imageURL)
	}

	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// DecrementStock reduces stock by the ordered quantity. There is no floor
// check: concurrent checkouts against the same listing can drive the value
// negative, which the storefront surfaces as out-of-stock.
func (p *Product) DecrementStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStockChangedEvent(p, quantity))

	return nil
}

// IsOwnedBy returns true if the product belongs to the given supplier
func (p *Product) IsOwnedBy(supplierID uuid.UUID) bool {
	return p.SupplierID == supplierID
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validateCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	return nil
}
