package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/streetmarket/backend/internal/domain/shared"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is one of the known values
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusFulfilled, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem represents a line in an order. Price is a snapshot of the
// product price at checkout time and is never re-read from the product.
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// Order represents a checkout event for a vendor. Items are immutable once
// created; only the status (and updated_at) changes afterwards.
type Order struct {
	shared.BaseAggregateRoot
	VendorID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      OrderStatus     `gorm:"size:20;not null;default:'pending';index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID"`
}

// TableName specifies the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending order for a vendor
func NewOrder(vendorID uuid.UUID) (*Order, error) {
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR_ID", "Vendor ID cannot be empty")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VendorID:          vendorID,
		Status:            OrderStatusPending,
		TotalAmount:       decimal.Zero,
		Items:             make([]OrderItem, 0),
	}

	return order, nil
}

// AddItem appends a line with the given snapshot price and recomputes the
// order total. Total per line is price multiplied by quantity.
func (o *Order) AddItem(productID uuid.UUID, quantity int, price decimal.Decimal) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT_ID", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	item := OrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    o.ID,
		ProductID:  productID,
		Quantity:   quantity,
		Price:      price,
		Total:      price.Mul(decimal.NewFromInt(int64(quantity))),
	}

	o.Items = append(o.Items, item)
	o.recalculateTotal()
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return &o.Items[len(o.Items)-1], nil
}

// SetStatus overwrites the order status unconditionally. Any value is
// accepted and there is no transition table; suppliers move orders from
// pending to fulfilled in practice.
func (o *Order) SetStatus(status OrderStatus) {
	oldStatus := o.Status
	o.Status = status
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	if oldStatus != status {
		o.AddDomainEvent(NewOrderStatusChangedEvent(o, oldStatus, status))
	}
}

// MarkPlaced records the checkout event after all items are attached
func (o *Order) MarkPlaced() {
	o.AddDomainEvent(NewOrderPlacedEvent(o))
}

// ItemCount returns the number of lines on the order
func (o *Order) ItemCount() int {
	return len(o.Items)
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Total)
	}
	o.TotalAmount = total
}
