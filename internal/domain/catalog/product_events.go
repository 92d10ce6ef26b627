package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/streetmarket/backend/internal/domain/shared"
)

// Aggregate type constant for Product
const AggregateTypeProduct = "Product"

// Product domain event types
const (
	EventTypeProductCreated      = "ProductCreated"
	EventTypeProductUpdated      = "ProductUpdated"
	EventTypeProductStockChanged = "ProductStockChanged"
)

// ProductCreatedEvent is published when a listing is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		Name:            product.Name,
		Category:        product.Category,
		Price:           product.Price,
	}
}

// ProductUpdatedEvent is published when a listing is updated
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct, product.ID),
		Name:            product.Name,
	}
}

// ProductStockChangedEvent is published when checkout decrements stock
type ProductStockChangedEvent struct {
	shared.BaseDomainEvent
	Quantity int `json:"quantity"`
	NewStock int `json:"new_stock"`
}

// NewProductStockChangedEvent creates a new ProductStockChangedEvent
func NewProductStockChangedEvent(product *Product, quantity int) *ProductStockChangedEvent {
	return &ProductStockChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductStockChanged, AggregateTypeProduct, product.ID),
		Quantity:        quantity,
		NewStock:        product.Stock,
	}
}
