package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/streetmarket/backend/internal/domain/catalog"
	"github.com/streetmarket/backend/internal/domain/trade"
)

// ProductSummary is the product shape embedded in cart and order views
type ProductSummary struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	MinOrder   int             `json:"minOrder"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	SupplierID uuid.UUID       `json:"supplierId"`
}

// NewProductSummary maps a product aggregate to its embedded view
func NewProductSummary(product *catalog.Product) *ProductSummary {
	return &ProductSummary{
		ID:         product.ID,
		Name:       product.Name,
		Category:   product.Category,
		Price:      product.Price,
		Stock:      product.Stock,
		MinOrder:   product.MinOrder,
		ImageURL:   product.ImageURL,
		SupplierID: product.SupplierID,
	}
}

// CartItemView is a cart row enriched with its product and the supplier's
// display name. Product is nil when the listing no longer exists.
type CartItemView struct {
	ID           uuid.UUID       `json:"id"`
	VendorID     uuid.UUID       `json:"vendorId"`
	ProductID    uuid.UUID       `json:"productId"`
	Quantity     int             `json:"quantity"`
	Product      *ProductSummary `json:"product,omitempty"`
	SupplierName string          `json:"supplierName"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// AddToCartInput contains the input for adding a product to the cart
type AddToCartInput struct {
	VendorID  uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// UpdateCartItemInput contains the input for a quantity overwrite
type UpdateCartItemInput struct {
	CartItemID uuid.UUID
	VendorID   uuid.UUID
	Quantity   int
}

// RemoveCartItemInput contains the input for removing a cart entry
type RemoveCartItemInput struct {
	CartItemID uuid.UUID
	VendorID   uuid.UUID
}

// OrderItemView is an order line, optionally enriched with its product
type OrderItemView struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"orderId"`
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	Product   *ProductSummary `json:"product,omitempty"`
}

// NewOrderItemView maps an order line to its view
func NewOrderItemView(item trade.OrderItem) OrderItemView {
	return OrderItemView{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Total:     item.Total,
	}
}

// OrderView is the client-facing order shape
type OrderView struct {
	ID          uuid.UUID       `json:"id"`
	VendorID    uuid.UUID       `json:"vendorId"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Items       []OrderItemView `json:"items,omitempty"`
	VendorName  string          `json:"vendorName,omitempty"`
	ItemCount   int             `json:"itemCount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewOrderView maps an order aggregate to its view without enrichment
func NewOrderView(order *trade.Order) OrderView {
	items := make([]OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, NewOrderItemView(item))
	}
	return OrderView{
		ID:          order.ID,
		VendorID:    order.VendorID,
		Status:      order.Status.String(),
		TotalAmount: order.TotalAmount,
		Items:       items,
		ItemCount:   len(order.Items),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

// PlaceOrderInput contains the input for checking out a vendor's cart
type PlaceOrderInput struct {
	VendorID uuid.UUID
}

// UpdateOrderStatusInput contains the input for an order status overwrite
type UpdateOrderStatusInput struct {
	OrderID uuid.UUID
	Status  string
}
