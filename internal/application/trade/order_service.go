package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/streetmarket/backend/internal/domain/catalog"
	"github.com/streetmarket/backend/internal/domain/identity"
	"github.com/streetmarket/backend/internal/domain/shared"
	"github.com/streetmarket/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// OrderService handles checkout and order queries
type OrderService struct {
	orderRepo   trade.OrderRepository
	cartRepo    trade.CartRepository
	productRepo catalog.ProductRepository
	userRepo    identity.UserRepository
	logger      *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo trade.OrderRepository,
	cartRepo trade.CartRepository,
	productRepo catalog.ProductRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// PlaceOrder converts the vendor's cart into a pending order. Each cart
// entry is resolved against the catalog; entries whose product no longer
// exists are skipped without failing the checkout. Line prices snapshot
// the current product price. The order insert, the stock decrements, and
// the full cart clear run in one transaction; stock is not floor-checked
// and may go negative.
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderView, error) {
	cartItems, err := s.cartRepo.FindByVendor(ctx, input.VendorID)
	if err != nil {
		s.logger.Error("Failed to load cart for checkout", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create order")
	}
	if len(cartItems) == 0 {
		return nil, shared.NewDomainError("CART_EMPTY", "Cart is empty")
	}

	order, err := trade.NewOrder(input.VendorID)
	if err != nil {
		return nil, err
	}

	adjustments := make([]trade.StockAdjustment, 0, len(cartItems))
	for _, entry := range cartItems {
		product, err := s.productRepo.FindByID(ctx, entry.ProductID)
		if err != nil {
			s.logger.Warn("Skipping cart entry with missing product",
				zap.String("vendor_id", input.VendorID.String()),
				zap.String("product_id", entry.ProductID.String()))
			continue
		}

		if _, err := order.AddItem(product.ID, entry.Quantity, product.Price); err != nil {
			return nil, err
		}
		adjustments = append(adjustments, trade.StockAdjustment{
			ProductID: product.ID,
			Quantity:  entry.Quantity,
		})
	}

	order.MarkPlaced()

	if err := s.orderRepo.CreateFromCheckout(ctx, order, adjustments); err != nil {
		s.logger.Error("Checkout transaction failed",
			zap.String("vendor_id", input.VendorID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create order")
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("vendor_id", input.VendorID.String()),
		zap.Int("items", order.ItemCount()),
		zap.String("total_amount", order.TotalAmount.String()))

	view := NewOrderView(order)
	return &view, nil
}

// GetVendorOrders returns a vendor's orders with items enriched with
// product details
func (s *OrderService) GetVendorOrders(ctx context.Context, vendorID uuid.UUID) ([]OrderView, error) {
	orders, err := s.orderRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		s.logger.Error("Failed to fetch vendor orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to fetch orders")
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view := NewOrderView(order)
		s.attachProducts(ctx, view.Items)
		views = append(views, view)
	}
	return views, nil
}

// GetSupplierOrders returns orders that contain at least one of the
// supplier's products. Each order's item list is filtered down to that
// supplier's lines, and the vendor's display name is attached.
func (s *OrderService) GetSupplierOrders(ctx context.Context, supplierID uuid.UUID) ([]OrderView, error) {
	orders, err := s.orderRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		s.logger.Error("Failed to fetch orders for supplier", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to fetch supplier orders")
	}

	views := make([]OrderView, 0)
	for _, order := range orders {
		supplierItems := make([]OrderItemView, 0)
		for _, item := range order.Items {
			product, err := s.productRepo.FindByID(ctx, item.ProductID)
			if err != nil || product.SupplierID != supplierID {
				continue
			}
			itemView := NewOrderItemView(item)
			itemView.Product = NewProductSummary(product)
			supplierItems = append(supplierItems, itemView)
		}
		if len(supplierItems) == 0 {
			continue
		}

		view := NewOrderView(order)
		view.Items = supplierItems
		view.ItemCount = len(supplierItems)
		view.VendorName = s.vendorName(ctx, order.VendorID)
		views = append(views, view)
	}
	return views, nil
}

// GetAllOrders returns every order with the vendor's display name and the
// item count, for the admin overview. Item details are omitted.
func (s *OrderService) GetAllOrders(ctx context.Context, filter shared.Filter) ([]OrderView, error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to fetch orders")
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view := NewOrderView(order)
		view.Items = nil
		view.VendorName = s.vendorName(ctx, order.VendorID)
		views = append(views, view)
	}
	return views, nil
}

// UpdateOrderStatus overwrites an order's status. The value is stored as
// given; there is no transition table.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, input UpdateOrderStatusInput) error {
	order, err := s.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
	}

	order.SetStatus(trade.OrderStatus(input.Status))

	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order status", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update order status")
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", input.OrderID.String()),
		zap.String("status", input.Status))
	return nil
}

// attachProducts enriches order lines with their product summaries.
// Lines whose product is gone keep a nil product.
func (s *OrderService) attachProducts(ctx context.Context, items []OrderItemView) {
	for i := range items {
		if product, err := s.productRepo.FindByID(ctx, items[i].ProductID); err == nil {
			items[i].Product = NewProductSummary(product)
		}
	}
}

func (s *OrderService) vendorName(ctx context.Context, vendorID uuid.UUID) string {
	if vendor, err := s.userRepo.FindByID(ctx, vendorID); err == nil {
		return vendor.DisplayName()
	}
	return "Unknown Vendor"
}
