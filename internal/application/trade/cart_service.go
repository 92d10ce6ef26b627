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

// CartService handles the vendor's pre-checkout cart
type CartService struct {
	cartRepo    trade.CartRepository
	productRepo catalog.ProductRepository
	userRepo    identity.UserRepository
	logger      *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo trade.CartRepository,
	productRepo catalog.ProductRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetCart returns the vendor's cart enriched with product details and the
// supplier display name. Rows whose product has been deleted keep a nil
// product; they still count toward the cart and are cleared at checkout.
func (s *CartService) GetCart(ctx context.Context, vendorID uuid.UUID) ([]CartItemView, error) {
	items, err := s.cartRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		s.logger.Error("Failed to fetch cart", zap.String("vendor_id", vendorID.String()), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to fetch cart items")
	}

	views := make([]CartItemView, 0, len(items))
	for _, item := range items {
		view := CartItemView{
			ID:           item.ID,
			VendorID:     item.VendorID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			SupplierName: "Unknown",
			CreatedAt:    item.CreatedAt,
		}

		if product, err := s.productRepo.FindByID(ctx, item.ProductID); err == nil {
			view.Product = NewProductSummary(product)
			if supplier, err := s.userRepo.FindByID(ctx, product.SupplierID); err == nil {
				view.SupplierName = supplier.DisplayName()
			}
		}

		views = append(views, view)
	}
	return views, nil
}

// AddToCart adds a product to the vendor's cart. Adding a product that is
// already in the cart overwrites the stored quantity.
func (s *CartService) AddToCart(ctx context.Context, input AddToCartInput) (*CartItemView, error) {
	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}

	item, err := trade.NewCartItem(input.VendorID, input.ProductID, input.Quantity)
	if err != nil {
		return nil, err
	}

	persisted, err := s.cartRepo.Upsert(ctx, item)
	if err != nil {
		s.logger.Error("Failed to add to cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to add to cart")
	}

	return &CartItemView{
		ID:        persisted.ID,
		VendorID:  persisted.VendorID,
		ProductID: persisted.ProductID,
		Quantity:  persisted.Quantity,
		CreatedAt: persisted.CreatedAt,
	}, nil
}

// UpdateCartItem overwrites the quantity of an existing cart entry. The
// entry must belong to the calling vendor.
func (s *CartService) UpdateCartItem(ctx context.Context, input UpdateCartItemInput) error {
	item, err := s.cartRepo.FindByID(ctx, input.CartItemID)
	if err != nil {
		return shared.NewDomainError("CART_ITEM_NOT_FOUND", "Cart item not found")
	}

	if item.VendorID != input.VendorID {
		return shared.ErrForbidden
	}

	if err := item.SetQuantity(input.Quantity); err != nil {
		return err
	}

	if err := s.cartRepo.Update(ctx, item); err != nil {
		s.logger.Error("Failed to update cart item", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart item")
	}
	return nil
}

// RemoveCartItem deletes a single cart entry owned by the calling vendor
func (s *CartService) RemoveCartItem(ctx context.Context, input RemoveCartItemInput) error {
	item, err := s.cartRepo.FindByID(ctx, input.CartItemID)
	if err != nil {
		return shared.NewDomainError("CART_ITEM_NOT_FOUND", "Cart item not found")
	}

	if item.VendorID != input.VendorID {
		return shared.ErrForbidden
	}

	if err := s.cartRepo.Delete(ctx, input.CartItemID); err != nil {
		s.logger.Error("Failed to remove cart item", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove from cart")
	}
	return nil
}
