package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/streetmarket/backend/internal/domain/catalog"
	"github.com/streetmarket/backend/internal/domain/identity"
	"github.com/streetmarket/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo catalog.ProductRepository
	userRepo    identity.UserRepository
	logger      *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(
	productRepo catalog.ProductRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// ListProducts returns all products enriched with supplier display names
func (s *ProductService) ListProducts(ctx context.Context, filter shared.Filter) ([]ProductView, error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to fetch products")
	}

	views := make([]ProductView, 0, len(products))
	names := make(map[uuid.UUID]string)
	for _, product := range products {
		view := NewProductView(product)
		view.SupplierName = s.supplierName(ctx, names, product.SupplierID)
		views = append(views, view)
	}
	return views, nil
}

// GetProduct returns a single product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}

	view := NewProductView(product)
	view.SupplierName = s.supplierName(ctx, nil, product.SupplierID)
	return &view, nil
}

// ListBySupplier returns all products owned by a supplier
func (s *ProductService) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]ProductView, error) {
	products, err := s.productRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		s.logger.Error("Failed to list supplier products",
			zap.String("supplier_id", supplierID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to fetch supplier products")
	}

	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, NewProductView(product))
	}
	return views, nil
}

// CreateProduct creates a new product listing for a supplier
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductView, error) {
	product, err := catalog.NewProduct(
		input.SupplierID,
		input.Name,
		input.Category,
		input.Price,
		input.Stock,
		input.MinOrder,
	)
	if err != nil {
		return nil, err
	}
	if input.Description != "" {
		if err := product.SetDescription(input.Description); err != nil {
			return nil, err
		}
	}
	if input.ImageURL != "" {
		if err := product.SetImageURL(input.ImageURL); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create product")
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("supplier_id", input.SupplierID.String()))

	view := NewProductView(product)
	return &view, nil
}

// UpdateProduct applies a partial update. Suppliers may only update their
// own listings; admins may update any.
func (s *ProductService) UpdateProduct(ctx context.Context, input UpdateProductInput) (*ProductView, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}

	if input.ActorRole != identity.UserRoleAdmin.String() && !product.IsOwnedBy(input.ActorID) {
		return nil, shared.ErrForbidden
	}

	if err := product.Update(
		input.Name,
		input.Category,
		input.Description,
		input.Price,
		input.Stock,
		input.MinOrder,
		input.ImageURL,
	); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update product")
	}

	view := NewProductView(product)
	return &view, nil
}

// DeleteProduct removes a product listing with the same ownership rule as
// UpdateProduct
func (s *ProductService) DeleteProduct(ctx context.Context, input DeleteProductInput) error {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}

	if input.ActorRole != identity.UserRoleAdmin.String() && !product.IsOwnedBy(input.ActorID) {
		return shared.ErrForbidden
	}

	if err := s.productRepo.Delete(ctx, input.ProductID); err != nil {
		s.logger.Error("Failed to delete product", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete product")
	}

	s.logger.Info("Product deleted", zap.String("product_id", input.ProductID.String()))
	return nil
}

// supplierName resolves a supplier's display name, caching lookups in
// names when provided. Unresolvable suppliers fall back to a placeholder.
func (s *ProductService) supplierName(ctx context.Context, names map[uuid.UUID]string, supplierID uuid.UUID) string {
	if names != nil {
		if name, ok := names[supplierID]; ok {
			return name
		}
	}

	name := "Unknown Supplier"
	if supplier, err := s.userRepo.FindByID(ctx, supplierID); err == nil {
		name = supplier.DisplayName()
	}

	if names != nil {
		names[supplierID] = name
	}
	return name
}
