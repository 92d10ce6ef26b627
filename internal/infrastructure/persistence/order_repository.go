package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/streetmarket/backend/internal/domain/catalog"
	"github.com/streetmarket/backend/internal/domain/shared"
	"github.com/streetmarket/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// CreateFromCheckout persists the order with its items, applies the stock
// decrements, and clears the vendor's entire cart in a single transaction.
// A failure at any step rolls back all of them.
func (r *GormOrderRepository) CreateFromCheckout(ctx context.Context, order *trade.Order, adjustments []trade.StockAdjustment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Items are inserted through the association
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		// Plain arithmetic decrement, stock may go negative
		for _, adj := range adjustments {
			if err := tx.Model(&catalog.Product{}).
				Where("id = ?", adj.ProductID).
				UpdateColumn("stock", gorm.Expr("stock - ?", adj.Quantity)).Error; err != nil {
				return err
			}
		}

		// The whole cart is cleared, not just the ordered lines
		if err := tx.Where("vendor_id = ?", order.VendorID).
			Delete(&trade.CartItem{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// Update updates an existing order
func (r *GormOrderRepository) Update(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Save(order).Error
}

// FindByID finds an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByVendor returns all orders placed by a vendor, newest first
func (r *GormOrderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*trade.Order, error) {
	var orders []*trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAll returns all orders matching the filter, items included
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*trade.Order, error) {
	var orders []*trade.Order
	query := r.db.WithContext(ctx).Model(&trade.Order{}).Preload("Items")

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "vendor_id":
			query = query.Where("vendor_id = ?", value)
		}
	}

	// Whitelist validation keeps the user-supplied column out of raw SQL
	sortField := ValidateSortField(filter.OrderBy, OrderSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count returns the total number of orders
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&trade.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumTotalAmount returns the gross merchandise value across all orders
func (r *GormOrderRepository) SumTotalAmount(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&trade.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
