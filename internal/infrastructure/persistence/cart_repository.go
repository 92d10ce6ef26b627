package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/streetmarket/backend/internal/domain/shared"
	"github.com/streetmarket/backend/internal/domain/trade"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements trade.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Upsert inserts the entry or, when a row for the same (vendor, product)
// pair exists, overwrites that row's quantity. The persisted row is
// re-read so the caller sees the surviving ID and timestamps.
func (r *GormCartRepository) Upsert(ctx context.Context, item *trade.CartItem) (*trade.CartItem, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vendor_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   item.Quantity,
				"updated_at": item.UpdatedAt,
			}),
		}).
		Create(item).Error
	if err != nil {
		return nil, err
	}

	var persisted trade.CartItem
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND product_id = ?", item.VendorID, item.ProductID).
		First(&persisted).Error; err != nil {
		return nil, err
	}
	return &persisted, nil
}

// Update updates an existing cart entry
func (r *GormCartRepository) Update(ctx context.Context, item *trade.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete deletes a cart entry by ID
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.CartItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a cart entry by ID
func (r *GormCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.CartItem, error) {
	var item trade.CartItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByVendor returns all cart entries for a vendor, oldest first
func (r *GormCartRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*trade.CartItem, error) {
	var items []*trade.CartItem
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByVendor removes every cart entry for a vendor
func (r *GormCartRepository) DeleteByVendor(ctx context.Context, vendorID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Delete(&trade.CartItem{}).Error
}

// Ensure GormCartRepository implements CartRepository
var _ trade.CartRepository = (*GormCartRepository)(nil)
