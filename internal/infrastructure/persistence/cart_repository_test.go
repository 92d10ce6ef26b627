package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/streetmarket/backend/internal/domain/shared"
	"github.com/streetmarket/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCartRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCartRepository(db)
	ctx := context.Background()

	vendorID := uuid.New()
	productID := uuid.New()

	t.Run("inserts new entry", func(t *testing.T) {
		item, err := trade.NewCartItem(vendorID, productID, 5)
		require.NoError(t, err)

		persisted, err := repo.Upsert(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, 5, persisted.Quantity)
	})

	t.Run("overwrites quantity for same vendor and product", func(t *testing.T) {
		item, err := trade.NewCartItem(vendorID, productID, 12)
		require.NoError(t, err)

		persisted, err := repo.Upsert(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, 12, persisted.Quantity)

		items, err := repo.FindByVendor(ctx, vendorID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 12, items[0].Quantity)
	})

	t.Run("same product for another vendor is a separate row", func(t *testing.T) {
		otherVendor := uuid.New()
		item, err := trade.NewCartItem(otherVendor, productID, 3)
		require.NoError(t, err)

		_, err = repo.Upsert(ctx, item)
		require.NoError(t, err)

		items, err := repo.FindByVendor(ctx, otherVendor)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})
}

func TestGormCartRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCartRepository(db)
	ctx := context.Background()

	item, err := trade.NewCartItem(uuid.New(), uuid.New(), 2)
	require.NoError(t, err)

	persisted, err := repo.Upsert(ctx, item)
	require.NoError(t, err)

	require.NoError(t, persisted.SetQuantity(8))
	require.NoError(t, repo.Update(ctx, persisted))

	found, err := repo.FindByID(ctx, persisted.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, found.Quantity)

	require.NoError(t, repo.Delete(ctx, persisted.ID))

	_, err = repo.FindByID(ctx, persisted.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormCartRepository_DeleteByVendor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCartRepository(db)
	ctx := context.Background()

	vendorID := uuid.New()
	for i := 0; i < 3; i++ {
		item, err := trade.NewCartItem(vendorID, uuid.New(), i+1)
		require.NoError(t, err)
		_, err = repo.Upsert(ctx, item)
		require.NoError(t, err)
	}

	otherVendor := uuid.New()
	other, err := trade.NewCartItem(otherVendor, uuid.New(), 1)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, other)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByVendor(ctx, vendorID))

	items, err := repo.FindByVendor(ctx, vendorID)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = repo.FindByVendor(ctx, otherVendor)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
