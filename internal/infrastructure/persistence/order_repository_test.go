package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/streetmarket/backend/internal/domain/catalog"
	"github.com/streetmarket/backend/internal/domain/shared"
	"github.com/streetmarket/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOrderRepository_CreateFromCheckout(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := NewGormOrderRepository(db)
	cartRepo := NewGormCartRepository(db)
	productRepo := NewGormProductRepository(db)
	ctx := context.Background()

	supplier := createTestSupplierUser(t)
	product := createTestCatalogProduct(t, supplier)
	require.NoError(t, productRepo.Create(ctx, product))

	vendorID := uuid.New()

	cartEntry, err := trade.NewCartItem(vendorID, product.ID, 3)
	require.NoError(t, err)
	_, err = cartRepo.Upsert(ctx, cartEntry)
	require.NoError(t, err)

	// A second cart line whose product was deleted before checkout;
	// it must still be cleared with the rest of the cart.
	staleEntry, err := trade.NewCartItem(vendorID, uuid.New(), 2)
	require.NoError(t, err)
	_, err = cartRepo.Upsert(ctx, staleEntry)
	require.NoError(t, err)

	order, err := trade.NewOrder(vendorID)
	require.NoError(t, err)
	_, err = order.AddItem(product.ID, 3, product.Price)
	require.NoError(t, err)

	adjustments := []trade.StockAdjustment{{ProductID: product.ID, Quantity: 3}}

	require.NoError(t, orderRepo.CreateFromCheckout(ctx, order, adjustments))

	t.Run("order and items are persisted", func(t *testing.T) {
		found, err := orderRepo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, trade.OrderStatusPending, found.Status)
		require.Len(t, found.Items, 1)
		assert.Equal(t, product.ID, found.Items[0].ProductID)
		assert.True(t, found.TotalAmount.Equal(decimal.RequireFromString("255.00")))
	})

	t.Run("stock is decremented", func(t *testing.T) {
		reloaded, err := productRepo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 497, reloaded.Stock)
	})

	t.Run("entire cart is cleared", func(t *testing.T) {
		items, err := cartRepo.FindByVendor(ctx, vendorID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestGormOrderRepository_CreateFromCheckout_StockMayGoNegative(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := NewGormOrderRepository(db)
	productRepo := NewGormProductRepository(db)
	ctx := context.Background()

	supplier := createTestSupplierUser(t)
	product, err := catalog.NewProduct(supplier.ID, "Fresh Paneer", "Dairy", decimal.RequireFromString("320.00"), 5, 1)
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(ctx, product))

	order, err := trade.NewOrder(uuid.New())
	require.NoError(t, err)
	_, err = order.AddItem(product.ID, 20, product.Price)
	require.NoError(t, err)

	err = orderRepo.CreateFromCheckout(ctx, order, []trade.StockAdjustment{
		{ProductID: product.ID, Quantity: 20},
	})
	require.NoError(t, err)

	reloaded, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, -15, reloaded.Stock)
}

func TestGormOrderRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order, err := trade.NewOrder(uuid.New())
	require.NoError(t, err)
	_, err = order.AddItem(uuid.New(), 2, decimal.RequireFromString("40.00"))
	require.NoError(t, err)

	require.NoError(t, repo.CreateFromCheckout(ctx, order, nil))

	order.SetStatus(trade.OrderStatusFulfilled)
	require.NoError(t, repo.Update(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusFulfilled, found.Status)
	assert.Len(t, found.Items, 1)
}

func TestGormOrderRepository_FindByVendor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	vendorID := uuid.New()

	for i := 0; i < 2; i++ {
		order, err := trade.NewOrder(vendorID)
		require.NoError(t, err)
		_, err = order.AddItem(uuid.New(), 1, decimal.RequireFromString("10.00"))
		require.NoError(t, err)
		require.NoError(t, repo.CreateFromCheckout(ctx, order, nil))
	}

	otherOrder, err := trade.NewOrder(uuid.New())
	require.NoError(t, err)
	_, err = otherOrder.AddItem(uuid.New(), 1, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	require.NoError(t, repo.CreateFromCheckout(ctx, otherOrder, nil))

	orders, err := repo.FindByVendor(ctx, vendorID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, vendorID, o.VendorID)
		assert.Len(t, o.Items, 1)
	}
}

func TestGormOrderRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormOrderRepository_CountAndSum(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	sum, err := repo.SumTotalAmount(ctx)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	amounts := []string{"120.00", "80.50"}
	for _, amount := range amounts {
		order, err := trade.NewOrder(uuid.New())
		require.NoError(t, err)
		_, err = order.AddItem(uuid.New(), 1, decimal.RequireFromString(amount))
		require.NoError(t, err)
		require.NoError(t, repo.CreateFromCheckout(ctx, order, nil))
	}

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	sum, err = repo.SumTotalAmount(ctx)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("200.50")))
}
