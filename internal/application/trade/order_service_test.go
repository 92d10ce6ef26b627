package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	domaincatalog "github.com/streetmarket/backend/internal/domain/catalog"
	domainidentity "github.com/streetmarket/backend/internal/domain/identity"
	"github.com/streetmarket/backend/internal/domain/shared"
	domaintrade "github.com/streetmarket/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateFromCheckout(ctx context.Context, order *domaintrade.Order, adjustments []domaintrade.StockAdjustment) error {
	args := m.Called(ctx, order, adjustments)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *domaintrade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domaintrade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domaintrade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*domaintrade.Order, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).([]*domaintrade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*domaintrade.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domaintrade.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) SumTotalAmount(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockCartRepository is a mock implementation of trade.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Upsert(ctx context.Context, item *domaintrade.CartItem) (*domaintrade.CartItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domaintrade.CartItem), args.Error(1)
}

func (m *MockCartRepository) Update(ctx context.Context, item *domaintrade.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*domaintrade.CartItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domaintrade.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*domaintrade.CartItem, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).([]*domaintrade.CartItem), args.Error(1)
}

func (m *MockCartRepository) DeleteByVendor(ctx context.Context, vendorID uuid.UUID) error {
	args := m.Called(ctx, vendorID)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *domaincatalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *domaincatalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domaincatalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domaincatalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*domaincatalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domaincatalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*domaincatalog.Product, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]*domaincatalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domainidentity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domainidentity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domainidentity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domainidentity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domainidentity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role domainidentity.UserRole) ([]*domainidentity.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]*domainidentity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role domainidentity.UserRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func newTestOrderService() (*OrderService, *MockOrderRepository, *MockCartRepository, *MockProductRepository, *MockUserRepository) {
	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	svc := NewOrderService(orderRepo, cartRepo, productRepo, userRepo, zap.NewNop())
	return svc, orderRepo, cartRepo, productRepo, userRepo
}

func testProduct(t *testing.T, supplierID uuid.UUID, name string, price string, stock int) *domaincatalog.Product {
	t.Helper()
	p, err := domaincatalog.NewProduct(supplierID, name, "Grains", decimal.RequireFromString(price), stock, 1)
	require.NoError(t, err)
	return p
}

func testCartItem(t *testing.T, vendorID, productID uuid.UUID, quantity int) *domaintrade.CartItem {
	t.Helper()
	item, err := domaintrade.NewCartItem(vendorID, productID, quantity)
	require.NoError(t, err)
	return item
}

func TestOrderService_PlaceOrder(t *testing.T) {
	t.Run("converts cart into pending order with current prices", func(t *testing.T) {
		svc, orderRepo, cartRepo, productRepo, _ := newTestOrderService()
		vendorID := uuid.New()
		supplierID := uuid.New()

		rice := testProduct(t, supplierID, "Premium Basmati Rice", "85.00", 500)
		paneer := testProduct(t, supplierID, "Fresh Paneer", "320.00", 40)

		cartRepo.On("FindByVendor", mock.Anything, vendorID).Return([]*domaintrade.CartItem{
			testCartItem(t, vendorID, rice.ID, 3),
			testCartItem(t, vendorID, paneer.ID, 2),
		}, nil)
		productRepo.On("FindByID", mock.Anything, rice.ID).Return(rice, nil)
		productRepo.On("FindByID", mock.Anything, paneer.ID).Return(paneer, nil)
		orderRepo.On("CreateFromCheckout", mock.Anything, mock.AnythingOfType("*trade.Order"), mock.Anything).Return(nil)

		view, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{VendorID: vendorID})

		require.NoError(t, err)
		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, 2, view.ItemCount)
		// 3 * 85.00 + 2 * 320.00
		assert.True(t, decimal.RequireFromString("895.00").Equal(view.TotalAmount))

		orderRepo.AssertCalled(t, "CreateFromCheckout", mock.Anything, mock.Anything,
			[]domaintrade.StockAdjustment{
				{ProductID: rice.ID, Quantity: 3},
				{ProductID: paneer.ID, Quantity: 2},
			})
	})

	t.Run("skips cart entries whose product is gone", func(t *testing.T) {
		svc, orderRepo, cartRepo, productRepo, _ := newTestOrderService()
		vendorID := uuid.New()
		supplierID := uuid.New()

		rice := testProduct(t, supplierID, "Premium Basmati Rice", "85.00", 500)
		goneID := uuid.New()

		cartRepo.On("FindByVendor", mock.Anything, vendorID).Return([]*domaintrade.CartItem{
			testCartItem(t, vendorID, rice.ID, 2),
			testCartItem(t, vendorID, goneID, 4),
		}, nil)
		productRepo.On("FindByID", mock.Anything, rice.ID).Return(rice, nil)
		productRepo.On("FindByID", mock.Anything, goneID).Return(nil, shared.ErrNotFound)
		orderRepo.On("CreateFromCheckout", mock.Anything, mock.AnythingOfType("*trade.Order"), mock.Anything).Return(nil)

		view, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{VendorID: vendorID})

		require.NoError(t, err)
		assert.Equal(t, 1, view.ItemCount)
		assert.True(t, decimal.RequireFromString("170.00").Equal(view.TotalAmount))

		// Only the surviving line adjusts stock.
		orderRepo.AssertCalled(t, "CreateFromCheckout", mock.Anything, mock.Anything,
			[]domaintrade.StockAdjustment{{ProductID: rice.ID, Quantity: 2}})
	})

	t.Run("empty cart fails checkout", func(t *testing.T) {
		svc, orderRepo, cartRepo, _, _ := newTestOrderService()
		vendorID := uuid.New()

		cartRepo.On("FindByVendor", mock.Anything, vendorID).Return([]*domaintrade.CartItem{}, nil)

		_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{VendorID: vendorID})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CART_EMPTY", domainErr.Code)
		orderRepo.AssertNotCalled(t, "CreateFromCheckout", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("transaction failure surfaces as internal error", func(t *testing.T) {
		svc, orderRepo, cartRepo, productRepo, _ := newTestOrderService()
		vendorID := uuid.New()

		rice := testProduct(t, uuid.New(), "Premium Basmati Rice", "85.00", 500)
		cartRepo.On("FindByVendor", mock.Anything, vendorID).Return([]*domaintrade.CartItem{
			testCartItem(t, vendorID, rice.ID, 1),
		}, nil)
		productRepo.On("FindByID", mock.Anything, rice.ID).Return(rice, nil)
		orderRepo.On("CreateFromCheckout", mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError)

		_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{VendorID: vendorID})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	})
}

func TestOrderService_GetSupplierOrders(t *testing.T) {
	svc, orderRepo, _, productRepo, userRepo := newTestOrderService()
	vendorID := uuid.New()
	supplierID := uuid.New()
	otherSupplierID := uuid.New()

	mine := testProduct(t, supplierID, "Premium Basmati Rice", "85.00", 500)
	theirs := testProduct(t, otherSupplierID, "Fresh Paneer", "320.00", 40)

	mixed, err := domaintrade.NewOrder(vendorID)
	require.NoError(t, err)
	_, err = mixed.AddItem(mine.ID, 2, mine.Price)
	require.NoError(t, err)
	_, err = mixed.AddItem(theirs.ID, 1, theirs.Price)
	require.NoError(t, err)

	foreign, err := domaintrade.NewOrder(vendorID)
	require.NoError(t, err)
	_, err = foreign.AddItem(theirs.ID, 5, theirs.Price)
	require.NoError(t, err)

	vendor, err := domainidentity.NewVendor("arjun_chaat", "arjun@chaat.example", "secret-pass-123", "Arjun Singh", "Singh Street Food Corner")
	require.NoError(t, err)

	orderRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*domaintrade.Order{mixed, foreign}, nil)
	productRepo.On("FindByID", mock.Anything, mine.ID).Return(mine, nil)
	productRepo.On("FindByID", mock.Anything, theirs.ID).Return(theirs, nil)
	userRepo.On("FindByID", mock.Anything, vendorID).Return(vendor, nil)

	views, err := svc.GetSupplierOrders(context.Background(), supplierID)

	require.NoError(t, err)
	// The order with only the other supplier's items is omitted.
	require.Len(t, views, 1)
	assert.Equal(t, mixed.ID, views[0].ID)
	require.Len(t, views[0].Items, 1)
	assert.Equal(t, mine.ID, views[0].Items[0].ProductID)
	assert.Equal(t, "Singh Street Food Corner", views[0].VendorName)
}

func TestOrderService_GetAllOrders(t *testing.T) {
	svc, orderRepo, _, _, userRepo := newTestOrderService()
	vendorID := uuid.New()

	order, err := domaintrade.NewOrder(vendorID)
	require.NoError(t, err)
	_, err = order.AddItem(uuid.New(), 3, decimal.RequireFromString("85.00"))
	require.NoError(t, err)

	orderRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*domaintrade.Order{order}, nil)
	userRepo.On("FindByID", mock.Anything, vendorID).Return(nil, shared.ErrNotFound)

	views, err := svc.GetAllOrders(context.Background(), shared.Filter{})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Items)
	assert.Equal(t, 1, views[0].ItemCount)
	assert.Equal(t, "Unknown Vendor", views[0].VendorName)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	t.Run("overwrites the status as given", func(t *testing.T) {
		svc, orderRepo, _, _, _ := newTestOrderService()
		order, err := domaintrade.NewOrder(uuid.New())
		require.NoError(t, err)

		orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		orderRepo.On("Update", mock.Anything, order).Return(nil)

		err = svc.UpdateOrderStatus(context.Background(), UpdateOrderStatusInput{
			OrderID: order.ID,
			Status:  "fulfilled",
		})

		require.NoError(t, err)
		assert.Equal(t, domaintrade.OrderStatus("fulfilled"), order.Status)
		orderRepo.AssertExpectations(t)
	})

	t.Run("missing order", func(t *testing.T) {
		svc, orderRepo, _, _, _ := newTestOrderService()
		id := uuid.New()

		orderRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		err := svc.UpdateOrderStatus(context.Background(), UpdateOrderStatusInput{
			OrderID: id,
			Status:  "fulfilled",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ORDER_NOT_FOUND", domainErr.Code)
	})
}
