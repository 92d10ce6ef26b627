package report

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

func TestStatsService_GetPlatformStats(t *testing.T) {
	t.Run("aggregates all counters", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)
		svc := NewStatsService(userRepo, productRepo, orderRepo, zap.NewNop())

		userRepo.On("CountByRole", mock.Anything, domainidentity.UserRoleVendor).Return(int64(12), nil)
		userRepo.On("CountByRole", mock.Anything, domainidentity.UserRoleSupplier).Return(int64(5), nil)
		productRepo.On("Count", mock.Anything).Return(int64(87), nil)
		orderRepo.On("Count", mock.Anything).Return(int64(230), nil)
		orderRepo.On("SumTotalAmount", mock.Anything).Return(decimal.RequireFromString("125430.50"), nil)

		stats, err := svc.GetPlatformStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(12), stats.TotalVendors)
		assert.Equal(t, int64(5), stats.TotalSuppliers)
		assert.Equal(t, int64(87), stats.TotalProducts)
		assert.Equal(t, int64(230), stats.TotalOrders)
		assert.True(t, decimal.RequireFromString("125430.50").Equal(stats.TotalGMV))
	})

	t.Run("repository failure surfaces as internal error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)
		svc := NewStatsService(userRepo, productRepo, orderRepo, zap.NewNop())

		userRepo.On("CountByRole", mock.Anything, domainidentity.UserRoleVendor).
			Return(int64(0), assert.AnError)

		_, err := svc.GetPlatformStats(context.Background())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	})
}
