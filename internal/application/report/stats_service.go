package report

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/streetmarket/backend/internal/domain/catalog"
	"github.com/streetmarket/backend/internal/domain/identity"
	"github.com/streetmarket/backend/internal/domain/shared"
	"github.com/streetmarket/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// PlatformStats is the admin dashboard overview
type PlatformStats struct {
	TotalVendors   int64           `json:"totalVendors"`
	TotalSuppliers int64           `json:"totalSuppliers"`
	TotalProducts  int64           `json:"totalProducts"`
	TotalOrders    int64           `json:"totalOrders"`
	TotalGMV       decimal.Decimal `json:"totalGmv"`
}

// StatsService aggregates marketplace-wide counters for admins
type StatsService struct {
	userRepo    identity.UserRepository
	productRepo catalog.ProductRepository
	orderRepo   trade.OrderRepository
	logger      *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	userRepo identity.UserRepository,
	productRepo catalog.ProductRepository,
	orderRepo trade.OrderRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// GetPlatformStats returns headline counters across the whole marketplace.
// GMV is the sum of all order totals regardless of status.
func (s *StatsService) GetPlatformStats(ctx context.Context) (*PlatformStats, error) {
	vendors, err := s.userRepo.CountByRole(ctx, identity.UserRoleVendor)
	if err != nil {
		return nil, s.fail("count vendors", err)
	}

	suppliers, err := s.userRepo.CountByRole(ctx, identity.UserRoleSupplier)
	if err != nil {
		return nil, s.fail("count suppliers", err)
	}

	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, s.fail("count products", err)
	}

	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, s.fail("count orders", err)
	}

	gmv, err := s.orderRepo.SumTotalAmount(ctx)
	if err != nil {
		return nil, s.fail("sum order totals", err)
	}

	return &PlatformStats{
		TotalVendors:   vendors,
		TotalSuppliers: suppliers,
		TotalProducts:  products,
		TotalOrders:    orders,
		TotalGMV:       gmv,
	}, nil
}

func (s *StatsService) fail(step string, err error) error {
	s.logger.Error("Failed to compute platform stats", zap.String("step", step), zap.Error(err))
	return shared.NewDomainError("INTERNAL_ERROR", "Failed to compute platform stats")
}
