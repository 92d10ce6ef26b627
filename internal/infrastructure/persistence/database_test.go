package persistence

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/streetmarket/backend/internal/domain/catalog"
	"github.com/streetmarket/backend/internal/domain/identity"
	"github.com/streetmarket/backend/internal/domain/trade"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// TranslateError matches the production gorm.Config so unique-violation
	// behavior is exercised the same way.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&identity.User{},
		&catalog.Product{},
		&trade.Order{},
		&trade.OrderItem{},
		&trade.CartItem{},
	)
	require.NoError(t, err)

	return db
}

func createTestVendorUser(t *testing.T) *identity.User {
	t.Helper()
	vendor, err := identity.NewVendor("arjun_chaat", "arjun@chaat.example", "secret-pass-123", "Arjun Singh", "Singh Street Food Corner")
	require.NoError(t, err)
	return vendor
}

func createTestSupplierUser(t *testing.T) *identity.User {
	t.Helper()
	supplier, err := identity.NewSupplier("kumar_wholesale", "rajesh@kumar.example", "secret-pass-123", "Rajesh Kumar", "Kumar Wholesale Mart", "Rajesh Kumar", "WHL2023001")
	require.NoError(t, err)
	return supplier
}

func createTestCatalogProduct(t *testing.T, supplier *identity.User) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(
		supplier.ID,
		"Premium Basmati Rice",
		"Grains",
		decimal.RequireFromString("85.00"),
		500,
		10,
	)
	require.NoError(t, err)
	return product
}
