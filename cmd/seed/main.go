package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domaincatalog "github.com/streetmarket/backend/internal/domain/catalog"
	domainidentity "github.com/streetmarket/backend/internal/domain/identity"
	"github.com/streetmarket/backend/internal/domain/shared"
	"github.com/streetmarket/backend/internal/infrastructure/config"
	"github.com/streetmarket/backend/internal/infrastructure/logger"
	"github.com/streetmarket/backend/internal/infrastructure/persistence"
)

// seedProduct describes one catalog entry created on first run.
type seedProduct struct {
	name        string
	category    string
	description string
	price       string
	stock       int
	minOrder    int
	imageURL    string
	supplier    string // seed supplier email
}

var seedProducts = []seedProduct{
	{
		name:        "Premium Basmati Rice",
		category:    "grains",
		description: "High-quality aged basmati rice with long grains and authentic aroma. Perfect for biryanis and pulavs.",
		price:       "85.00",
		stock:       500,
		minOrder:    10,
		supplier:    "supplier1@streetmarket.com",
	},
	{
		name:        "Fresh Onions",
		category:    "vegetables",
		description: "Farm-fresh onions, carefully selected for quality and taste. Essential for all Indian cooking.",
		price:       "25.00",
		stock:       1000,
		minOrder:    5,
		supplier:    "supplier1@streetmarket.com",
	},
	{
		name:        "Red Chili Powder",
		category:    "spices",
		description: "Pure red chili powder with perfect heat and color. Made from premium Kashmiri chilies.",
		price:       "180.00",
		stock:       200,
		minOrder:    2,
		supplier:    "supplier2@streetmarket.com",
	},
	{
		name:        "Sunflower Cooking Oil",
		category:    "oils",
		description: "Pure sunflower oil, ideal for deep frying and all cooking needs. Heart-healthy and light.",
		price:       "120.00",
		stock:       300,
		minOrder:    5,
		supplier:    "supplier1@streetmarket.com",
	},
	{
		name:        "Green Chilies",
		category:    "vegetables",
		description: "Fresh, crisp green chilies with the perfect heat level. Essential for authentic street food.",
		price:       "40.00",
		stock:       150,
		minOrder:    2,
		supplier:    "supplier2@streetmarket.com",
	},
	{
		name:        "Turmeric Powder",
		category:    "spices",
		description: "Pure turmeric powder with vibrant color and medicinal properties. No artificial additives.",
		price:       "150.00",
		stock:       100,
		minOrder:    1,
		supplier:    "supplier2@streetmarket.com",
	},
	{
		name:        "Wheat Flour",
		category:    "grains",
		description: "Fine quality wheat flour, perfect for making rotis, naans, and other Indian breads.",
		price:       "35.00",
		stock:       800,
		minOrder:    10,
		supplier:    "supplier1@streetmarket.com",
	},
	{
		name:        "Garam Masala",
		category:    "spices",
		description: "Authentic garam masala blend with traditional spices. Adds rich flavor to all dishes.",
		price:       "200.00",
		stock:       80,
		minOrder:    1,
		supplier:    "supplier2@streetmarket.com",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)

	ctx := context.Background()

	if err := seed(ctx, userRepo, productRepo, log); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	log.Info("Database seeded successfully")
}

// seed inserts the demo accounts and products. Existing rows are left
// untouched so the command is safe to re-run.
func seed(
	ctx context.Context,
	userRepo domainidentity.UserRepository,
	productRepo domaincatalog.ProductRepository,
	log *zap.Logger,
) error {
	if _, err := ensureUser(ctx, userRepo, log, "admin@streetmarket.com", func() (*domainidentity.User, error) {
		return domainidentity.NewAdmin("admin", "admin@streetmarket.com", "admin123", "System Administrator")
	}); err != nil {
		return err
	}

	supplierIDs := make(map[string]uuid.UUID, 2)

	supplier1, err := ensureUser(ctx, userRepo, log, "supplier1@streetmarket.com", func() (*domainidentity.User, error) {
		u, err := domainidentity.NewSupplier(
			"supplier1", "supplier1@streetmarket.com", "supplier123",
			"Rajesh Kumar", "Kumar Wholesale Mart", "Rajesh Kumar", "WHL2023001",
		)
		if err != nil {
			return nil, err
		}
		if err := u.SetStatus(domainidentity.UserStatusActive); err != nil {
			return nil, err
		}
		return u, nil
	})
	if err != nil {
		return err
	}
	supplierIDs["supplier1@streetmarket.com"] = supplier1.ID

	supplier2, err := ensureUser(ctx, userRepo, log, "supplier2@streetmarket.com", func() (*domainidentity.User, error) {
		u, err := domainidentity.NewSupplier(
			"supplier2", "supplier2@streetmarket.com", "supplier123",
			"Priya Sharma", "Sharma Spices & More", "Priya Sharma", "WHL2023002",
		)
		if err != nil {
			return nil, err
		}
		if err := u.SetStatus(domainidentity.UserStatusActive); err != nil {
			return nil, err
		}
		return u, nil
	})
	if err != nil {
		return err
	}
	supplierIDs["supplier2@streetmarket.com"] = supplier2.ID

	if _, err := ensureUser(ctx, userRepo, log, "vendor1@streetmarket.com", func() (*domainidentity.User, error) {
		u, err := domainidentity.NewVendor(
			"vendor1", "vendor1@streetmarket.com", "vendor123",
			"Arjun Singh", "Singh Street Food Corner",
		)
		if err != nil {
			return nil, err
		}
		if err := u.SetPhone("+91-9876543210"); err != nil {
			return nil, err
		}
		return u, nil
	}); err != nil {
		return err
	}

	if _, err := ensureUser(ctx, userRepo, log, "vendor2@streetmarket.com", func() (*domainidentity.User, error) {
		u, err := domainidentity.NewVendor(
			"vendor2", "vendor2@streetmarket.com", "vendor123",
			"Meera Patel", "Patel Chaat House",
		)
		if err != nil {
			return nil, err
		}
		if err := u.SetPhone("+91-9876543211"); err != nil {
			return nil, err
		}
		return u, nil
	}); err != nil {
		return err
	}

	for _, sp := range seedProducts {
		supplierID, ok := supplierIDs[sp.supplier]
		if !ok {
			return fmt.Errorf("seed product %q references unknown supplier %s", sp.name, sp.supplier)
		}

		exists, err := productExists(ctx, productRepo, supplierID, sp.name)
		if err != nil {
			return err
		}
		if exists {
			log.Debug("Product already seeded", zap.String("name", sp.name))
			continue
		}

		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return fmt.Errorf("invalid seed price for %q: %w", sp.name, err)
		}

		product, err := domaincatalog.NewProduct(supplierID, sp.name, sp.category, price, sp.stock, sp.minOrder)
		if err != nil {
			return err
		}
		if err := product.SetDescription(sp.description); err != nil {
			return err
		}
		if sp.imageURL != "" {
			if err := product.SetImageURL(sp.imageURL); err != nil {
				return err
			}
		}

		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		log.Info("Seeded product", zap.String("name", sp.name))
	}

	return nil
}

func ensureUser(
	ctx context.Context,
	userRepo domainidentity.UserRepository,
	log *zap.Logger,
	email string,
	build func() (*domainidentity.User, error),
) (*domainidentity.User, error) {
	existing, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		log.Debug("User already seeded", zap.String("email", email))
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := build()
	if err != nil {
		return nil, err
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info("Seeded user", zap.String("email", email), zap.String("role", string(user.Role)))
	return user, nil
}

func productExists(ctx context.Context, productRepo domaincatalog.ProductRepository, supplierID uuid.UUID, name string) (bool, error) {
	products, err := productRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return false, err
	}
	for _, p := range products {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}
