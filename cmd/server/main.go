package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcatalog "github.com/streetmarket/backend/internal/application/catalog"
	appidentity "github.com/streetmarket/backend/internal/application/identity"
	appreport "github.com/streetmarket/backend/internal/application/report"
	apptrade "github.com/streetmarket/backend/internal/application/trade"
	"github.com/streetmarket/backend/internal/infrastructure/auth"
	"github.com/streetmarket/backend/internal/infrastructure/config"
	"github.com/streetmarket/backend/internal/infrastructure/logger"
	"github.com/streetmarket/backend/internal/infrastructure/persistence"
	"github.com/streetmarket/backend/internal/interfaces/http/handler"
	"github.com/streetmarket/backend/internal/interfaces/http/middleware"
	"github.com/streetmarket/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting street market backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLogger := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Revoked tokens live in Redis so that logout takes effect across all
	// server instances.
	blacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() {
		if err := blacklist.Close(); err != nil {
			log.Error("Failed to close redis connection", zap.Error(err))
		}
	}()

	jwtService := auth.NewJWTService(cfg.JWT)

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Application services
	authService := appidentity.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := appidentity.NewUserService(userRepo, log)
	productService := appcatalog.NewProductService(productRepo, userRepo, log)
	cartService := apptrade.NewCartService(cartRepo, productRepo, userRepo, log)
	orderService := apptrade.NewOrderService(orderRepo, cartRepo, productRepo, userRepo, log)
	statsService := appreport.NewStatsService(userRepo, productRepo, orderRepo, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	statsHandler := handler.NewStatsHandler(statsService)
	systemHandler := handler.NewSystemHandler()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))
	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	engine.GET("/health", healthHandler(db, log))

	r := router.NewRouter(engine, router.WithBasePath("/api"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/auth/login",
			"/api/auth/register/vendor",
			"/api/auth/register/supplier",
			"/api/auth/refresh",
			"/api/system/ping",
			"/api/system/info",
		},
		Logger: log,
	}))

	authGroup := router.NewDomainGroup("auth", "/auth").
		POST("/login", authHandler.Login).
		POST("/register/vendor", authHandler.RegisterVendor).
		POST("/register/supplier", authHandler.RegisterSupplier).
		POST("/refresh", authHandler.RefreshToken).
		POST("/logout", authHandler.Logout).
		GET("/me", authHandler.Me).
		POST("/change-password", authHandler.ChangePassword)

	productGroup := router.NewDomainGroup("products", "/products").
		GET("", productHandler.List).
		GET("/supplier/:id", productHandler.ListBySupplier).
		GET("/:id", productHandler.GetByID).
		POST("", middleware.RequireRole("supplier"), productHandler.Create).
		PUT("/:id", middleware.RequireRole("supplier", "admin"), productHandler.Update).
		DELETE("/:id", middleware.RequireRole("supplier", "admin"), productHandler.Delete)

	cartGroup := router.NewDomainGroup("cart", "/cart").
		GET("/:vendorId", middleware.RequireRole("vendor", "admin"), cartHandler.Get).
		POST("", middleware.RequireRole("vendor"), cartHandler.Add).
		PUT("/:id", middleware.RequireRole("vendor"), cartHandler.Update).
		DELETE("/:id", middleware.RequireRole("vendor"), cartHandler.Remove)

	orderGroup := router.NewDomainGroup("orders", "/orders").
		GET("", middleware.RequireRole("admin"), orderHandler.ListAll).
		GET("/vendor/:id", middleware.RequireRole("vendor", "admin"), orderHandler.ListByVendor).
		GET("/supplier/:id", middleware.RequireRole("supplier", "admin"), orderHandler.ListBySupplier).
		POST("", middleware.RequireRole("vendor"), orderHandler.Place).
		PUT("/:id/status", middleware.RequireRole("supplier", "admin"), orderHandler.UpdateStatus)

	userGroup := router.NewDomainGroup("users", "/users").
		GET("/:role", middleware.RequireRole("admin"), userHandler.ListByRole).
		PUT("/:id/status", middleware.RequireRole("admin"), userHandler.UpdateStatus)

	statsGroup := router.NewDomainGroup("stats", "/stats").
		GET("", middleware.RequireRole("admin"), statsHandler.Get)

	systemGroup := router.NewDomainGroup("system", "/system").
		GET("/ping", systemHandler.Ping).
		GET("/info", systemHandler.GetSystemInfo)

	r.Register(authGroup).
		Register(productGroup).
		Register(cartGroup).
		Register(orderGroup).
		Register(userGroup).
		Register(statsGroup).
		Register(systemGroup)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

func healthHandler(db *persistence.Database, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			log.Error("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "error",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "ok",
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	}
}
