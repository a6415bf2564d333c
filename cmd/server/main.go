package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"domus-api/internal/config"
	"domus-api/internal/database"
	"domus-api/internal/handlers"
	"domus-api/internal/middleware"
	"domus-api/internal/repositories"
	"domus-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	logger.Info("Starting domus-api", "environment", cfg.Server.Environment)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	costRepo := repositories.NewCostRepository(db)
	incomeRepo := repositories.NewIncomeRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	auditService := services.NewAuditService(auditRepo)
	passwordService := services.NewPasswordService(userRepo, auditService)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(
		userRepo,
		refreshTokenRepo,
		auditRepo,
		blacklistedTokenRepo,
		passwordService,
		tokenService,
		logger,
	)
	aggregationService := services.NewAggregationService()
	dashboardService := services.NewDashboardService(
		costRepo,
		incomeRepo,
		investmentRepo,
		aggregationService,
		metrics,
		logger,
	)
	userLogger := services.NewUserLogger(logger)
	userSearchService := services.NewUserSearchService(userRepo, metrics, userLogger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	costHandler := handlers.NewCostHandler(costRepo, auditService, metrics)
	incomeHandler := handlers.NewIncomeHandler(incomeRepo, auditService, metrics)
	investmentHandler := handlers.NewInvestmentHandler(investmentRepo, auditService, metrics)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	profileHandler := handlers.NewProfileHandler(userRepo, passwordService, auditService, userLogger)
	adminHandler := handlers.NewAdminHandler(userRepo, auditRepo, userSearchService, auditService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout, middleware.RequireAuth(tokenService, blacklistedTokenRepo))

	authorized := api.Group("", middleware.RequireAuth(tokenService, blacklistedTokenRepo))

	costs := authorized.Group("/costs")
	costs.GET("", costHandler.ListCosts)
	costs.POST("", costHandler.CreateCost)
	costs.GET("/total", costHandler.GetCostTotal)
	costs.GET("/:id", costHandler.GetCost)
	costs.PUT("/:id", costHandler.UpdateCost)
	costs.DELETE("/:id", costHandler.DeleteCost)

	income := authorized.Group("/income")
	income.GET("", incomeHandler.ListIncomes)
	income.POST("", incomeHandler.CreateIncome)
	income.GET("/total", incomeHandler.GetIncomeTotal)
	income.GET("/:id", incomeHandler.GetIncome)
	income.PUT("/:id", incomeHandler.UpdateIncome)
	income.DELETE("/:id", incomeHandler.DeleteIncome)

	investments := authorized.Group("/investments")
	investments.GET("", investmentHandler.ListInvestments)
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("/total", investmentHandler.GetInvestmentTotal)
	investments.GET("/:id", investmentHandler.GetInvestment)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	dashboard := authorized.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/summary/monthly", dashboardHandler.GetMonthlySummary)
	dashboard.GET("/projection/monthly", dashboardHandler.GetMonthlyProjection)
	dashboard.GET("/projection/yearly", dashboardHandler.GetYearlyProjection)

	profile := authorized.Group("/profile")
	profile.GET("", profileHandler.GetProfile)
	profile.PUT("/password", profileHandler.UpdatePassword)
	profile.GET("/spending-goal", profileHandler.GetSpendingGoal)
	profile.PUT("/spending-goal", profileHandler.UpdateSpendingGoal)

	admin := authorized.Group("/admin", middleware.RequireAdmin())
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/search", adminHandler.SearchUsers)
	admin.GET("/users/:userId", adminHandler.GetUserByID)
	admin.DELETE("/users/:userId", adminHandler.DeleteUser)
	admin.POST("/users/:userId/unlock", adminHandler.UnlockUser)
	admin.GET("/users/:userId/activity", adminHandler.GetUserActivity)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(costRepo, incomeRepo, investmentRepo, metrics)
		dev := authorized.Group("/dev")
		dev.POST("/seed-sample-data", devHandler.SeedSampleData)
		logger.Info("Development endpoints enabled")
	}

	// Start server with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
