package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cardlytics/internal/config"
	"cardlytics/internal/database"
	"cardlytics/internal/handlers"
	"cardlytics/internal/middleware"
	"cardlytics/internal/repositories"
	"cardlytics/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	transactionRepo := repositories.NewTransactionRepository(db)
	creditCardRepo := repositories.NewCreditCardRepository(db)

	metrics := services.NewPrometheusMetrics()
	aggregationService := services.NewAggregationService(transactionRepo, metrics)
	transactionService := services.NewTransactionService(transactionRepo, metrics)
	creditCardService := services.NewCreditCardService(creditCardRepo)

	if cfg.Seed.Enabled {
		seedTransactions(transactionRepo, cfg.Seed.Count)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	aggregationHandler := handlers.NewAggregationHandler(aggregationService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	creditCardHandler := handlers.NewCreditCardHandler(creditCardService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	aggregate := api.Group("/transactions/aggregate")
	aggregate.GET("", aggregationHandler.AggregateByMCCAndCard)
	aggregate.GET("/by-card", aggregationHandler.AggregateByCard)
	aggregate.GET("/by-month", aggregationHandler.AggregateByMonth)
	aggregate.GET("/by-date-range", aggregationHandler.AggregateByDateRange)
	aggregate.GET("/comprehensive", aggregationHandler.AggregateComprehensive)
	aggregate.GET("/by-card-mcc-list", aggregationHandler.AggregateByCardAndMCCList)

	transactions := api.Group("/transactions")
	transactions.GET("/search", transactionHandler.Search)
	transactions.GET("/search/by-month", transactionHandler.SearchByMonth)
	transactions.GET("/search/by-date-range", transactionHandler.SearchByDateRange)
	transactions.GET("/search/advanced", transactionHandler.AdvancedSearch)
	transactions.GET("/summary", transactionHandler.Summary)
	transactions.GET("/mcc-codes", transactionHandler.ListMCCCodes)
	transactions.GET("/:refNo", transactionHandler.GetByRefNo)

	creditCards := api.Group("/credit-cards")
	creditCards.GET("", creditCardHandler.List)
	creditCards.GET("/search", creditCardHandler.Search)
	creditCards.GET("/type/:type", creditCardHandler.GetByType)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(transactionRepo)
		api.POST("/dev/generate-transactions", devHandler.GenerateTestData)
	}

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "address", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("Server stopped")
}

// seedTransactions fills an empty store with generated sample data so the
// aggregation endpoints have something to serve out of the box.
func seedTransactions(repo repositories.TransactionRepositoryInterface, count int) {
	total, err := repo.Count()
	if err != nil {
		slog.Error("Failed to check transaction count before seeding", "error", err)
		return
	}
	if total > 0 {
		slog.Info("Transaction store already populated, skipping seed", "count", total)
		return
	}

	generator := services.NewTransactionGenerator()
	if err := repo.CreateBatch(generator.Generate(count)); err != nil {
		slog.Error("Failed to seed transactions", "error", err)
		return
	}
	slog.Info("Seeded transaction store", "count", count)
}
