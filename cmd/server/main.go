package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/tair/inventory-tracker/docs"
	dashboardDelivery "github.com/tair/inventory-tracker/internal/dashboard/delivery/http"
	itemDelivery "github.com/tair/inventory-tracker/internal/item/delivery/http"
	itemRepository "github.com/tair/inventory-tracker/internal/item/repository"
	"github.com/tair/inventory-tracker/internal/ledger"
	ledgerDelivery "github.com/tair/inventory-tracker/internal/ledger/delivery/http"
	ledgerRepository "github.com/tair/inventory-tracker/internal/ledger/repository"
	userDelivery "github.com/tair/inventory-tracker/internal/user/delivery/http"
	userRepository "github.com/tair/inventory-tracker/internal/user/repository"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/database"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/tracing"
)

func main() {
	// .env is optional; real deployments use the environment directly
	_ = godotenv.Load()

	serviceName := getEnv("OTEL_SERVICE_NAME", "inventory-tracker")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting inventory tracker")

	// Tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tracing.Shutdown(ctx, tp)
	}()

	// Database
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "inventorydb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Repositories and migrations
	userRepo := userRepository.NewGormUserRepository(db)
	itemRepo := itemRepository.NewGormItemRepositoryWithTracing(db)
	ledgerRepo := ledgerRepository.NewGormLedgerRepository(db)

	if err := userRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate users")
	}
	if err := itemRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate items")
	}
	if err := ledgerRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate stock transactions")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka events are optional; an empty broker list disables publishing
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka publisher")
		}
		defer publisher.Close()
	} else {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, event publishing disabled")
	}

	// Handlers
	userHandler := userDelivery.NewUserHandler(userRepo)
	itemHandler := itemDelivery.NewItemHandler(itemRepo, publisher)
	ledgerHandler := ledger.InitializeHTTPHandler(db, publisher)
	dashboardHandler := dashboardDelivery.NewDashboardHandler(itemRepo)

	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(userHandler, itemHandler, ledgerHandler, dashboardHandler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(
	userHandler *userDelivery.UserHandler,
	itemHandler *itemDelivery.ItemHandler,
	ledgerHandler *ledgerDelivery.LedgerHandler,
	dashboardHandler *dashboardDelivery.DashboardHandler,
	db *sql.DB,
	port string,
) {
	router := mux.NewRouter()

	userHandler.RegisterRoutes(router)
	itemHandler.RegisterRoutes(router)
	ledgerHandler.RegisterRoutes(router)
	dashboardHandler.RegisterRoutes(router)

	userHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	handler := c.Handler(otelhttp.NewHandler(router, "http.server"))
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
