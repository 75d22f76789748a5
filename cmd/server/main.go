package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/yangliu6605/react-ems/internal/dashboard"
	"github.com/yangliu6605/react-ems/internal/employee"
	employeedomain "github.com/yangliu6605/react-ems/internal/employee/domain"
	employeerepo "github.com/yangliu6605/react-ems/internal/employee/repository"
	"github.com/yangliu6605/react-ems/internal/instrument"
	instrumentdomain "github.com/yangliu6605/react-ems/internal/instrument/domain"
	instrumentrepo "github.com/yangliu6605/react-ems/internal/instrument/repository"
	"github.com/yangliu6605/react-ems/internal/ledger"
	ledgerdomain "github.com/yangliu6605/react-ems/internal/ledger/domain"
	ledgerrepo "github.com/yangliu6605/react-ems/internal/ledger/repository"
	ledgercommand "github.com/yangliu6605/react-ems/internal/ledger/usecase/command"
	"github.com/yangliu6605/react-ems/internal/order"
	orderdomain "github.com/yangliu6605/react-ems/internal/order/domain"
	orderrepo "github.com/yangliu6605/react-ems/internal/order/repository"
	"github.com/yangliu6605/react-ems/internal/seed"
	"github.com/yangliu6605/react-ems/kafka"
	"github.com/yangliu6605/react-ems/pkg/config"
	"github.com/yangliu6605/react-ems/pkg/database"
	"github.com/yangliu6605/react-ems/pkg/logger"
	"github.com/yangliu6605/react-ems/pkg/middleware"
	"github.com/yangliu6605/react-ems/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("storage", cfg.Storage).
		Msg("Starting ERP backend")

	if cfg.Tracing {
		tp, err := tracing.InitTracer(cfg.ServiceName)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// Storage backends. The in-memory mode is the default and mirrors
	// the original mock persistence layer.
	var (
		instrumentRepo  instrumentdomain.InstrumentRepository
		transactionRepo ledgerdomain.TransactionRepository
		orderRepo       orderdomain.OrderRepository
		employeeRepo    employeedomain.EmployeeRepository
		sqlDB           *sql.DB
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := database.NewGormConnection(cfg.Database)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
		}

		// Separate plain connection for the health check.
		sqlDB, err = database.NewPostgresConnection(cfg.Database)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer sqlDB.Close()

		gormInstruments := instrumentrepo.NewGormInstrumentRepository(db)
		gormTransactions := ledgerrepo.NewGormTransactionRepository(db)
		gormOrders := orderrepo.NewGormOrderRepository(db)
		gormEmployees := employeerepo.NewGormEmployeeRepository(db)

		for _, migrate := range []func() error{
			gormInstruments.AutoMigrate,
			gormTransactions.AutoMigrate,
			gormOrders.AutoMigrate,
			gormEmployees.AutoMigrate,
		} {
			if err := migrate(); err != nil {
				logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
			}
		}

		var ir instrumentdomain.InstrumentRepository = gormInstruments
		if cfg.Tracing {
			ir = instrumentrepo.NewTracingInstrumentRepository(ir)
		}
		instrumentRepo = ir
		transactionRepo = gormTransactions
		orderRepo = gormOrders
		employeeRepo = gormEmployees

		logger.Logger.Info().Msg("Database initialized")

	default:
		instrumentRepo = instrumentrepo.NewMemoryInstrumentRepository()
		transactionRepo = ledgerrepo.NewMemoryTransactionRepository()
		orderRepo = orderrepo.NewMemoryOrderRepository()
		employeeRepo = employeerepo.NewMemoryEmployeeRepository()
	}

	if cfg.Seed {
		if err := seed.Run(instrumentRepo, employeeRepo, orderRepo); err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to seed demo data")
		}
	}

	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		var err error
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka publisher")
		}
		defer publisher.Close()
	}

	// The ledger's single mutation point, shared between the stock-in/
	// stock-out endpoints and the order lifecycle.
	adjustHandler := ledgercommand.NewAdjustStockHandler(instrumentRepo, transactionRepo, publisher)

	instrumentHandler, err := instrument.InitializeHTTPHandler(instrumentRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize instrument handler")
	}
	ledgerHandler, err := ledger.InitializeHTTPHandler(adjustHandler, transactionRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize ledger handler")
	}
	orderHandler, err := order.InitializeHTTPHandler(orderRepo, adjustHandler, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}
	dashboardHandler, err := dashboard.InitializeHTTPHandler(instrumentRepo, orderRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize dashboard handler")
	}
	employeeHandler, err := employee.InitializeHTTPHandler(employeeRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize employee handler")
	}

	router := mux.NewRouter()
	router.Use(middleware.Metrics)

	ledgerHandler.RegisterRoutes(router)
	instrumentHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	dashboardHandler.RegisterRoutes(router)
	employeeHandler.RegisterRoutes(router)

	registerHealthCheck(router, sqlDB)
	router.Handle("/metrics", promhttp.Handler())

	var handler http.Handler = router

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		handler = middleware.Cache(redisClient, middleware.DefaultCacheConfig(), handler)
		logger.Logger.Info().Str("redis", cfg.RedisAddr).Msg("Response cache enabled")
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler = c.Handler(handler)

	if cfg.Tracing {
		handler = otelhttp.NewHandler(handler, "http.server")
	}

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

// registerHealthCheck reports database health in postgres mode and is a
// plain liveness probe otherwise
func registerHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"database unavailable"}`))
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
}
