package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jdelarosa/finanzas-api/internal"
	"github.com/jdelarosa/finanzas-api/internal/analytics"
	"github.com/jdelarosa/finanzas-api/internal/auth"
	"github.com/jdelarosa/finanzas-api/internal/category"
	categoryPostgres "github.com/jdelarosa/finanzas-api/internal/category/postgres"
	"github.com/jdelarosa/finanzas-api/internal/report"
	"github.com/jdelarosa/finanzas-api/internal/transaction"
	transactionPostgres "github.com/jdelarosa/finanzas-api/internal/transaction/postgres"
	"github.com/jdelarosa/finanzas-api/internal/transport/rest"
	"github.com/jdelarosa/finanzas-api/internal/user"
	userPostgres "github.com/jdelarosa/finanzas-api/internal/user/postgres"
	"github.com/jdelarosa/finanzas-api/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger

	AuthHandler        *auth.Handler
	UserHandler        *user.Handler
	CategoryHandler    *category.Handler
	TransactionHandler *transaction.Handler
	ReportHandler      *report.Handler
	AnalyticsHandler   *analytics.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.Config.Server.AllowedOrigins,
		deps.AuthHandler,
		deps.UserHandler,
		deps.CategoryHandler,
		deps.TransactionHandler,
		deps.ReportHandler,
		deps.AnalyticsHandler,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	appLogger := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// gorm rides on the already-open pgx connection pool
	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	userRepo := userPostgres.NewUserRepository(gormDB)
	categoryRepo := categoryPostgres.NewCategoryRepository(gormDB)
	transactionRepo := transactionPostgres.NewTransactionRepository(gormDB)

	verifier := auth.NewHMACVerifier(config.Auth.TokenSecret, config.Auth.Issuer, config.Auth.Audience)
	authService := auth.NewService(verifier, userRepo, appLogger)
	userService := user.NewService(userRepo, appLogger)
	categoryService := category.NewService(categoryRepo, appLogger)
	transactionService := transaction.NewService(transactionRepo, appLogger)
	reportService := report.NewService(transactionService, categoryService, appLogger)
	analyticsService := analytics.NewService(transactionService, categoryService, appLogger)

	return &Dependencies{
		Config: config,
		Logger: appLogger,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),

		AuthHandler:        auth.NewHandler(authService),
		UserHandler:        user.NewHandler(userService),
		CategoryHandler:    category.NewHandler(categoryService),
		TransactionHandler: transaction.NewHandler(transactionService),
		ReportHandler:      report.NewHandler(reportService),
		AnalyticsHandler:   analytics.NewHandler(analyticsService),
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
