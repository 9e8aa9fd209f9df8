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

	internal "github.com/pruthagwin123/expense-tracker/internal"
	"github.com/pruthagwin123/expense-tracker/internal/category"
	categoryPostgres "github.com/pruthagwin123/expense-tracker/internal/category/postgres"
	"github.com/pruthagwin123/expense-tracker/internal/expense"
	expensePostgres "github.com/pruthagwin123/expense-tracker/internal/expense/postgres"
	"github.com/pruthagwin123/expense-tracker/internal/mail"
	"github.com/pruthagwin123/expense-tracker/internal/report"
	reportPostgres "github.com/pruthagwin123/expense-tracker/internal/report/postgres"
	"github.com/pruthagwin123/expense-tracker/internal/transport"
	"github.com/pruthagwin123/expense-tracker/internal/transport/rest"
	"github.com/pruthagwin123/expense-tracker/internal/user"
	userPostgres "github.com/pruthagwin123/expense-tracker/internal/user/postgres"
	"github.com/pruthagwin123/expense-tracker/pkg/logger"
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

	UserHandler     *user.Handler
	CategoryHandler *category.Handler
	ExpenseHandler  *expense.Handler
	ReportHandler   *report.Handler
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
		deps.UserHandler,
		deps.CategoryHandler,
		deps.ExpenseHandler,
		deps.ReportHandler,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// gorm rides the already-open pgx connection
	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	userRepo := userPostgres.NewUserRepository(gormDB)
	categoryRepo := categoryPostgres.NewCategoryRepository(gormDB)
	expenseRepo := expensePostgres.NewExpenseRepository(gormDB)
	reportRepo := reportPostgres.NewReportRepository(gormDB)

	userService := user.NewService(userRepo, lg)
	categoryService := category.NewService(categoryRepo, lg)
	expenseService := expense.NewService(expenseRepo, categoryService, lg)
	mailer := mail.NewMailer(config.Mail, lg)
	reportService := report.NewService(reportRepo, userService, mailer, lg)

	base := transport.NewBaseHandler(lg)

	return &Dependencies{
		Config: config,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
		Logger: lg,

		UserHandler:     user.NewHandler(base, userService),
		CategoryHandler: category.NewHandler(base, categoryService),
		ExpenseHandler:  expense.NewHandler(base, expenseService),
		ReportHandler:   report.NewHandler(base, reportService),
	}, nil
}

// initDB opens and verifies the database connection pool.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
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
