// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "github.com/jaydeep-99o/Trade-pay/internal/api"
	"github.com/jaydeep-99o/Trade-pay/internal/api/handler"
	"github.com/jaydeep-99o/Trade-pay/internal/config"
	"github.com/jaydeep-99o/Trade-pay/internal/repository"
	"github.com/jaydeep-99o/Trade-pay/internal/repository/postgres"
	"github.com/jaydeep-99o/Trade-pay/internal/service"
	"github.com/jaydeep-99o/Trade-pay/internal/util"
	"github.com/jaydeep-99o/Trade-pay/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	AccountRepository repository.AccountRepository
	LedgerRepository  repository.LedgerRepository

	// Services
	AccountService  service.AccountService
	TransferService service.TransferService
	QueryService    service.QueryService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	util.InitLogger()
	app.Logger = util.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	database, err := db.NewPostgresDB(app.Config.DBConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	app.AccountRepository = postgres.NewAccountRepository()
	app.LedgerRepository = postgres.NewLedgerRepository()
	app.Logger.Info("Repositories initialized.")

	app.AccountService = service.NewAccountService(
		app.DB,
		app.DB,
		app.AccountRepository,
		app.LedgerRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
		cfg.StartingBalanceDecimal(),
	)
	app.TransferService = service.NewTransferService(
		app.DB,
		app.AccountRepository,
		app.LedgerRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
		cfg.MinTransferDecimal(),
		cfg.TxMaxAttempts,
	)
	app.QueryService = service.NewQueryService(
		app.DB,
		app.AccountRepository,
		app.LedgerRepository,
	)
	app.Logger.Info("Services initialized.")

	apiHandler := handler.NewHandler(app.AccountService, app.TransferService, app.QueryService, app.Logger)
	app.HTTPHandler = router.NewRouter(apiHandler, app.QueryService, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
