package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/school-services/internal/service"
	"github.com/noah-isme/school-services/pkg/config"
	"github.com/noah-isme/school-services/pkg/database"
	"github.com/noah-isme/school-services/pkg/logger"
)

// App holds the process-wide dependencies shared by every service binary.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	DB       *sqlx.DB
	Metrics  *service.MetricsService
	Validate *validator.Validate
}

// Bootstrap loads configuration, builds the logger and opens the database.
func Bootstrap(serviceName string) (*App, error) {
	cfg, err := config.Load(serviceName)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		_ = logr.Sync()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &App{
		Config:   cfg,
		Logger:   logr,
		DB:       db,
		Metrics:  service.NewMetricsService(cfg.ServiceName),
		Validate: validator.New(),
	}, nil
}

// Close releases the database pool and flushes the logger.
func (a *App) Close() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Warn("closing database", zap.Error(err))
		}
	}
	_ = a.Logger.Sync()
}

// TermResolver returns the HTTP-backed resolver pointed at the term service.
func (a *App) TermResolver() service.TermResolver {
	return service.NewTermAPIResolver(a.Config.TermAPI, a.Metrics, a.Logger)
}

// Router builds the engine and API group for this app.
func (a *App) Router(banner string) (*gin.Engine, *gin.RouterGroup) {
	return New(Options{
		Config:  a.Config,
		Logger:  a.Logger,
		Metrics: a.Metrics,
		Banner:  banner,
		Ready:   a.DB.Ping,
	})
}

// Serve runs the router until the process is signalled.
func (a *App) Serve(r http.Handler) error {
	return Run(a.Config, a.Logger, r)
}
