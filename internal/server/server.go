package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/school-services/api/swagger"
	"github.com/noah-isme/school-services/internal/handler"
	"github.com/noah-isme/school-services/internal/middleware"
	"github.com/noah-isme/school-services/internal/service"
	"github.com/noah-isme/school-services/pkg/config"
	"github.com/noah-isme/school-services/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-services/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-services/pkg/middleware/requestid"
)

// Options configure the shared HTTP bootstrap.
type Options struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *service.MetricsService
	// Banner is served at GET / to show the service is up.
	Banner string
	// Ready backs the /ready probe, typically a database ping.
	Ready func() error
}

// New builds the gin engine with the ambient middleware and probe routes, and
// returns the API group that entity routes are registered on.
func New(opts Options) (*gin.Engine, *gin.RouterGroup) {
	cfg := opts.Config
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(opts.Metrics))
	}

	probes := handler.NewMetricsHandler(opts.Metrics, cfg.ServiceName, opts.Banner, opts.Ready)
	r.GET("/", probes.Banner)
	r.GET("/health", probes.Health)
	r.GET("/ready", probes.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", probes.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	if cfg.Auth.Enabled {
		api.Use(middleware.JWT(cfg.Auth.JWTSecret))
	}
	return r, api
}

// Run serves r on the configured port until SIGINT or SIGTERM, then drains
// in-flight requests.
func Run(cfg *config.Config, logr *zap.Logger, r http.Handler) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logr.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
