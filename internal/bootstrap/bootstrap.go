package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/oguzk/disiplintakip/internal/app/controllers"
	appRepos "github.com/oguzk/disiplintakip/internal/app/repositories"
	appRoutes "github.com/oguzk/disiplintakip/internal/app/routes"
	appServices "github.com/oguzk/disiplintakip/internal/app/services"
	"github.com/oguzk/disiplintakip/internal/config"
	appMiddleware "github.com/oguzk/disiplintakip/internal/middleware"
	"github.com/oguzk/disiplintakip/internal/pkg/jsonstore"
	"github.com/oguzk/disiplintakip/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	StudentController    *appControllers.StudentController
	IncidentController   *appControllers.IncidentController
	CatalogController    *appControllers.CatalogController
	DocumentController   *appControllers.DocumentController
	StatisticsController *appControllers.StatisticsController
	SettingsController   *appControllers.SettingsController
	AIController         *appControllers.AIController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies opens the data store and wires repositories,
// services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	store, err := jsonstore.Open(cfg.Storage.DataDir, lgr)
	if err != nil {
		lgr.Error().Err(err).Str("dir", cfg.Storage.DataDir).Msg("Failed to open data store")
		return nil, err
	}

	repos, err := appRepos.NewRepositories(store)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load persisted records")
		return nil, err
	}

	services := appServices.New(repos, cfg.AI.APIKey)
	// Floor the incident code counter at whatever is already on disk so
	// restarts never reissue a code.
	services.Incident.SeedCodeCounter()

	return &Dependencies{
		Repos:    repos,
		Services: services,

		StudentController:    appControllers.NewStudentController(services.Student),
		IncidentController:   appControllers.NewIncidentController(services.Incident),
		CatalogController:    appControllers.NewCatalogController(services.Catalog),
		DocumentController:   appControllers.NewDocumentController(services.Document),
		StatisticsController: appControllers.NewStatisticsController(services.Stats),
		SettingsController:   appControllers.NewSettingsController(services.Settings),
		AIController:         appControllers.NewAIController(services.AI),

		Logger: lgr,
	}, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), appMiddleware.Recovery())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.IncidentController,
		deps.CatalogController,
		deps.DocumentController,
		deps.StatisticsController,
		deps.SettingsController,
		deps.AIController,
	)
	return router
}

// Run starts the HTTP server and blocks until a shutdown signal, then
// drains in-flight requests.
func Run() error {
	cfg, lgr, err := LoadConfigAndSetupLogger()
	if err != nil {
		return err
	}

	deps, err := BuildDependencies(cfg, lgr)
	if err != nil {
		return err
	}

	router := SetupRouter(cfg, deps, lgr)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		lgr.Info().Str("port", cfg.Server.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		lgr.Error().Err(err).Msg("Server failed")
		return err
	case <-ctx.Done():
	}

	lgr.Info().Msg("Shutdown signal received, draining requests")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lgr.Error().Err(err).Msg("Graceful shutdown failed")
		return err
	}

	lgr.Info().Msg("Server stopped")
	return nil
}
