package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/KignLeon/hpcf-website/internal/config"
	"github.com/KignLeon/hpcf-website/internal/contact"
	"github.com/KignLeon/hpcf-website/internal/health"
	"github.com/KignLeon/hpcf-website/internal/middleware"
	"github.com/KignLeon/hpcf-website/internal/static"
	"github.com/KignLeon/hpcf-website/internal/telemetry"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type App struct {
	config    *config.Config
	router    chi.Router
	server    *http.Server
	telemetry *telemetry.Telemetry
	logger    *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing application",
		"env", cfg.Env,
		"version", Version,
		"git_commit", GitCommit,
		"build_time", BuildTime,
	)

	tel, err := telemetry.Init(ctx, cfg.Telemetry.OTLPEndpoint, ServiceName, Version, cfg.Env, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	publicFS, err := static.NewFS(cfg.Static.Dir)
	if err != nil {
		return nil, err
	}
	if cfg.Static.Dir == "" {
		logger.Info("serving embedded public assets")
	} else {
		logger.Info("serving public assets from directory", "dir", cfg.Static.Dir)
	}

	app := &App{
		config:    cfg,
		router:    chi.NewRouter(),
		telemetry: tel,
		logger:    logger,
	}

	app.router.Use(chimiddleware.RequestID)
	app.router.Use(chimiddleware.RealIP)
	app.router.Use(middleware.RequestLogger(logger))

	// Health endpoints
	healthHandler := health.NewHandler()
	healthHandler.RegisterRoutes(app.router)

	// Contact form
	contactService := contact.NewService(logger)
	contactHandler := contact.NewHandler(contactService, logger, tel.Metrics, cfg.Contact.MaxBodyBytes)
	app.router.Group(func(r chi.Router) {
		r.Use(middleware.CORS(cfg.Server.CORSOrigins))
		contactHandler.RegisterRoutes(r)
		// answered by the CORS middleware
		r.Options("/contact", func(http.ResponseWriter, *http.Request) {})
	})

	// Everything else is a static asset
	staticHandler := static.NewHandler(publicFS, cfg.Static.MaxAgeDuration(), logger, tel.Metrics)
	app.router.Group(func(r chi.Router) {
		r.Use(middleware.ContentSecurityPolicy(cfg.Static.CSPSources))
		staticHandler.RegisterRoutes(r)
	})

	app.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.router,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	logger.Info("application initialized successfully")

	return app, nil
}

// Handler returns the routed handler, for tests and embedding.
func (a *App) Handler() http.Handler {
	return a.router
}

// Run blocks until the server stops. It returns nil once Shutdown has been
// called, even when Shutdown ran first.
func (a *App) Run() error {
	a.logger.Info("HPCF server started", "port", a.config.Server.Port,
		"url", fmt.Sprintf("http://localhost:%d", a.config.Server.Port))

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := a.telemetry.Shutdown(ctx, a.logger); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
