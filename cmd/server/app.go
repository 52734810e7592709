package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/timeslot/internal/config"
	"github.com/phrazzld/timeslot/internal/domain/strategy"
	"github.com/phrazzld/timeslot/internal/timeslot"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	// cache interns every time slot served by this process.
	cache *timeslot.Cache
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
		cache:  timeslot.NewCache(strategy.Default()),
	}

	logger.Info("Application initialized successfully",
		"default_language", cfg.Timeslot.DefaultLanguage)
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup runs once the HTTP server has stopped.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed", "cached_slots", app.cache.Len())
}
