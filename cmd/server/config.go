package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/timeslot/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("Time slot configuration",
		"default_language", cfg.Timeslot.DefaultLanguage,
		"validate_input", cfg.Timeslot.ValidateInput,
		"max_children", cfg.Timeslot.MaxChildren)

	return cfg, nil
}
