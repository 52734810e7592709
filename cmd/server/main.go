// Package main implements the entry point for the time slot API server,
// which resolves, navigates and labels calendar periods over HTTP.
package main

import (
	"context"
	"log"
)

// main is the entry point for the timeslot server.
// It loads configuration, sets up logging, builds the application and serves
// HTTP until an interrupt or termination signal arrives.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return nil, err
	}

	return newApplication(cfg, l)
}
