package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/timeslot/internal/api"
	apiMiddleware "github.com/phrazzld/timeslot/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	timeSlotHandler := api.NewTimeSlotHandler(app.cache, app.config.Timeslot, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/timeslots", func(r chi.Router) {
			// Registered before {value} so it is not read as a value.
			r.Get("/from-date", timeSlotHandler.GetFromDate)

			r.Get("/{value}", timeSlotHandler.GetTimeSlot)
			r.Get("/{value}/ancestor/{periodicity}", timeSlotHandler.GetAncestor)
			r.Get("/{value}/descendants/{periodicity}", timeSlotHandler.GetDescendants)
		})

		r.Get("/periodicities", timeSlotHandler.ListPeriodicities)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
