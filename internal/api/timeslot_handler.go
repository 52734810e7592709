package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/timeslot/internal/api/shared"
	"github.com/phrazzld/timeslot/internal/config"
	"github.com/phrazzld/timeslot/internal/domain"
	"github.com/phrazzld/timeslot/internal/platform/logger"
	"github.com/phrazzld/timeslot/internal/redact"
	"github.com/phrazzld/timeslot/internal/timeslot"
)

// TimeSlotHandler handles time slot HTTP requests.
type TimeSlotHandler struct {
	cache  *timeslot.Cache
	cfg    config.TimeslotConfig
	logger *slog.Logger
}

// NewTimeSlotHandler creates a new TimeSlotHandler.
func NewTimeSlotHandler(
	cache *timeslot.Cache,
	cfg config.TimeslotConfig,
	logger *slog.Logger,
) *TimeSlotHandler {
	if cache == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cache cannot be nil for TimeSlotHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TimeSlotHandler")
	}

	return &TimeSlotHandler{
		cache:  cache,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "timeslot_handler")),
	}
}

// GetTimeSlot handles GET /timeslots/{value} requests.
func (h *TimeSlotHandler) GetTimeSlot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	slot, ok := h.slotFromPath(w, r)
	if !ok {
		return
	}

	h.respondWithSlot(w, r, log, slot)
}

// GetFromDate handles GET /timeslots/from-date?date=&periodicity= requests.
func (h *TimeSlotHandler) GetFromDate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req := FromDateRequest{
		Date:        r.URL.Query().Get("date"),
		Periodicity: r.URL.Query().Get("periodicity"),
	}
	if err := shared.ValidateRequest(&req); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	instant, err := parseDate(req.Date)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	p, err := domain.ParsePeriodicity(req.Periodicity)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	slot, err := h.cache.FromInstant(instant, p)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithSlot(w, r, log, slot)
}

// GetAncestor handles GET /timeslots/{value}/ancestor/{periodicity} requests.
func (h *TimeSlotHandler) GetAncestor(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	slot, ok := h.slotFromPath(w, r)
	if !ok {
		return
	}

	p, err := domain.ParsePeriodicity(chi.URLParam(r, "periodicity"))
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	ancestor, err := slot.ToAncestor(p)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithSlot(w, r, log, ancestor)
}

// GetDescendants handles GET /timeslots/{value}/descendants/{periodicity}
// requests.
func (h *TimeSlotHandler) GetDescendants(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	slot, ok := h.slotFromPath(w, r)
	if !ok {
		return
	}

	p, err := domain.ParsePeriodicity(chi.URLParam(r, "periodicity"))
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	l, err := resolveLocale(r, h.cfg.DefaultLanguage)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	children, err := slot.ToDescendants(p)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	if len(children) > h.cfg.MaxChildren {
		h.respondWithError(w, r, fmt.Errorf("%w: %d exceeds the limit of %d",
			ErrTooManyChildren, len(children), h.cfg.MaxChildren))
		return
	}

	items := make([]TimeSlotSummary, len(children))
	for i, child := range children {
		items[i] = timeSlotToSummary(child, l)
	}

	log.Debug("listed descendants",
		slog.String("value", slot.Value()),
		slog.String("periodicity", p.String()),
		slog.Int("count", len(items)))
	shared.RespondWithJSON(w, r, http.StatusOK, DescendantsResponse{Items: items, Count: len(items)})
}

// ListPeriodicities handles GET /periodicities requests.
func (h *TimeSlotHandler) ListPeriodicities(w http.ResponseWriter, r *http.Request) {
	l, err := resolveLocale(r, h.cfg.DefaultLanguage)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	periodicities := domain.Periodicities()
	response := make([]PeriodicityResponse, len(periodicities))
	for i, p := range periodicities {
		response[i] = periodicityToResponse(p, l)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// slotFromPath resolves the {value} path parameter, writing an error response
// when it does not name a time slot.
func (h *TimeSlotHandler) slotFromPath(w http.ResponseWriter, r *http.Request) (*timeslot.TimeSlot, bool) {
	value := chi.URLParam(r, "value")

	var (
		slot *timeslot.TimeSlot
		err  error
	)
	if h.cfg.ValidateInput {
		slot, err = h.cache.FromValueChecked(value)
	} else {
		slot, err = h.cache.FromValue(value)
	}
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("rejected time slot value", slog.String("value", redact.Value(value)))
		h.respondWithError(w, r, err)
		return nil, false
	}

	return slot, true
}

func (h *TimeSlotHandler) respondWithSlot(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
	slot *timeslot.TimeSlot,
) {
	l, err := resolveLocale(r, h.cfg.DefaultLanguage)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.Debug("resolved time slot",
		slog.String("value", slot.Value()),
		slog.String("language", l.Language()))
	shared.RespondWithJSON(w, r, http.StatusOK, timeSlotToResponse(slot, l))
}

func (h *TimeSlotHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
