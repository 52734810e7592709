package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/timeslot/internal/api/shared"
	"github.com/phrazzld/timeslot/internal/config"
	"github.com/phrazzld/timeslot/internal/domain/strategy"
	"github.com/phrazzld/timeslot/internal/timeslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTimeslotConfig() config.TimeslotConfig {
	return config.TimeslotConfig{
		DefaultLanguage: "en",
		ValidateInput:   true,
		MaxChildren:     4000,
	}
}

// newTestRouter mounts the handler the same way the server does.
func newTestRouter(cfg config.TimeslotConfig) http.Handler {
	h := NewTimeSlotHandler(
		timeslot.NewCache(strategy.NewDefaultRegistry()),
		cfg,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	r := chi.NewRouter()
	r.Get("/timeslots/from-date", h.GetFromDate)
	r.Get("/timeslots/{value}", h.GetTimeSlot)
	r.Get("/timeslots/{value}/ancestor/{periodicity}", h.GetAncestor)
	r.Get("/timeslots/{value}/descendants/{periodicity}", h.GetDescendants)
	r.Get("/periodicities", h.ListPeriodicities)
	return r
}

func doGet(t *testing.T, router http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestNewTimeSlotHandler_PanicsOnMissingDependencies(t *testing.T) {
	t.Parallel()

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := timeslot.NewCache(strategy.NewDefaultRegistry())

	assert.Panics(t, func() { NewTimeSlotHandler(nil, testTimeslotConfig(), discard) })
	assert.Panics(t, func() { NewTimeSlotHandler(cache, testTimeslotConfig(), nil) })
}

func TestTimeSlotHandler_GetTimeSlot(t *testing.T) {
	t.Parallel()

	router := newTestRouter(testTimeslotConfig())

	t.Run("month", func(t *testing.T) {
		rr := doGet(t, router, "/timeslots/2017-05", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var resp TimeSlotResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "2017-05", resp.Value)
		assert.Equal(t, "month", resp.Periodicity)
		assert.Equal(t, "2017-05-01", resp.FirstDate)
		assert.Equal(t, "2017-05-31", resp.LastDate)
		assert.Equal(t, "2017-04", resp.Previous)
		assert.Equal(t, "2017-06", resp.Next)
		assert.Equal(t, []string{"quarter", "semester", "year", "all"}, resp.AncestorPeriodicities)
		assert.Contains(t, resp.DescendantPeriodicities, "day")
		assert.Contains(t, resp.DescendantPeriodicities, "week_mon")
		assert.Equal(t, "May 2017", resp.Label)
	})

	t.Run("lang parameter", func(t *testing.T) {
		rr := doGet(t, router, "/timeslots/2017-05?lang=fr", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp TimeSlotResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Mai 2017", resp.Label)
	})

	t.Run("accept-language header", func(t *testing.T) {
		header := http.Header{"Accept-Language": []string{"de-DE,es;q=0.8,fr;q=0.5"}}
		rr := doGet(t, router, "/timeslots/2017-05", header)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp TimeSlotResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Mayo 2017", resp.Label)
	})

	t.Run("unknown lang parameter", func(t *testing.T) {
		rr := doGet(t, router, "/timeslots/2017-05?lang=de", nil)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Unknown language: supported languages are en, es, fr", decodeError(t, rr).Error)
	})

	t.Run("all has itself as neighbors", func(t *testing.T) {
		rr := doGet(t, router, "/timeslots/all", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp TimeSlotResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "all", resp.Previous)
		assert.Equal(t, "all", resp.Next)
		assert.Empty(t, resp.AncestorPeriodicities)
	})

	t.Run("last day of the calendar has no next", func(t *testing.T) {
		rr := doGet(t, router, "/timeslots/9999-12-31", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
		assert.Equal(t, "9999-12-30", raw["previous"])
		assert.NotContains(t, raw, "next")
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, value := range []string{"2017-13", "2017-02-29", "2021-W53-mon", "nope"} {
			rr := doGet(t, router, "/timeslots/"+value, nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code, value)
			resp := decodeError(t, rr)
			assert.Equal(t, "Invalid time slot value", resp.Error)
		}
	})
}

func TestTimeSlotHandler_GetTimeSlot_WithoutValidation(t *testing.T) {
	t.Parallel()

	cfg := testTimeslotConfig()
	cfg.ValidateInput = false
	router := newTestRouter(cfg)

	rr := doGet(t, router, "/timeslots/2017-W18-mon", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doGet(t, router, "/timeslots/nope", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTimeSlotHandler_GetFromDate(t *testing.T) {
	t.Parallel()

	router := newTestRouter(testTimeslotConfig())

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedValue  string
		expectedErrMsg string
	}{
		{
			name:           "iso week",
			query:          "date=2017-05-03&periodicity=week_mon",
			expectedStatus: http.StatusOK,
			expectedValue:  "2017-W18-mon",
		},
		{
			name:           "rfc3339 timestamp",
			query:          "date=2017-05-03T18:30:00Z&periodicity=month_week_sun",
			expectedStatus: http.StatusOK,
			expectedValue:  "2017-05-W1-sun",
		},
		{
			name:           "year end week belongs to next year",
			query:          "date=2025-12-29&periodicity=week_mon",
			expectedStatus: http.StatusOK,
			expectedValue:  "2026-W01-mon",
		},
		{
			name:           "all",
			query:          "date=1999-01-01&periodicity=all",
			expectedStatus: http.StatusOK,
			expectedValue:  "all",
		},
		{
			name:           "missing date",
			query:          "periodicity=day",
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid date: required field",
		},
		{
			name:           "missing periodicity",
			query:          "date=2017-05-03",
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid periodicity: required field",
		},
		{
			name:           "unreadable date",
			query:          "date=03/05/2017&periodicity=day",
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid date, expected YYYY-MM-DD or RFC 3339",
		},
		{
			name:           "unknown periodicity",
			query:          "date=2017-05-03&periodicity=fortnight",
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid periodicity: unknown periodicity",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := doGet(t, router, "/timeslots/from-date?"+tc.query, nil)
			require.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedErrMsg != "" {
				assert.Equal(t, tc.expectedErrMsg, decodeError(t, rr).Error)
				return
			}

			var resp TimeSlotResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tc.expectedValue, resp.Value)
		})
	}
}

func TestTimeSlotHandler_GetAncestor(t *testing.T) {
	t.Parallel()

	router := newTestRouter(testTimeslotConfig())

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedValue  string
	}{
		{"day to quarter", "/timeslots/2017-05-03/ancestor/quarter", http.StatusOK, "2017-Q2"},
		{"week to month by midpoint", "/timeslots/2017-W22-mon/ancestor/month", http.StatusOK, "2017-06"},
		{"same periodicity", "/timeslots/2017-05/ancestor/month", http.StatusOK, "2017-05"},
		{"to all", "/timeslots/2017-S2/ancestor/all", http.StatusOK, "all"},
		{"not an ancestor", "/timeslots/2017-05/ancestor/day", http.StatusUnprocessableEntity, ""},
		{"parallel week chains", "/timeslots/2017-05-W1-sun/ancestor/week_mon", http.StatusUnprocessableEntity, ""},
		{"unknown periodicity", "/timeslots/2017-05/ancestor/decade", http.StatusBadRequest, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := doGet(t, router, tc.path, nil)
			require.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedValue == "" {
				assert.NotEmpty(t, decodeError(t, rr).Error)
				return
			}

			var resp TimeSlotResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tc.expectedValue, resp.Value)
		})
	}
}

func TestTimeSlotHandler_GetDescendants(t *testing.T) {
	t.Parallel()

	router := newTestRouter(testTimeslotConfig())

	t.Run("days of a month", func(t *testing.T) {
		rr := doGet(t, router, "/timeslots/2017-05/descendants/day?lang=es", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp DescendantsResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Equal(t, 31, resp.Count)
		require.Len(t, resp.Items, 31)
		assert.Equal(t, TimeSlotSummary{
			Value:     "2017-05-01",
			FirstDate: "2017-05-01",
			LastDate:  "2017-05-01",
			Label:     "01 Mayo 2017",
		}, resp.Items[0])
		assert.Equal(t, "2017-05-31", resp.Items[30].Value)
	})

	t.Run("weeks of a month", func(t *testing.T) {
		rr := doGet(t, router, "/timeslots/2017-05/descendants/week_mon", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp DescendantsResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Equal(t, 5, resp.Count)
		assert.Equal(t, "2017-W18-mon", resp.Items[0].Value)
		assert.Equal(t, "2017-W22-mon", resp.Items[4].Value)
	})

	t.Run("all cannot be enumerated", func(t *testing.T) {
		rr := doGet(t, router, "/timeslots/all/descendants/year", nil)
		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, "Cannot enumerate the children of all", decodeError(t, rr).Error)
	})

	t.Run("not a descendant", func(t *testing.T) {
		rr := doGet(t, router, "/timeslots/2017-05/descendants/year", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("unknown lang", func(t *testing.T) {
		rr := doGet(t, router, "/timeslots/2017-05/descendants/day?lang=xx", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTimeSlotHandler_GetDescendants_Cap(t *testing.T) {
	t.Parallel()

	cfg := testTimeslotConfig()
	cfg.MaxChildren = 10
	router := newTestRouter(cfg)

	rr := doGet(t, router, "/timeslots/2017-05/descendants/day", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Too many descendants requested", decodeError(t, rr).Error)

	rr = doGet(t, router, "/timeslots/2017/descendants/quarter", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestTimeSlotHandler_ListPeriodicities(t *testing.T) {
	t.Parallel()

	router := newTestRouter(testTimeslotConfig())

	rr := doGet(t, router, "/periodicities?lang=fr", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp []PeriodicityResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 12)

	assert.Equal(t, "day", resp[0].ID)
	assert.Equal(t, "Jour", resp[0].Label)
	assert.Equal(t, []string{"month_week_sat", "month_week_sun", "month_week_mon"}, resp[0].Parents)

	last := resp[len(resp)-1]
	assert.Equal(t, "all", last.ID)
	assert.Equal(t, "Tout", last.Label)
	assert.Empty(t, last.Parents)
}
