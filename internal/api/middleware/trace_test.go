package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/timeslot/internal/api/shared"
	"github.com/phrazzld/timeslot/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel() // Enable parallel execution

	base, logBuf := logger.GetTestLogger(t)

	var seenTraceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("handled")
		w.WriteHeader(http.StatusNoContent)
	})

	handler := middleware.RequestID(TraceMiddleware(base)(next))

	req := httptest.NewRequest(http.MethodGet, "/api/timeslots/2017-05", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.NotEmpty(t, seenTraceID)
	assert.Equal(t, seenTraceID, w.Header().Get(TraceIDHeader))
	assert.Equal(t, http.StatusNoContent, w.Code)

	logger.AssertLogContains(t, logBuf, "request started")
	logger.AssertLogField(t, logBuf, "msg", "handled")
	logger.AssertLogField(t, logBuf, "trace_id", seenTraceID)

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEmpty(t, entry["request_id"], "chi request ID is attached")
	}
}

func TestTraceMiddleware_UniquePerRequest(t *testing.T) {
	t.Parallel() // Enable parallel execution

	base, _ := logger.GetTestLogger(t)
	handler := TraceMiddleware(base)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(TraceIDHeader), second.Header().Get(TraceIDHeader))
}
