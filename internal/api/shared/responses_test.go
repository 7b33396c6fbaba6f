package shared_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfoley/taskward-api/internal/api/shared"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/tasks", nil)

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes trace ID when present", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		r = r.WithContext(shared.SetTraceID(r.Context()))
		w := httptest.NewRecorder()

		shared.RespondWithError(w, r, http.StatusNotFound, "task not found")

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body shared.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "task not found", body.Error)
		assert.Len(t, body.TraceID, 32)
	})

	t.Run("omits trace ID when absent", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		w := httptest.NewRecorder()

		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request")

		var raw map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.NotContains(t, raw, "trace_id")
		assert.NotContains(t, raw, "Code")
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	w := httptest.NewRecorder()

	internal := errors.New("pg: connection to postgres://user:hunter2@db failed")
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", internal)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The raw error must never appear in the response body.
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.NotContains(t, w.Body.String(), "postgres://")

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to authenticate user", body.Error)
}

func TestGetTraceID(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, shared.GetTraceID(r.Context()))

	ctx := shared.SetTraceID(r.Context())
	first := shared.GetTraceID(ctx)
	assert.Len(t, first, 32)

	// Each SetTraceID call generates a fresh ID.
	second := shared.GetTraceID(shared.SetTraceID(r.Context()))
	assert.NotEqual(t, first, second)
}
