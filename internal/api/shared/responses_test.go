package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/bookmark-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithJSON(rec, req, http.StatusCreated, map[string]string{"access_token": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"access_token":"abc"}`, rec.Body.String())
}

func TestRespondWithStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithStatus(rec, http.StatusNoContent)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, http.StatusBadRequest, "bad input")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bad input", body.Error)
	assert.Equal(t, GetTraceID(req.Context()), body.TraceID)
	assert.Len(t, body.TraceID, 36)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{"server error logs at error", http.StatusInternalServerError, nil, "ERROR"},
		{"client error logs at debug", http.StatusBadRequest, nil, "DEBUG"},
		{"elevated client error logs at warn", http.StatusUnauthorized, []ResponseOption{WithElevatedLogLevel()}, "WARN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, logs := logger.NewTestLogger(t, slog.LevelDebug)
			ctx := logger.WithLogger(context.Background(), l)
			req := httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx)
			rec := httptest.NewRecorder()

			cause := errors.New("lookup failed for vlad@gmail.com at postgres://app:pw@db/x")
			RespondWithErrorAndLog(rec, req, tc.status, "Something went wrong", cause, tc.opts...)

			assert.Equal(t, tc.status, rec.Code)
			assert.NotContains(t, rec.Body.String(), "vlad@gmail.com")
			assert.Contains(t, rec.Body.String(), "Something went wrong")

			entries, err := logs.Entries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, tc.wantLevel, entry["level"])
			assert.NotContains(t, entry["error"], "vlad@gmail.com")
			assert.NotContains(t, entry["error"], "app:pw")
		})
	}
}
