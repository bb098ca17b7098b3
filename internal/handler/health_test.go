package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()

	HandleHealthz()(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody[HealthResponse](t, w).Status)
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantState  string
	}{
		{name: "database reachable", wantStatus: http.StatusOK, wantState: "ok"},
		{name: "database down", pingErr: errors.New("dial tcp: refused"), wantStatus: http.StatusServiceUnavailable, wantState: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := new(MockDBPool)
			pool.On("Ping", mock.Anything).Return(tt.pingErr)
			w := httptest.NewRecorder()

			HandleReadyz(pool)(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeBody[HealthResponse](t, w)
			assert.Equal(t, tt.wantState, resp.Status)
			assert.Equal(t, "postgres", resp.Store)
			assert.NotContains(t, w.Body.String(), "refused")
		})
	}

	t.Run("memory store is always ready", func(t *testing.T) {
		w := httptest.NewRecorder()

		HandleReadyz(nil)(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "memory", decodeBody[HealthResponse](t, w).Store)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()

	HandleVersion("venturebot", "1.2.3")(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	info := decodeBody[VersionInfo](t, w)
	assert.Equal(t, "1.2.3", info.Version)
}
