package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusradar/config"
	"campusradar/internal/delivery/api/router"
	"campusradar/internal/delivery/api/router/handler"
	deliverycontext "campusradar/internal/delivery/context"
	"campusradar/internal/infra/metrics"
	mockusecase "campusradar/internal/mocks/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{Proximity: &config.ProximityConfig{DefaultRadius: 500, MaxRadius: 5000}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	srv, err := newServer(ServerParams{
		Cfg:    cfg,
		Logger: slog.Default(),
		RouterParams: router.RouterParams{
			ProximityHandler: handler.NewProximityHandler(handler.ProximityHandlerParams{
				ProximityUC: mockusecase.NewMockProximityUsecase(t),
				Config:      cfg,
				Logger:      slog.Default(),
			}),
			Metrics: metrics.NewWithRegistry(prometheus.NewRegistry()),
		},
	})
	require.NoError(t, err)

	return srv
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var body struct {
		Data map[string]string `json:"data"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Data["status"])
	assert.Equal(t, "req-1", body.Meta.RequestID)
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_ErrorEnvelopeCarriesRequestID(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/proximity/users/nearby?lng=1", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-2")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_COORDINATE", body.Error.Code)
	assert.Equal(t, "req-2", body.Meta.RequestID)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewServer_RequiresConfig(t *testing.T) {
	_, err := newServer(ServerParams{Logger: slog.Default()})
	assert.Error(t, err)
}
