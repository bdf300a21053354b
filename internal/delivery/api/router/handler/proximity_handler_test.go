package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campusradar/config"
	apimiddleware "campusradar/internal/delivery/api/middleware"
	"campusradar/internal/delivery/api/validator"
	"campusradar/internal/domain/entity"
	domainerrors "campusradar/internal/domain/errors"
	mockusecase "campusradar/internal/mocks/usecase"
	"campusradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Offline   *bool  `json:"offline"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) (*echo.Echo, *mockusecase.MockProximityUsecase) {
	t.Helper()

	uc := mockusecase.NewMockProximityUsecase(t)
	h := NewProximityHandler(ProximityHandlerParams{
		ProximityUC: uc,
		Config: &config.Config{Proximity: &config.ProximityConfig{
			DefaultRadius: 500,
			MaxRadius:     10000,
		}},
		Logger: slog.Default(),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	e.GET("/v1/proximity/users/closest", h.ClosestUser)
	e.GET("/v1/proximity/users/nearby", h.NearbyUsers)
	e.GET("/v1/proximity/products/closest", h.ClosestProduct)
	e.GET("/v1/proximity/products/nearby", h.NearbyProducts)
	e.GET("/v1/users/:id/location", h.UserLocation)
	e.DELETE("/v1/proximity/cache", h.ResetCache)
	e.POST("/v1/products/:id/interactions", h.RecordInteraction)

	return e, uc
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestProximityHandler_ClosestUser(t *testing.T) {
	e, uc := newTestServer(t)
	loc := entity.NewCoordinate(0, 0.001)

	uc.EXPECT().FindClosestUser(mock.Anything, entity.NewCoordinate(0, 0), 50.0).
		Return(&usecase.ClosestUserResult{
			Match: &entity.UserMatch{User: &entity.User{ID: "u2", Name: "Bo", Location: &loc}, DistanceMeters: 111.19},
		}, nil)

	rec, env := do(t, e, http.MethodGet, "/v1/proximity/users/closest?lat=0&lng=0&radius=50", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var match UserMatchResponse
	require.NoError(t, json.Unmarshal(env.Data, &match))
	assert.Equal(t, "u2", match.User.ID)
	assert.InDelta(t, 111.19, match.DistanceMeters, 1e-9)
	require.NotNil(t, match.User.Location)
	assert.InDelta(t, 0.001, match.User.Location.Longitude, 1e-12)

	require.NotNil(t, env.Meta.Offline)
	assert.False(t, *env.Meta.Offline)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestProximityHandler_ClosestUser_NoMatchRendersNull(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().FindClosestUser(mock.Anything, mock.Anything, mock.Anything).
		Return(&usecase.ClosestUserResult{Offline: true}, nil)

	rec, env := do(t, e, http.MethodGet, "/v1/proximity/users/closest?lat=1&lng=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(env.Data))
	require.NotNil(t, env.Meta.Offline)
	assert.True(t, *env.Meta.Offline)
}

func TestProximityHandler_DefaultRadius(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().FindNearbyUsers(mock.Anything, entity.NewCoordinate(25.03, 121.56), 500.0).
		Return(&usecase.NearbyUsersResult{}, nil)

	rec, env := do(t, e, http.MethodGet, "/v1/proximity/users/nearby?lat=25.03&lng=121.56", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(env.Data))
}

func TestProximityHandler_QueryValidation(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing latitude",
			query:      "lng=0",
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerrors.ErrInvalidCoordinate.ErrorCode(),
		},
		{
			name:       "missing longitude",
			query:      "lat=0",
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerrors.ErrInvalidCoordinate.ErrorCode(),
		},
		{
			name:       "latitude out of range",
			query:      "lat=91&lng=0",
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerrors.ErrValidationFailed.ErrorCode(),
		},
		{
			name:       "longitude not a number",
			query:      "lat=0&lng=east",
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerrors.ErrValidationFailed.ErrorCode(),
		},
		{
			name:       "negative radius",
			query:      "lat=0&lng=0&radius=-1",
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerrors.ErrInvalidRadius.ErrorCode(),
		},
		{
			name:       "radius above maximum",
			query:      "lat=0&lng=0&radius=10001",
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerrors.ErrInvalidRadius.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestServer(t)

			rec, env := do(t, e, http.MethodGet, "/v1/proximity/users/closest?"+tt.query, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestProximityHandler_UsecaseError(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().FindClosestProduct(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrCacheState)

	rec, env := do(t, e, http.MethodGet, "/v1/proximity/products/closest?lat=0&lng=0", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrCacheState.ErrorCode(), env.Error.Code)
}

func TestProximityHandler_ClosestProduct(t *testing.T) {
	e, uc := newTestServer(t)
	loc := entity.NewCoordinate(0, 0)

	uc.EXPECT().FindClosestProduct(mock.Anything, entity.NewCoordinate(0, 0), 100.0).
		Return(&usecase.ClosestProductResult{
			Match: &entity.ProductMatch{
				Product: &entity.Product{ID: "p1", OwnerID: "u1", Title: "Desk lamp", Category: "Furniture", Types: []string{"Buy"}},
				Owner:   &entity.User{ID: "u1", Location: &loc},
			},
		}, nil)

	rec, env := do(t, e, http.MethodGet, "/v1/proximity/products/closest?lat=0&lng=0&radius=100", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var match ProductMatchResponse
	require.NoError(t, json.Unmarshal(env.Data, &match))
	assert.Equal(t, "p1", match.Product.ID)
	assert.Equal(t, []string{"Furniture", "Buy"}, match.Product.Tags)
	assert.Equal(t, "u1", match.Owner.ID)
	assert.Zero(t, match.DistanceMeters)
}

func TestProximityHandler_NearbyProducts_PassesFilter(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().FindNearbyProducts(mock.Anything, entity.NewCoordinate(0, 0), 200.0,
		entity.ProductFilter{Category: "Books", Type: "Rent"}).
		Return(&usecase.NearbyProductsResult{
			Matches: []*entity.ProductMatch{
				{Product: &entity.Product{ID: "p3", OwnerID: "u1"}, Owner: &entity.User{ID: "u1"}, DistanceMeters: 5},
			},
			Offline: true,
		}, nil)

	rec, env := do(t, e, http.MethodGet, "/v1/proximity/products/nearby?lat=0&lng=0&radius=200&category=Books&type=Rent", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []ProductMatchResponse
	require.NoError(t, json.Unmarshal(env.Data, &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "p3", matches[0].Product.ID)
	assert.True(t, *env.Meta.Offline)
}

func TestProximityHandler_UserLocation(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		e, uc := newTestServer(t)
		loc := entity.NewCoordinate(24.99, 121.5)
		uc.EXPECT().ResolveUserLocation(mock.Anything, "u1").Return(&loc, nil)

		rec, env := do(t, e, http.MethodGet, "/v1/users/u1/location", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body UserLocationResponse
		require.NoError(t, json.Unmarshal(env.Data, &body))
		assert.Equal(t, "u1", body.UserID)
		assert.InDelta(t, 24.99, body.Location.Latitude, 1e-12)
		assert.Nil(t, env.Meta.Offline)
	})

	t.Run("unknown", func(t *testing.T) {
		e, uc := newTestServer(t)
		uc.EXPECT().ResolveUserLocation(mock.Anything, "u3").Return(nil, nil)

		rec, env := do(t, e, http.MethodGet, "/v1/users/u3/location", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrLocationUnknown.ErrorCode(), env.Error.Code)
	})
}

func TestProximityHandler_ResetCache(t *testing.T) {
	e, uc := newTestServer(t)
	uc.EXPECT().ResetCache().Return()

	rec, _ := do(t, e, http.MethodDelete, "/v1/proximity/cache", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProximityHandler_RecordInteraction(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		e, uc := newTestServer(t)
		uc.EXPECT().IncrementInteractionCounter(mock.Anything, "p1", "detail_view").Return(nil)

		rec, _ := do(t, e, http.MethodPost, "/v1/products/p1/interactions", `{"attribute":"detail_view"}`)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("missing attribute", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, env := do(t, e, http.MethodPost, "/v1/products/p1/interactions", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
		assert.Contains(t, env.Error.Details, "Attribute")
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec, env := do(t, e, http.MethodPost, "/v1/products/p1/interactions", `{"attribute":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}
