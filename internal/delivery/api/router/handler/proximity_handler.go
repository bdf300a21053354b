package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strings"

	"campusradar/config"
	"campusradar/internal/delivery/api/response"
	"campusradar/internal/domain/entity"
	domainerrors "campusradar/internal/domain/errors"
	"campusradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProximityHandlerParams holds dependencies for ProximityHandler, injected by Fx.
type ProximityHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// ProximityHandler serves the proximity search endpoints.
type ProximityHandler struct {
	proximityUC   usecase.ProximityUsecase
	defaultRadius float64
	maxRadius     float64
	logger        *slog.Logger
}

// NewProximityHandler is the constructor for ProximityHandler
func NewProximityHandler(params ProximityHandlerParams) *ProximityHandler {
	h := &ProximityHandler{
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Proximity != nil {
		h.defaultRadius = params.Config.Proximity.DefaultRadius
		h.maxRadius = params.Config.Proximity.MaxRadius
	}

	return h
}

// ProximityQuery represents the query string of a proximity search.
// Radius is in meters and falls back to the configured default when omitted.
type ProximityQuery struct {
	Latitude  float64 `query:"lat" validate:"latitude"`
	Longitude float64 `query:"lng" validate:"longitude"`
	Radius    float64 `query:"radius"`
	Category  string  `query:"category" validate:"max=64"`
	Type      string  `query:"type" validate:"max=64"`
}

// InteractionRequest represents the request body for recording a product interaction
type InteractionRequest struct {
	Attribute string `json:"attribute" validate:"required,max=64"`
}

// UserLocationResponse is the body of the user location endpoint.
type UserLocationResponse struct {
	UserID   string              `json:"user_id"`
	Location *CoordinateResponse `json:"location"`
}

// ClosestUser handles GET /v1/proximity/users/closest
func (h *ProximityHandler) ClosestUser(c echo.Context) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return err
	}

	result, err := h.proximityUC.FindClosestUser(c.Request().Context(), q.origin(), q.Radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithFreshness(c, http.StatusOK, toUserMatchResponse(result.Match), result.Offline)
}

// NearbyUsers handles GET /v1/proximity/users/nearby
func (h *ProximityHandler) NearbyUsers(c echo.Context) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return err
	}

	result, err := h.proximityUC.FindNearbyUsers(c.Request().Context(), q.origin(), q.Radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	matches := make([]*UserMatchResponse, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, toUserMatchResponse(m))
	}

	return response.SuccessWithFreshness(c, http.StatusOK, matches, result.Offline)
}

// ClosestProduct handles GET /v1/proximity/products/closest
func (h *ProximityHandler) ClosestProduct(c echo.Context) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return err
	}

	result, err := h.proximityUC.FindClosestProduct(c.Request().Context(), q.origin(), q.Radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithFreshness(c, http.StatusOK, toProductMatchResponse(result.Match), result.Offline)
}

// NearbyProducts handles GET /v1/proximity/products/nearby
func (h *ProximityHandler) NearbyProducts(c echo.Context) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return err
	}

	filter := entity.ProductFilter{Category: q.Category, Type: q.Type}
	result, err := h.proximityUC.FindNearbyProducts(c.Request().Context(), q.origin(), q.Radius, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	matches := make([]*ProductMatchResponse, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, toProductMatchResponse(m))
	}

	return response.SuccessWithFreshness(c, http.StatusOK, matches, result.Offline)
}

// UserLocation handles GET /v1/users/:id/location
func (h *ProximityHandler) UserLocation(c echo.Context) error {
	userID := c.Param("id")

	loc, err := h.proximityUC.ResolveUserLocation(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if loc == nil {
		return response.HandleAppError(c, domainerrors.ErrLocationUnknown)
	}

	return response.Success(c, http.StatusOK, &UserLocationResponse{
		UserID:   userID,
		Location: toCoordinateResponse(loc),
	})
}

// ResetCache handles DELETE /v1/proximity/cache
func (h *ProximityHandler) ResetCache(c echo.Context) error {
	h.proximityUC.ResetCache()

	return c.NoContent(http.StatusNoContent)
}

// RecordInteraction handles POST /v1/products/:id/interactions
func (h *ProximityHandler) RecordInteraction(c echo.Context) error {
	var req InteractionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid interaction input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.proximityUC.IncrementInteractionCounter(c.Request().Context(), c.Param("id"), req.Attribute); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "queued"})
}

// parseQuery binds and validates the proximity query string.
func (h *ProximityHandler) parseQuery(c echo.Context) (*ProximityQuery, error) {
	if strings.TrimSpace(c.QueryParam("lat")) == "" || strings.TrimSpace(c.QueryParam("lng")) == "" {
		return nil, domainerrors.ErrInvalidCoordinate.WrapMessage("lat and lng are required")
	}

	q := &ProximityQuery{Radius: h.defaultRadius}
	if err := c.Bind(q); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("malformed query parameters")
	}

	if err := c.Validate(q); err != nil {
		return nil, err
	}

	if math.IsNaN(q.Radius) || math.IsInf(q.Radius, 0) || q.Radius < 0 {
		return nil, domainerrors.ErrInvalidRadius
	}
	if h.maxRadius > 0 && q.Radius > h.maxRadius {
		return nil, domainerrors.ErrInvalidRadius.WrapMessage("radius exceeds the configured maximum")
	}

	return q, nil
}

func (q *ProximityQuery) origin() entity.Coordinate {
	return entity.NewCoordinate(q.Latitude, q.Longitude)
}
