package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/onestop/internal/pkg/logger"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/internal/utils"
	"github.com/piresc/onestop/services/transit"
)

const (
	msgInvalidPayload = "Invalid request payload"
	msgRouteNotFound  = "route not found"
)

// NearestStopsResponse is the body returned by GetNearestStops
type NearestStopsResponse struct {
	Stops []*models.Stop `json:"stops"`
}

// TransitHandler handles HTTP requests for the bus tracking API
type TransitHandler struct {
	transitUC transit.TransitUC
}

// NewTransitHandler creates a new transit handler
func NewTransitHandler(transitUC transit.TransitUC) *TransitHandler {
	return &TransitHandler{
		transitUC: transitUC,
	}
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
// The returned error message is safe to send back to the client.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Invalid request payload",
			logger.String("path", c.Path()),
			logger.Err(err))
		return errors.New(msgInvalidPayload)
	}
	return utils.ValidateStruct(req)
}

// respondError maps domain errors to status codes
func respondError(c echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, transit.ErrInvalidInput), errors.Is(err, transit.ErrIndexOutOfRange):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, transit.ErrStopNotFound), errors.Is(err, transit.ErrRouteNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, transit.ErrAlreadyExists):
		return utils.ErrorResponseHandler(c, http.StatusConflict, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), message,
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, message)
}

// GetNearestStops handles POST /getNearestBustops
func (h *TransitHandler) GetNearestStops(c echo.Context) error {
	var req models.NearestStopsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	stops, err := h.transitUC.GetNearestStops(c.Request().Context(), models.Coordinates{Lat: *req.UserLat, Lon: *req.UserLon})
	if err != nil {
		return respondError(c, err, "Failed to find nearest stops")
	}
	if stops == nil {
		stops = []*models.Stop{}
	}

	return c.JSON(http.StatusOK, NearestStopsResponse{Stops: stops})
}

// GetCommonRoutes handles POST /getCommonRoutes
func (h *TransitHandler) GetCommonRoutes(c echo.Context) error {
	var req models.CommonRoutesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	results, err := h.transitUC.FindCommonRoutes(c.Request().Context(), req.SourceID, req.DestinationID)
	if err != nil {
		return respondError(c, err, "Failed to find common routes")
	}

	return c.JSON(http.StatusOK, results)
}

// TrackBus handles POST /trackBus. The update is acknowledged with 202 when no distance could be obtained.
func (h *TransitHandler) TrackBus(c echo.Context) error {
	var req models.TrackBusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	update := models.BusUpdate{
		BusID:      req.BusID,
		RouteNo:    req.RouteNo,
		Position:   models.Coordinates{Lat: *req.BusPositionLat, Lon: *req.BusPositionLon},
		NextStopID: req.NextStopID,
		NextStop:   models.Coordinates{Lat: *req.NextStopLat, Lon: *req.NextStopLon},
	}

	estimate, err := h.transitUC.TrackBus(c.Request().Context(), update)
	if err != nil {
		if errors.Is(err, transit.ErrUpstreamUnavailable) {
			return utils.MessageResponse(c, http.StatusAccepted, "Update received, distance unavailable")
		}
		return respondError(c, err, "Failed to record bus position")
	}

	return c.JSON(http.StatusOK, estimate)
}

// CheckStopDistance handles POST /checkStopDistance
func (h *TransitHandler) CheckStopDistance(c echo.Context) error {
	var req models.DistanceCheckRequest
	if err := bindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	estimate, err := h.transitUC.CheckStopDistance(c.Request().Context(),
		models.Coordinates{Lat: *req.BusPositionLat, Lon: *req.BusPositionLon},
		models.Coordinates{Lat: *req.NextStopLat, Lon: *req.NextStopLon})
	if err != nil {
		return respondError(c, err, "Failed to check stop distance")
	}

	return c.JSON(http.StatusOK, estimate)
}

// GetNextStop handles POST /getNextStop. An unknown route is reported with 200.
func (h *TransitHandler) GetNextStop(c echo.Context) error {
	var req models.NextStopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.transitUC.GetNextStop(c.Request().Context(), req.RouteNo, *req.CurrStopIndex, *req.NextStopIndex)
	if err != nil {
		if errors.Is(err, transit.ErrRouteNotFound) {
			return utils.MessageResponse(c, http.StatusOK, msgRouteNotFound)
		}
		return respondError(c, err, "Failed to get next stop")
	}

	return c.JSON(http.StatusOK, result)
}

// GetBusesForStop handles POST /getBusesForStop
func (h *TransitHandler) GetBusesForStop(c echo.Context) error {
	var req models.BusesForStopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	records, err := h.transitUC.GetBusesForStop(c.Request().Context(), req.StopID)
	if err != nil {
		return respondError(c, err, "Failed to list buses for stop")
	}

	return c.JSON(http.StatusOK, records)
}

// AddNewRoute handles POST /addNewRoute
func (h *TransitHandler) AddNewRoute(c echo.Context) error {
	var req models.NewRouteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.transitUC.AddRoute(c.Request().Context(), req); err != nil {
		return respondError(c, err, "Failed to add route")
	}

	logger.InfoCtx(c.Request().Context(), "Route added",
		logger.String("route_number", req.RouteNumber),
		logger.Int("stops", len(req.Stops)))
	return utils.MessageResponse(c, http.StatusOK, "Successfully added new Route")
}

// AddNewStop handles POST /addNewStop
func (h *TransitHandler) AddNewStop(c echo.Context) error {
	var req models.NewStopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	stop := &models.Stop{
		StopID:   req.StopID,
		Name:     req.Name,
		Location: req.Location.ToLocation(),
	}
	if err := h.transitUC.AddStop(c.Request().Context(), stop); err != nil {
		return respondError(c, err, "Failed to add stop")
	}

	return utils.MessageResponse(c, http.StatusOK, "Successfully added new Stop")
}

// GetRoute handles GET /getRoute?routeNo=
func (h *TransitHandler) GetRoute(c echo.Context) error {
	routeNo := c.QueryParam("routeNo")
	if routeNo == "" {
		return utils.BadRequestResponse(c, "routeNo is required")
	}

	route, err := h.transitUC.GetRoute(c.Request().Context(), routeNo)
	if err != nil {
		return respondError(c, err, "Failed to get route")
	}

	return c.JSON(http.StatusOK, route)
}

// GetAllRoutes handles GET /getAllRoutes
func (h *TransitHandler) GetAllRoutes(c echo.Context) error {
	routes, err := h.transitUC.ListRoutes(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to list routes")
	}

	return c.JSON(http.StatusOK, routes)
}

// GetAllStops handles GET /getAllStops
func (h *TransitHandler) GetAllStops(c echo.Context) error {
	stops, err := h.transitUC.ListStops(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to list stops")
	}

	return c.JSON(http.StatusOK, stops)
}
