package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/onestop/services/transit/handler/http"
)

// Handler coordinates all protocol handlers for the transit service
type Handler struct {
	transitHandler *http.TransitHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(transitHandler *http.TransitHandler) *Handler {
	return &Handler{
		transitHandler: transitHandler,
	}
}

// RegisterRoutes registers the bus tracking API on e
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Rider queries
	e.POST("/getNearestBustops", h.transitHandler.GetNearestStops)
	e.POST("/getCommonRoutes", h.transitHandler.GetCommonRoutes)
	e.POST("/getBusesForStop", h.transitHandler.GetBusesForStop)

	// Bus tracking
	e.POST("/trackBus", h.transitHandler.TrackBus)
	e.POST("/checkStopDistance", h.transitHandler.CheckStopDistance)
	e.POST("/getNextStop", h.transitHandler.GetNextStop)

	// Network administration
	e.POST("/addNewRoute", h.transitHandler.AddNewRoute)
	e.POST("/addNewStop", h.transitHandler.AddNewStop)
	e.GET("/getRoute", h.transitHandler.GetRoute)
	e.GET("/getAllRoutes", h.transitHandler.GetAllRoutes)
	e.GET("/getAllStops", h.transitHandler.GetAllStops)
}
