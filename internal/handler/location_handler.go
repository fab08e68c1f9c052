package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventhub/internal/dto"
	"eventhub/internal/service"
)

// LocationHandler handles location endpoints.
type LocationHandler struct {
	svc service.LocationService
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(svc service.LocationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

// ListLocations godoc
// @Summary Map of city name to location id
// @Tags locations
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /locations [get]
func (h *LocationHandler) ListLocations(c echo.Context) error {
	index, err := h.svc.CityIndex(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to get locations")
	}
	return c.JSON(http.StatusOK, dto.SuccessWithCount("Success", index, len(index)))
}
