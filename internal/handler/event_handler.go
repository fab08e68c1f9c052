package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/service"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	svc service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// ListCategories godoc
// @Summary List event categories with live event counts
// @Tags events
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /events/category [get]
func (h *EventHandler) ListCategories(c echo.Context) error {
	categories, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to get categories")
	}
	return c.JSON(http.StatusOK, dto.SuccessWithCount("Success", categories, len(categories)))
}

// ListEvents godoc
// @Summary List active events enriched with category and location names
// @Tags events
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /events [get]
func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEventsWithDetails(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to get events")
	}
	return c.JSON(http.StatusOK, dto.SuccessWithCount("Success", events, len(events)))
}

// CreateEvent godoc
// @Summary Create event
// @Description Category and location are given by name and city; both must
// @Description already exist.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.EventDTO true "Event payload"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /events [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.EventDTO
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error(errors.Validation("Invalid event data: %v", err).Error()))
	}
	event, err := h.svc.CreateEvent(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err, "Failed to create event")
	}
	return c.JSON(http.StatusCreated, dto.Success("Event created successfully", event))
}
