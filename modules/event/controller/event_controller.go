package controller

import (
	"net/http"

	"event-portal/core/controller"
	"event-portal/core/errors"
	"event-portal/core/i18n"
	"event-portal/core/session"
	"event-portal/core/utils"
	"event-portal/modules/event/dto"
	"event-portal/modules/event/service"
	"event-portal/modules/event/validator"

	"github.com/labstack/echo/v4"
)

// EventController handles event HTTP requests
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface, translator i18n.Translator) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(translator),
		EventService:   svc,
	}
}

// Index handles GET /
func (c *EventController) Index(ctx echo.Context) error {
	events, appErr := c.EventService.GetEvents(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.Render(ctx, http.StatusOK, "index.html", "Events", echo.Map{"Events": events})
}

// MyEvents handles GET /my_events
func (c *EventController) MyEvents(ctx echo.Context) error {
	userID := session.FromContext(ctx).UserID()

	events, appErr := c.EventService.GetMyEvents(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.Render(ctx, http.StatusOK, "my_events.html", "My events", echo.Map{"Events": events})
}

// EditEventForm handles GET /admin/edit_event/:id
func (c *EventController) EditEventForm(ctx echo.Context) error {
	id, ok := utils.ToInt64(ctx.Param("id"))
	if !ok {
		return c.NotFound(errors.ErrNotFound, c.T(ctx, "error.event_not_found", nil))
	}

	event, appErr := c.EventService.GetEventByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.eventError(ctx, appErr)
	}
	return c.Render(ctx, http.StatusOK, "edit_event.html", "Edit event", echo.Map{"Event": event})
}

// UpdateEvent handles POST /admin/edit_event/:id
func (c *EventController) UpdateEvent(ctx echo.Context) error {
	id, ok := utils.ToInt64(ctx.Param("id"))
	if !ok {
		return c.NotFound(errors.ErrNotFound, c.T(ctx, "error.event_not_found", nil))
	}

	var req dto.EventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, c.T(ctx, "error.invalid_input", nil))
	}
	if result := validator.ValidateEventRequest(&req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidRequestData, c.T(ctx, "error.invalid_input", nil), result.Messages())
	}

	if _, appErr := c.EventService.UpdateEvent(ctx.Request().Context(), id, &req); appErr != nil {
		return c.eventError(ctx, appErr)
	}

	c.Flash(ctx, session.FlashSuccess, "flash.event_updated", nil)
	return c.Redirect(ctx, "/dashboard")
}

// DeleteEvent handles POST /admin/delete_event/:id
func (c *EventController) DeleteEvent(ctx echo.Context) error {
	id, ok := utils.ToInt64(ctx.Param("id"))
	if !ok {
		return c.NotFound(errors.ErrNotFound, c.T(ctx, "error.event_not_found", nil))
	}

	if appErr := c.EventService.DeleteEvent(ctx.Request().Context(), id); appErr != nil {
		return c.eventError(ctx, appErr)
	}

	c.Flash(ctx, session.FlashSuccess, "flash.event_deleted", nil)
	return c.Redirect(ctx, "/dashboard")
}

func (c *EventController) eventError(ctx echo.Context, appErr *errors.AppError) error {
	if appErr.Code == errors.ErrNotFound {
		return c.NotFound(appErr.Code, c.T(ctx, "error.event_not_found", nil))
	}
	return c.ErrorResponse(ctx, appErr)
}
