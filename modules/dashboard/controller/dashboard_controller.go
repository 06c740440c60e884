package controller

import (
	"fmt"
	"net/http"

	"event-portal/core/controller"
	"event-portal/core/errors"
	"event-portal/core/i18n"
	"event-portal/core/session"
	"event-portal/core/utils"
	"event-portal/modules/dashboard/service"
	eventDto "event-portal/modules/event/dto"
	eventValidator "event-portal/modules/event/validator"

	"github.com/labstack/echo/v4"
)

// DashboardController handles the admin dashboard
type DashboardController struct {
	controller.BaseController
	DashboardService service.DashboardService
}

func NewDashboardController(svc service.DashboardService, translator i18n.Translator) *DashboardController {
	return &DashboardController{
		BaseController:   controller.NewBaseController(translator),
		DashboardService: svc,
	}
}

// Dashboard handles GET /dashboard
func (c *DashboardController) Dashboard(ctx echo.Context) error {
	return c.renderDashboard(ctx)
}

// CreateEvent handles POST /dashboard
func (c *DashboardController) CreateEvent(ctx echo.Context) error {
	var req eventDto.EventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, c.T(ctx, "error.invalid_input", nil))
	}
	if result := eventValidator.ValidateEventRequest(&req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidRequestData, c.T(ctx, "error.invalid_input", nil), result.Messages())
	}

	event, appErr := c.DashboardService.CreateEvent(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	c.Flash(ctx, session.FlashSuccess, "flash.event_created", map[string]any{"Name": event.Name})
	return c.renderDashboard(ctx)
}

func (c *DashboardController) renderDashboard(ctx echo.Context) error {
	groups, appErr := c.DashboardService.Overview(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.Render(ctx, http.StatusOK, "dashboard.html", "Dashboard", echo.Map{"Events": groups})
}

// EventDetail handles GET /admin/event/:id
func (c *DashboardController) EventDetail(ctx echo.Context) error {
	id, ok := utils.ToInt64(ctx.Param("id"))
	if !ok {
		return c.NotFound(errors.ErrNotFound, c.T(ctx, "error.event_not_found", nil))
	}

	detail, appErr := c.DashboardService.EventDetail(ctx.Request().Context(), id)
	if appErr != nil {
		return c.eventError(ctx, appErr)
	}
	return c.Render(ctx, http.StatusOK, "event_detail.html", detail.Event.Name, echo.Map{
		"Event":       detail.Event,
		"Registrants": detail.Registrants,
	})
}

// ExportRegistrants handles POST /admin/event/:id/export
func (c *DashboardController) ExportRegistrants(ctx echo.Context) error {
	id, ok := utils.ToInt64(ctx.Param("id"))
	if !ok {
		return c.NotFound(errors.ErrNotFound, c.T(ctx, "error.event_not_found", nil))
	}

	export, appErr := c.DashboardService.ExportRegistrants(ctx.Request().Context(), id)
	if appErr != nil {
		return c.eventError(ctx, appErr)
	}

	if export.Location != "" {
		c.Flash(ctx, session.FlashSuccess, "flash.export_uploaded", map[string]any{"Location": export.Location})
		return c.Redirect(ctx, fmt.Sprintf("/admin/event/%d", id))
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", export.Content)
}

func (c *DashboardController) eventError(ctx echo.Context, appErr *errors.AppError) error {
	if appErr.Code == errors.ErrNotFound {
		return c.NotFound(appErr.Code, c.T(ctx, "error.event_not_found", nil))
	}
	return c.ErrorResponse(ctx, appErr)
}
