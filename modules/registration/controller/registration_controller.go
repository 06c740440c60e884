package controller

import (
	"fmt"
	"net/http"
	"net/url"

	"event-portal/core/controller"
	"event-portal/core/errors"
	"event-portal/core/i18n"
	"event-portal/core/session"
	"event-portal/core/utils"
	"event-portal/modules/registration/dto"
	"event-portal/modules/registration/service"
	"event-portal/modules/registration/validator"

	"github.com/labstack/echo/v4"
)

const defaultSuccessName = "Visitor"

// RegistrationController handles registrant HTTP requests
type RegistrationController struct {
	controller.BaseController
	RegistrationService service.RegistrationServiceInterface
}

func NewRegistrationController(svc service.RegistrationServiceInterface, translator i18n.Translator) *RegistrationController {
	return &RegistrationController{
		BaseController:      controller.NewBaseController(translator),
		RegistrationService: svc,
	}
}

// RegisterForm handles GET /register?event_id=
func (c *RegistrationController) RegisterForm(ctx echo.Context) error {
	eventID, ok := utils.ToInt64(ctx.QueryParam("event_id"))
	if !ok {
		return c.NotFound(errors.ErrNotFound, c.T(ctx, "error.event_not_found", nil))
	}

	userID := session.FromContext(ctx).UserID()
	event, form, appErr := c.RegistrationService.PrepareForm(ctx.Request().Context(), eventID, userID)
	if appErr != nil {
		return c.registrationError(ctx, appErr)
	}
	return c.Render(ctx, http.StatusOK, "register.html", "Register", echo.Map{
		"Event": event,
		"Form":  form,
	})
}

// Submit handles POST /submit
func (c *RegistrationController) Submit(ctx echo.Context) error {
	var req dto.SubmitRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, c.T(ctx, "error.invalid_input", nil))
	}
	if result := validator.ValidateSubmitRequest(&req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidRequestData, c.T(ctx, "error.invalid_input", nil), result.Messages())
	}

	eventID, ok := utils.ToInt64(req.EventID)
	if !ok {
		return c.NotFound(errors.ErrNotFound, c.T(ctx, "error.event_not_found", nil))
	}

	userID := session.FromContext(ctx).UserID()
	registrant, appErr := c.RegistrationService.Submit(ctx.Request().Context(), eventID, userID, &req)
	if appErr != nil {
		if appErr.Code == errors.ErrAlreadyRegistered {
			c.Flash(ctx, session.FlashWarning, "flash.already_registered", nil)
			return c.Redirect(ctx, "/my_events")
		}
		return c.registrationError(ctx, appErr)
	}

	return c.Redirect(ctx, "/success?"+url.Values{"name": {registrant.Name}}.Encode())
}

// Success handles GET /success?name=
func (c *RegistrationController) Success(ctx echo.Context) error {
	name := ctx.QueryParam("name")
	if name == "" {
		name = defaultSuccessName
	}
	return c.Render(ctx, http.StatusOK, "success.html", "Registered", echo.Map{"Name": name})
}

// Unregister handles POST /unregister/:event_id. It redirects to the user's
// events whether or not a registration existed.
func (c *RegistrationController) Unregister(ctx echo.Context) error {
	eventID, ok := utils.ToInt64(ctx.Param("event_id"))
	if ok {
		userID := session.FromContext(ctx).UserID()
		deleted, appErr := c.RegistrationService.Unregister(ctx.Request().Context(), eventID, userID)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		if deleted {
			c.Flash(ctx, session.FlashInfo, "flash.unregistered", nil)
		}
	}
	return c.Redirect(ctx, "/my_events")
}

// EditRegistrantForm handles GET /admin/edit_registrant/:event_id/:registrant_id
func (c *RegistrationController) EditRegistrantForm(ctx echo.Context) error {
	eventID, registrantID, ok := registrantParams(ctx)
	if !ok {
		return c.NotFound(errors.ErrNotFound, c.T(ctx, "error.registrant_not_found", nil))
	}

	registrant, appErr := c.RegistrationService.GetEventRegistrant(ctx.Request().Context(), eventID, registrantID)
	if appErr != nil {
		return c.registrantError(ctx, appErr)
	}
	return c.Render(ctx, http.StatusOK, "edit_registrant.html", "Edit registrant", echo.Map{"Registrant": registrant})
}

// UpdateRegistrant handles POST /admin/edit_registrant/:event_id/:registrant_id
func (c *RegistrationController) UpdateRegistrant(ctx echo.Context) error {
	eventID, registrantID, ok := registrantParams(ctx)
	if !ok {
		return c.NotFound(errors.ErrNotFound, c.T(ctx, "error.registrant_not_found", nil))
	}

	var req dto.RegistrantRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, c.T(ctx, "error.invalid_input", nil))
	}
	if result := validator.ValidateRegistrantRequest(&req); result.HasError() {
		return c.BadRequest(errors.ErrInvalidRequestData, c.T(ctx, "error.invalid_input", nil), result.Messages())
	}

	if appErr := c.RegistrationService.UpdateRegistrant(ctx.Request().Context(), eventID, registrantID, &req); appErr != nil {
		return c.registrantError(ctx, appErr)
	}

	c.Flash(ctx, session.FlashSuccess, "flash.registrant_updated", nil)
	return c.Redirect(ctx, eventDetailPath(eventID))
}

// DeleteRegistrant handles POST /admin/delete_registrant/:event_id/:registrant_id
func (c *RegistrationController) DeleteRegistrant(ctx echo.Context) error {
	eventID, registrantID, ok := registrantParams(ctx)
	if !ok {
		return c.NotFound(errors.ErrNotFound, c.T(ctx, "error.registrant_not_found", nil))
	}

	if appErr := c.RegistrationService.DeleteRegistrant(ctx.Request().Context(), eventID, registrantID); appErr != nil {
		return c.registrantError(ctx, appErr)
	}

	c.Flash(ctx, session.FlashSuccess, "flash.registrant_deleted", nil)
	return c.Redirect(ctx, eventDetailPath(eventID))
}

func registrantParams(ctx echo.Context) (int64, int64, bool) {
	eventID, ok := utils.ToInt64(ctx.Param("event_id"))
	if !ok {
		return 0, 0, false
	}
	registrantID, ok := utils.ToInt64(ctx.Param("registrant_id"))
	if !ok {
		return 0, 0, false
	}
	return eventID, registrantID, true
}

func eventDetailPath(eventID int64) string {
	return fmt.Sprintf("/admin/event/%d", eventID)
}

func (c *RegistrationController) registrationError(ctx echo.Context, appErr *errors.AppError) error {
	if appErr.Code == errors.ErrNotFound {
		return c.NotFound(appErr.Code, c.T(ctx, "error.event_not_found", nil))
	}
	return c.ErrorResponse(ctx, appErr)
}

func (c *RegistrationController) registrantError(ctx echo.Context, appErr *errors.AppError) error {
	if appErr.Code == errors.ErrNotFound {
		return c.NotFound(appErr.Code, c.T(ctx, "error.registrant_not_found", nil))
	}
	return c.ErrorResponse(ctx, appErr)
}
