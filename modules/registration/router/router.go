package router

import (
	"event-portal/core/middleware"
	"event-portal/modules/registration/controller"

	"github.com/labstack/echo/v4"
)

// RegistrationRouter handles registrant routes
type RegistrationRouter struct {
	RegistrationController *controller.RegistrationController
	allowAnonymous         bool
}

// NewRegistrationRouter creates the router. With allowAnonymous the form and
// submit routes are open to visitors without an account.
func NewRegistrationRouter(registrationController *controller.RegistrationController, allowAnonymous bool) *RegistrationRouter {
	return &RegistrationRouter{
		RegistrationController: registrationController,
		allowAnonymous:         allowAnonymous,
	}
}

// Setup registers registrant routes
func (r *RegistrationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	var submitGuards []echo.MiddlewareFunc
	if !r.allowAnonymous {
		submitGuards = append(submitGuards, mw.RequireUser())
	}

	e.GET("/register", r.RegistrationController.RegisterForm, submitGuards...)
	e.POST("/submit", r.RegistrationController.Submit, submitGuards...)
	e.GET("/success", r.RegistrationController.Success)
	e.POST("/unregister/:event_id", r.RegistrationController.Unregister, mw.RequireUser())

	admin := e.Group("/admin")
	admin.GET("/edit_registrant/:event_id/:registrant_id", r.RegistrationController.EditRegistrantForm, mw.RequireAdmin())
	admin.POST("/edit_registrant/:event_id/:registrant_id", r.RegistrationController.UpdateRegistrant, mw.RequireAdmin())
	admin.POST("/delete_registrant/:event_id/:registrant_id", r.RegistrationController.DeleteRegistrant, mw.RequireAdmin())
}
