package router

import (
	"event-portal/core/middleware"
	"event-portal/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	e.GET("/", r.EventController.Index)
	e.GET("/my_events", r.EventController.MyEvents, mw.RequireUser())

	// Guards are attached per route: /admin itself is the public admin login.
	admin := e.Group("/admin")
	admin.GET("/edit_event/:id", r.EventController.EditEventForm, mw.RequireAdmin())
	admin.POST("/edit_event/:id", r.EventController.UpdateEvent, mw.RequireAdmin())
	admin.POST("/delete_event/:id", r.EventController.DeleteEvent, mw.RequireAdmin())
}
