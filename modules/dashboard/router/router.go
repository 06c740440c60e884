package router

import (
	"event-portal/core/middleware"
	"event-portal/modules/dashboard/controller"

	"github.com/labstack/echo/v4"
)

type DashboardRouter struct {
	Controller *controller.DashboardController
}

func NewDashboardRouter(ctrl *controller.DashboardController) *DashboardRouter {
	return &DashboardRouter{Controller: ctrl}
}

// Setup registers the admin dashboard routes
func (r *DashboardRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	e.GET("/dashboard", r.Controller.Dashboard, mw.RequireAdmin())
	e.POST("/dashboard", r.Controller.CreateEvent, mw.RequireAdmin())

	admin := e.Group("/admin")
	admin.GET("/event/:id", r.Controller.EventDetail, mw.RequireAdmin())
	admin.POST("/event/:id/export", r.Controller.ExportRegistrants, mw.RequireAdmin())
}
