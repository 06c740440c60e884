package dashboard

import (
	"event-portal/core/i18n"
	"event-portal/core/middleware"
	"event-portal/core/storage"
	"event-portal/modules/dashboard/controller"
	"event-portal/modules/dashboard/router"
	"event-portal/modules/dashboard/service"
	eventService "event-portal/modules/event/service"
	registrationService "event-portal/modules/registration/service"

	"github.com/labstack/echo/v4"
)

func Init(
	e *echo.Echo,
	mw *middleware.Middleware,
	events eventService.EventServiceInterface,
	registrations registrationService.RegistrationServiceInterface,
	uploader storage.Uploader,
	translator i18n.Translator,
) {
	svc := service.NewDashboardService(events, registrations, uploader)
	ctrl := controller.NewDashboardController(svc, translator)
	router.NewDashboardRouter(ctrl).Setup(e, mw)
}
