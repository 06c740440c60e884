package event

import (
	"event-portal/core/database"
	"event-portal/core/i18n"
	"event-portal/core/middleware"
	"event-portal/modules/event/controller"
	"event-portal/modules/event/repository"
	"event-portal/modules/event/router"
	"event-portal/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes. The service is
// returned for modules that read events.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, translator i18n.Translator) service.EventServiceInterface {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc, translator)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
