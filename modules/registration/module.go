package registration

import (
	"event-portal/core/database"
	"event-portal/core/i18n"
	"event-portal/core/middleware"
	notificationService "event-portal/modules/notification/service"
	"event-portal/modules/registration/controller"
	"event-portal/modules/registration/repository"
	"event-portal/modules/registration/router"
	"event-portal/modules/registration/service"

	"github.com/labstack/echo/v4"
)

// Deps are the services the registration module reads from other modules.
type Deps struct {
	Events         service.EventReader
	Profiles       service.ProfileStore
	Notifier       notificationService.NotificationService
	Translator     i18n.Translator
	AllowAnonymous bool
}

// Init initializes the registration module and registers routes.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, deps Deps) service.RegistrationServiceInterface {
	repo := repository.NewRegistrantRepository(db)
	svc := service.NewRegistrationService(repo, deps.Events, deps.Profiles, deps.Notifier)
	ctrl := controller.NewRegistrationController(svc, deps.Translator)
	rtr := router.NewRegistrationRouter(ctrl, deps.AllowAnonymous)

	rtr.Setup(e, mw)
	return svc
}
