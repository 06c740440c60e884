package auth

import (
	"event-portal/core/database"
	"event-portal/core/i18n"
	"event-portal/core/middleware"
	"event-portal/core/session"
	"event-portal/modules/auth/controller"
	"event-portal/modules/auth/repository"
	"event-portal/modules/auth/router"
	"event-portal/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes. The returned service
// serves user profiles to the registration module.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, sessions *session.Manager, translator i18n.Translator, adminPasswordHash string) service.AuthServiceInterface {
	repo := repository.NewUserRepository(db)
	svc := service.NewAuthService(repo, adminPasswordHash)
	ctrl := controller.NewAuthController(svc, sessions, translator)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
