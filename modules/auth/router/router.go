package router

import (
	"event-portal/core/middleware"
	"event-portal/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

// AuthRouter handles account and admin login routes
type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		AuthController: authController,
	}
}

// Setup registers auth routes
func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	e.GET("/register_user", r.AuthController.RegisterUserForm)
	e.POST("/register_user", r.AuthController.RegisterUser)
	e.GET("/login", r.AuthController.LoginForm)
	e.POST("/login", r.AuthController.Login)
	e.GET("/logout", r.AuthController.Logout)

	e.GET("/admin", r.AuthController.AdminLoginForm)
	e.POST("/admin", r.AuthController.AdminLogin)
	e.GET("/admin/logout", r.AuthController.AdminLogout)
}
