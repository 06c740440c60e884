package controller

import (
	"net/http"

	"event-portal/core/controller"
	"event-portal/core/errors"
	"event-portal/core/i18n"
	"event-portal/core/logger"
	"event-portal/core/session"
	"event-portal/modules/auth/dto"
	"event-portal/modules/auth/service"
	"event-portal/modules/auth/validator"

	"github.com/labstack/echo/v4"
)

// AuthController handles account and admin login requests
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
	sessions    *session.Manager
}

func NewAuthController(svc service.AuthServiceInterface, sessions *session.Manager, translator i18n.Translator) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(translator),
		AuthService:    svc,
		sessions:       sessions,
	}
}

// RegisterUserForm handles GET /register_user
func (c *AuthController) RegisterUserForm(ctx echo.Context) error {
	return c.Render(ctx, http.StatusOK, "register_user.html", "Sign up", echo.Map{
		"Form":  dto.RegisterUserRequest{},
		"Error": "",
	})
}

// RegisterUser handles POST /register_user
func (c *AuthController) RegisterUser(ctx echo.Context) error {
	var req dto.RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, c.T(ctx, "error.invalid_input", nil))
	}

	if result := validator.ValidateRegisterUserRequest(&req); result.HasError() {
		return c.renderRegisterUser(ctx, http.StatusBadRequest, &req, c.T(ctx, "error.invalid_input", nil), result.Messages())
	}

	if _, appErr := c.AuthService.RegisterUser(ctx.Request().Context(), &req); appErr != nil {
		switch appErr.Code {
		case errors.ErrInvalidInput:
			return c.renderRegisterUser(ctx, http.StatusBadRequest, &req, c.T(ctx, "error.invalid_input", nil), nil)
		case errors.ErrAlreadyExists:
			return c.renderRegisterUser(ctx, http.StatusOK, &req, c.T(ctx, "error.username_exists", nil), nil)
		case errors.ErrRegistrationFailed:
			logger.Error("AuthController:RegisterUser:Error", "error", appErr)
			return c.renderRegisterUser(ctx, http.StatusOK, &req, c.T(ctx, "error.registration_failed", nil), nil)
		default:
			return c.ErrorResponse(ctx, appErr)
		}
	}

	c.Flash(ctx, session.FlashSuccess, "flash.account_created", nil)
	return c.Redirect(ctx, "/login")
}

func (c *AuthController) renderRegisterUser(ctx echo.Context, status int, req *dto.RegisterUserRequest, message string, fields map[string]string) error {
	form := *req
	form.Password = ""
	return c.Render(ctx, status, "register_user.html", "Sign up", echo.Map{
		"Form":   form,
		"Error":  message,
		"Fields": fields,
	})
}

// LoginForm handles GET /login
func (c *AuthController) LoginForm(ctx echo.Context) error {
	return c.Render(ctx, http.StatusOK, "login.html", "Log in", echo.Map{"Username": "", "Error": ""})
}

// Login handles POST /login
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, c.T(ctx, "error.invalid_input", nil))
	}

	user, appErr := c.AuthService.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		var key string
		switch appErr.Code {
		case errors.ErrUserNotFound:
			key = "error.user_not_found"
		case errors.ErrInvalidPassword:
			key = "error.wrong_password"
		default:
			return c.ErrorResponse(ctx, appErr)
		}
		return c.Render(ctx, http.StatusUnauthorized, "login.html", "Log in", echo.Map{
			"Username": req.Username,
			"Error":    c.T(ctx, key, nil),
		})
	}

	session.FromContext(ctx).Login(session.Identity{UserID: user.ID, Username: user.Username})
	c.Flash(ctx, session.FlashSuccess, "flash.logged_in", map[string]any{"Username": user.Username})
	return c.Redirect(ctx, "/")
}

// Logout handles GET /logout. The whole session is dropped, admin flag included.
func (c *AuthController) Logout(ctx echo.Context) error {
	sess := session.FromContext(ctx)
	if err := c.sessions.Destroy(ctx.Request().Context(), ctx.Response(), sess); err != nil {
		logger.Error("AuthController:Logout:Destroy:Error", "error", err)
	}
	return c.Redirect(ctx, "/")
}

// AdminLoginForm handles GET /admin
func (c *AuthController) AdminLoginForm(ctx echo.Context) error {
	if session.FromContext(ctx).IsAdmin() {
		return c.Redirect(ctx, "/dashboard")
	}
	return c.Render(ctx, http.StatusOK, "admin_login.html", "Administrator", echo.Map{"Error": ""})
}

// AdminLogin handles POST /admin
func (c *AuthController) AdminLogin(ctx echo.Context) error {
	var req dto.AdminLoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, c.T(ctx, "error.invalid_input", nil))
	}

	if appErr := c.AuthService.AdminLogin(ctx.Request().Context(), req.Password); appErr != nil {
		return c.Render(ctx, http.StatusUnauthorized, "admin_login.html", "Administrator", echo.Map{
			"Error": c.T(ctx, "error.admin_invalid_password", nil),
		})
	}

	session.FromContext(ctx).GrantAdmin()
	c.Flash(ctx, session.FlashSuccess, "flash.admin_logged_in", nil)
	return c.Redirect(ctx, "/dashboard")
}

// AdminLogout handles GET /admin/logout. A logged in user stays logged in.
func (c *AuthController) AdminLogout(ctx echo.Context) error {
	sess := session.FromContext(ctx)
	if sess.IsAdmin() {
		sess.RevokeAdmin()
		c.Flash(ctx, session.FlashInfo, "flash.admin_logged_out", nil)
	}
	return c.Redirect(ctx, "/admin")
}
