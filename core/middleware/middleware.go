package middleware

import (
	"net/http"
	"time"

	"event-portal/core/constants"
	"event-portal/core/i18n"
	"event-portal/core/logger"
	"event-portal/core/session"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	LoginPath      = "/login"
	AdminLoginPath = "/admin"
)

type Middleware struct {
	sessions   *session.Manager
	translator i18n.Translator
}

func NewMiddleware(sessions *session.Manager, translator i18n.Translator) *Middleware {
	return &Middleware{sessions: sessions, translator: translator}
}

// SessionMiddleware loads the session for every request and saves it back,
// right before the response headers go out, if a handler changed it.
func (m *Middleware) SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := m.sessions.Load(c.Request().Context(), c.Request())
			c.Set(constants.ContextSession, sess)

			c.Response().Before(func() {
				if !sess.Dirty() {
					return
				}
				if err := m.sessions.Save(c.Response(), sess); err != nil {
					logger.Error("Middleware:SessionMiddleware:Save:Error", "error", err)
				}
			})
			return next(c)
		}
	}
}

// RequireUser redirects anonymous visitors to the login page.
func (m *Middleware) RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := session.FromContext(c)
			if !sess.IsUser() {
				sess.AddFlash(session.FlashWarning, m.translate(c, "flash.login_required"))
				return c.Redirect(http.StatusFound, LoginPath)
			}
			return next(c)
		}
	}
}

// RequireAdmin redirects sessions without the admin flag to the admin login.
func (m *Middleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.FromContext(c).IsAdmin() {
				return c.Redirect(http.StatusFound, AdminLoginPath)
			}
			return next(c)
		}
	}
}

func (m *Middleware) translate(c echo.Context, key string) string {
	if m.translator == nil {
		return key
	}
	return m.translator.T(c.Request().Header.Get("Accept-Language"), key, nil)
}

// RequestLogger logs one line per request through the application logger.
func RequestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			keyvals := []any{
				"method", v.Method,
				"path", v.URIPath,
				"status", v.Status,
				"latency", v.Latency.Round(time.Microsecond).String(),
				"role", session.FromContext(c).Role().String(),
			}
			if v.Error != nil {
				logger.Error("HTTP:Request:Error", append(keyvals, "error", v.Error)...)
				return nil
			}
			logger.Info("HTTP:Request", keyvals...)
			return nil
		},
	})
}

func Recover() echo.MiddlewareFunc {
	return echomw.Recover()
}
