package controller

import (
	"net/http"
	"time"

	"event-portal/core/errors"
	"event-portal/core/i18n"
	"event-portal/core/logger"
	"event-portal/core/render"
	"event-portal/core/session"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Status    int              `json:"status"`
	Code      errors.ErrorCode `json:"code"`
	Message   string           `json:"message"`
	Details   any              `json:"details,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// BaseController carries the response helpers shared by every module
// controller.
type BaseController interface {
	BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	InternalServerError(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	NotFound(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	ErrorResponse(c echo.Context, err error) error

	Render(c echo.Context, status int, page, title string, data any) error
	Redirect(c echo.Context, url string) error
	Flash(c echo.Context, kind, key string, data map[string]any)
	T(c echo.Context, key string, data map[string]any) string
}

type responseHandler struct {
	translator i18n.Translator
}

func NewBaseController(translator i18n.Translator) BaseController {
	return &responseHandler{translator: translator}
}

func NewErrorResponse(httpStatusCode int, appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	err := &ErrorResponse{
		Status:    httpStatusCode,
		Code:      appErrCode,
		Message:   message,
		Timestamp: time.Now(),
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return echo.NewHTTPError(httpStatusCode, err)
}

func (h *responseHandler) BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusBadRequest, appErrCode, message, details...)
}

func (h *responseHandler) InternalServerError(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusInternalServerError, appErrCode, message, details...)
}

func (h *responseHandler) NotFound(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusNotFound, appErrCode, message, details...)
}

// StatusFor maps an application error code to an HTTP status.
func StatusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrInvalidInput, errors.ErrInvalidRequestData:
		return http.StatusBadRequest
	case errors.ErrUnauthorized, errors.ErrInvalidPassword, errors.ErrUserNotFound:
		return http.StatusUnauthorized
	case errors.ErrForbidden:
		return http.StatusForbidden
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrAlreadyExists, errors.ErrAlreadyRegistered:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *responseHandler) ErrorResponse(c echo.Context, err error) error {
	httpStatus := http.StatusInternalServerError
	appCode := errors.ErrInternalServer
	msg := "internal server error"

	if ae, ok := err.(*errors.AppError); ok && ae != nil {
		appCode = ae.Code
		httpStatus = StatusFor(appCode)
		if ae.Message != "" && httpStatus < http.StatusInternalServerError {
			msg = ae.Message
		}
	}

	logger.Error("BaseController:ErrorResponse",
		"status", httpStatus,
		"code", appCode,
		"path", c.Request().URL.Path,
		"error", err,
	)
	return NewErrorResponse(httpStatus, appCode, msg)
}

func (h *responseHandler) Render(c echo.Context, status int, page, title string, data any) error {
	sess := session.FromContext(c)
	return c.Render(status, page, render.Page{
		Title:   title,
		Flashes: sess.PopFlashes(),
		Session: sess,
		Data:    data,
	})
}

func (h *responseHandler) Redirect(c echo.Context, url string) error {
	return c.Redirect(http.StatusFound, url)
}

func (h *responseHandler) Flash(c echo.Context, kind, key string, data map[string]any) {
	session.FromContext(c).AddFlash(kind, h.T(c, key, data))
}

func (h *responseHandler) T(c echo.Context, key string, data map[string]any) string {
	if h.translator == nil {
		return key
	}
	return h.translator.T(c.Request().Header.Get("Accept-Language"), key, data)
}

// HTTPErrorHandler writes errors as plain text with their status code.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := http.StatusText(status)

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		switch m := he.Message.(type) {
		case *ErrorResponse:
			msg = m.Message
		case string:
			msg = m
		default:
			msg = http.StatusText(status)
		}
	} else {
		logger.Error("HTTPErrorHandler:Unhandled", "error", err, "path", c.Request().URL.Path)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.String(status, msg)
	}
	if err != nil {
		logger.Error("HTTPErrorHandler:Write:Error", "error", err)
	}
}
