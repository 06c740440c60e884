package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"event-portal/core/errors"

	"github.com/labstack/echo/v4"
)

func TestStatusFor(t *testing.T) {
	cases := map[errors.ErrorCode]int{
		errors.ErrInvalidInput:       http.StatusBadRequest,
		errors.ErrInvalidRequestData: http.StatusBadRequest,
		errors.ErrUserNotFound:       http.StatusUnauthorized,
		errors.ErrInvalidPassword:    http.StatusUnauthorized,
		errors.ErrNotFound:           http.StatusNotFound,
		errors.ErrAlreadyExists:      http.StatusConflict,
		errors.ErrRegistrationFailed: http.StatusInternalServerError,
		errors.ErrInternalServer:     http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := StatusFor(code); got != want {
			t.Errorf("StatusFor(%d) = %d, want %d", code, got, want)
		}
	}
}

func TestHTTPErrorHandlerWritesPlainText(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/submit", nil), rec)

	HTTPErrorHandler(NewErrorResponse(http.StatusBadRequest, errors.ErrInvalidInput, "Invalid input"), c)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Body.String() != "Invalid input" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestErrorResponseHidesInternalMessages(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	h := NewBaseController(nil)

	err := h.ErrorResponse(c, errors.NewAppError(errors.ErrInternalServer, "pq: connection refused", nil))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Fatalf("err = %v", err)
	}
	if msg := he.Message.(*ErrorResponse).Message; msg != "internal server error" {
		t.Errorf("message = %q", msg)
	}

	err = h.ErrorResponse(c, errors.NewAppError(errors.ErrNotFound, "Event not found", nil))
	if he := err.(*echo.HTTPError); he.Code != http.StatusNotFound || he.Message.(*ErrorResponse).Message != "Event not found" {
		t.Errorf("not found = %+v", he)
	}
}
