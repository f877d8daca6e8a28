package server

import (
	"fmt"
	"net/http"

	crdb "github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"

	"github.com/toyz/fakegen/internal/errors"
)

// HTTPError is the JSON body of every failed API call
type HTTPError struct {
	StatusCode  int      `json:"status_code"`
	Message     string   `json:"message"`
	Code        string   `json:"code,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// newHTTPError maps err onto a status code. Definitions that cannot be
// located are unprocessable; bad input or settings are bad requests.
func newHTTPError(err error) *HTTPError {
	var he *HTTPError
	if crdb.As(err, &he) {
		return he
	}

	var ee *echo.HTTPError
	if crdb.As(err, &ee) {
		return &HTTPError{StatusCode: ee.Code, Message: fmt.Sprint(ee.Message)}
	}

	var fe errors.FakegenError
	if !crdb.As(err, &fe) {
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	status := http.StatusInternalServerError
	switch fe.ErrorCode() {
	case errors.NameNotFoundCode, errors.BodyNotFoundCode:
		status = http.StatusUnprocessableEntity
	case errors.InputErrorCode, errors.ConfigurationErrorCode:
		status = http.StatusBadRequest
	}

	return &HTTPError{
		StatusCode:  status,
		Message:     err.Error(),
		Code:        fe.ErrorCode().String(),
		Suggestions: fe.Suggestions(),
	}
}
