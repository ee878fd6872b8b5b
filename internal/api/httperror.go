package api

import (
	"errors"
	"net/http"

	apperrors "github.com/julianstephens/feeder/internal/errors"
)

const (
	msgBadRequest     = "Bad Request"
	msgNotFound       = "Resource not found"
	msgInternalServer = "Internal Server Error"
)

// HTTPError is an error with a status code and a user-facing message
type HTTPError struct {
	cause   error
	Code    int
	Message string
}

func (he *HTTPError) Error() string {
	return he.Message
}

func (he *HTTPError) Unwrap() error {
	return he.cause
}

func defaultMessageIfEmpty(msg, defaultVal string) string {
	if msg == "" {
		return defaultVal
	}
	return msg
}

func NewHTTPError(code int, message string, cause error) *HTTPError {
	if cause == nil {
		cause = errors.New(message)
	}
	return &HTTPError{cause: cause, Code: code, Message: message}
}

func ErrBadRequest(message string, cause error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, defaultMessageIfEmpty(message, msgBadRequest), cause)
}

// statusFor maps session errors to a status code. ok is false for errors
// that are not the client's fault.
func statusFor(err error) (code int, ok bool) {
	switch {
	case errors.Is(err, apperrors.ErrRange):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, apperrors.ErrBusy),
		errors.Is(err, apperrors.ErrManualOnly),
		errors.Is(err, apperrors.ErrNotEditing):
		return http.StatusConflict, true
	case errors.Is(err, apperrors.ErrUnknownMode),
		errors.Is(err, apperrors.ErrUnknownPreset),
		errors.Is(err, apperrors.ErrUnknownCommand):
		return http.StatusBadRequest, true
	}
	return http.StatusInternalServerError, false
}

// wrapSessionError turns a rejected command into an HTTPError. Unmapped
// errors are returned as-is and surface as 500.
func wrapSessionError(err error) error {
	if code, ok := statusFor(err); ok {
		return NewHTTPError(code, err.Error(), err)
	}
	return err
}
