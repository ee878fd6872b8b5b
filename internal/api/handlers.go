package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/julianstephens/feeder/internal/logger"
)

// AppHandler is a handler that returns an error instead of writing one
type AppHandler func(w http.ResponseWriter, r *http.Request) error

// MakeHandler adapts an AppHandler to http.HandlerFunc, logging any returned
// error and answering with a JSON error body.
func MakeHandler(handler AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		err := handler(ww, r)
		if err == nil {
			return
		}

		var httpErr *HTTPError
		var statusCode int
		var publicMessage string

		if errors.As(err, &httpErr) {
			statusCode = httpErr.Code
			publicMessage = httpErr.Message
			logFn := logger.Warn
			if statusCode >= 500 {
				logFn = logger.Error
			}
			logFn("Client error response",
				"code", statusCode,
				"msg", publicMessage,
				"cause", errors.Unwrap(httpErr),
				"path", r.URL.Path,
				"method", r.Method,
			)
		} else {
			statusCode = http.StatusInternalServerError
			publicMessage = msgInternalServer
			logger.Error("Unhandled internal error", "path", r.URL.Path, "method", r.Method, "error", err)
		}

		if ww.Status() != 0 {
			logger.Warn("Handler returned error after writing response header",
				"path", r.URL.Path,
				"method", r.Method,
				"error", err,
			)
			return
		}
		RespondWithError(ww, statusCode, publicMessage)
	}
}
