package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/julianstephens/feeder/internal/logger"
)

const (
	apiBasePath      = "/api"
	feedBasePath     = "/feed"
	scheduleBasePath = "/schedule"
	editorBasePath   = "/editor"
	historyBasePath  = "/history"
	commandsBasePath = "/commands"
)

const (
	paramID = "id"
)

const requestTimeout = 30 * time.Second

// SetupRoutes builds the router for srv
func SetupRoutes(srv *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		RespondWithError(w, http.StatusNotFound, msgNotFound)
	})

	r.Route(apiBasePath, func(r chi.Router) {
		r.Get("/state", MakeHandler(srv.HandleGetState))
		r.Post(commandsBasePath, MakeHandler(srv.HandleCommand))

		r.Route(feedBasePath, func(r chi.Router) {
			r.Post("/", MakeHandler(srv.HandleFeed))
			r.Put("/mode", MakeHandler(srv.HandleSetMode))
			r.Put("/amount", MakeHandler(srv.HandleSetAmount))
			r.Put("/preset", MakeHandler(srv.HandleSelectPreset))
			r.Get("/intents", MakeHandler(srv.HandleGetIntents))
		})

		r.Route(scheduleBasePath, func(r chi.Router) {
			r.Get("/", MakeHandler(srv.HandleGetSchedule))
			r.Post("/{"+paramID+"}/edit", MakeHandler(srv.HandleOpenEditor))
		})

		r.Route(editorBasePath, func(r chi.Router) {
			r.Post("/commit", MakeHandler(srv.HandleCommit))
			r.Post("/cancel", MakeHandler(srv.HandleCancel))
		})

		r.Get(historyBasePath, MakeHandler(srv.HandleGetHistory))
	})

	r.Get("/healthz", handleHealthCheck)

	return r
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestLogger logs every request through the application logger
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
