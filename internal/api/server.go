// Package api exposes a control session over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/julianstephens/feeder/internal/dispatch"
	"github.com/julianstephens/feeder/internal/feed"
	"github.com/julianstephens/feeder/internal/logger"
	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/session"
	"github.com/julianstephens/feeder/internal/utils"
)

const shutdownTimeout = 15 * time.Second

// Server serializes every request onto one session
type Server struct {
	mu      sync.Mutex
	session *session.Session
	intents *dispatch.Recorder
}

// NewServer wraps s. intents may be nil, in which case the intent log
// route answers with an empty list.
func NewServer(s *session.Session, intents *dispatch.Recorder) *Server {
	return &Server{session: s, intents: intents}
}

type commandResponse struct {
	Result session.Result   `json:"result"`
	State  session.Snapshot `json:"state"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type amountRequest struct {
	AmountGrams *int `json:"amount_grams"`
}

type presetRequest struct {
	Preset string `json:"preset"`
}

type commitRequest struct {
	Time string `json:"time"`
}

// apply runs cmd under the session lock and writes the result with the new state
func (s *Server) apply(w http.ResponseWriter, r *http.Request, cmd session.Command) error {
	s.mu.Lock()
	res, err := s.session.Apply(r.Context(), cmd)
	snap := s.session.Snapshot()
	s.mu.Unlock()

	if err != nil {
		return wrapSessionError(err)
	}
	RespondWithJSON(w, http.StatusOK, commandResponse{Result: res, State: snap})
	return nil
}

func (s *Server) HandleGetState(w http.ResponseWriter, r *http.Request) error {
	s.mu.Lock()
	snap := s.session.Snapshot()
	s.mu.Unlock()

	RespondWithJSON(w, http.StatusOK, snap)
	return nil
}

func (s *Server) HandleGetSchedule(w http.ResponseWriter, r *http.Request) error {
	s.mu.Lock()
	snap := s.session.Snapshot()
	s.mu.Unlock()

	RespondWithJSON(w, http.StatusOK, snap.Schedule)
	return nil
}

func (s *Server) HandleGetHistory(w http.ResponseWriter, r *http.Request) error {
	s.mu.Lock()
	rows := s.session.History()
	s.mu.Unlock()

	RespondWithJSON(w, http.StatusOK, rows)
	return nil
}

func (s *Server) HandleGetIntents(w http.ResponseWriter, r *http.Request) error {
	intents := []models.FeedIntent{}
	if s.intents != nil {
		intents = s.intents.Intents()
	}
	RespondWithJSON(w, http.StatusOK, intents)
	return nil
}

func (s *Server) HandleSetMode(w http.ResponseWriter, r *http.Request) error {
	var req modeRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	mode, err := models.ParseMode(req.Mode)
	if err != nil {
		return wrapSessionError(err)
	}
	return s.apply(w, r, session.SetMode{Mode: mode})
}

// HandleSetAmount clamps the requested amount to the slider range
func (s *Server) HandleSetAmount(w http.ResponseWriter, r *http.Request) error {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if req.AmountGrams == nil {
		return ErrBadRequest("amount_grams is required", nil)
	}
	return s.apply(w, r, session.SetAmount{Grams: feed.ClampAmount(*req.AmountGrams)})
}

func (s *Server) HandleSelectPreset(w http.ResponseWriter, r *http.Request) error {
	var req presetRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	preset, err := models.ParsePreset(req.Preset)
	if err != nil {
		return wrapSessionError(err)
	}
	return s.apply(w, r, session.SelectPreset{Preset: preset})
}

func (s *Server) HandleFeed(w http.ResponseWriter, r *http.Request) error {
	return s.apply(w, r, session.Feed{})
}

func (s *Server) HandleOpenEditor(w http.ResponseWriter, r *http.Request) error {
	id := models.SlotID(chi.URLParam(r, paramID))
	return s.apply(w, r, session.OpenEditor{Slot: id})
}

func (s *Server) HandleCommit(w http.ResponseWriter, r *http.Request) error {
	var req commitRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	t, err := utils.ParseAnyTime(req.Time)
	if err != nil {
		return ErrBadRequest(err.Error(), err)
	}
	return s.apply(w, r, session.Commit{Time: t})
}

func (s *Server) HandleCancel(w http.ResponseWriter, r *http.Request) error {
	return s.apply(w, r, session.Cancel{})
}

// HandleCommand applies a command in its wire form. Amounts are not clamped here.
func (s *Server) HandleCommand(w http.ResponseWriter, r *http.Request) error {
	var req session.Request
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	cmd, err := session.Decode(req)
	if err != nil {
		if _, ok := statusFor(err); ok {
			return wrapSessionError(err)
		}
		return ErrBadRequest(err.Error(), err)
	}
	return s.apply(w, r, cmd)
}

// ListenAndServe serves the API on addr until ctx is done, then shuts down gracefully
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
