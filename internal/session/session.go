// Package session owns one control session's feed configuration, schedule
// and history, and applies the named command set to them.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/feeder/internal/dispatch"
	"github.com/julianstephens/feeder/internal/editor"
	apperrors "github.com/julianstephens/feeder/internal/errors"
	"github.com/julianstephens/feeder/internal/feed"
	"github.com/julianstephens/feeder/internal/history"
	"github.com/julianstephens/feeder/internal/logger"
	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/schedule"
	"github.com/julianstephens/feeder/internal/utils"
)

// Options configures a new session. Zero fields fall back to defaults.
type Options struct {
	Schedule   *schedule.Store
	History    *history.View
	Dispatcher dispatch.Dispatcher
	Now        func() time.Time
}

// Session is not safe for concurrent use; adapters serialize calls to Apply.
type Session struct {
	feed       *feed.Configuration
	schedule   *schedule.Store
	editor     *editor.Coordinator
	history    *history.View
	dispatcher dispatch.Dispatcher
	now        func() time.Time
}

// Result carries what a command produced besides the state change
type Result struct {
	// Intent is set by Feed
	Intent *models.FeedIntent `json:"intent,omitempty"`
	// Initial is the editor's starting value, set by OpenEditor
	Initial *models.TimeOfDay `json:"initial,omitempty"`
	// Slot is the slot opened by OpenEditor or written by Commit
	Slot    models.SlotID `json:"slot,omitempty"`
	Message string        `json:"message,omitempty"`
}

func New(opts Options) *Session {
	s := &Session{
		feed:       feed.New(),
		schedule:   opts.Schedule,
		history:    opts.History,
		dispatcher: opts.Dispatcher,
		now:        opts.Now,
	}
	if s.schedule == nil {
		s.schedule = schedule.New()
	}
	if s.history == nil {
		s.history = history.NewView(history.DefaultRecords)
	}
	if s.dispatcher == nil {
		s.dispatcher = dispatch.NewLogDispatcher()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.editor = editor.New(s.schedule)
	return s
}

// Apply runs one command. A rejected command leaves the session unchanged.
func (s *Session) Apply(ctx context.Context, cmd Command) (Result, error) {
	if cmd == nil {
		return Result{}, apperrors.ErrUnknownCommand
	}
	logger.Debug("Applying command", "command", cmd.Name())

	res, err := s.apply(ctx, cmd)
	if err != nil {
		logger.Warn("Command rejected", "command", cmd.Name(), "error", err)
		return Result{}, err
	}
	return res, nil
}

func (s *Session) apply(ctx context.Context, cmd Command) (Result, error) {
	switch c := cmd.(type) {
	case SetMode:
		return Result{}, s.feed.SetMode(c.Mode)
	case SetAmount:
		return Result{}, s.feed.SetAmount(c.Grams)
	case SelectPreset:
		return Result{}, s.feed.SelectPreset(c.Preset)
	case Feed:
		intent := s.feed.Feed()
		if err := s.dispatcher.Dispatch(ctx, intent); err != nil {
			return Result{}, fmt.Errorf("failed to dispatch feed: %w", err)
		}
		return Result{Intent: &intent, Message: intent.Message()}, nil
	case OpenEditor:
		initial, err := s.editor.Open(c.Slot)
		if err != nil {
			return Result{}, err
		}
		return Result{Initial: &initial, Slot: c.Slot}, nil
	case Commit:
		id, err := s.editor.Commit(c.Time)
		if err != nil {
			return Result{}, err
		}
		return Result{Slot: id}, nil
	case Cancel:
		s.editor.Cancel()
		return Result{}, nil
	default:
		return Result{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownCommand, cmd.Name())
	}
}

// AmountGrams returns the selected amount
func (s *Session) AmountGrams() int { return s.feed.AmountGrams() }

// Mode returns the selected mode
func (s *Session) Mode() models.Mode { return s.feed.Mode() }

// Schedule returns the slots in display order
func (s *Session) Schedule() []models.ScheduleEntry { return s.schedule.List() }

// Editor returns the edit state
func (s *Session) Editor() editor.State { return s.editor.State() }

// History returns the history rows in source order
func (s *Session) History() []history.Row { return s.history.Rows() }

// Next returns the next slot from the session clock
func (s *Session) Next() models.ScheduleEntry { return s.schedule.Next(s.now()) }

// NextAt returns the next slot and when it next comes round, today or tomorrow
func (s *Session) NextAt() (models.ScheduleEntry, time.Time) {
	now := s.now()
	entry := s.schedule.Next(now)
	at := utils.OnDate(entry.Time, now)
	if at.Before(now.Truncate(time.Minute)) {
		at = at.AddDate(0, 0, 1)
	}
	return entry, at
}
