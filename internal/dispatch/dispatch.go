// Package dispatch is the boundary where feed intents leave the core.
// Talking to real hardware is out of scope; implementations here log or record.
package dispatch

import (
	"context"
	"sync"

	"github.com/julianstephens/feeder/internal/logger"
	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/utils"
)

// Dispatcher hands a feed intent to the feeding mechanism
type Dispatcher interface {
	Dispatch(ctx context.Context, intent models.FeedIntent) error
}

// LogDispatcher writes each intent to the application log
type LogDispatcher struct{}

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, intent models.FeedIntent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Info("Feed intent dispatched",
		"id", intent.ID,
		"amount_grams", intent.AmountGrams,
		"mode", intent.Mode,
		"at", utils.FormatClock(intent.RequestedAt),
	)
	return nil
}

// Recorder keeps every intent in memory and optionally forwards it
type Recorder struct {
	mu      sync.Mutex
	intents []models.FeedIntent
	next    Dispatcher
}

// NewRecorder returns a recorder. next may be nil.
func NewRecorder(next Dispatcher) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Dispatch(ctx context.Context, intent models.FeedIntent) error {
	if r.next != nil {
		if err := r.next.Dispatch(ctx, intent); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents = append(r.intents, intent)
	return nil
}

// Intents returns a copy of the recorded intents, oldest first
func (r *Recorder) Intents() []models.FeedIntent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.FeedIntent, len(r.intents))
	copy(out, r.intents)
	return out
}
