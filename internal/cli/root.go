package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/feeder/internal/config"
	"github.com/julianstephens/feeder/internal/constants"
	"github.com/julianstephens/feeder/internal/dispatch"
	"github.com/julianstephens/feeder/internal/history"
	"github.com/julianstephens/feeder/internal/schedule"
	"github.com/julianstephens/feeder/internal/session"
)

type Context struct {
	Config *config.Config
	Out    io.Writer
	Now    func() time.Time
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// NewSession builds a fresh session from the configuration. d may be nil
// to dispatch through the log.
func (c *Context) NewSession(ctx context.Context, d dispatch.Dispatcher) (*session.Session, error) {
	src, err := c.historySource()
	if err != nil {
		return nil, err
	}
	view, err := history.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	var store *schedule.Store
	if c.Config != nil && c.Config.ScheduleInitial == constants.ScheduleInitialClock {
		store = schedule.NewFromClock(c.now())
	} else {
		store = schedule.New()
	}

	return session.New(session.Options{
		Schedule:   store,
		History:    view,
		Dispatcher: d,
		Now:        c.now,
	}), nil
}

func (c *Context) historySource() (history.Source, error) {
	if c.Config == nil {
		return history.NewStaticSource(history.DefaultRecords), nil
	}
	switch c.Config.HistorySource {
	case constants.HistorySourceSQLite:
		return history.NewSQLiteSource(c.Config.HistoryDBPath), nil
	case constants.HistorySourceStatic, "":
		return history.NewStaticSource(history.DefaultRecords), nil
	default:
		return nil, fmt.Errorf("unknown history source: %s", c.Config.HistorySource)
	}
}

func (c *Context) printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(c.out(), string(jsonBytes))
	return nil
}

func (c *Context) configDir() string {
	if c.Config == nil {
		return ""
	}
	return c.Config.Dir
}
