package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/feeder/internal/lock"
	"github.com/julianstephens/feeder/internal/logger"
	"github.com/julianstephens/feeder/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	l, err := acquireLock(ctx, "tui")
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Release(); err != nil {
			logger.Warn("Failed to release lock", "error", err)
		}
	}()

	s, err := ctx.NewSession(context.Background(), nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}

func acquireLock(ctx *Context, owner string) (*lock.Lock, error) {
	dir := ctx.configDir()
	if dir == "" {
		return nil, errors.New("config directory is not set")
	}
	return lock.Acquire(dir, owner)
}
