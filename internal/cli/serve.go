package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/feeder/internal/api"
	"github.com/julianstephens/feeder/internal/constants"
	"github.com/julianstephens/feeder/internal/dispatch"
	"github.com/julianstephens/feeder/internal/logger"
)

type ServeCmd struct {
	Addr string `help:"Listen address (overrides server.addr)." placeholder:"HOST:PORT"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	l, err := acquireLock(ctx, "serve")
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Release(); err != nil {
			logger.Warn("Failed to release lock", "error", err)
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	intents := dispatch.NewRecorder(dispatch.NewLogDispatcher())
	s, err := ctx.NewSession(sigCtx, intents)
	if err != nil {
		return err
	}

	addr := c.addr(ctx)
	fmt.Fprintf(ctx.out(), "Serving feeder API on http://%s\n", addr)
	return api.ListenAndServe(sigCtx, addr, api.SetupRoutes(api.NewServer(s, intents)))
}

func (c *ServeCmd) addr(ctx *Context) string {
	if c.Addr != "" {
		return c.Addr
	}
	if ctx.Config != nil && ctx.Config.ServerAddr != "" {
		return ctx.Config.ServerAddr
	}
	return constants.DefaultServerAddr
}
