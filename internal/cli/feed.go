package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/feeder/internal/feed"
	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/session"
)

type FeedCmd struct {
	Mode   string `help:"Feeding mode (manual or automatic)."`
	Preset string `help:"Preset portion (small, medium or large)."`
	Amount *int   `help:"Amount in grams (manual mode only, clamped to 0-100)."`
	JSON   bool   `help:"Print the feed intent as JSON." name:"json"`
}

// Commands returns the session commands the flags stand for, ending with Feed
func (c *FeedCmd) Commands() ([]session.Command, error) {
	var cmds []session.Command
	if c.Mode != "" {
		mode, err := models.ParseMode(c.Mode)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, session.SetMode{Mode: mode})
	}
	if c.Preset != "" {
		preset, err := models.ParsePreset(c.Preset)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, session.SelectPreset{Preset: preset})
	}
	if c.Amount != nil {
		cmds = append(cmds, session.SetAmount{Grams: feed.ClampAmount(*c.Amount)})
	}
	return append(cmds, session.Feed{}), nil
}

func (c *FeedCmd) Run(ctx *Context) error {
	cmds, err := c.Commands()
	if err != nil {
		return err
	}

	runCtx := context.Background()
	s, err := ctx.NewSession(runCtx, nil)
	if err != nil {
		return err
	}

	var res session.Result
	for _, cmd := range cmds {
		res, err = s.Apply(runCtx, cmd)
		if err != nil {
			return err
		}
	}

	if c.JSON {
		return ctx.printJSON(res.Intent)
	}
	fmt.Fprintln(ctx.out(), res.Message)
	return nil
}
