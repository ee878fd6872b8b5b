package cli

import (
	"context"
	"fmt"
)

type HistoryCmd struct {
	JSON bool `help:"Print the history as JSON." name:"json"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	s, err := ctx.NewSession(context.Background(), nil)
	if err != nil {
		return err
	}

	rows := s.History()
	if c.JSON {
		return ctx.printJSON(rows)
	}

	out := ctx.out()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No feedings recorded")
		return nil
	}
	fmt.Fprintf(out, "%-12s %s\n", "DATE", "TIME")
	for _, r := range rows {
		fmt.Fprintf(out, "%-12s %s\n", r.Date, r.Time)
	}
	return nil
}
