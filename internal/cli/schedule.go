package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/session"
	"github.com/julianstephens/feeder/internal/utils"
)

type ScheduleCmd struct {
	Set  []string `help:"Set a feeding time, e.g. --set evening=20:30 (repeatable)." placeholder:"SLOT=HH:MM" sep:"none"`
	JSON bool     `help:"Print the schedule as JSON." name:"json"`
}

// parseAssignment splits "slot=time" into an edit of one slot
func parseAssignment(s string) (models.SlotID, models.TimeOfDay, error) {
	id, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", models.TimeOfDay{}, fmt.Errorf("invalid --set %q, use SLOT=HH:MM", s)
	}
	t, err := utils.ParseAnyTime(value)
	if err != nil {
		return "", models.TimeOfDay{}, err
	}
	return models.SlotID(strings.ToLower(strings.TrimSpace(id))), t, nil
}

func (c *ScheduleCmd) Run(ctx *Context) error {
	runCtx := context.Background()
	s, err := ctx.NewSession(runCtx, nil)
	if err != nil {
		return err
	}

	for _, assignment := range c.Set {
		id, t, err := parseAssignment(assignment)
		if err != nil {
			return err
		}
		if _, err := s.Apply(runCtx, session.OpenEditor{Slot: id}); err != nil {
			return err
		}
		if _, err := s.Apply(runCtx, session.Commit{Time: t}); err != nil {
			return err
		}
	}

	snap := s.Snapshot()
	if c.JSON {
		return ctx.printJSON(snap.Schedule)
	}

	out := ctx.out()
	fmt.Fprintln(out, "Feeding times:")
	fmt.Fprintln(out)
	for _, slot := range snap.Schedule {
		marker := ""
		if slot.ID == snap.Next {
			marker = "  (next)"
		}
		fmt.Fprintf(out, "  %-8s %s%s\n", slot.Label, slot.Time, marker)
	}
	return nil
}
