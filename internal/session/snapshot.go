package session

import (
	"github.com/julianstephens/feeder/internal/constants"
	"github.com/julianstephens/feeder/internal/editor"
	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/utils"
)

// Slot is a schedule entry ready for display
type Slot struct {
	ID      models.SlotID `json:"id"`
	Label   string        `json:"label"`
	Time    string        `json:"time"`
	Clock   string        `json:"clock"`
	Editing bool          `json:"editing"`
}

// EditState describes the open editor, if any
type EditState struct {
	Slot    models.SlotID `json:"slot"`
	Initial string        `json:"initial"`
}

// Snapshot is a read-only copy of the session for rendering
type Snapshot struct {
	AmountGrams int           `json:"amount_grams"`
	MinGrams    int           `json:"min_grams"`
	MaxGrams    int           `json:"max_grams"`
	Mode        models.Mode   `json:"mode"`
	Schedule    []Slot        `json:"schedule"`
	Editing     *EditState    `json:"editing,omitempty"`
	Next        models.SlotID `json:"next"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		AmountGrams: s.feed.AmountGrams(),
		MinGrams:    constants.MinAmountGrams,
		MaxGrams:    constants.MaxAmountGrams,
		Mode:        s.feed.Mode(),
		Next:        s.Next().ID,
	}

	active, editing := s.editor.State().(editor.Editing)
	if editing {
		snap.Editing = &EditState{Slot: active.ID, Initial: utils.FormatTimeOfDay(active.Initial)}
	}

	for _, e := range s.schedule.List() {
		snap.Schedule = append(snap.Schedule, Slot{
			ID:      e.ID,
			Label:   e.Label,
			Time:    utils.FormatTimeOfDay(e.Time),
			Clock:   e.Time.String(),
			Editing: editing && active.ID == e.ID,
		})
	}
	return snap
}
