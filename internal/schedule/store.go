// Package schedule keeps the fixed set of named feeding times.
package schedule

import (
	"time"

	"github.com/julianstephens/feeder/internal/constants"
	apperrors "github.com/julianstephens/feeder/internal/errors"
	"github.com/julianstephens/feeder/internal/models"
	"github.com/julianstephens/feeder/internal/utils"
)

// Store holds exactly one entry per slot id, in display order.
// Entries are never added or removed after construction.
type Store struct {
	entries []models.ScheduleEntry
}

// New returns a store with the default feeding times (08:00, 12:00, 18:00)
func New() *Store {
	defaults := map[models.SlotID]string{
		models.SlotMorning: constants.DefaultMorningTime,
		models.SlotNoon:    constants.DefaultNoonTime,
		models.SlotEvening: constants.DefaultEveningTime,
	}
	s := &Store{entries: make([]models.ScheduleEntry, 0, len(models.SlotIDs))}
	for _, id := range models.SlotIDs {
		t, err := utils.ParseTimeOfDay(defaults[id])
		if err != nil {
			panic("invalid default feeding time for " + string(id))
		}
		s.entries = append(s.entries, models.ScheduleEntry{ID: id, Label: id.Label(), Time: t})
	}
	return s
}

// NewFromClock returns a store with every slot set to the wall-clock time of now
func NewFromClock(now time.Time) *Store {
	s := New()
	t := utils.TimeOfDayFromTime(now)
	for i := range s.entries {
		s.entries[i].Time = t
	}
	return s
}

func (s *Store) index(id models.SlotID) (int, error) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i, nil
		}
	}
	return -1, &apperrors.NotFoundError{ID: string(id)}
}

// Get returns the entry for id
func (s *Store) Get(id models.SlotID) (models.ScheduleEntry, error) {
	i, err := s.index(id)
	if err != nil {
		return models.ScheduleEntry{}, err
	}
	return s.entries[i], nil
}

// Update replaces the time of the entry for id. Other entries are untouched,
// and applying the same time again has no further effect.
func (s *Store) Update(id models.SlotID, t models.TimeOfDay) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	s.entries[i].Time = t
	return nil
}

// List returns a copy of all entries: morning, noon, evening.
func (s *Store) List() []models.ScheduleEntry {
	out := make([]models.ScheduleEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Next returns the first entry at or after now's time of day, wrapping to the
// earliest entry once every slot has passed. It is for display only.
func (s *Store) Next(now time.Time) models.ScheduleEntry {
	current := utils.TimeOfDayFromTime(now).Minutes()

	var next, earliest *models.ScheduleEntry
	for i := range s.entries {
		e := &s.entries[i]
		if earliest == nil || e.Time.Minutes() < earliest.Time.Minutes() {
			earliest = e
		}
		if e.Time.Minutes() >= current && (next == nil || e.Time.Minutes() < next.Time.Minutes()) {
			next = e
		}
	}
	if next == nil {
		return *earliest
	}
	return *next
}
